package engine

import (
	"fmt"
	"math/rand"

	"github.com/piwi3910/tagcloud/internal/model"
)

// RandomWords generates n words whose sides are drawn uniformly from
// [minSize, maxSize] (inclusive) using a seeded source, so the same seed
// always yields the same list.
func RandomWords(n int, minSize, maxSize model.Size, seed int64) []model.Word {
	if maxSize.Width < minSize.Width {
		minSize.Width, maxSize.Width = maxSize.Width, minSize.Width
	}
	if maxSize.Height < minSize.Height {
		minSize.Height, maxSize.Height = maxSize.Height, minSize.Height
	}

	rng := rand.New(rand.NewSource(seed))
	words := make([]model.Word, 0, n)
	for i := 0; i < n; i++ {
		w := minSize.Width + rng.Intn(maxSize.Width-minSize.Width+1)
		h := minSize.Height + rng.Intn(maxSize.Height-minSize.Height+1)
		words = append(words, model.Word{
			ID:    fmt.Sprintf("r%07d", i+1),
			Label: fmt.Sprintf("word-%d", i+1),
			Size:  model.Size{Width: w, Height: h},
		})
	}
	return words
}

// Sizes extracts the sizes of words in order.
func Sizes(words []model.Word) []model.Size {
	sizes := make([]model.Size, len(words))
	for i, w := range words {
		sizes[i] = w.Size
	}
	return sizes
}
