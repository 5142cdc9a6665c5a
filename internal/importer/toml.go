package importer

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/piwi3910/tagcloud/internal/model"
)

// tomlWordList is the document shape accepted by ImportTOML:
//
//	[[word]]
//	label = "golang"
//	width = 120
//	height = 40
//	count = 2
type tomlWordList struct {
	Words []tomlWord `toml:"word"`
}

type tomlWord struct {
	Label  string `toml:"label"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Count  int    `toml:"count"`
}

// ImportTOML imports words from a TOML file of [[word]] tables.
func ImportTOML(path string) ImportResult {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	defer f.Close()
	return ImportTOMLFromReader(f)
}

// ImportTOMLFromReader imports words from TOML read from r.
func ImportTOMLFromReader(r io.Reader) ImportResult {
	result := ImportResult{}

	var doc tomlWordList
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse TOML: %v", err))
		return result
	}
	for _, key := range md.Undecoded() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown key %q ignored", key.String()))
	}

	if len(doc.Words) == 0 {
		result.Errors = append(result.Errors, "No [[word]] entries found")
		return result
	}

	for i, w := range doc.Words {
		entry := fmt.Sprintf("Word %d", i+1)
		count := w.Count
		if count == 0 {
			count = 1
		}
		if w.Width <= 0 || w.Height <= 0 || count < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Width, height, and count must be positive", entry))
			continue
		}

		label := w.Label
		if label == "" {
			label = fmt.Sprintf("word-%d", len(result.Words)+1)
		}
		for n := 0; n < count; n++ {
			result.Words = append(result.Words, model.NewWord(label, w.Width, w.Height))
		}
	}

	return result
}
