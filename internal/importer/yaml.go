package importer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/tagcloud/internal/model"
	"gopkg.in/yaml.v3"
)

// yamlWordList is the document shape accepted by ImportYAML:
//
//	words:
//	  - label: golang
//	    width: 120
//	    height: 40
//	    count: 2
type yamlWordList struct {
	Words []yamlWord `yaml:"words"`
}

type yamlWord struct {
	Label  string `yaml:"label"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Count  int    `yaml:"count"`
}

// ImportYAML imports words from a YAML file with a top-level words list.
func ImportYAML(path string) ImportResult {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	defer f.Close()
	return ImportYAMLFromReader(f)
}

// ImportYAMLFromReader imports words from YAML read from r.
func ImportYAMLFromReader(r io.Reader) ImportResult {
	result := ImportResult{}

	var doc yamlWordList
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse YAML: %v", err))
		return result
	}

	if len(doc.Words) == 0 {
		result.Errors = append(result.Errors, "No words entries found")
		return result
	}

	for i, w := range doc.Words {
		count := w.Count
		if count == 0 {
			count = 1
		}
		if w.Width <= 0 || w.Height <= 0 || count < 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Word %d: Width, height, and count must be positive", i+1))
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
