package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/piwi3910/tagcloud/internal/model"
)

// Format identifies an export file type.
type Format string

const (
	FormatPNG    Format = "png"
	FormatPDF    Format = "pdf"
	FormatLabels Format = "labels"
	FormatDXF    Format = "dxf"
	FormatXLSX   Format = "xlsx"
	FormatJSON   Format = "json"
)

// AllFormats lists every supported format in a stable order.
var AllFormats = []Format{FormatPNG, FormatPDF, FormatLabels, FormatDXF, FormatXLSX, FormatJSON}

// ParseFormats parses a comma separated list such as "png,pdf". Duplicates
// are dropped and the input order is kept.
func ParseFormats(s string) ([]Format, error) {
	var formats []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(part)))
		if f == "" || seen[f] {
			continue
		}
		if !f.valid() {
			return nil, fmt.Errorf("unknown export format %q", part)
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no export formats given")
	}
	return formats, nil
}

func (f Format) valid() bool {
	for _, known := range AllFormats {
		if f == known {
			return true
		}
	}
	return false
}

// FileName returns the output file name for base in this format.
func (f Format) FileName(base string) string {
	switch f {
	case FormatLabels:
		return base + "-labels.pdf"
	default:
		return base + "." + string(f)
	}
}

// Options bundles the inputs some exporters need beyond the result itself.
type Options struct {
	Settings model.LayoutSettings
	Render   RenderOptions
}

// Write exports result in format f to path.
func Write(f Format, path string, result model.LayoutResult, opts Options) error {
	switch f {
	case FormatPNG:
		return ExportPNG(path, result, opts.Render)
	case FormatPDF:
		return ExportPDF(path, result, opts.Settings)
	case FormatLabels:
		return ExportLabels(path, result)
	case FormatDXF:
		return ExportDXF(path, result)
	case FormatXLSX:
		return ExportXLSX(path, result)
	case FormatJSON:
		return ExportJSON(path, result)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteAll exports result in every format into dir, naming files after base.
// It returns the paths written; on error the files already written are kept.
func WriteAll(dir, base string, formats []Format, result model.LayoutResult, opts Options) ([]string, error) {
	var written []string
	for _, f := range formats {
		path := filepath.Join(dir, f.FileName(base))
		if err := Write(f, path, result, opts); err != nil {
			return written, fmt.Errorf("exporting %s: %w", f, err)
		}
		written = append(written, path)
	}
	return written, nil
}
