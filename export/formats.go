package export

import "strings"

// Format names one output file type.
type Format string

// Supported formats.
const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
	FormatPNG   Format = "png"
)

var extensions = map[Format]string{
	FormatExcel: ".xlsx",
	FormatCSV:   ".csv",
	FormatPNG:   ".png",
}

// Ext returns the file extension for f and whether f is supported.
func (f Format) Ext() (string, bool) {
	ext, ok := extensions[f]
	return ext, ok
}

// Supported reports whether f has a writer.
func (f Format) Supported() bool {
	_, ok := extensions[f]
	return ok
}

// ParseFormats splits a comma list such as "excel, CSV,png" into formats,
// lower-cased, trimmed and deduplicated in first-seen order. Unsupported
// names are kept so Export can report them.
func ParseFormats(s string) []Format {
	return Normalize(strings.Split(s, ","))
}

// Normalize lower-cases, trims and deduplicates names, dropping blanks.
func Normalize(names []string) []Format {
	seen := make(map[Format]bool, len(names))
	out := make([]Format, 0, len(names))
	for _, n := range names {
		f := Format(strings.ToLower(strings.TrimSpace(n)))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
