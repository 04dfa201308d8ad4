package roster

import "regexp"

// defaultTable is the SQLite table scanned when WithTable is not given.
const defaultTable = "roster"

var tableNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReadOption customizes Read by mutating a readConfig before the source is opened.
type ReadOption func(*readConfig)

// readConfig aggregates Read knobs; resolved once per call, last option wins.
type readConfig struct {
	normalize bool   // map tags through NormalizeTag
	header    bool   // first row is a header
	table     string // SQLite table name
}

func newReadConfig(opts ...ReadOption) readConfig {
	cfg := readConfig{
		normalize: false,
		header:    true,
		table:     defaultTable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNormalizeTags maps every tag through NormalizeTag while reading.
func WithNormalizeTags() ReadOption {
	return func(c *readConfig) { c.normalize = true }
}

// WithHeader states whether the first row of a delimited or spreadsheet
// source is a header. The default is true.
func WithHeader(has bool) ReadOption {
	return func(c *readConfig) { c.header = has }
}

// WithTable selects the SQLite table holding (name, tag) rows.
// Panics on names that are not plain SQL identifiers.
func WithTable(name string) ReadOption {
	if !tableNameRE.MatchString(name) {
		panic("roster: WithTable(" + name + ") is not a plain identifier")
	}
	return func(c *readConfig) { c.table = name }
}
