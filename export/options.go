package export

import "github.com/katalvlaran/seatplan/internal/logging"

// defaultFontSize is the png text size in points at 72 DPI.
const defaultFontSize = 14

// defaultSheet names the single worksheet of excel output.
const defaultSheet = "Sheet1"

// Option customizes Export.
type Option func(*exportConfig)

type exportConfig struct {
	logger   logging.Logger
	fontPath string
	fontSize float64
	sheet    string
}

func newExportConfig(opts ...Option) exportConfig {
	cfg := exportConfig{
		logger:   logging.Nop(),
		fontSize: defaultFontSize,
		sheet:    defaultSheet,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for written and skipped files.
// A nil logger keeps the no-op default.
func WithLogger(l logging.Logger) Option {
	return func(c *exportConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFontPath selects the TrueType/OpenType font for png output. An empty
// path searches the platform candidates.
func WithFontPath(path string) Option {
	return func(c *exportConfig) { c.fontPath = path }
}

// WithFontSize sets the png text size in points. Panics if size <= 0.
func WithFontSize(size float64) Option {
	if size <= 0 {
		panic("export: WithFontSize must be > 0")
	}
	return func(c *exportConfig) { c.fontSize = size }
}

// WithSheetName sets the worksheet name of excel output. Panics on "".
func WithSheetName(name string) Option {
	if name == "" {
		panic("export: WithSheetName(\"\")")
	}
	return func(c *exportConfig) { c.sheet = name }
}
