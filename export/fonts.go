package export

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// fontCandidates lists CJK-capable system fonts per platform, tried in order.
var fontCandidates = map[string][]string{
	"windows": {
		`C:\Windows\Fonts\simhei.ttf`,
		`C:\Windows\Fonts\msyh.ttc`,
		`C:\Windows\Fonts\simkai.ttf`,
	},
	"linux": {
		"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
		"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	},
	"darwin": {
		"/System/Library/Fonts/PingFang.ttc",
		"/System/Library/Fonts/STHeiti Medium.ttc",
	},
}

// resolveFace returns the face for png output and a description of where
// it came from. An explicit path that fails to load is reported through
// the logger and the search continues with the platform candidates; the
// last resort is basicfont.Face7x13, which covers ASCII only.
func resolveFace(cfg exportConfig) (font.Face, string) {
	paths := fontCandidates[runtime.GOOS]
	if cfg.fontPath != "" {
		paths = append([]string{cfg.fontPath}, paths...)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if p == cfg.fontPath {
				cfg.logger.Warn("font not found, falling back", "font", p)
			}
			continue
		}
		face, err := loadFace(p, cfg.fontSize)
		if err != nil {
			cfg.logger.Warn("font unusable, falling back", "font", p, "error", err)
			continue
		}
		return face, p
	}
	return basicfont.Face7x13, "basicfont.Face7x13"
}

// loadFace parses a single font or the first font of a collection.
func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		coll, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if f, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
