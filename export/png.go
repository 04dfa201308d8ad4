package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/seatplan/render"
)

const (
	cellPad      = 8  // pixels around text inside a cell
	minCellWidth = 48 // pixels
)

// writePNG draws t as a bordered grid with each cell's text centred.
func writePNG(ctx context.Context, path string, t *render.Table, cfg exportConfig) error {
	face, source := resolveFace(cfg)
	cfg.logger.Debug("png font", "font", source)

	img := drawTable(t, face)
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("png: %w", err)
	}
	return f.Close()
}

// drawTable renders t with uniform cell sizes: the widest text sets the
// cell width and the face's line height sets the cell height.
func drawTable(t *render.Table, face font.Face) *image.RGBA {
	records := t.Records()
	cellW := minCellWidth
	for _, rec := range records {
		for _, v := range rec {
			cellW = max(cellW, font.MeasureString(face, v).Ceil()+2*cellPad)
		}
	}
	m := face.Metrics()
	cellH := m.Height.Ceil() + 2*cellPad

	w, h := t.Cols()*cellW+1, t.Rows()*cellH+1
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	line := image.NewUniform(color.Gray{Y: 0x60})
	for r := 0; r <= t.Rows(); r++ {
		draw.Draw(img, image.Rect(0, r*cellH, w, r*cellH+1), line, image.Point{}, draw.Src)
	}
	for c := 0; c <= t.Cols(); c++ {
		draw.Draw(img, image.Rect(c*cellW, 0, c*cellW+1, h), line, image.Point{}, draw.Src)
	}

	d := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	for r, rec := range records {
		baseline := r*cellH + cellPad + m.Ascent.Ceil()
		for c, v := range rec {
			if v == "" {
				continue
			}
			tw := font.MeasureString(face, v).Ceil()
			d.Dot = fixed.P(c*cellW+(cellW-tw)/2, baseline)
			d.DrawString(v)
		}
	}
	return img
}
