package badge

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// The two embedded Go font faces cover every label on the badge; no font
// files are read from disk.
var (
	regularFont = mustParseFont(goregular.TTF)
	boldFont    = mustParseFont(gobold.TTF)
)

func mustParseFont(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// newFace builds a face per rendering call; faces are not safe for
// concurrent use.
func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func drawLeft(img *image.RGBA, face font.Face, text string, x, baselineY int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, baselineY),
	}
	drawer.DrawString(text)
}

func drawRight(img *image.RGBA, face font.Face, text string, rightX, baselineY int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	width := drawer.MeasureString(text)
	drawer.Dot = fixed.P(rightX-width.Round(), baselineY)
	drawer.DrawString(text)
}

func drawCentered(img *image.RGBA, face font.Face, text string, centerX, baselineY int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	width := drawer.MeasureString(text)
	drawer.Dot = fixed.P(centerX-width.Round()/2, baselineY)
	drawer.DrawString(text)
}
