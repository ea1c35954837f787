// Package overlay renders findings as boxes over a screen image so a
// reviewer can see which elements each finding refers to.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/a11y-cli/finding"
	"github.com/mj1618/a11y-cli/model"
)

// Colors used for element outlines.
var (
	ElementColor = color.RGBA{R: 128, G: 128, B: 128, A: 255} // Gray
	WarningColor = color.RGBA{R: 255, G: 165, B: 0, A: 255}   // Amber
	FailureColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}     // Red

	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255} // White
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}       // Black
	canvasColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Options controls rendering.
type Options struct {
	// Background is drawn first; nil renders on a white canvas sized to
	// fit every element.
	Background image.Image
	// Scale converts element points to image pixels (0 = 1).
	Scale float64
}

// Render outlines every element in gray, then each finding's elements
// in its severity color, numbered by finding order. Failures are drawn
// last so they stay visible where boxes coincide.
func Render(elements []model.Element, findings []finding.Finding, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	var rgba *image.RGBA
	if opts.Background != nil {
		rgba = ImageToRGBA(opts.Background)
	} else {
		rgba = blankCanvas(elements, scale)
	}

	for _, el := range elements {
		drawFrame(rgba, el.Frame, scale, ElementColor)
	}
	for _, sev := range []finding.Severity{finding.SeverityWarning, finding.SeverityFailure} {
		c := WarningColor
		if sev == finding.SeverityFailure {
			c = FailureColor
		}
		for i, f := range findings {
			if f.Severity != sev {
				continue
			}
			for _, el := range f.Elements {
				x, y, w, h := toPixels(el.Frame, scale)
				drawRectangle(rgba, x, y, x+w, y+h, c)
				drawTextWithOutline(rgba, fmt.Sprintf("[%d]", i+1), x+w/2, y+h/2, textColor, outlineColor)
			}
		}
	}
	return rgba
}

// LoadBackground decodes a PNG or JPEG screenshot.
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background: %w", err)
	}
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	return nil
}

// ImageToRGBA converts any image to RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func blankCanvas(elements []model.Element, scale float64) *image.RGBA {
	maxX, maxY := 1.0, 1.0
	for _, el := range elements {
		maxX = math.Max(maxX, el.Frame.MaxX())
		maxY = math.Max(maxY, el.Frame.MaxY())
	}
	rgba := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(maxX*scale)), int(math.Ceil(maxY*scale))))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(canvasColor), image.Point{}, draw.Src)
	return rgba
}

func toPixels(r model.Rect, scale float64) (x, y, w, h int) {
	return int(r.X * scale), int(r.Y * scale), int(r.Width * scale), int(r.Height * scale)
}

func drawFrame(img *image.RGBA, r model.Rect, scale float64, c color.Color) {
	x, y, w, h := toPixels(r, scale)
	drawRectangle(img, x, y, x+w, y+h, c)
}

// isWithinBounds checks if a point is within the image bounds
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline centers text on (x, y) with a one-pixel outline.
// basicfont.Face7x13 glyphs are 7 pixels wide and 13 high.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, fg, outline color.Color) {
	offsetX := x - len(text)*7/2
	offsetY := y + 13/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outline)
		}
	}
	drawString(img, text, offsetX, offsetY, fg)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
