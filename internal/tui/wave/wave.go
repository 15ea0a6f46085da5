// Package wave renders the decorative "water bowl" loader as half-block
// art (▀▄█): two drifting wave layers inside a round bowl.
package wave

import (
	"image"
	"math"
	"strings"
	"time"

	"golang.org/x/image/vector"
)

// Layer periods, matching the drift/bob cycle of the web loader.
const (
	backPeriod  = 6800 * time.Millisecond
	frontPeriod = 5600 * time.Millisecond
)

// threshold for a pixel to count as "on"
const threshold = 40

type layer struct {
	period time.Duration
	crest  float32 // crest height as a fraction of the bowl
	level  float32 // resting waterline as a fraction of the bowl, from the top
}

var layers = []layer{
	{period: backPeriod, crest: 0.10, level: 0.52},
	{period: frontPeriod, crest: 0.16, level: 0.58},
}

// Frame renders the loader at a point in its animation. cols and rows are
// the output size in terminal cells; each cell holds two vertical pixels.
func Frame(elapsed time.Duration, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	w, h := cols, rows*2
	water := image.NewAlpha(image.Rect(0, 0, w, h))
	for _, l := range layers {
		drawLayer(water, l, elapsed)
	}

	mask := bowl(water)
	return imageToHalfBlocks(mask, cols, rows)
}

// drawLayer rasterizes one wave layer into dst. The wave period equals the
// bowl width, so drift only needs the offset modulo one period. The wave is
// drawn on a canvas three periods wide and the middle third is kept, which
// keeps every path coordinate non-negative.
func drawLayer(dst *image.Alpha, l layer, elapsed time.Duration) {
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())

	cycle := phase(elapsed, l.period)
	offset := cycle * w
	bob := float32(math.Sin(2*math.Pi*float64(cycle))) * 0.06 * h
	level := l.level*h - bob
	amp := l.crest * h

	canvasW := int(3 * w)
	r := vector.NewRasterizer(canvasW, int(h))

	x0 := w - offset
	r.MoveTo(x0, level)
	for i := 0; i < 2; i++ {
		base := x0 + float32(i)*w
		r.QuadTo(base+w/4, clampY(level-amp, h), base+w/2, level)
		r.QuadTo(base+3*w/4, clampY(level+amp, h), base+w, level)
	}
	r.LineTo(x0+2*w, h)
	r.LineTo(x0, h)
	r.ClosePath()

	canvas := image.NewAlpha(image.Rect(0, 0, canvasW, int(h)))
	r.Draw(canvas, canvas.Bounds(), image.Opaque, image.Point{})

	left := int(w)
	for y := 0; y < dst.Bounds().Dy(); y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			a := canvas.AlphaAt(left+x, y).A
			if a > dst.AlphaAt(x, y).A {
				dst.Pix[dst.PixOffset(x, y)] = a
			}
		}
	}
}

// bowl clips the water to a circle and draws the rim.
func bowl(water *image.Alpha) *image.Alpha {
	b := water.Bounds()
	out := image.NewAlpha(b)

	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	radius := math.Min(cx, cy)
	rim := math.Max(1, radius/6)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			switch {
			case d > radius:
				continue
			case d > radius-rim:
				out.Pix[out.PixOffset(x, y)] = 0xff
			default:
				out.Pix[out.PixOffset(x, y)] = water.AlphaAt(x, y).A
			}
		}
	}
	return out
}

// imageToHalfBlocks converts an alpha mask to half-block art.
func imageToHalfBlocks(img *image.Alpha, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := pixelOn(img, col, row*2)
			bottomOn := pixelOn(img, col, row*2+1)

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func pixelOn(img *image.Alpha, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return false
	}
	return img.AlphaAt(x, y).A > threshold
}

// phase returns how far into its cycle an animation is, in [0, 1).
func phase(elapsed, period time.Duration) float32 {
	if period <= 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return float32(elapsed%period) / float32(period)
}

func clampY(y, h float32) float32 {
	if y < 0 {
		return 0
	}
	if y > h {
		return h
	}
	return y
}
