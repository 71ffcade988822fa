// Package ogimage rasterizes the brand logo onto a social preview card.
//
// The card is drawn from the same path data the SVG logo uses, so the
// preview and the inline logo never drift apart.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/sarmadgardezi/portfolio/logo"
	"github.com/sarmadgardezi/portfolio/theme"
)

// Card dimensions recommended for Open Graph and Twitter large images.
const (
	DefaultWidth  = 1200
	DefaultHeight = 630
)

// circleKappa approximates a quarter circle with one cubic Bézier.
const circleKappa = 0.5522847498

type options struct {
	width, height int
	logoWidth     int
	colors        *logo.Colors
}

// Option adjusts the rendered card.
type Option func(*options)

// WithSize sets the card size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithLogoWidth sets the width the logo is scaled to.
func WithLogoWidth(px int) Option {
	return func(o *options) {
		o.logoWidth = px
	}
}

// WithColors overrides the logo fills, like logo.Props.Colors.
func WithColors(c *logo.Colors) Option {
	return func(o *options) {
		o.colors = c
	}
}

var wordmark = sync.OnceValues(func() ([]logo.Segment, error) {
	return logo.ParsePath(logo.WordmarkPath)
})

// Render draws the logo centered on a card filled with the theme background.
func Render(th theme.Colors, opts ...Option) (*image.RGBA, error) {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("ogimage: invalid size %dx%d", o.width, o.height)
	}
	if o.logoWidth <= 0 {
		o.logoWidth = o.width * 2 / 3
	}

	bg := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if th.Background != "" {
		c, err := ParseHex(th.Background)
		if err != nil {
			return nil, fmt.Errorf("ogimage: background: %w", err)
		}
		bg = c
	}
	textHex, circleHex := logo.Fills(th, o.colors)
	textFill, err := ParseHex(textHex)
	if err != nil {
		return nil, fmt.Errorf("ogimage: wordmark fill: %w", err)
	}
	circleFill, err := ParseHex(circleHex)
	if err != nil {
		return nil, fmt.Errorf("ogimage: accent fill: %w", err)
	}
	segs, err := wordmark()
	if err != nil {
		return nil, fmt.Errorf("ogimage: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	tf := place(o.width, o.height, o.logoWidth)
	r := vector.NewRasterizer(o.width, o.height)
	addPath(r, segs, tf)
	r.Draw(img, img.Bounds(), image.NewUniform(textFill), image.Point{})

	r.Reset(o.width, o.height)
	addCircle(r, logo.AccentCircle, tf)
	r.Draw(img, img.Bounds(), image.NewUniform(circleFill), image.Point{})

	return img, nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ogimage: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// transform maps logo user units to card pixels.
type transform struct {
	scale, dx, dy float32
}

func (t transform) apply(p logo.Point) (float32, float32) {
	return t.dx + t.scale*float32(p.X), t.dy + t.scale*float32(p.Y)
}

// place centers a logo of logoWidth pixels on a width x height card.
func place(width, height, logoWidth int) transform {
	scale := float32(logoWidth) / float32(logo.Width)
	return transform{
		scale: scale,
		dx:    (float32(width) - scale*logo.Width) / 2,
		dy:    (float32(height) - scale*logo.Height) / 2,
	}
}

func addPath(r *vector.Rasterizer, segs []logo.Segment, tf transform) {
	open := false
	for _, s := range segs {
		switch s.Op {
		case logo.OpMove:
			if open {
				r.ClosePath()
			}
			r.MoveTo(tf.apply(s.Pts[0]))
			open = true
		case logo.OpLine:
			r.LineTo(tf.apply(s.Pts[0]))
		case logo.OpQuad:
			bx, by := tf.apply(s.Pts[0])
			cx, cy := tf.apply(s.Pts[1])
			r.QuadTo(bx, by, cx, cy)
		case logo.OpCubic:
			bx, by := tf.apply(s.Pts[0])
			cx, cy := tf.apply(s.Pts[1])
			dx, dy := tf.apply(s.Pts[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		case logo.OpClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

func addCircle(r *vector.Rasterizer, c logo.Circle, tf transform) {
	cx, cy, rad := c.CX, c.CY, c.R
	k := rad * circleKappa
	pt := func(x, y float64) logo.Point { return logo.Point{X: x, Y: y} }
	segs := []logo.Segment{
		{Op: logo.OpMove, Pts: []logo.Point{pt(cx+rad, cy)}},
		{Op: logo.OpCubic, Pts: []logo.Point{pt(cx+rad, cy+k), pt(cx+k, cy+rad), pt(cx, cy+rad)}},
		{Op: logo.OpCubic, Pts: []logo.Point{pt(cx-k, cy+rad), pt(cx-rad, cy+k), pt(cx-rad, cy)}},
		{Op: logo.OpCubic, Pts: []logo.Point{pt(cx-rad, cy-k), pt(cx-k, cy-rad), pt(cx, cy-rad)}},
		{Op: logo.OpCubic, Pts: []logo.Point{pt(cx+k, cy-rad), pt(cx+rad, cy-k), pt(cx+rad, cy)}},
		{Op: logo.OpClose},
	}
	addPath(r, segs, tf)
}
