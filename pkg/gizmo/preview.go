package gizmo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/Faultbox/roadmesh/pkg/math"
	"golang.org/x/image/vector"
)

// View is the orthographic direction a preview is drawn from.
type View int

const (
	ViewTop   View = iota // looking down -Y: X right, Z up the image
	ViewFront             // looking along +Z: X right, Y up the image
	ViewSide              // looking along -X: Z right, Y up the image
)

var viewNames = map[View]string{ViewTop: "top", ViewFront: "front", ViewSide: "side"}

// String returns the config name of the view.
func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView parses a config name.
func ParseView(s string) (View, error) {
	for v, name := range viewNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown preview view %q", s)
}

// project returns plane coordinates with +Y pointing up.
func (v View) project(p math.Vec3) (float32, float32) {
	switch v {
	case ViewFront:
		return p.X, p.Y
	case ViewSide:
		return p.Z, p.Y
	default:
		return p.X, p.Z
	}
}

// PreviewOptions controls preview rasterisation.
type PreviewOptions struct {
	Width, Height int
	View          View
	LineWidth     float32 // in pixels
	Margin        float32 // in pixels, kept clear on every side
	Background    Color
}

// DefaultPreviewOptions returns a 512x512 top view.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:      512,
		Height:     512,
		View:       ViewTop,
		LineWidth:  1.5,
		Margin:     16,
		Background: Color{0.1, 0.1, 0.12, 1},
	}
}

// Render draws lines into a new image, scaled to fit with the aspect ratio
// preserved. Lines of the same color are filled in one pass.
func Render(lines []Line, opts PreviewOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", opts.Width, opts.Height)
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	margin := max(opts.Margin, opts.LineWidth)

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background.nrgba()), image.Point{}, draw.Src)
	if len(lines) == 0 {
		return dst, nil
	}

	fit := newFit(lines, opts, margin)

	var order []Color
	groups := make(map[Color][]Line)
	for _, l := range lines {
		if _, ok := groups[l.Color]; !ok {
			order = append(order, l.Color)
		}
		groups[l.Color] = append(groups[l.Color], l)
	}

	half := opts.LineWidth / 2
	for _, c := range order {
		z := vector.NewRasterizer(opts.Width, opts.Height)
		for _, l := range groups[c] {
			ax, ay := fit.screen(l.From)
			bx, by := fit.screen(l.To)
			strokeSegment(z, ax, ay, bx, by, half)
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(c.nrgba()), image.Point{})
	}
	return dst, nil
}

// RenderPNG renders lines and writes them to path as PNG.
func RenderPNG(path string, lines []Line, opts PreviewOptions) error {
	img, err := Render(lines, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// strokeSegment adds a quad of half-width half around the segment. Every
// quad has the same orientation, so overlaps accumulate instead of cancel.
func strokeSegment(z *vector.Rasterizer, ax, ay, bx, by, half float32) {
	d := math.Vec2{X: bx - ax, Y: by - ay}
	l := d.Length()
	if l < 1e-3 {
		// Zero-length segment: draw a dot.
		d, l = math.Vec2{X: 1}, 1
		ax -= half
		bx += half
	}
	nx, ny := -d.Y/l*half, d.X/l*half

	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

// fit maps projected world coordinates into the image.
type fit struct {
	view          View
	scale         float32
	cx, cy        float32
	width, height float32
}

func newFit(lines []Line, opts PreviewOptions, margin float32) fit {
	minX, minY := opts.View.project(lines[0].From)
	maxX, maxY := minX, minY
	for _, l := range lines {
		for _, p := range [2]math.Vec3{l.From, l.To} {
			x, y := opts.View.project(p)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	availW := max(float32(opts.Width)-2*margin, 1)
	availH := max(float32(opts.Height)-2*margin, 1)
	spanX, spanY := maxX-minX, maxY-minY

	var scale float32 = 1
	switch {
	case spanX > 0 && spanY > 0:
		scale = min(availW/spanX, availH/spanY)
	case spanX > 0:
		scale = availW / spanX
	case spanY > 0:
		scale = availH / spanY
	}

	return fit{
		view:   opts.View,
		scale:  scale,
		cx:     (minX + maxX) / 2,
		cy:     (minY + maxY) / 2,
		width:  float32(opts.Width),
		height: float32(opts.Height),
	}
}

func (f fit) screen(p math.Vec3) (float32, float32) {
	x, y := f.view.project(p)
	return f.width/2 + (x-f.cx)*f.scale, f.height/2 - (y-f.cy)*f.scale
}

func (c Color) nrgba() color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}
