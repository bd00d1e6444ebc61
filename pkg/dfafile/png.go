// Native PNG rendering of automaton diagrams on a circular layout.

package dfafile

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/dfakit/pkg/dfa"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width       int
	Height      int
	Padding     int
	StateRadius int
	FontSize    int
	Title       string
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:       800,
		Height:      600,
		Padding:     60,
		StateRadius: 30,
		FontSize:    14,
	}
}

var (
	pngWhite      = color.RGBA{255, 255, 255, 255}
	pngBlack      = color.RGBA{51, 51, 51, 255}    // #333
	pngGray       = color.RGBA{102, 102, 102, 255} // #666
	pngInitial    = color.RGBA{232, 245, 233, 255} // #e8f5e9
	pngInitialBdr = color.RGBA{46, 125, 50, 255}   // #2e7d32
	pngAccepting  = color.RGBA{255, 243, 224, 255} // #fff3e0
	pngAcceptBdr  = color.RGBA{230, 81, 0, 255}    // #e65100
)

// renderContext holds rendering parameters including supersample scale.
type renderContext struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	face      font.Face
}

func newRenderContext(img *image.RGBA, scale int, fontSize int) *renderContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font, cannot fail
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err)
	}
	return &renderContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 2,
		face:      face,
	}
}

// RenderPNG renders an automaton diagram to PNG. States are laid out
// on a circle in sorted order; parallel transitions share one edge
// with a combined label. Rendered at 4x and downsampled for smoother
// output.
func RenderPNG(w io.Writer, a *dfa.Automaton, opts PNGOptions) error {
	scale := 4
	large := opts
	large.Width = opts.Width * scale
	large.Height = opts.Height * scale
	large.Padding = opts.Padding * scale
	large.StateRadius = opts.StateRadius * scale

	largeImg := renderInternal(a, large, scale)

	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

func renderInternal(a *dfa.Automaton, opts PNGOptions, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	ctx := newRenderContext(img, scale, opts.FontSize)

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.Set(x, y, pngWhite)
		}
	}

	states := a.States().States()
	positions := circularLayout(states, opts)

	if opts.Title != "" {
		drawTextCentered(ctx, opts.Width/2, opts.Padding/2, opts.Title, pngBlack)
	}

	radius := float64(opts.StateRadius)

	// Edges first so nodes overdraw their endpoints.
	delta := a.Transitions()
	type edge struct {
		from, to dfa.State
		labels   []string
	}
	grouped := make(map[[2]dfa.State]*edge)
	var order [][2]dfa.State
	for _, k := range delta.Keys() {
		to, _ := delta.Apply(k.From, k.Input)
		key := [2]dfa.State{k.From, to}
		if _, ok := grouped[key]; !ok {
			grouped[key] = &edge{from: k.From, to: to}
			order = append(order, key)
		}
		grouped[key].labels = append(grouped[key].labels, string(k.Input))
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i][0] != order[j][0] {
			return order[i][0] < order[j][0]
		}
		return order[i][1] < order[j][1]
	})

	for _, key := range order {
		e := grouped[key]
		label := strings.Join(e.labels, ", ")
		from := positions[e.from]
		to := positions[e.to]

		if e.from == e.to {
			drawSelfLoop(ctx, from[0], from[1]-radius, radius*0.6, label)
			continue
		}

		// Trim the line to the circle borders.
		dx, dy := to[0]-from[0], to[1]-from[1]
		dist := math.Hypot(dx, dy)
		if dist < 1 {
			continue
		}
		nx, ny := dx/dist, dy/dist
		x1, y1 := from[0]+nx*radius, from[1]+ny*radius
		x2, y2 := to[0]-nx*radius, to[1]-ny*radius

		drawArrowLine(ctx, x1, y1, x2, y2, pngGray)
		// Label slightly off the midpoint, perpendicular to the edge.
		mx, my := (x1+x2)/2, (y1+y2)/2
		off := 12 * ctx.scale
		drawTextCentered(ctx, int(mx-ny*off), int(my+nx*off), label, pngBlack)
	}

	// Initial-state entry arrow from the left.
	initial := positions[a.InitialState()]
	drawArrowLine(ctx, initial[0]-radius*2.2, initial[1], initial[0]-radius, initial[1], pngGray)

	for _, q := range states {
		pos := positions[q]
		fill, border := pngWhite, pngBlack
		if q == a.InitialState() {
			fill, border = pngInitial, pngInitialBdr
		}
		if a.IsFinal(q) {
			fill, border = pngAccepting, pngAcceptBdr
		}
		drawEllipse(ctx, pos[0], pos[1], radius, radius, fill, border)
		if a.IsFinal(q) {
			inner := radius - 5*ctx.scale
			drawEllipse(ctx, pos[0], pos[1], inner, inner, color.Transparent, border)
		}
		drawTextCentered(ctx, int(pos[0]), int(pos[1]), string(q), pngBlack)
	}

	return img
}

// circularLayout places states evenly on a circle, starting at the
// left so the initial-state entry arrow has room.
func circularLayout(states []dfa.State, opts PNGOptions) map[dfa.State][2]float64 {
	cx := float64(opts.Width) / 2
	cy := float64(opts.Height) / 2
	r := math.Min(float64(opts.Width), float64(opts.Height))/2 - float64(opts.Padding) - float64(opts.StateRadius)

	positions := make(map[dfa.State][2]float64, len(states))
	if len(states) == 1 {
		positions[states[0]] = [2]float64{cx, cy}
		return positions
	}
	for i, q := range states {
		angle := math.Pi + 2*math.Pi*float64(i)/float64(len(states))
		positions[q] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return positions
}

func drawEllipse(ctx *renderContext, cx, cy, rx, ry float64, fill, stroke color.Color) {
	img := ctx.img
	thickness := ctx.lineWidth

	if fill != color.Transparent {
		for dy := -ry; dy <= ry; dy++ {
			yNorm := dy / ry
			if yNorm*yNorm <= 1 {
				xExtent := rx * math.Sqrt(1-yNorm*yNorm)
				for dx := -xExtent; dx <= xExtent; dx++ {
					img.Set(int(cx+dx), int(cy+dy), fill)
				}
			}
		}
	}

	for angle := 0.0; angle < 2*math.Pi; angle += 0.005 {
		x := cx + rx*math.Cos(angle)
		y := cy + ry*math.Sin(angle)
		for t := -thickness / 2; t <= thickness/2; t += 0.5 {
			nx := math.Cos(angle)
			ny := math.Sin(angle)
			img.Set(int(x+nx*t), int(y+ny*t), stroke)
		}
	}
}

func drawLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	img := ctx.img
	halfThick := ctx.lineWidth / 2

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}
	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(px+perpX*offset), int(py+perpY*offset), c)
		}
	}
}

func drawArrowLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	drawLine(ctx, x1, y1, x2, y2, c)

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}
	nx, ny := dx/dist, dy/dist
	size := 6 * ctx.scale
	// Two short strokes angled back from the tip.
	leftX := x2 - size*(nx*0.866-ny*0.5)
	leftY := y2 - size*(ny*0.866+nx*0.5)
	rightX := x2 - size*(nx*0.866+ny*0.5)
	rightY := y2 - size*(ny*0.866-nx*0.5)
	drawLine(ctx, x2, y2, leftX, leftY, c)
	drawLine(ctx, x2, y2, rightX, rightY, c)
}

// drawSelfLoop draws a small circle sitting on top of a state with an
// arrowhead where it re-enters, plus the label above.
func drawSelfLoop(ctx *renderContext, x, topY, r float64, label string) {
	cy := topY - r*0.8
	drawEllipse(ctx, x, cy, r, r, color.Transparent, pngGray)
	drawArrowLine(ctx, x+r, cy+r*0.3, x+r*0.6, cy+r*0.9, pngGray)
	drawTextCentered(ctx, int(x), int(cy-r-8*ctx.scale), label, pngBlack)
}

func drawTextCentered(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()
	metrics := ctx.face.Metrics()
	baselineY := y + int(float64(metrics.Ascent.Ceil())*0.35)

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x - width/2),
			Y: fixed.I(baselineY),
		},
	}
	d.DrawString(text)
}
