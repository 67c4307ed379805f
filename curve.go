package main

// Point is one vertex of the activity curve. Fraction is the
// authoritative value; X and Y are derived from it through the current
// Layout and kept consistent after every mutation.
type Point struct {
	Index        int // minute, always a multiple of stepMinutes
	X            float64
	Y            float64
	Fraction     float64
	MarkerRadius float64
}

// Curve owns the ordered point list and the layout it was generated
// against. Points are regenerated wholesale on resize, count change and
// import, and mutated in place during a drag.
type Curve struct {
	points []Point
	layout Layout
	seg    SegmentConfig
}

func NewCurve(layout Layout, count int) *Curve {
	c := &Curve{
		layout: layout,
		seg:    segmentConfig(layout, count),
	}
	c.points = make([]Point, 0, c.seg.Count)
	for i := 0; i < c.seg.Count; i++ {
		c.points = append(c.points, c.generatePoint(i, 0, false))
	}
	return c
}

// generatePoint builds the i-th point. The stored fraction is read back
// from the clamped y rather than taken from the input, so it always
// matches the rendered position exactly.
func (c *Curve) generatePoint(i int, fraction float64, set bool) Point {
	y := c.layout.BaselineY()
	if set {
		y = c.layout.YForFraction(fraction)
	}
	return Point{
		Index:        i * stepMinutes,
		X:            c.layout.XForOrdinal(i, c.seg.PointWidth),
		Y:            y,
		Fraction:     c.layout.FractionFromY(y, true),
		MarkerRadius: c.seg.MarkerRadius,
	}
}

// Regenerate rebuilds every point for a new layout and count, carrying
// forward the fraction each ordinal position already had. Growing the
// count extends the tail flat with the last fraction; shrinking
// truncates. Callers must not regenerate while a drag is in progress.
func (c *Curve) Regenerate(layout Layout, count int) {
	old := c.points
	c.layout = layout
	c.seg = segmentConfig(layout, count)

	points := make([]Point, 0, c.seg.Count)
	for i := 0; i < c.seg.Count; i++ {
		switch {
		case i < len(old):
			points = append(points, c.generatePoint(i, old[i].Fraction, true))
		case len(old) > 0:
			points = append(points, c.generatePoint(i, old[len(old)-1].Fraction, true))
		default:
			points = append(points, c.generatePoint(i, 0, false))
		}
	}
	c.points = points
}

// Replace swaps in a whole new set of fractions, one per point, resizing
// the curve to match. Used by import and preset loads. The supplied
// fractions are kept verbatim; only the rendered positions go through
// the clamp, so an import before the surface is measured still carries
// its values into the first regeneration.
func (c *Curve) Replace(fractions []float64) {
	count := len(fractions)
	c.seg = segmentConfig(c.layout, count)
	points := make([]Point, 0, c.seg.Count)
	for i := 0; i < c.seg.Count; i++ {
		if i < len(fractions) {
			p := c.generatePoint(i, fractions[i], true)
			p.Fraction = fractions[i]
			points = append(points, p)
		} else {
			points = append(points, c.generatePoint(i, 0, false))
		}
	}
	c.points = points
}

// Reset zeroes the curve back to baseline at the current count.
func (c *Curve) Reset() {
	for i := range c.points {
		c.points[i] = c.generatePoint(i, 0, false)
	}
}

func (c *Curve) Points() []Point {
	return c.points
}

func (c *Curve) Count() int {
	return len(c.points)
}

func (c *Curve) Layout() Layout {
	return c.layout
}

func (c *Curve) Segments() SegmentConfig {
	return c.seg
}

// Fractions returns a copy of every point's fraction in order.
func (c *Curve) Fractions() []float64 {
	fs := make([]float64, len(c.points))
	for i, p := range c.points {
		fs[i] = p.Fraction
	}
	return fs
}

// setPointY moves one point vertically and rederives its fraction.
func (c *Curve) setPointY(i int, y float64) {
	if i < 0 || i >= len(c.points) {
		return
	}
	c.points[i].Y = y
	c.points[i].Fraction = c.layout.FractionFromY(y, true)
}

// setPointX moves one point horizontally. The minute index is fixed by
// ordinal position and does not follow.
func (c *Curve) setPointX(i int, x float64) {
	if i < 0 || i >= len(c.points) {
		return
	}
	c.points[i].X = x
}

// setFraction writes a fraction and rederives the rendered position.
func (c *Curve) setFraction(i int, fraction float64) {
	if i < 0 || i >= len(c.points) {
		return
	}
	y := c.layout.YForFraction(fraction)
	c.points[i].Fraction = fraction
	c.points[i].Y = y
}
