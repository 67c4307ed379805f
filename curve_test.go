package main

import (
	"math"
	"testing"
)

func testLayout() Layout {
	return computeLayout(120, 42, false)
}

func TestNewCurveBaseline(t *testing.T) {
	c := NewCurve(testLayout(), 12)
	points := c.Points()
	if len(points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(points))
	}
	base := c.Layout().BaselineY()
	for i, p := range points {
		if p.Index != i*stepMinutes {
			t.Errorf("point %d has index %d, want %d", i, p.Index, i*stepMinutes)
		}
		if p.Fraction != 0 {
			t.Errorf("point %d not at zero activity: %v", i, p.Fraction)
		}
		if p.Y != base {
			t.Errorf("point %d not on baseline: y=%v want %v", i, p.Y, base)
		}
		if p.MarkerRadius <= 0 {
			t.Errorf("point %d has non-positive marker radius", i)
		}
	}
}

func TestGeneratePointRoundTripsThroughClamp(t *testing.T) {
	c := NewCurve(testLayout(), 10)
	p := c.generatePoint(3, 1.8, true)
	// The rendered y is clamped at the top edge; the stored fraction
	// must match that rendered position, not the raw input.
	wantY := c.Layout().PaddingY / 2
	if p.Y != wantY {
		t.Errorf("y = %v, want clamped %v", p.Y, wantY)
	}
	wantF := c.Layout().FractionFromY(wantY, true)
	if p.Fraction != wantF {
		t.Errorf("fraction = %v, want %v (derived from clamped y)", p.Fraction, wantF)
	}
}

func TestRegenerationStableWhileIdle(t *testing.T) {
	c := NewCurve(testLayout(), 20)
	for i := 0; i < 20; i++ {
		c.setFraction(i, float64(i)/40)
	}
	before := c.Fractions()

	c.Regenerate(testLayout(), 20)
	first := c.Fractions()
	c.Regenerate(testLayout(), 20)
	second := c.Fractions()

	for i := range before {
		if math.Abs(first[i]-before[i]) > 1e-9 {
			t.Errorf("regeneration changed fraction %d: %v -> %v", i, before[i], first[i])
		}
		if first[i] != second[i] {
			t.Errorf("second regeneration not identical at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRegenerateGrowExtendsTailFlat(t *testing.T) {
	c := NewCurve(testLayout(), 4)
	c.setFraction(3, 0.25)
	c.Regenerate(testLayout(), 6)

	points := c.Points()
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	for i := 3; i < 6; i++ {
		if math.Abs(points[i].Fraction-0.25) > 1e-9 {
			t.Errorf("grown point %d = %v, want last fraction 0.25", i, points[i].Fraction)
		}
	}
}

func TestRegenerateShrinkTruncates(t *testing.T) {
	c := NewCurve(testLayout(), 6)
	for i := 0; i < 6; i++ {
		c.setFraction(i, float64(i)*0.1)
	}
	c.Regenerate(testLayout(), 3)

	points := c.Points()
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i := 0; i < 3; i++ {
		if math.Abs(points[i].Fraction-float64(i)*0.1) > 1e-9 {
			t.Errorf("kept point %d = %v, want %v", i, points[i].Fraction, float64(i)*0.1)
		}
	}
}

func TestRegeneratePositionsFollowLayout(t *testing.T) {
	c := NewCurve(testLayout(), 8)
	c.setFraction(2, 0.5)

	wider := computeLayout(240, 42, false)
	c.Regenerate(wider, 8)

	p := c.Points()[2]
	if math.Abs(p.Fraction-0.5) > 1e-9 {
		t.Errorf("fraction should survive a resize: %v", p.Fraction)
	}
	wantX := wider.XForOrdinal(2, c.Segments().PointWidth)
	if p.X != wantX {
		t.Errorf("x = %v, want %v under the new layout", p.X, wantX)
	}
}

func TestReset(t *testing.T) {
	c := NewCurve(testLayout(), 5)
	c.setFraction(1, 0.9)
	c.Reset()
	for i, p := range c.Points() {
		if p.Fraction != 0 {
			t.Errorf("point %d survived reset with fraction %v", i, p.Fraction)
		}
	}
}

func TestReplaceResizesToInput(t *testing.T) {
	c := NewCurve(testLayout(), 4)
	c.Replace([]float64{0, 0.5, 0.5, 0, 0, 0})
	if c.Count() != 6 {
		t.Fatalf("replace should resize to 6 points, got %d", c.Count())
	}
	if math.Abs(c.Points()[1].Fraction-0.5) > 1e-9 {
		t.Errorf("fraction 1 = %v, want 0.5", c.Points()[1].Fraction)
	}
}
