package main

import (
	"fmt"
	"image/color"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Exports render from a Series plus an optional dose so the headless
// subcommands and the TUI share one path. Image exports lay the curve
// out on a fixed canvas rather than reusing the terminal layout.

const (
	exportWidth   = 960.0
	exportHeight  = 480.0
	exportMarginL = 64.0
	exportMarginR = 24.0
	exportMarginT = 32.0
	exportMarginB = 48.0
)

// exportPlot is the shared pixel geometry for PNG and SVG output.
type exportPlot struct {
	series Series
	stats  CurveStats
	maxF   float64
}

func newExportPlot(s Series) exportPlot {
	p := exportPlot{series: s, stats: computeStats(s)}
	p.maxF = p.stats.PeakFraction
	if p.maxF < 0.01 {
		p.maxF = 0.01
	}
	return p
}

func (p exportPlot) x(i int) float64 {
	n := len(p.series)
	if n <= 1 {
		return exportMarginL
	}
	innerW := exportWidth - exportMarginL - exportMarginR
	return exportMarginL + float64(i)/float64(n-1)*innerW
}

func (p exportPlot) y(fraction float64) float64 {
	innerH := exportHeight - exportMarginT - exportMarginB
	y := exportMarginT + (1-fraction/p.maxF)*innerH
	if y < exportMarginT {
		y = exportMarginT
	}
	return y
}

// valueLabel renders a fraction either as-is or scaled by the dose.
func valueLabel(fraction, dose float64, hasDose bool) string {
	if hasDose {
		return fmt.Sprintf("%.2fu", fraction*dose)
	}
	return fmt.Sprintf("%.3f", fraction)
}

// exportPNG draws the curve with the same gg/truetype pipeline the
// terminal renderer's image path uses.
func exportPNG(path string, s Series, dose float64, hasDose bool) error {
	if len(s) == 0 {
		return fmt.Errorf("nothing to export")
	}
	p := newExportPlot(s)

	dc := gg.NewContext(int(exportWidth), int(exportHeight))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Axes
	dc.SetColor(color.Gray{Y: 120})
	dc.SetLineWidth(1)
	dc.DrawLine(exportMarginL, exportMarginT, exportMarginL, exportHeight-exportMarginB)
	dc.DrawLine(exportMarginL, exportHeight-exportMarginB, exportWidth-exportMarginR, exportHeight-exportMarginB)
	dc.Stroke()

	// Minute ticks every hour
	dc.SetColor(color.Gray{Y: 90})
	for i, e := range s {
		if e.Minute%60 != 0 {
			continue
		}
		x := p.x(i)
		dc.DrawLine(x, exportHeight-exportMarginB, x, exportHeight-exportMarginB+4)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%dm", e.Minute), x, exportHeight-exportMarginB+16, 0.5, 0.5)
	}

	// Curve
	dc.SetColor(color.RGBA{R: 30, G: 90, B: 200, A: 255})
	dc.SetLineWidth(2)
	for i := 1; i < len(s); i++ {
		dc.DrawLine(p.x(i-1), p.y(s[i-1].Fraction), p.x(i), p.y(s[i].Fraction))
	}
	dc.Stroke()

	// Markers, with the peak labeled
	peakIdx := -1
	for i, e := range s {
		dc.DrawCircle(p.x(i), p.y(e.Fraction), 3)
		dc.Fill()
		if e.Minute == p.stats.PeakMinute {
			peakIdx = i
		}
	}
	if peakIdx >= 0 {
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(
			valueLabel(s[peakIdx].Fraction, dose, hasDose),
			p.x(peakIdx), p.y(s[peakIdx].Fraction)-12, 0.5, 0.5)
	}

	// Summary line
	dc.SetColor(color.Black)
	summary := fmt.Sprintf("total %.4f  peak %s at %dm", p.stats.Total,
		valueLabel(p.stats.PeakFraction, dose, hasDose), p.stats.PeakMinute)
	dc.DrawStringAnchored(summary, exportMarginL, exportMarginT/2, 0, 0.5)

	return dc.SavePNG(path)
}

// exportSVG writes the same plot as a standalone SVG document.
func exportSVG(path string, s Series, dose float64, hasDose bool) error {
	if len(s) == 0 {
		return fmt.Errorf("nothing to export")
	}
	p := newExportPlot(s)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(int(exportWidth), int(exportHeight))
	canvas.Rect(0, 0, int(exportWidth), int(exportHeight), "fill:white")

	axis := "stroke:#787878;stroke-width:1"
	canvas.Line(int(exportMarginL), int(exportMarginT), int(exportMarginL), int(exportHeight-exportMarginB), axis)
	canvas.Line(int(exportMarginL), int(exportHeight-exportMarginB), int(exportWidth-exportMarginR), int(exportHeight-exportMarginB), axis)

	xs := make([]int, len(s))
	ys := make([]int, len(s))
	for i, e := range s {
		xs[i] = int(p.x(i))
		ys[i] = int(p.y(e.Fraction))
	}
	canvas.Polyline(xs, ys, "fill:none;stroke:#1e5ac8;stroke-width:2")

	for i, e := range s {
		canvas.Circle(xs[i], ys[i], 3, "fill:#1e5ac8")
		if e.Minute%60 == 0 {
			canvas.Text(xs[i], int(exportHeight-exportMarginB)+16,
				fmt.Sprintf("%dm", e.Minute), "font-family:monospace;font-size:11px;text-anchor:middle")
		}
	}

	summary := fmt.Sprintf("total %.4f  peak %s at %dm", p.stats.Total,
		valueLabel(p.stats.PeakFraction, dose, hasDose), p.stats.PeakMinute)
	canvas.Text(int(exportMarginL), int(exportMarginT/2),
		summary, "font-family:monospace;font-size:12px")

	canvas.End()
	return nil
}

// exportXLSX writes the minute→fraction table as a worksheet, with a
// units column when a dose is attached.
func exportXLSX(path string, s Series, dose float64, hasDose bool) error {
	if len(s) == 0 {
		return fmt.Errorf("nothing to export")
	}
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Activity"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Minute")
	f.SetCellValue(sheet, "B1", "Fraction")
	if hasDose {
		f.SetCellValue(sheet, "C1", "Units")
	}

	for i, e := range s {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Minute)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Fraction)
		if hasDose {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Fraction*dose)
		}
	}

	stats := computeStats(s)
	footer := len(s) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", footer), stats.Total)

	return f.SaveAs(path)
}
