package viz

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// Scatter saves a scatter plot of (xs[i], ys[i]) to filename. When fit is
// non-nil the line is drawn across the range of xs. The image format is
// taken from the file extension.
func Scatter(xs, ys []float64, fit *Line, title, filename string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("viz: %d x values but %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return errors.New("viz: nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Feature"
	p.Y.Label.Text = "Target"

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.Color = color.RGBA{B: 255, A: 255}
	s.Shape = draw.CircleGlyph{}
	p.Add(s)

	if fit != nil {
		lo, hi := floats.Min(xs), floats.Max(xs)
		l, err := plotter.NewLine(plotter.XYs{
			{X: lo, Y: fit.Slope*lo + fit.Intercept},
			{X: hi, Y: fit.Slope*hi + fit.Intercept},
		})
		if err != nil {
			return err
		}
		l.Color = color.RGBA{R: 255, A: 255}
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("viz: save %s: %w", filename, err)
	}
	return nil
}
