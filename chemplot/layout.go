/*
 * layout.go, part of chemreason.
 *
 * Copyright 2026 The chemreason Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/chemgraph"
	"github.com/rmera/chemreason/geometry"
)

// Size is the side of the square drawings Layout saves.
var Size = 12 * vg.Centimeter

func basicLayoutPlot(title string, low, high chem.Point) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "x (Å)"
	p.Y.Label.Text = "y (Å)"
	//same scale on both axes, with one bond length of margin.
	side := math.Max(high.X-low.X, high.Y-low.Y) + 2*geometry.DefaultBondLength
	cx, cy := (low.X+high.X)/2, (low.Y+high.Y)/2
	p.X.Min, p.X.Max = cx-side/2, cx+side/2
	p.Y.Min, p.Y.Max = cy-side/2, cy+side/2
	p.Add(plotter.NewGrid())
	return p
}

// Layout draws the atoms and bonds of a resolved molecule on the xy plane,
// and saves the drawing in filename. The format is given by the extension of
// filename (png, svg, pdf, eps, jpg or tif). Bonds are lines as thick as their
// order, aromatic bonds are dashed, and atoms are dots colored by element.
// Charged atoms get a ring around them and radicals a cross.
func Layout(res *geometry.Result, title, filename string) error {
	if res == nil || res.Graph == nil || res.Graph.Len() == 0 {
		return chem.NewError("nothing to draw", "chemplot.Layout", true)
	}
	G := res.Graph
	low, high := bounds(res)
	p := basicLayoutPlot(title, low, high)
	for _, b := range G.Bonds() {
		p1, p2 := res.Positions[b.A1], res.Positions[b.A2]
		l, err := plotter.NewLine(plotter.XYs{{X: p1.X, Y: p1.Y}, {X: p2.X, Y: p2.Y}})
		if err != nil {
			return chem.NewError(err.Error(), "chemplot.Layout", true)
		}
		l.LineStyle.Width = vg.Points(float64(b.Order))
		if b.Class == chemgraph.Aromatic {
			l.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		}
		p.Add(l)
	}
	bysymbol := make(map[string]plotter.XYs)
	var charged, radicals plotter.XYs
	labels := plotter.XYLabels{}
	for _, a := range G.Atoms() {
		pos := res.Positions[a.ID]
		xy := plotter.XY{X: pos.X, Y: pos.Y}
		bysymbol[a.Symbol] = append(bysymbol[a.Symbol], xy)
		if a.Charge != 0 {
			charged = append(charged, xy)
		}
		if a.Radical {
			radicals = append(radicals, xy)
		}
		if a.Symbol != "C" || a.Charge != 0 {
			labels.XYs = append(labels.XYs, xy)
			labels.Labels = append(labels.Labels, atomLabel(a))
		}
	}
	symbols := make([]string, 0, len(bysymbol))
	for k := range bysymbol {
		symbols = append(symbols, k)
	}
	sort.Strings(symbols)
	for key, sym := range symbols {
		s, err := plotter.NewScatter(bysymbol[sym])
		if err != nil {
			return chem.NewError(err.Error(), "chemplot.Layout", true)
		}
		r, g, b := colors(key, len(symbols))
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add(sym, s)
	}
	for i, set := range []plotter.XYs{charged, radicals} {
		if len(set) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set)
		if err != nil {
			return chem.NewError(err.Error(), "chemplot.Layout", true)
		}
		s.GlyphStyle.Shape = getShape(i)
		s.GlyphStyle.Radius = vg.Points(8)
		p.Add(s)
	}
	if len(labels.Labels) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return chem.NewError(err.Error(), "chemplot.Layout", true)
		}
		p.Add(l)
	}
	if err := p.Save(Size, Size, filename); err != nil {
		return chem.NewError(fmt.Sprintf("saving %s: %s", filename, err.Error()), "chemplot.Layout", true)
	}
	return nil
}

// atomLabel is the symbol of a, with its charge if it has one.
func atomLabel(a chemgraph.Atom) string {
	switch {
	case a.Charge == 1:
		return a.Symbol + "+"
	case a.Charge == -1:
		return a.Symbol + "-"
	case a.Charge > 0:
		return fmt.Sprintf("%s%d+", a.Symbol, a.Charge)
	case a.Charge < 0:
		return fmt.Sprintf("%s%d-", a.Symbol, -a.Charge)
	}
	return a.Symbol
}

// bounds returns the corners of the box around the atoms, on the xy plane.
func bounds(res *geometry.Result) (low, high chem.Point) {
	low = chem.Point{X: math.Inf(1), Y: math.Inf(1)}
	high = chem.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range res.Positions {
		low.X, low.Y = math.Min(low.X, p.X), math.Min(low.Y, p.Y)
		high.X, high.Y = math.Max(high.X, p.X), math.Max(high.Y, p.Y)
	}
	return low, high
}

// getShape returns the glyph that marks charged atoms (0) and radicals (1).
func getShape(mark int) draw.GlyphDrawer {
	if mark == 0 {
		return draw.RingGlyph{}
	}
	return draw.CrossGlyph{}
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors returns the color for the key-th of steps elements. Hues are spread
// over 0-280 degrees, skipping the yellows around 55, which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	if steps < 1 {
		steps = 1
	}
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1, 0.85)
}
