/*
 * plot.go, part of stereodesc.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

//Package descplot draws descriptor plots with the gonum/plot library.
package descplot

import (
	"image/color"
	"math"

	desc "github.com/rmera/stereodesc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the side of the (square) plots.
var Size = 5 * vg.Inch

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Average molecular weight"
	p.Y.Label.Text = "Crippen cLogP"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// Scatter plots the Crippen logP against the molecular weight of each entry, with one
// series (color and glyph) per stereochemistry class, and saves it to filename. The
// format is taken from the extension (png, svg, pdf, eps, jpg, tif).
// Entries with non-finite values are not plotted.
func Scatter(entries []*desc.Entry, title, filename string) error {
	series := make(map[desc.Stereo]plotter.XYs, len(desc.AllStereo))
	points := 0
	for _, e := range entries {
		x, y := e.AMW(), e.ClogP()
		if !finite(x) || !finite(y) {
			continue
		}
		series[e.Stereo] = append(series[e.Stereo], plotter.XY{X: x, Y: y})
		points++
	}
	if points == 0 {
		return desc.NewError("nothing to plot", filename, "Scatter", true, nil)
	}
	p := basicPlot(title)
	for key, st := range desc.AllStereo {
		xys, ok := series[st]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return desc.NewError("can't build scatter", filename, "Scatter", true, err)
		}
		r, g, b := colors(key, len(desc.AllStereo))
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Shape = shape(key)
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add(st.String(), s)
	}
	if err := p.Save(Size, Size, filename); err != nil {
		return desc.NewError("can't save plot", filename, "Scatter", true, err)
	}
	return nil
}

func shape(key int) draw.GlyphDrawer {
	switch key {
	case 0:
		return draw.RingGlyph{}
	case 1:
		return draw.CircleGlyph{}
	case 2:
		return draw.SquareGlyph{}
	case 3:
		return draw.PyramidGlyph{}
	default:
		return draw.CrossGlyph{}
	}
}

// colors spreads steps hues over the color wheel, skipping the yellows,
// which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := (float64(key) * norm) + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := 1 - s
	q := 1 - s*f
	t := 1 - s*(1-f)
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default: //case 5
		r, g, b = 1, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
