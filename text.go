/*
 * text.go, part of stereodesc.
 *
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

package desc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// TextWriter writes entries in a human-readable format.
type TextWriter struct {
	w      io.Writer
	colors map[Stereo]*color.Color //nil for plain output
}

// NewTextWriter returns a TextWriter writing to w. If colored is true, the stereochemistry
// status is colored, unless color output is globally disabled (see color.NoColor).
func NewTextWriter(w io.Writer, colored bool) *TextWriter {
	T := &TextWriter{w: w}
	if colored {
		T.colors = map[Stereo]*color.Color{
			Achiral:            color.New(color.FgHiBlack),
			FullySpecified:     color.New(color.FgGreen),
			Unspecified:        color.New(color.FgRed),
			PartiallySpecified: color.New(color.FgYellow),
		}
	}
	return T
}

// paint colors text with the color for s, if any.
func (T *TextWriter) paint(s Stereo, text string) string {
	if c, ok := T.colors[s]; ok {
		return c.Sprint(text)
	}
	return text
}

// WriteEntry writes one entry, followed by a blank line. The stereocenter counts
// are the ones the engine gave, before rounding.
func (T *TextWriter) WriteEntry(e *Entry) error {
	_, err := fmt.Fprintf(T.w, "SMILES: %s (%s)\n  stereochemistry: %s (total=%s, unspecified=%s)\n  descriptors: amw=%.3f, CrippenClogP=%.3f\n\n",
		e.SMILES, e.Description,
		T.paint(e.Stereo, e.Stereo.String()),
		rawCount(e.Descriptors.Get(NumAtomStereoCenters)),
		rawCount(e.Descriptors.Get(NumUnspecifiedAtomStereoCenters)),
		e.AMW(), e.ClogP())
	return err
}

// WriteReport writes all the entries in r.
func (T *TextWriter) WriteReport(r *Report) error {
	for _, e := range r.Entries {
		if err := T.WriteEntry(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes the summary statistics s.
func (T *TextWriter) WriteSummary(s *Summary) error {
	if _, err := fmt.Fprintf(T.w, "Summary: %d molecules\n", s.N); err != nil {
		return err
	}
	for _, st := range AllStereo {
		label := fmt.Sprintf("%-37s", st.String()+":")
		if _, err := fmt.Fprintf(T.w, "  %s %d\n", T.paint(st, label), s.ByStereo[st]); err != nil {
			return err
		}
	}
	if s.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(T.w, "  amw:          mean=%.3f sd=%.3f min=%.3f max=%.3f\n  CrippenClogP: mean=%.3f sd=%.3f min=%.3f max=%.3f\n",
		s.AMW.Mean, s.AMW.StdDev, s.AMW.Min, s.AMW.Max,
		s.ClogP.Mean, s.ClogP.StdDev, s.ClogP.Min, s.ClogP.Max)
	return err
}

// rawCount prints a count the shortest way that keeps its value: 1 for 1.0, 1.5 for 1.5.
func rawCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
