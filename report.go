/*
 * report.go, part of stereodesc.
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
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry is the result of describing one sample.
type Entry struct {
	Sample
	Descriptors Descriptors
	Total       int //rounded stereocenter counts
	Unspecified int
	Stereo      Stereo
}

// AMW returns the average molecular weight of the entry's molecule.
func (E *Entry) AMW() float64 { return E.Descriptors.Get(AMW) }

// ClogP returns the Crippen estimate of the octanol/water partition coefficient.
func (E *Entry) ClogP() float64 { return E.Descriptors.Get(CrippenClogP) }

// Report collects the entries of one run, in the order of the samples.
type Report struct {
	ID      uuid.UUID
	Engine  string
	Entries []*Entry
}

// Describe parses the sample's SMILES with e and computes its descriptors
// and stereochemistry status. The molecule is closed before returning.
func Describe(e Engine, s Sample) (*Entry, error) {
	mol, err := e.Parse(s.SMILES)
	if err != nil {
		return nil, ErrDecorate(err, "Describe")
	}
	defer mol.Close()
	d, err := e.Descriptors(mol)
	if err != nil {
		return nil, ErrDecorate(err, "Describe")
	}
	total, unspecified, err := d.StereoCounts()
	if err != nil {
		//the count errors don't know which molecule they came from.
		return nil, NewError("can't classify stereochemistry", s.SMILES, "Describe", true, err)
	}
	return &Entry{
		Sample:      s,
		Descriptors: d,
		Total:       total,
		Unspecified: unspecified,
		Stereo:      Classify(total, unspecified),
	}, nil
}

type runOptions struct {
	log  *zap.Logger
	each func(*Entry) error
}

// Option sets optional behavior for Run.
type Option func(*runOptions)

// WithLogger makes Run log its progress to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *runOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithEntryFunc makes Run call f with each entry as soon as it is ready.
// An error from f stops the run.
func WithEntryFunc(f func(*Entry) error) Option {
	return func(o *runOptions) { o.each = f }
}

// Run describes each sample, in order, with the engine e. The first sample that
// fails stops the whole run. In that case the report with the entries obtained
// so far is returned, together with the error.
func Run(e Engine, samples []Sample, opts ...Option) (*Report, error) {
	o := runOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	rep := &Report{ID: uuid.New(), Engine: e.Name(), Entries: make([]*Entry, 0, len(samples))}
	log := o.log.With(zap.String("run", rep.ID.String()), zap.String("engine", rep.Engine))
	log.Debug("starting run", zap.Int("samples", len(samples)))
	for i, s := range samples {
		entry, err := Describe(e, s)
		if err != nil {
			log.Error("aborting run", zap.Int("sample", i+1), zap.String("smiles", s.SMILES), zap.Error(err))
			return rep, ErrDecorate(err, "Run")
		}
		log.Debug("described",
			zap.String("smiles", s.SMILES),
			zap.Stringer("stereo", entry.Stereo),
			zap.Int("total", entry.Total),
			zap.Int("unspecified", entry.Unspecified))
		rep.Entries = append(rep.Entries, entry)
		if o.each != nil {
			if err := o.each(entry); err != nil {
				return rep, NewError("can't output entry", s.SMILES, "Run", true, err)
			}
		}
	}
	log.Info("run finished", zap.Int("entries", len(rep.Entries)))
	return rep, nil
}
