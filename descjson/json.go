/*
 * json.go, part of stereodesc.
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

package descjson

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	desc "github.com/rmera/stereodesc"
)

//A ready-to-serialize container for a desc.Entry
type Entry struct {
	SMILES      string             `json:"smiles"`
	Description string             `json:"description"`
	Stereo      string             `json:"stereo"`
	Total       int                `json:"total"`
	Unspecified int                `json:"unspecified"`
	AMW         float64            `json:"amw"`
	ClogP       float64            `json:"clogp"`
	Descriptors map[string]float64 `json:"descriptors"`
}

//A ready-to-serialize container for desc.Stat
type Stat struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

//A ready-to-serialize container for a desc.Summary. The stereochemistry
//classes are keyed by their names.
type Summary struct {
	N        int            `json:"n"`
	ByStereo map[string]int `json:"by_stereo"`
	AMW      Stat           `json:"amw"`
	ClogP    Stat           `json:"clogp"`
}

//An easily JSON-serializable error type.
type Error struct {
	IsError   bool     `json:"is_error"` //If this is false (no error) all the other fields will be at their zero-values.
	InInput   bool     `json:"in_input"` //Was it in reading the samples?
	InParse   bool     `json:"in_parse"` //Was it a SMILES string the engine couldn't parse?
	InProcess bool     `json:"in_process"`
	Critical  bool     `json:"critical"`
	Input     string   `json:"input,omitempty"` //Which SMILES or file?
	Function  string   `json:"function"`        //which go function gave the error (the innermost decoration)
	Trace     []string `json:"trace,omitempty"` //the decorations, innermost first
	Message   string   `json:"message"`         //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Takes an error and some additional info to create a json-marshal-ble error.
//where can be "input" for errors reading the samples; anything else is taken as
//an error in the run itself.
func NewError(where string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch {
	case where == "input":
		jerr.InInput = true
	case desc.IsParseError(err):
		jerr.InParse = true
	default:
		jerr.InProcess = true
	}
	jerr.Message = err.Error()
	jerr.Trace = desc.Decorations(err)
	if len(jerr.Trace) > 0 {
		jerr.Function = jerr.Trace[0]
	}
	var cerr desc.CriticalError
	if errors.As(err, &cerr) {
		jerr.Critical = cerr.Critical()
	} else {
		jerr.Critical = true
	}
	var derr *desc.Error
	if errors.As(err, &derr) {
		jerr.Input = derr.Input()
	}
	return jerr
}

//Everything about a run, to be passed to the calling program.
type Report struct {
	ID      string   `json:"id"`
	Engine  string   `json:"engine"`
	Entries []*Entry `json:"entries"`
	Summary *Summary `json:"summary,omitempty"`
	Error   *Error   `json:"error,omitempty"`
}

//NewReport builds a Report from r. s can be nil, in which case no summary
//is included.
func NewReport(r *desc.Report, s *desc.Summary) *Report {
	J := &Report{Entries: make([]*Entry, 0)}
	if r != nil {
		J.ID = r.ID.String()
		J.Engine = r.Engine
		for _, e := range r.Entries {
			J.Entries = append(J.Entries, NewEntry(e))
		}
	}
	if s != nil {
		J.Summary = NewSummary(s)
	}
	return J
}

//NewEntry builds the serializable version of e. Descriptors with non-finite
//values are left out, as JSON can't represent them.
func NewEntry(e *desc.Entry) *Entry {
	J := &Entry{
		SMILES:      e.SMILES,
		Description: e.Description,
		Stereo:      e.Stereo.String(),
		Total:       e.Total,
		Unspecified: e.Unspecified,
		AMW:         finiteOrZero(e.AMW()),
		ClogP:       finiteOrZero(e.ClogP()),
		Descriptors: make(map[string]float64, len(e.Descriptors)),
	}
	for k, v := range e.Descriptors {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			J.Descriptors[k] = v
		}
	}
	return J
}

//NewSummary builds the serializable version of s.
func NewSummary(s *desc.Summary) *Summary {
	J := &Summary{N: s.N, ByStereo: make(map[string]int, len(s.ByStereo))}
	for k, v := range s.ByStereo {
		J.ByStereo[k.String()] = v
	}
	J.AMW = finiteStat(s.AMW)
	J.ClogP = finiteStat(s.ClogP)
	return J
}

//Send Marshals the report and writes it to out, returns an error or nil
func (J *Report) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(J); err != nil {
		return desc.NewError("can't encode JSON report", J.ID, "Report.Send", true, err)
	}
	return nil
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) //an error serializing an error.
	}
	return ret
}

//DecodeReport reads a JSON report from in, as written by Send.
func DecodeReport(in io.Reader) (*Report, error) {
	J := new(Report)
	if err := json.NewDecoder(in).Decode(J); err != nil {
		return nil, desc.NewError("can't decode JSON report", "", "DecodeReport", true, err)
	}
	return J, nil
}

func finiteStat(s desc.Stat) Stat {
	return Stat{
		Mean:   finiteOrZero(s.Mean),
		StdDev: finiteOrZero(s.StdDev),
		Min:    finiteOrZero(s.Min),
		Max:    finiteOrZero(s.Max),
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
