package desc

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(Te *testing.T) {
	rep, err := Run(newSampleEngine(), DefaultSamples())
	require.NoError(Te, err)
	s := Summarize(rep.Entries)
	assert.Equal(Te, 4, s.N)
	assert.Equal(Te, map[Stereo]int{Achiral: 2, FullySpecified: 1, Unspecified: 0, PartiallySpecified: 1}, s.ByStereo)
	assert.InDelta(Te, 155.836, s.AMW.Mean, 1e-9)
	assert.InDelta(Te, 78.114, s.AMW.Min, 1e-9)
	assert.InDelta(Te, 301.324, s.AMW.Max, 1e-9)
	assert.InDelta(Te, 1.591, s.ClogP.Min, 1e-9)
	assert.InDelta(Te, 2.950, s.ClogP.Max, 1e-9)
	assert.Greater(Te, s.AMW.StdDev, 0.0)
}

func TestSummarizeSmall(Te *testing.T) {
	s := Summarize(nil)
	assert.Zero(Te, s.N)
	assert.Equal(Te, Stat{}, s.AMW)
	assert.Len(Te, s.ByStereo, len(AllStereo))

	one := []*Entry{{Descriptors: Descriptors{AMW: 10, CrippenClogP: -1}}}
	s = Summarize(one)
	assert.Equal(Te, Stat{Mean: 10, Min: 10, Max: 10}, s.AMW)
	assert.Equal(Te, Stat{Mean: -1, Min: -1, Max: -1}, s.ClogP)
	assert.Equal(Te, 1, s.ByStereo[Achiral])
}

func TestSummarizeNonFinite(Te *testing.T) {
	entries := []*Entry{
		{Descriptors: Descriptors{AMW: 10, CrippenClogP: math.NaN()}},
		{Descriptors: Descriptors{AMW: math.Inf(1), CrippenClogP: 2}},
		{Descriptors: Descriptors{AMW: 20, CrippenClogP: 4}},
	}
	s := Summarize(entries)
	assert.Equal(Te, 3, s.N, "entries are counted even when their values are not")
	assert.InDelta(Te, 15, s.AMW.Mean, 1e-9)
	assert.Equal(Te, 10.0, s.AMW.Min)
	assert.Equal(Te, 20.0, s.AMW.Max)
	assert.InDelta(Te, 3, s.ClogP.Mean, 1e-9)
	for _, st := range []Stat{s.AMW, s.ClogP} {
		for _, v := range []float64{st.Mean, st.StdDev, st.Min, st.Max} {
			assert.False(Te, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}

	var buf bytes.Buffer
	require.NoError(Te, NewTextWriter(&buf, false).WriteSummary(s))
	assert.NotContains(Te, buf.String(), "NaN")
	assert.NotContains(Te, buf.String(), "Inf")
}
