package desc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunDefaultSamples(Te *testing.T) {
	e := newSampleEngine()
	rep, err := Run(e, DefaultSamples())
	require.NoError(Te, err)
	require.Len(Te, rep.Entries, 4)
	assert.Equal(Te, "table", rep.Engine)
	assert.NotEqual(Te, "", rep.ID.String())
	want := []struct {
		stereo             Stereo
		total, unspecified int
	}{
		{FullySpecified, 1, 0},
		{Achiral, 0, 0},
		{PartiallySpecified, 2, 1},
		{Achiral, 0, 0},
	}
	for i, w := range want {
		en := rep.Entries[i]
		assert.Equal(Te, w.stereo, en.Stereo, en.SMILES)
		assert.Equal(Te, w.total, en.Total, en.SMILES)
		assert.Equal(Te, w.unspecified, en.Unspecified, en.SMILES)
	}
	assert.Equal(Te, 1, e.maxOpen, "each molecule must be closed before the next one is parsed")
	assert.Zero(Te, e.open)
}

func TestRunStopsAtFirstParseError(Te *testing.T) {
	e := newSampleEngine()
	samples := []Sample{
		{"C[C@H](F)Cl", "ok"},
		{"C1CC(", "broken ring"},
		{"c1ccccc1", "never reached"},
	}
	var seen []string
	rep, err := Run(e, samples, WithEntryFunc(func(en *Entry) error {
		seen = append(seen, en.SMILES)
		return nil
	}))
	require.Error(Te, err)
	assert.True(Te, IsParseError(err))
	assert.Contains(Te, err.Error(), "C1CC(")
	assert.Equal(Te, []string{"C[C@H](F)Cl", "C1CC("}, e.parsed, "nothing after the failure is parsed")
	assert.Equal(Te, []string{"C[C@H](F)Cl"}, seen)
	require.Len(Te, rep.Entries, 1)
	assert.Equal(Te, []string{"tableEngine.Parse", "Describe", "Run"}, Decorations(err))
}

func TestRunBadCountsAreFatal(Te *testing.T) {
	e := &tableEngine{table: map[string]Descriptors{
		"CC": {NumAtomStereoCenters: -2},
		"CO": {},
	}}
	_, err := Run(e, []Sample{{"CC", ""}, {"CO", ""}})
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrBadCount))
	assert.Equal(Te, []string{"CC"}, e.parsed)
	var cerr *Error
	require.True(Te, errors.As(err, &cerr))
	assert.Equal(Te, "CC", cerr.Input())
	assert.True(Te, cerr.Critical())
}

func TestRunEntryFuncError(Te *testing.T) {
	boom := errors.New("disk full")
	_, err := Run(newSampleEngine(), DefaultSamples(), WithEntryFunc(func(*Entry) error { return boom }))
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, boom))
}

func TestRunLogs(Te *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := Run(newSampleEngine(), DefaultSamples()[:2], WithLogger(zap.New(core)))
	require.NoError(Te, err)
	assert.Equal(Te, 2, logs.FilterMessage("described").Len())
	assert.Equal(Te, 1, logs.FilterMessage("run finished").Len())
}

func TestTextWriter(Te *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, false)
	_, err := Run(newSampleEngine(), DefaultSamples()[:1], WithEntryFunc(tw.WriteEntry))
	require.NoError(Te, err)
	assert.Equal(Te, []string{
		"SMILES: C[C@H](F)Cl (fully specified single center)",
		"  stereochemistry: fully specified stereochemistry (total=1, unspecified=0)",
		"  descriptors: amw=82.505, CrippenClogP=1.591",
		"",
	}, entryLines(buf.String()))
}

func TestTextWriterRawCounts(Te *testing.T) {
	var buf bytes.Buffer
	e := &Entry{
		Sample:      Sample{"CC", "odd engine"},
		Descriptors: Descriptors{NumAtomStereoCenters: 1.5, NumUnspecifiedAtomStereoCenters: 0},
		Total:       2,
		Stereo:      FullySpecified,
	}
	require.NoError(Te, NewTextWriter(&buf, false).WriteEntry(e))
	assert.Contains(Te, buf.String(), "(total=1.5, unspecified=0)")
	assert.Contains(Te, buf.String(), "amw=0.000, CrippenClogP=0.000")
}

func TestTextWriterSummary(Te *testing.T) {
	rep, err := Run(newSampleEngine(), DefaultSamples())
	require.NoError(Te, err)
	var buf bytes.Buffer
	tw := NewTextWriter(&buf, false)
	require.NoError(Te, tw.WriteReport(rep))
	require.NoError(Te, tw.WriteSummary(Summarize(rep.Entries)))
	out := buf.String()
	assert.Equal(Te, 4, strings.Count(out, "SMILES: "))
	assert.Contains(Te, out, "Summary: 4 molecules")
	assert.Contains(Te, out, fmt.Sprintf("  %-37s %d\n", "achiral:", 2))
	assert.Contains(Te, out, "amw:          mean=155.836")
}
