package desccache

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	desc "github.com/rmera/stereodesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEngine knows a single molecule, ethanol, and counts how often
// it is asked for descriptors.
type countingEngine struct {
	calls int
}

type mol string

func (m mol) SMILES() string { return string(m) }
func (m mol) Close() error   { return nil }

func (c *countingEngine) Name() string { return "counting" }

func (c *countingEngine) Parse(smiles string) (desc.Molecule, error) {
	if smiles != "CCO" {
		return nil, desc.NewError("unknown", smiles, "countingEngine.Parse", false, desc.ErrParse)
	}
	return mol(smiles), nil
}

func (c *countingEngine) Descriptors(m desc.Molecule) (desc.Descriptors, error) {
	c.calls++
	return desc.Descriptors{desc.AMW: 46.069, desc.CrippenClogP: -0.0014, "Weird": math.NaN()}, nil
}

func openTemp(Te *testing.T) *Cache {
	Te.Helper()
	c, err := Open(filepath.Join(Te.TempDir(), "sub", "cache.db"), nil)
	require.NoError(Te, err)
	Te.Cleanup(func() { c.Close() })
	return c
}

func TestCacheGetPut(Te *testing.T) {
	c := openTemp(Te)
	_, ok, err := c.Get("e", "CCO")
	require.NoError(Te, err)
	assert.False(Te, ok)

	require.NoError(Te, c.Put("e", "CCO", desc.Descriptors{desc.AMW: 46.069, "Inf": math.Inf(1), "MinusInf": math.Inf(-1), "NaN": math.NaN()}))
	d, ok, err := c.Get("e", "CCO")
	require.NoError(Te, err)
	require.True(Te, ok)
	require.Len(Te, d, 4, "non-finite values are kept")
	assert.Equal(Te, 46.069, d[desc.AMW])
	assert.True(Te, math.IsInf(d["Inf"], 1))
	assert.True(Te, math.IsInf(d["MinusInf"], -1))
	assert.True(Te, math.IsNaN(d["NaN"]))

	_, ok, err = c.Get("other", "CCO")
	require.NoError(Te, err)
	assert.False(Te, ok, "entries are per engine")

	require.NoError(Te, c.Put("e", "CCO", desc.Descriptors{desc.AMW: 1}))
	n, err := c.Len()
	require.NoError(Te, err)
	assert.Equal(Te, 1, n)
}

func TestCachedEngine(Te *testing.T) {
	c := openTemp(Te)
	inner := &countingEngine{}
	e := c.Wrap(inner)
	assert.Equal(Te, "counting", e.Name())
	for i := 0; i < 3; i++ {
		entry, err := desc.Describe(e, desc.Sample{SMILES: "CCO", Description: "ethanol"})
		require.NoError(Te, err)
		assert.InDelta(Te, 46.069, entry.AMW(), 1e-9)
		assert.Equal(Te, desc.Achiral, entry.Stereo)
	}
	assert.Equal(Te, 1, inner.calls)
	hits, misses := e.Stats()
	assert.Equal(Te, 2, hits)
	assert.Equal(Te, 1, misses)

	_, err := desc.Describe(e, desc.Sample{SMILES: "C(", Description: "broken"})
	require.Error(Te, err)
	assert.True(Te, desc.IsParseError(err), "parse errors go through the cache")
}

// nanEngine gives a NaN stereocenter count, which can't be classified.
type nanEngine struct{ countingEngine }

func (n *nanEngine) Descriptors(m desc.Molecule) (desc.Descriptors, error) {
	n.calls++
	return desc.Descriptors{desc.NumAtomStereoCenters: math.NaN(), desc.AMW: 46.069}, nil
}

func TestCachedEngineKeepsBadCounts(Te *testing.T) {
	c := openTemp(Te)
	inner := &nanEngine{}
	e := c.Wrap(inner)
	for i := 0; i < 2; i++ {
		_, err := desc.Describe(e, desc.Sample{SMILES: "CCO", Description: "ethanol"})
		require.Error(Te, err, "run %d", i+1)
		assert.ErrorIs(Te, err, desc.ErrBadCount, "run %d", i+1)
	}
	assert.Equal(Te, 1, inner.calls, "the second run is answered by the cache")
	hits, _ := e.Stats()
	assert.Equal(Te, 1, hits)
}

func TestCachePersists(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "cache.db")
	c, err := Open(path, nil)
	require.NoError(Te, err)
	require.NoError(Te, c.Put("e", "CCO", desc.Descriptors{desc.AMW: 46.069}))
	require.NoError(Te, c.Close())

	c, err = Open(path, nil)
	require.NoError(Te, err)
	defer c.Close()
	d, ok, err := c.Get("e", "CCO")
	require.NoError(Te, err)
	require.True(Te, ok)
	assert.Equal(Te, 46.069, d.Get(desc.AMW))

	pruned, err := c.Prune(time.Hour)
	require.NoError(Te, err)
	assert.Zero(Te, pruned)
	pruned, err = c.Prune(-time.Hour)
	require.NoError(Te, err)
	assert.Equal(Te, int64(1), pruned)
}

func TestOpenErrors(Te *testing.T) {
	_, err := Open("", nil)
	require.Error(Te, err)
	var cerr desc.CriticalError
	assert.True(Te, errors.As(err, &cerr))
}
