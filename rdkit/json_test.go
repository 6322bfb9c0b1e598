package rdkit

import (
	"math"
	"testing"

	desc "github.com/rmera/stereodesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDescriptors(Te *testing.T) {
	d, err := DecodeDescriptors([]byte(`{"amw": 64.51, "NumAtomStereoCenters": 1, "CrippenClogP": "NaN", "note": "x", "list": [1]}`))
	require.NoError(Te, err)
	assert.Equal(Te, 64.51, d.Get(desc.AMW))
	assert.Equal(Te, 1.0, d.Get(desc.NumAtomStereoCenters))
	assert.True(Te, math.IsNaN(d.Get(desc.CrippenClogP)))
	_, ok := d["note"]
	assert.False(Te, ok)
	assert.Len(Te, d, 3)

	_, err = DecodeDescriptors([]byte(`[1, 2]`))
	assert.Error(Te, err)
}

func TestEncodeDescriptors(Te *testing.T) {
	d := desc.Descriptors{desc.AMW: 46.069, desc.NumAtomStereoCenters: math.NaN(), "Big": math.Inf(1), "Small": math.Inf(-1)}
	data, err := EncodeDescriptors(d)
	require.NoError(Te, err)
	back, err := DecodeDescriptors(data)
	require.NoError(Te, err)
	require.Len(Te, back, 4)
	assert.Equal(Te, 46.069, back.Get(desc.AMW))
	assert.True(Te, math.IsNaN(back.Get(desc.NumAtomStereoCenters)))
	assert.True(Te, math.IsInf(back.Get("Big"), 1))
	assert.True(Te, math.IsInf(back.Get("Small"), -1))

	back, err = DecodeDescriptors([]byte(`{"amw": "12.5"}`))
	require.NoError(Te, err)
	assert.Empty(Te, back, "only non-finite values are read from strings")
}

func TestMinimalLibStub(Te *testing.T) {
	if Version() != "" {
		Te.Skip("built with RDKit")
	}
	_, err := NewMinimalLib()
	require.Error(Te, err)
	assert.ErrorIs(Te, err, ErrNotBuilt)
}
