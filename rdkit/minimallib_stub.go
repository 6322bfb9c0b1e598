//go:build !rdkit || !cgo

package rdkit

import desc "github.com/rmera/stereodesc"

// MinimalLib is the RDKit C library engine. This build doesn't include it,
// so it can't be obtained.
type MinimalLib struct{}

// NewMinimalLib always returns an error wrapping ErrNotBuilt in this build.
func NewMinimalLib() (*MinimalLib, error) {
	return nil, desc.NewError("MinimalLib engine unavailable", "", "NewMinimalLib", true, ErrNotBuilt)
}

func (M *MinimalLib) Name() string { return MinimalLibName }

func (M *MinimalLib) Parse(smiles string) (desc.Molecule, error) {
	return nil, desc.NewError("MinimalLib engine unavailable", smiles, "MinimalLib.Parse", true, ErrNotBuilt)
}

func (M *MinimalLib) Descriptors(mol desc.Molecule) (desc.Descriptors, error) {
	return nil, desc.NewError("MinimalLib engine unavailable", mol.SMILES(), "MinimalLib.Descriptors", true, ErrNotBuilt)
}

// Version returns an empty string, as no RDKit is linked.
func Version() string { return "" }
