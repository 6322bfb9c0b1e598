package rdkit

import "errors"

// Engine names, as returned by the Name methods.
const (
	MinimalLibName = "rdkit-minimallib"
	ExecName       = "rdkit-exec"
)

// ErrNotBuilt is returned by NewMinimalLib in binaries built without the "rdkit" tag.
var ErrNotBuilt = errors.New("built without RDKit MinimalLib support (use the rdkit build tag)")

// ErrForeignMolecule is returned when an engine is given a molecule parsed by a different engine.
var ErrForeignMolecule = errors.New("molecule not parsed by this engine")
