//go:build rdkit && cgo

package rdkit

/*
#cgo CFLAGS: -I${SRCDIR}/third_party/rdkit
#cgo linux LDFLAGS: -L${SRCDIR}/third_party/rdkit -lrdkitcffi -lm -lstdc++ -Wl,-rpath,${SRCDIR}/third_party/rdkit
#cgo darwin LDFLAGS: -L${SRCDIR}/third_party/rdkit -lrdkitcffi -lc++ -Wl,-rpath,${SRCDIR}/third_party/rdkit
#include <stdlib.h>
#include "cffiwrapper.h"
*/
import "C"
import (
	"unsafe"

	desc "github.com/rmera/stereodesc"
)

// MinimalLib is a desc.Engine that calls RDKit's C library directly.
// Its molecules hold RDKit pickles in C memory, so they must be closed.
type MinimalLib struct{}

// NewMinimalLib returns a MinimalLib engine. RDKit's own logging is disabled.
func NewMinimalLib() (*MinimalLib, error) {
	C.disable_logging()
	return &MinimalLib{}, nil
}

type mlMol struct {
	smiles string
	pkl    *C.char
	size   C.size_t
}

func (m *mlMol) SMILES() string { return m.smiles }

func (m *mlMol) Close() error {
	if m.pkl != nil {
		C.free_ptr(m.pkl)
		m.pkl = nil
		m.size = 0
	}
	return nil
}

func (M *MinimalLib) Name() string { return MinimalLibName }

// Parse builds an RDKit molecule from smiles.
func (M *MinimalLib) Parse(smiles string) (desc.Molecule, error) {
	csmiles := C.CString(smiles)
	defer C.free(unsafe.Pointer(csmiles))
	details := C.CString("")
	defer C.free(unsafe.Pointer(details))
	var size C.size_t
	pkl := C.get_mol(csmiles, &size, details)
	if pkl == nil || size == 0 {
		if pkl != nil {
			C.free_ptr(pkl)
		}
		return nil, desc.NewError("RDKit can't parse the SMILES", smiles, "MinimalLib.Parse", false, desc.ErrParse)
	}
	return &mlMol{smiles: smiles, pkl: pkl, size: size}, nil
}

// Descriptors obtains RDKit's descriptor set for mol, which must come from
// M's Parse and must not be closed.
func (M *MinimalLib) Descriptors(mol desc.Molecule) (desc.Descriptors, error) {
	m, ok := mol.(*mlMol)
	if !ok {
		return nil, desc.NewError("can't compute descriptors", mol.SMILES(), "MinimalLib.Descriptors", true, ErrForeignMolecule)
	}
	if m.pkl == nil {
		return nil, desc.NewError("molecule already closed", m.smiles, "MinimalLib.Descriptors", true, nil)
	}
	cjson := C.get_descriptors(m.pkl, m.size)
	if cjson == nil {
		return nil, desc.NewError("RDKit returned no descriptors", m.smiles, "MinimalLib.Descriptors", true, nil)
	}
	defer C.free_ptr(cjson)
	d, err := DecodeDescriptors([]byte(C.GoString(cjson)))
	if err != nil {
		return nil, desc.ErrDecorate(err, "MinimalLib.Descriptors")
	}
	return d, nil
}

// Version returns the version of the linked RDKit.
func Version() string {
	v := C.version()
	if v == nil {
		return ""
	}
	defer C.free_ptr(v)
	return C.GoString(v)
}
