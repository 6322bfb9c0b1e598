/*
 * exec.go, part of stereodesc.
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
 * */

package rdkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	desc "github.com/rmera/stereodesc"
	"go.uber.org/zap"
)

const (
	defpython  = "python3"
	deftimeout = time.Minute
	exitparse  = 2 //exit status of the script for SMILES RDKit can't parse
)

// The script reads one SMILES from stdin and prints RDKit's descriptor
// set as a JSON object.
const script = `import sys, json
from rdkit import Chem, RDLogger
from rdkit.Chem import rdMolDescriptors
RDLogger.DisableLog("rdApp.*")
smi = sys.stdin.read().strip()
mol = Chem.MolFromSmiles(smi)
if mol is None:
    sys.stderr.write("RDKit can't parse the SMILES\n")
    sys.exit(2)
props = rdMolDescriptors.Properties()
vals = props.ComputeProperties(mol)
json.dump({n: (v if v == v else "NaN") for n, v in zip(props.GetPropertyNames(), vals)}, sys.stdout)
`

// Exec is a desc.Engine that runs a Python interpreter with RDKit for each molecule.
// Parsing and descriptor calculation happen in the same run, so Parse already
// does the expensive part and Descriptors just hands over the result.
type Exec struct {
	python  string
	timeout time.Duration
	log     *zap.Logger
}

// NewExec returns an Exec engine that uses the interpreter python (python3 if empty).
// log can be nil.
func NewExec(python string, log *zap.Logger) *Exec {
	if python == "" {
		python = defpython
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Exec{python: python, timeout: deftimeout, log: log}
}

// SetTimeout sets how long each interpreter run can take before it is killed. Non-positive
// values restore the default of one minute.
func (E *Exec) SetTimeout(t time.Duration) {
	if t <= 0 {
		t = deftimeout
	}
	E.timeout = t
}

func (E *Exec) Name() string { return ExecName }

type execMol struct {
	smiles string
	d      desc.Descriptors
}

func (m *execMol) SMILES() string { return m.smiles }

func (m *execMol) Close() error {
	m.d = nil
	return nil
}

// Parse runs the interpreter on smiles. An exit status of 2 means RDKit couldn't
// parse it, and gives an error wrapping desc.ErrParse. Any other failure is critical.
func (E *Exec) Parse(smiles string) (desc.Molecule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), E.timeout)
	defer cancel()
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, E.python, "-c", script)
	command.Stdin = strings.NewReader(smiles)
	command.Stdout = &stdout
	command.Stderr = &stderr
	command.WaitDelay = time.Second
	start := time.Now()
	err := command.Run()
	E.log.Debug("rdkit run", zap.String("python", E.python), zap.String("smiles", smiles), zap.Duration("took", time.Since(start)))
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == exitparse {
			return nil, desc.NewError(msg, smiles, "Exec.Parse", false, desc.ErrParse)
		}
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		if msg != "" {
			err = fmt.Errorf("%w (%s)", err, lastLine(msg))
		}
		return nil, desc.NewError(fmt.Sprintf("running %s failed", E.python), smiles, "Exec.Parse", true, err)
	}
	d, err := DecodeDescriptors(stdout.Bytes())
	if err != nil {
		return nil, desc.ErrDecorate(err, "Exec.Parse")
	}
	return &execMol{smiles: smiles, d: d}, nil
}

// Descriptors returns the descriptors computed when mol was parsed. mol
// must come from an Exec engine and must not be closed.
func (E *Exec) Descriptors(mol desc.Molecule) (desc.Descriptors, error) {
	m, ok := mol.(*execMol)
	if !ok {
		return nil, desc.NewError("can't compute descriptors", mol.SMILES(), "Exec.Descriptors", true, ErrForeignMolecule)
	}
	if m.d == nil {
		return nil, desc.NewError("molecule already closed", m.smiles, "Exec.Descriptors", true, nil)
	}
	return m.d, nil
}

// Python tracebacks end with the actual error.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
