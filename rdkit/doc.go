/*
 * doc.go, part of stereodesc.
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

//Package rdkit implements desc.Engine on top of the RDKit cheminformatics
//library. RDKit must be obtained independently.
//
//MinimalLib links RDKit's C API (cffiwrapper.h, librdkitcffi) through cgo. It is
//only built with the "rdkit" build tag, and expects the header and library in
//third_party/rdkit, under this directory. Without the tag, NewMinimalLib returns ErrNotBuilt.
//
//Exec runs an external Python interpreter with the RDKit Python module,
//one process per molecule, so it needs nothing at build time.
package rdkit
