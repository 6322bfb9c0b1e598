/*
 * errors.go, part of stereodesc.
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

package desc

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every error coming from a SMILES string the engine could not parse.
var ErrParse = errors.New("invalid SMILES")

// ErrBadCount is wrapped by errors coming from stereocenter counts that are not
// non-negative finite numbers.
var ErrBadCount = errors.New("invalid stereocenter count")

// Error is the general structure for errors in this module. It fullfills CriticalError.
// Packages built on this one (the engines, the cache) return it too.
type Error struct {
	message  string
	input    string //the SMILES string or the file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error //the wrapped cause, if any
}

// NewError returns an error with the given message, about the given input (which
// can be empty). caller is the first decoration. cause, which can be nil, is wrapped.
func NewError(message, input, caller string, critical bool, cause error) *Error {
	err := &Error{message: message, input: input, critical: critical, err: cause}
	err.Decorate(caller)
	return err
}

func (err *Error) Error() string {
	msg := err.message
	if err.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.err)
	}
	if err.input == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", err.input, msg)
}

// Decorate adds dec to the decoration slice of the error, and returns the resulting slice.
// An empty dec only returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Input returns the SMILES string or file name associated to the error, if any.
func (err *Error) Input() string { return err.input }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.err }

// IsParseError returns true if err comes from a SMILES string that could not be parsed.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// ErrDecorate decorates err with the caller's name if err implements CriticalError,
// and returns it. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var err2 CriticalError
	if errors.As(err, &err2) {
		err2.Decorate(caller)
	}
	return err
}

// Decorations returns the decoration slice of err, or nil if err doesn't
// implement CriticalError.
func Decorations(err error) []string {
	var err2 CriticalError
	if errors.As(err, &err2) {
		return err2.Decorate("")
	}
	return nil
}
