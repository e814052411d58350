/*
 * interfaces.go, part of chemreason.
 *
 * Copyright 2026 The chemreason Authors
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
 */

package chem

import "fmt"

// Elementer is anything that can resolve an element symbol to its data.
// *PeriodicTable is the one implementation in this library, but the
// application layer may provide its own (e.g. backed by its database).
type Elementer interface {
	//Element returns the data for the symbol sym, and false if the
	//symbol is unknown.
	Element(sym string) (*Element, bool)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the name of a function in the calling stack, plus, optionally, "FunctionName: Extra info". An empty string just returns the current slice.
}

// CError is the Error implementation of this package.
type CError struct {
	msg      string
	deco     []string
	critical bool
	kind     *CError //the sentinel this error is an instance of, if any
}

// NewError returns a CError with the given message and the name of the function that produced it.
func NewError(msg, caller string, critical bool) *CError {
	return &CError{msg: msg, deco: []string{caller}, critical: critical}
}

// Error returns a string with the message and the call trail.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%v)", err.msg, err.deco)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err *CError) Critical() bool { return err.critical }

// Is allows errors.Is to match a CError against the sentinel it was created from.
func (err *CError) Is(target error) bool {
	t, ok := target.(*CError)
	if !ok {
		return false
	}
	return t == err || (err.kind != nil && t == err.kind)
}

// KindError returns a new CError which is an instance of the sentinel kind, with
// detail appended to kind's message.
func KindError(kind *CError, detail, caller string) *CError {
	msg := kind.msg
	if detail != "" {
		msg = msg + ": " + detail
	}
	return &CError{msg: msg, deco: []string{caller}, critical: kind.critical, kind: kind}
}

// Sentinel returns a CError meant to be compared against with errors.Is, and
// used as the kind of errors created with KindError.
func Sentinel(msg string) *CError {
	return &CError{msg: msg, critical: true}
}

// errDecorate decorates err with the caller's name if err implements
// Error, and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return fmt.Errorf("%s: %w", caller, err)
}

var (
	ErrDuplicateSymbol = Sentinel("duplicate element symbol")
	ErrNoSymbol        = Sentinel("element without symbol")
)
