/*
 * errors.go, part of chemreason.
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

package chemgraph

import (
	"fmt"

	chem "github.com/rmera/chemreason"
)

// Errors returned by Apply for edits that can't be applied. They can be
// compared with errors.Is.
var (
	ErrNoAtom        = chem.Sentinel("no such atom")
	ErrNoBond        = chem.Sentinel("no such bond")
	ErrSelfBond      = chem.Sentinel("an atom can't be bonded to itself")
	ErrBondOrder     = chem.Sentinel("bond order must be 1, 2 or 3")
	ErrDuplicateBond = chem.Sentinel("atoms already bonded")
	ErrAromaticBond  = chem.Sentinel("aromatic bonds must have order 1")
	ErrTemplate      = chem.Sentinel("unknown template")
)

func newError(kind *chem.CError, caller string, format string, args ...interface{}) *chem.CError {
	return chem.KindError(kind, fmt.Sprintf(format, args...), caller)
}

// errDecorate adds caller to the trail of err, if err is a chem.Error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
	}
	return err
}
