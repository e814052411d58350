/*
 * doc.go, part of chemreason.
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

/*Package chem is the main package of the chemreason library. It holds the periodic data
table that every other package looks elements up in, and the bond classifier that decides,
from first-principles element data, what kind of bond two elements form.


	**chemreason Capabilities**


    Periodic data table: element categories, Pauling electronegativities,
	atomic masses, ordered oxidation states and isotopes, read from a built-in
	table or from JSON files (plain, zstd or gzip compressed).

    Bond classification: metallic / ionic / covalent (single, double, triple)
	from element categories, electronegativity differences and a table of
	element pairs with known multiple-bond behaviour.

    Compound validation (package compound): stoichiometry, charge balance,
	valence saturation, Hill formulas and names of common compounds.

    Molecule graphs (package chemgraph): an arena graph of atoms and bonds
	with implicit hydrogens and hybridization always derived from the
	topology, a change log of edits, and templates for common skeletons.

    Geometry (package geometry): VSEPR classes for every center and 2D/3D
	coordinates for drawing, centered on a viewport.

Nothing in the core packages does I/O or keeps global mutable state, so
different graphs can be worked on from different goroutines freely. A single
graph must not be edited from two goroutines at once.
*/
package chem
