/*
 * config_test.go, part of chemreason.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the configuration variables until the end of the test,
// including the ones a .env file sets.
func clearEnv(Te *testing.T) {
	for _, k := range []string{EnvElements, EnvBondLength, EnvDimensions, EnvCanvasX, EnvCanvasY, EnvCanvasZ, EnvDebug} {
		Te.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaults(Te *testing.T) {
	clearEnv(Te)
	C := Load(filepath.Join(Te.TempDir(), "missing.env"))
	assert.False(Te, C.EnvFile)
	assert.Equal(Te, "", C.Elements)
	assert.Equal(Te, 1.5, C.BondLength)
	assert.Equal(Te, 2, C.Dimensions)
	assert.Zero(Te, C.CanvasX)
	assert.False(Te, C.Debug)
}

func TestEnvFile(Te *testing.T) {
	clearEnv(Te)
	path := filepath.Join(Te.TempDir(), "test.env")
	content := "CHEM_BOND_LENGTH=1.2\nCHEM_DIMENSIONS=3\nCHEM_CANVAS_X=10\nCHEM_DEBUG=true\nCHEM_ELEMENTS=elements.json.zst\n"
	require.NoError(Te, os.WriteFile(path, []byte(content), 0o644))
	//variables already set win over the file.
	Te.Setenv(EnvCanvasX, "-4.5")
	C := Load(path)
	assert.True(Te, C.EnvFile)
	assert.Equal(Te, 1.2, C.BondLength)
	assert.Equal(Te, 3, C.Dimensions)
	assert.Equal(Te, -4.5, C.CanvasX)
	assert.True(Te, C.Debug)
	assert.Equal(Te, "elements.json.zst", C.Elements)
}

func TestBadValues(Te *testing.T) {
	clearEnv(Te)
	Te.Setenv(EnvBondLength, "-1")
	Te.Setenv(EnvDimensions, "4")
	Te.Setenv(EnvCanvasY, "far")
	Te.Setenv(EnvDebug, "yes")
	C := Load(filepath.Join(Te.TempDir(), "missing.env"))
	assert.Equal(Te, 1.5, C.BondLength)
	assert.Equal(Te, 2, C.Dimensions)
	assert.Zero(Te, C.CanvasY)
	assert.False(Te, C.Debug)
}
