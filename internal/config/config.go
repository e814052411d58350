/*
 * config.go, part of chemreason.
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

// Package config reads the settings of the chemreason programs from the
// environment, after loading an optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvElements   = "CHEM_ELEMENTS"
	EnvBondLength = "CHEM_BOND_LENGTH"
	EnvDimensions = "CHEM_DIMENSIONS"
	EnvCanvasX    = "CHEM_CANVAS_X"
	EnvCanvasY    = "CHEM_CANVAS_Y"
	EnvCanvasZ    = "CHEM_CANVAS_Z"
	EnvDebug      = "CHEM_DEBUG"
)

// Config holds the settings of a run.
type Config struct {
	Elements   string //element data file. Empty means the built-in table
	BondLength float64
	Dimensions int
	CanvasX    float64
	CanvasY    float64
	CanvasZ    float64
	Debug      bool
	EnvFile    bool //whether a .env file was loaded
}

// Load reads the .env files given, or ./.env if none is given, without
// overriding variables already set, and returns the configuration from the
// environment. A missing .env file is not an error.
func Load(files ...string) *Config {
	err := godotenv.Load(files...)
	return &Config{
		Elements:   GetEnvString(EnvElements, ""),
		BondLength: positive(GetEnvFloat(EnvBondLength, 1.5), 1.5),
		Dimensions: dimensions(GetEnvInt(EnvDimensions, 2)),
		CanvasX:    GetEnvFloat(EnvCanvasX, 0),
		CanvasY:    GetEnvFloat(EnvCanvasY, 0),
		CanvasZ:    GetEnvFloat(EnvCanvasZ, 0),
		Debug:      GetEnvBool(EnvDebug, false),
		EnvFile:    err == nil,
	}
}

func positive(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func dimensions(d int) int {
	if d == 3 {
		return 3
	}
	return 2
}

func GetEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	ret, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return ret
}

func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	ret, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return ret
}

// GetEnvBool accepts only "true" and "false". Anything else gives defaultValue.
func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return defaultValue
}
