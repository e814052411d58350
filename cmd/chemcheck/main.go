/*
 * main.go, part of chemreason.
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

// chemcheck validates compounds, builds and edits molecule graphs and
// resolves their geometries. Requests are JSON files (or - for stdin), and
// results are written as JSON to stdout. Logs go to stderr.
//
//	chemcheck validate COMPOUND
//	chemcheck template [-length N] [-ring N] [-position N] TYPE
//	chemcheck edit GRAPH EDITS
//	chemcheck geometry [-compound] [-dims 2|3] [-bond L] [-plot FILE] GRAPH
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/chemgraph"
	"github.com/rmera/chemreason/chemjson"
	"github.com/rmera/chemreason/chemplot"
	"github.com/rmera/chemreason/compound"
	"github.com/rmera/chemreason/geometry"
	"github.com/rmera/chemreason/internal/config"
	"github.com/rmera/chemreason/internal/logger"
	"github.com/rmera/chemreason/internal/logger/console"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app is what every subcommand needs.
type app struct {
	cfg    *config.Config
	table  chem.Elementer
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{Debug: cfg.Debug, Prefix: "chemcheck", Out: stderr}))
	if cfg.EnvFile {
		logger.Debug("loaded .env file")
	}
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	A := &app{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}
	if cfg.Elements != "" {
		T, err := chem.ReadTableFile(cfg.Elements)
		if err != nil {
			logger.Error("can't read the element table", "file", cfg.Elements, "err", err)
			return A.fail(chemjson.NewError("request", "chemcheck", err))
		}
		A.table = T
		logger.Debug("element table loaded", "file", cfg.Elements, "elements", len(T.Symbols()))
	}
	cmds := map[string]func([]string) int{
		"validate": A.validate,
		"template": A.template,
		"edit":     A.edit,
		"geometry": A.geometry,
	}
	cmd, ok := cmds[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
	return cmd(args[1:])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  chemcheck validate COMPOUND")
	fmt.Fprintln(w, "  chemcheck template [-length N] [-ring N] [-position N] TYPE")
	fmt.Fprintln(w, "  chemcheck edit GRAPH EDITS")
	fmt.Fprintln(w, "  chemcheck geometry [-compound] [-dims 2|3] [-bond L] [-plot FILE] GRAPH")
	fmt.Fprintf(w, "Templates: %s\n", templateNames())
	fmt.Fprintln(w, "Files can be - for stdin.")
}

func templateNames() string {
	names := make([]string, 0, len(chemgraph.Templates()))
	for _, t := range chemgraph.Templates() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// flags returns a flag set for the subcommand name that reports to stderr.
func (A *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(A.stderr)
	return fs
}

// parse parses args, and checks that exactly nargs arguments remain.
func (A *app) parse(fs *flag.FlagSet, args []string, nargs int) bool {
	if err := fs.Parse(args); err != nil {
		return false
	}
	if fs.NArg() != nargs {
		fmt.Fprintf(A.stderr, "%s: expected %d argument(s), got %d\n", fs.Name(), nargs, fs.NArg())
		usage(A.stderr)
		return false
	}
	return true
}

// decode reads the JSON request in the file name (- is stdin) into req.
func (A *app) decode(name string, req interface{}) *chemjson.Error {
	in := A.stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return chemjson.NewError("request", "chemcheck", err)
		}
		defer f.Close()
		in = f
	}
	if err := chemjson.Decode(in, req); err != nil {
		err.Decorate(name)
		return err
	}
	return nil
}

// fail writes err to stdout, so the caller gets it in the same stream as the results.
func (A *app) fail(err *chemjson.Error) int {
	logger.Error(err.Message, "function", err.Function, "field", err.Field)
	A.stdout.Write(err.Marshal())
	fmt.Fprintln(A.stdout)
	return 1
}

func (A *app) send(v interface{}) int {
	if err := chemjson.Send(A.stdout, v); err != nil {
		logger.Error("can't write the output", "err", err)
		return 1
	}
	return 0
}

func (A *app) validate(args []string) int {
	fs := A.flags("validate")
	if !A.parse(fs, args, 1) {
		return 2
	}
	req := new(chemjson.CompoundRequest)
	if err := A.decode(fs.Arg(0), req); err != nil {
		return A.fail(err)
	}
	res := compound.NewValidator(A.table).Validate(req.Compound())
	logger.Info("compound validated", "status", res.Status, "formula", res.Formula)
	return A.send(chemjson.NewValidationReport(res))
}

func (A *app) template(args []string) int {
	fs := A.flags("template")
	length := fs.Int("length", 0, "chain length (0 for the default)")
	ring := fs.Int("ring", 0, "ring size for cycloalkanes (0 for the default)")
	position := fs.Int("position", 0, "position of the multiple bond or the hydroxyl (0 for the default)")
	if !A.parse(fs, args, 1) {
		return 2
	}
	t, err := chemgraph.ParseTemplateType(fs.Arg(0))
	if err != nil {
		return A.fail(chemjson.NewError("request", "template", err))
	}
	G, err := chemgraph.ApplyTemplateTable(A.table, t, chemgraph.TemplateParams{Length: *length, RingSize: *ring, Position: *position})
	if err != nil {
		return A.fail(chemjson.NewError("process", "template", err))
	}
	logger.Info("template built", "template", t, "atoms", G.Len(), "key", G.Key)
	return A.send(chemjson.FromGraph(G))
}

func (A *app) edit(args []string) int {
	fs := A.flags("edit")
	if !A.parse(fs, args, 2) {
		return 2
	}
	J := new(chemjson.Graph)
	if err := A.decode(fs.Arg(0), J); err != nil {
		return A.fail(err)
	}
	G, jerr := J.ToGraph(A.table)
	if jerr != nil {
		return A.fail(jerr)
	}
	req := new(chemjson.EditRequest)
	if err := A.decode(fs.Arg(1), req); err != nil {
		return A.fail(err)
	}
	edits, jerr := req.ToEdits()
	if jerr != nil {
		return A.fail(jerr)
	}
	G2, err := chemgraph.Apply(G, edits...)
	if err != nil {
		return A.fail(chemjson.NewError("process", "edit", err))
	}
	logger.Info("edits applied", "edits", len(edits), "status", G2.Status(), "key", G2.Key)
	for _, i := range G2.Issues() {
		logger.Debug("issue", "issue", i)
	}
	return A.send(chemjson.FromGraph(G2))
}

func (A *app) geometry(args []string) int {
	fs := A.flags("geometry")
	isCompound := fs.Bool("compound", false, "the input is a compound request, not a graph")
	dims := fs.Int("dims", A.cfg.Dimensions, "2 or 3 dimensions")
	bond := fs.Float64("bond", A.cfg.BondLength, "bond length")
	plotfile := fs.String("plot", "", "also draw the layout in this file (png, svg, pdf...)")
	if !A.parse(fs, args, 1) {
		return 2
	}
	R := geometry.NewResolver()
	R.Dimensions = *dims
	R.BondLength = *bond
	R.Center = chem.Point{X: A.cfg.CanvasX, Y: A.cfg.CanvasY, Z: A.cfg.CanvasZ}
	var res *geometry.Result
	var instances map[string]chemgraph.AtomID
	if *isCompound {
		req := new(chemjson.CompoundRequest)
		if err := A.decode(fs.Arg(0), req); err != nil {
			return A.fail(err)
		}
		entries, bonds := req.Compound()
		var err error
		res, instances, err = R.ResolveCompound(A.table, entries, bonds)
		if err != nil {
			return A.fail(chemjson.NewError("request", "geometry", err))
		}
	} else {
		J := new(chemjson.Graph)
		if err := A.decode(fs.Arg(0), J); err != nil {
			return A.fail(err)
		}
		G, jerr := J.ToGraph(A.table)
		if jerr != nil {
			return A.fail(jerr)
		}
		res = R.Resolve(G)
	}
	logger.Info("geometry resolved", "overall", res.Overall.Class, "centers", len(res.Centers))
	if len(res.Clashes) > 0 {
		logger.Warn("some atoms were placed too close", "clashes", len(res.Clashes))
	}
	if *plotfile != "" {
		if err := chemplot.Layout(res, fs.Arg(0), *plotfile); err != nil {
			return A.fail(chemjson.NewError("postprocess", "geometry", err))
		}
		logger.Debug("layout drawn", "file", *plotfile)
	}
	if instances != nil {
		return A.send(chemjson.NewCompoundGeometryReport(res, instances))
	}
	return A.send(chemjson.NewGeometryReport(res))
}
