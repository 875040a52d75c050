// Package gridwalk enumerates constrained routes on an integer grid.
//
// What is gridwalk?
//
//	A small library plus CLI that lists every route from a start cell to a
//	target cell when routes:
//		• only ever move toward the target (E, W, N, S)
//		• never repeat one direction more than MaxRun times in a row
//
// Under the hood:
//
//	gridpath/         — Position, Direction, Path, PathSet, Search, Explorer, CountPaths
//	internal/config/  — YAML / JSONC defaults for the CLI
//	internal/cli/     — cobra command, text/json/yaml rendering
//	cmd/gridwalk/     — the executable
//
// Quick ASCII example (MaxRun = 2):
//
//	. . T
//	. . .      EENN ENEN ENNE
//	S . .      NEEN NENE NNEE
//
//	go install github.com/katalvlaran/gridwalk/cmd/gridwalk@latest
package gridwalk
