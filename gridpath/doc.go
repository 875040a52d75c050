// Package gridpath enumerates every monotone grid path from a start cell
// to a target cell under a limit on consecutive moves in one direction.
//
// What:
//
//   - Search walks depth-first from start toward target, only ever taking
//     moves that shrink the remaining gap on their axis (E, W, N, S).
//   - A move is rejected when it would extend a run of identical
//     directions beyond MaxRun.
//   - Results are collected in a PathSet: distinct paths in discovery order.
//   - Explorer owns a configuration plus the last discovered PathSet.
//   - CountPaths computes the same total without enumerating.
//
// Why:
//
//   - Route planning where traffic rules forbid long straight runs
//     (warehouse aisles, one-way corridors, robot wear levelling).
//   - Enumerating candidate routes before scoring them elsewhere.
//
// Complexity:
//
//   - Search:     O(P×L) time, O(P×L) memory (P = paths found, L = dx+dy).
//     Recursion depth is bounded by L.
//   - CountPaths: O(dx×dy) time, O(min(MaxRun, L)×S) memory, where L and S
//     are the longer and shorter of dx and dy.
//
// Options:
//
//   - WithContext(ctx)  cancellation, checked at every node.
//   - WithOnPath(fn)    hook invoked on each newly discovered path; error aborts.
//   - WithLimit(n)      stop after n distinct paths.
//   - WithStrict()      reject non-positive MaxRun and negative coordinates.
//
// Errors:
//
//   - ErrNonPositiveMaxRun:  MaxRun <= 0 under WithStrict.
//   - ErrNegativeCoordinate: a negative coordinate under WithStrict.
//   - ErrBadSymbol:          ParsePath met a byte other than N, S, E, W.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//   - any error returned by the OnPath hook.
package gridpath
