// Package dijkstra finds the cheapest climb across a heightmap.Grid.
//
// Overview:
//
//   - ShortestPath runs a single-source search from one cell to a target.
//     Every legal step (see heightmap.Grid.CanStep) costs StepCost.
//   - MultiSource runs one search per cell at the grid's minimum elevation
//     and keeps the cheapest reachable result. The grid's search state is
//     reset before every run; elevations are never rebuilt.
//   - EachLowest returns every per-start result of that sweep.
//
// The frontier is a binary min-heap of (cell, distance) entries with lazy
// deletion: an improved distance pushes a duplicate entry and stale entries
// are dropped when popped, because their cell is already visited. The search
// stops as soon as the target is popped.
//
// An unreachable target is not an error. It is reported through
// Result.Reachable == false and a zero Cost.
//
// Options:
//
//   - WithReturnPath(): fill Result.Path with the route, start to target.
//   - WithMaxDistance(n): do not expand cells farther than n.
//   - WithLogger(l): trace pops and relaxations at debug level.
//
// Complexity:
//
//   - Time:  O(V log V + E) per run, V = W×H, E ≤ 4V.
//   - Space: O(V) for the heap (each cell enters it at most 4 times).
package dijkstra
