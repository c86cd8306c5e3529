// Package aoc2022 collects puzzle solvers built around two reusable cores.
//
// Under the hood, everything is organized under these subpackages:
//
//	input/       text to trimmed lines and blank-line separated blocks
//	heightmap/   letter grids as elevation graphs, with resettable search state
//	bfs/         breadth-first depths over legal moves
//	dijkstra/    cheapest climb across a heightmap, single and multi-source
//	packet/      nested integer lists: parser, ordering, pairs, decoder key
//	internal/    day registry, HCL batch manifests, logging, command tree
//	cmd/advent/  the command-line driver
//
// Quick example:
//
//	g, _ := heightmap.Parse(lines)
//	res, _ := dijkstra.ShortestPath(g, g.Start, g.End)
//	fmt.Println(res.Cost)
//
//	go run ./cmd/advent solve --day 12 --input day12.txt
package aoc2022
