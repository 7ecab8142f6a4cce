// Package cmd wires the mstbench command tree: generate writes a JSON
// dataset, analyze benchmarks it into a JSON report and a console table, and
// run does both.
package cmd
