// Package bench runs every selected sorter over generated workloads,
// checks each result against the order and permutation properties and a
// reference sort, and collects an ordered report.
//
// Each task owns its input, its copy and its sorter, so tasks run
// concurrently on an ants worker pool without sharing mutable state.
package bench
