// Package flags registers the sortbench command-line flags, resolves their
// defaults from SORTBENCH_* environment variables through viper, and turns
// them into logging setup and benchmark configuration.
package flags
