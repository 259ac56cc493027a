package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sorting/internal/flags"
	"github.com/kabu1204/go-sorting/sorter"
	"github.com/kabu1204/go-sorting/types"
)

func newSortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [flags] NUMBER...",
		Short: "Sort integers given as arguments and print them",
		RunE:  sortArgs,
	}
	flags.RegisterSortFlags(cmd)

	return cmd
}

func sortArgs(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return err
	}
	alg, err := sorter.ParseAlgorithm(name)
	if err != nil {
		return err
	}

	descending, err := cmd.Flags().GetBool("descending")
	if err != nil {
		return err
	}
	order := types.Ascending[int]()
	if descending {
		order = types.Descending[int]()
	}

	values := make([]int, len(args))
	for i, arg := range args {
		if values[i], err = strconv.Atoi(arg); err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
	}

	s, err := sorter.New(alg, order)
	if err != nil {
		return err
	}
	s.Sort(values)

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))

	return err
}
