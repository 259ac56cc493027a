package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kabu1204/go-sorting/bench"
	"github.com/kabu1204/go-sorting/internal/flags"
	"github.com/kabu1204/go-sorting/metrics"
)

var errVerificationFailed = errors.New("one or more sorters failed verification")

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sort every selected workload with every selected algorithm",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	flags.RegisterRunFlags(cmd)

	return cmd
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, err := flags.BenchConfig(cmd.Flags())
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	m, err := metrics.NewWithRegistry(registry)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg, m)
	if err != nil {
		return err
	}

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeReport(out, report); err != nil {
		return err
	}

	dumpMetrics, err := cmd.Flags().GetBool("metrics")
	if err != nil {
		return err
	}
	if dumpMetrics {
		if err := writeMetrics(out, registry); err != nil {
			return err
		}
	}

	if failed := report.Failed(); len(failed) > 0 {
		for _, res := range failed {
			logrus.WithError(res.Err).WithFields(logrus.Fields{
				"algorithm": res.Algorithm,
				"workload":  res.Workload,
				"size":      res.Size,
			}).Error("Sort produced a wrong result")
		}

		return fmt.Errorf("%w: %d of %d runs", errVerificationFailed, len(failed), report.Len())
	}

	return nil
}

func writeReport(out io.Writer, report *bench.Report) error {
	pass := color.New(color.FgGreen).Sprint("PASS")
	fail := color.New(color.FgRed).Sprint("FAIL")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tWORKLOAD\tSIZE\tCOMPARISONS\tDURATION\tRESULT")
	for _, res := range report.Results() {
		status := pass
		if res.Err != nil {
			status = fail
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			res.Algorithm, res.Workload, res.Size, res.Comparisons, res.Duration, status)
	}

	return tw.Flush()
}

func writeMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
