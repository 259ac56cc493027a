package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kabu1204/go-sorting/bench"
	"github.com/kabu1204/go-sorting/sorter"
)

var (
	errSetFlagFailed    = errors.New("failed to read flag")
	errInvalidLogLevel  = errors.New("invalid log level")
	errInvalidLogFormat = errors.New("invalid log format")
)

const defaultSeed = 20240601

var defaultSizes = []int{10, 100, 1000}

// SetDefaults installs the environment-backed defaults every flag falls
// back to.
func SetDefaults() {
	viper.AutomaticEnv()
	viper.SetDefault("SORTBENCH_LOG_LEVEL", "info")
	viper.SetDefault("SORTBENCH_LOG_FORMAT", "auto")
	viper.SetDefault("SORTBENCH_SEED", defaultSeed)
	viper.SetDefault("SORTBENCH_WORKERS", 0)
	viper.SetDefault("SORTBENCH_ALGORITHM", "quick")
}

// RegisterSystemFlags adds the logging flags shared by every subcommand.
func RegisterSystemFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.StringP(
		"log-level",
		"l",
		envString("SORTBENCH_LOG_LEVEL"),
		"The maximum log level that will be written to STDERR. Possible values: panic, fatal, error, warn, info, debug or trace")

	flags.String(
		"log-format",
		envString("SORTBENCH_LOG_FORMAT"),
		"Sets what logging format to use for console output. Possible values: Auto, LogFmt, Pretty, JSON")

	flags.Bool(
		"no-color",
		viper.IsSet("NO_COLOR"),
		"Disable ANSI color escape codes in log and report output")
}

// RegisterRunFlags adds the benchmark selection flags.
func RegisterRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringSliceP(
		"algorithms",
		"a",
		nil,
		"Algorithms to run. Defaults to every real sorter")

	flags.StringSliceP(
		"workloads",
		"w",
		nil,
		"Input shapes to generate: random, sorted, reversed, few-unique, all-equal. Defaults to all")

	flags.IntSliceP(
		"sizes",
		"n",
		defaultSizes,
		"Input lengths to generate")

	flags.Uint64(
		"seed",
		uint64(envInt("SORTBENCH_SEED")),
		"Seed for input generation and pivot selection")

	flags.Int(
		"workers",
		envInt("SORTBENCH_WORKERS"),
		"Number of concurrent sort tasks. Defaults to GOMAXPROCS")

	flags.Bool(
		"include-fake",
		false,
		"Also run the stub sorter, which is expected to fail")

	flags.Bool(
		"metrics",
		false,
		"Write the collected Prometheus metrics to STDOUT after the report")
}

// RegisterSortFlags adds the flags of the sort subcommand.
func RegisterSortFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(
		"algorithm",
		"a",
		envString("SORTBENCH_ALGORITHM"),
		"Algorithm used to sort the arguments")

	cmd.Flags().Bool(
		"descending",
		false,
		"Sort from largest to smallest")
}

func envString(key string) string {
	viper.MustBindEnv(key)

	return viper.GetString(key)
}

func envInt(key string) int {
	viper.MustBindEnv(key)

	return viper.GetInt(key)
}

// logFormatters builds the logrus formatter for each --log-format value.
// The bool argument reports whether colors were disabled.
var logFormatters = map[string]func(noColor bool) logrus.Formatter{
	"auto": func(noColor bool) logrus.Formatter {
		return &logrus.TextFormatter{DisableColors: noColor, EnvironmentOverrideColors: true}
	},
	"pretty": func(noColor bool) logrus.Formatter {
		return &logrus.TextFormatter{ForceColors: !noColor, DisableColors: noColor}
	},
	"logfmt": func(bool) logrus.Formatter {
		return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	},
	"json": func(bool) logrus.Formatter {
		return &logrus.JSONFormatter{}
	},
}

type logOptions struct {
	level   logrus.Level
	format  func(noColor bool) logrus.Formatter
	noColor bool
}

func readLogOptions(flags *pflag.FlagSet) (logOptions, error) {
	var opts logOptions

	rawLevel, err := flags.GetString("log-level")
	if err != nil {
		return opts, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}
	if opts.level, err = logrus.ParseLevel(rawLevel); err != nil {
		return opts, fmt.Errorf("%w: %w", errInvalidLogLevel, err)
	}

	rawFormat, err := flags.GetString("log-format")
	if err != nil {
		return opts, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}
	var ok bool
	if opts.format, ok = logFormatters[strings.ToLower(rawFormat)]; !ok {
		return opts, fmt.Errorf("%w: %q", errInvalidLogFormat, rawFormat)
	}

	if opts.noColor, err = flags.GetBool("no-color"); err != nil {
		return opts, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	return opts, nil
}

// SetupLogging applies --log-level, --log-format and --no-color to the
// standard logger. Nothing changes when any of them is invalid.
func SetupLogging(flags *pflag.FlagSet) error {
	opts, err := readLogOptions(flags)
	if err != nil {
		return err
	}

	logrus.SetFormatter(opts.format(opts.noColor))
	logrus.SetLevel(opts.level)

	return nil
}

// BenchConfig builds a bench.Config from the run flags.
func BenchConfig(flags *pflag.FlagSet) (bench.Config, error) {
	var cfg bench.Config

	names, err := flags.GetStringSlice("algorithms")
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}
	for _, name := range names {
		alg, err := sorter.ParseAlgorithm(name)
		if err != nil {
			return cfg, err
		}
		cfg.Algorithms = append(cfg.Algorithms, alg)
	}

	includeFake, err := flags.GetBool("include-fake")
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}
	if includeFake {
		if len(cfg.Algorithms) == 0 {
			cfg.Algorithms = sorter.Algorithms()
		}
		cfg.Algorithms = append(cfg.Algorithms, sorter.Fake)
	}

	names, err = flags.GetStringSlice("workloads")
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}
	for _, name := range names {
		w, err := bench.ParseWorkload(name)
		if err != nil {
			return cfg, err
		}
		cfg.Workloads = append(cfg.Workloads, w)
	}

	if cfg.Sizes, err = flags.GetIntSlice("sizes"); err != nil {
		return cfg, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}
	if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
		return cfg, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}
	if cfg.Workers, err = flags.GetInt("workers"); err != nil {
		return cfg, fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	return cfg, nil
}
