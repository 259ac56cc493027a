// Command sortbench runs the in-place sorters against generated workloads,
// verifies every result and reports comparison counts and timings.
package main

import (
	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Fatal("sortbench failed")
	}
}
