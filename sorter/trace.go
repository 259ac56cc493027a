package sorter

import "github.com/sirupsen/logrus"

func traceSort(alg Algorithm, length int) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	logrus.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"length":    length,
	}).Debug("Sorting")
}
