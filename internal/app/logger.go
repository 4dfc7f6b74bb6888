package app

import (
	"io"

	"github.com/blackwell-systems/incpath/includepath"
	"github.com/blackwell-systems/incpath/internal/output"
	"github.com/sirupsen/logrus"
)

// newLogger returns a logger on w. Only warnings are shown unless verbose.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    output.IsNoColor(),
	})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// traceProbes logs each candidate the resolver examines at debug level.
func traceProbes(log logrus.FieldLogger) func(includepath.Probe) {
	return func(p includepath.Probe) {
		entry := log.WithFields(logrus.Fields{
			"dir":       p.Dir,
			"candidate": p.Candidate,
			"exists":    p.Exists,
		})
		switch {
		case p.Resolved != "":
			entry.WithField("resolved", p.Resolved).Debug("hit")
		case p.Err != nil:
			entry.WithError(p.Err).Debug("cannot canonicalize, skipped")
		default:
			entry.Debug("miss")
		}
	}
}
