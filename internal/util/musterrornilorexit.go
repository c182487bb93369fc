package util

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrGeneric = 99
)

// MustErrorNilOrExit returns if err is nil. Otherwise it logs the error at fatal level and exits.
// The exit code is the type of a (possibly wrapped) flags.Error, or ErrGeneric for any other error.
// A help request exits with 0.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
			return
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}
}
