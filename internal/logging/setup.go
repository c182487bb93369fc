package logging

import (
	"github.com/bokysan/base2n/internal/args"
	"github.com/bokysan/base2n/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures the global logrus logger from the general options
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)
	log.Debugf("Verbosity level: %v", VerbosityName())

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.WithStack(err))
		}
		log.SetOutput(f)
	}
}

// NewFormatter creates the logrus formatter for the given format ("json" or "text") and color setting
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}
	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: fullTimestamp,
	}
}

// NoColor returns true if the user asked for uncolored output
func NoColor() bool {
	color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
	return color == "no" || color == "false" || color == "0"
}
