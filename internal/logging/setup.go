package logging

import (
	"os"
	"strings"

	"github.com/bokysan/multibase/internal/args"
	"github.com/bokysan/multibase/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the global logrus logger from the general options. Commands call it
// first thing in their Execute, after the configuration file has been read.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   isYes(color),
			DisableColors: isNo(color),
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.Wrapf(err, "Could not open log file %v", *args.General.LogFile))
		}
		log.SetOutput(f)
	} else {
		log.SetOutput(os.Stderr)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

// NoColor returns true if the user explicitly turned off colored output
func NoColor() bool {
	return isNo(strings.TrimSpace(strings.ToLower(args.General.LogColor)))
}

func isYes(s string) bool {
	return s == "yes" || s == "true" || s == "1"
}

func isNo(s string) bool {
	return s == "no" || s == "false" || s == "0"
}
