package server

import (
	"net"
	"net/http"

	"github.com/bokysan/multibase/internal/args"
	"github.com/bokysan/multibase/internal/logging"
	"github.com/go-chi/chi/middleware"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the access log middleware matching the configured log format
func GetRequestLogger(address *net.TCPAddr) (logger NextHandlerFunc) {
	if args.General.LogFormat == "json" {
		logger = middleware.RequestLogger( // Write requests to log
			&logging.JSONLogFormatter{
				ServerAddress: address,
			},
		)
	} else {
		logger = middleware.RequestLogger( // Write requests to log
			&middleware.DefaultLogFormatter{
				Logger:  &logging.ChiLogWriter{},
				NoColor: logging.NoColor(),
			},
		)
	}

	return
}
