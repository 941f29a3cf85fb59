package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bokysan/multibase/internal/logging"
	"github.com/bokysan/multibase/internal/server"
	"github.com/bokysan/multibase/internal/util"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command runs the HTTP encode / decode API
type Command struct {
	Listen  []string `yaml:"listen"  short:"L" long:"listen"   env:"MULTIBASE_LISTEN" env-delim:" " description:"Address to listen on, e.g. '127.0.0.1:8080'. Can be given multiple times or as a comma separated list." default:"127.0.0.1:8080"`
	MaxBody int64    `yaml:"maxBody"           long:"max-body" env:"MULTIBASE_MAX_BODY"           description:"Largest accepted request body, in bytes" default:"1048576"`

	servers []*server.HttpServer
}

func NewCommand() *Command {
	return &Command{
		MaxBody: server.DefaultMaxBody,
	}
}

func (s *Command) String() string {
	return "HTTP API"
}

// Startup starts a server on every listen address. If any of them fails, the ones already started
// are shut down again.
func (s *Command) Startup() error {
	var errs error
	for _, address := range s.addresses() {
		srv := server.NewHttpServer(address)
		srv.MaxBody = s.MaxBody
		if err := srv.Startup(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not start server on %v", address))
			continue
		}
		s.servers = append(s.servers, srv)
	}

	if errs != nil {
		if err := s.Shutdown(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// addresses expands comma separated values of --listen
func (s *Command) addresses() []string {
	res := make([]string, 0, len(s.Listen))
	for _, l := range s.Listen {
		res = append(res, util.SplitField(l)...)
	}
	return res
}

func (s *Command) Shutdown() error {
	var errs error

	log.Infof("Graceful server shutdown...")
	for _, srv := range s.servers {
		log.Debugf("[Server] Shutting down %v", srv)
		if err := srv.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v", srv))
		}
	}
	s.servers = nil

	return errs
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	if len(s.addresses()) == 0 {
		return errors.New("No listen address given")
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	if err := s.Startup(); err != nil {
		return err
	}

	<-interrupted
	return s.Shutdown()
}
