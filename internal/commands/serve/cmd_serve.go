package serve

import (
	"github.com/bokysan/base2n/internal/logging"
	"github.com/bokysan/base2n/internal/server"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Command runs the HTTP service until interrupted
type Command struct {
	Address     string `json:"address"     short:"a" long:"address"       env:"BASE2N_ADDRESS"       description:"Listen address" default:":8080"`
	CacheSize   int    `json:"cacheSize"             long:"cache-size"    env:"BASE2N_CACHE_SIZE"    description:"Number of tables kept in memory" default:"64"`
	MaxBodySize int64  `json:"maxBodySize"           long:"max-body-size" env:"BASE2N_MAX_BODY_SIZE" description:"Largest accepted request body in bytes" default:"33554432"`

	srv *server.HttpServer
}

func (s *Command) Startup() error {
	srv, err := server.NewHttpServer(server.Config{
		Address:     s.Address,
		CacheSize:   s.CacheSize,
		MaxBodySize: s.MaxBodySize,
	})
	if err != nil {
		return err
	}
	s.srv = srv
	return srv.Startup()
}

func (s *Command) Shutdown() error {
	var errs error

	log.Infof("Graceful server shutdown...")
	if s.srv != nil {
		if err := s.srv.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v", s.srv))
		}
	}

	return errs
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)

	if err := s.Startup(); err != nil {
		return err
	}

	return s.wait(interrupted, s.srv.Errors())
}

// wait blocks until the process is interrupted or the server fails, then shuts the server down
func (s *Command) wait(interrupted <-chan os.Signal, failed <-chan error) error {
	select {
	case sig := <-interrupted:
		log.Debugf("Received %v", sig)
		return s.Shutdown()
	case err := <-failed:
		var errs error = err
		if shutdownErr := s.Shutdown(); shutdownErr != nil {
			errs = multierror.Append(errs, shutdownErr)
		}
		return errs
	}
}
