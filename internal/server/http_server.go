package server

import (
	"context"
	"fmt"
	"github.com/bokysan/base2n/internal/util/addr"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

const (
	DefaultAddress     = ":8080"
	DefaultCacheSize   = 64
	DefaultMaxBodySize = 32 << 20
	shutdownTimeout    = 5 * time.Second
)

// Config holds the settings of the HTTP service
type Config struct {
	Address     string
	CacheSize   int
	MaxBodySize int64
}

// HttpServer exposes encoding and decoding over HTTP
type HttpServer struct {
	config  Config
	metrics *Metrics
	tables  *tableCache
	address *net.TCPAddr

	server   *http.Server
	listener net.Listener
	errs     chan error
}

// NewHttpServer creates the server. Missing configuration values are replaced by defaults.
func NewHttpServer(config Config) (*HttpServer, error) {
	if config.Address == "" {
		config.Address = DefaultAddress
	}
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = DefaultMaxBodySize
	}

	address, err := addr.ResolveHostAddress(config.Address)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics()
	tables, err := newTableCache(config.CacheSize, metrics)
	if err != nil {
		return nil, err
	}

	return &HttpServer{
		config:  config,
		metrics: metrics,
		tables:  tables,
		address: address,
	}, nil
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return fmt.Sprintf("http://%v", ws.listener.Addr())
	}
	return fmt.Sprintf("http://%v", ws.config.Address)
}

// Router builds the chi router with all endpoints and middleware
func (ws *HttpServer) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(ws.address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	router.Post("/encode", ws.handleEncode)
	router.Post("/decode", ws.handleDecode)
	router.Get("/tables", ws.handleListTables)
	router.Get("/tables/{preset}", ws.handleTable)
	router.Method(http.MethodGet, "/metrics", ws.metrics.Handler())

	return router
}

// Startup starts listening and serves requests in the background
func (ws *HttpServer) Startup() error {
	ws.server = &http.Server{
		Addr:    ws.config.Address,
		Handler: ws.Router(),
	}

	ln, err := net.Listen("tcp", ws.server.Addr)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.server.Addr)
	}
	ws.listener = ln
	ws.errs = make(chan error, 1)

	go func() {
		log.Infof("Starting HTTP server at %v", ws)
		if err := ws.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.Wrapf(err, "Server %v stopped", ws)
			log.WithError(err).Errorf("Could not serve requests: %v", err)
			ws.errs <- err
		}
	}()

	return nil
}

// Errors receives the error that stopped the server after a successful Startup. Nothing is sent
// on a regular Shutdown.
func (ws *HttpServer) Errors() <-chan error {
	return ws.errs
}

// Shutdown stops the server, waiting for running requests for at most five seconds
func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
