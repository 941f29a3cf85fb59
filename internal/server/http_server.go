package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bokysan/multibase/internal/util/addr"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultMaxBody is the largest request body accepted if not configured otherwise
	DefaultMaxBody = 1024 * 1024
	// ShutdownTimeout is how long in-flight requests get to finish on shutdown
	ShutdownTimeout = 5 * time.Second
)

// HttpServer serves the encode / decode API
type HttpServer struct {
	Address string `json:"address" yaml:"address"`
	MaxBody int64  `json:"maxBody" yaml:"maxBody"`

	server   *http.Server
	listener net.Listener
}

func NewHttpServer(address string) *HttpServer {
	return &HttpServer{
		Address: address,
		MaxBody: DefaultMaxBody,
	}
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return fmt.Sprintf("http://%s", ws.listener.Addr().String())
	}
	return fmt.Sprintf("http://%s", ws.Address)
}

// Router builds the handler with all the middleware and API routes
func (ws *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	api := &Api{MaxBody: ws.MaxBody}
	router.Get("/bases", api.Bases)
	router.Post("/encode/{base}", api.Encode)
	router.Post("/decode", api.Decode)

	return router
}

// Startup binds the listening socket and starts serving in the background. It returns as soon as
// the socket is bound.
func (ws *HttpServer) Startup() error {
	address, err := addr.ResolveHostAddress(ws.Address)
	if err != nil {
		return errors.WithStack(err)
	}
	if ws.MaxBody <= 0 {
		ws.MaxBody = DefaultMaxBody
	}

	ws.listener, err = net.Listen("tcp", address.String())
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	if tcp, ok := ws.listener.Addr().(*net.TCPAddr); ok {
		address = tcp
	}

	ws.server = &http.Server{
		Addr:    address.String(),
		Handler: ws.Router(address),
	}

	go func() {
		log.Infof("Starting HTTP server at %v", ws)
		if err := ws.server.Serve(ws.listener); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

// Shutdown stops the server, waiting up to ShutdownTimeout for open requests
func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
