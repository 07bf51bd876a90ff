package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"postanalyzer/internal/platform/config"
	perr "postanalyzer/internal/platform/errors"
	"postanalyzer/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// DefaultAddr is where the service listens unless ADDR says otherwise
const DefaultAddr = ":8001"

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr         string
	mux          *chi.Mux
	srv          *stdhttp.Server
	drainTimeout time.Duration
}

// NewServer creates a server reading ADDR and SHUTDOWN_TIMEOUT from cfg
// opts receive the *chi.Mux so callers can tune it before routes are added
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayAddr("ADDR", DefaultAddr)
	m := chi.NewRouter()

	// unknown routes and methods answer in the same JSON error shape
	m.NotFound(Handle(func(*stdhttp.Request) Response {
		return Error(perr.NotFoundf("Not Found"))
	}))
	m.MethodNotAllowed(Handle(func(*stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusMethodNotAllowed, Body: ErrorDetail("Method Not Allowed")}
	}))

	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:         addr,
		mux:          m,
		drainTimeout: cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listening address
func (s *Server) Addr() string { return s.addr }

// Run listens on Addr and blocks until ctx is cancelled or the listener fails
// on cancellation in-flight requests get drainTimeout to finish
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over a caller supplied listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Dur("drain", s.drainTimeout).Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
