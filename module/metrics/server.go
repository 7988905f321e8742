package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	metricsEndpoint = "/metrics"
	healthEndpoint  = "/health"
)

// Server serves prometheus metrics of the process, a liveness endpoint and
// optionally the pprof handlers.
type Server struct {
	server   *http.Server
	log      zerolog.Logger
	listener net.Listener
}

// NewServer creates a server for the given port. Port 0 picks a free port,
// which is available through Addr once the server is ready.
func NewServer(log zerolog.Logger, port uint, gatherer prometheus.Gatherer, enableProfilerEndpoint bool) *Server {
	addr := ":" + strconv.FormatUint(uint64(port), 10)

	mux := http.NewServeMux()
	mux.Handle(metricsEndpoint, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc(healthEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if enableProfilerEndpoint {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}

	return &Server{
		server: &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second},
		log:    log.With().Str("component", "metrics_server").Logger(),
	}
}

// Ready binds the listening socket and starts serving in the background. The
// returned channel is closed once requests are accepted. If the socket
// cannot be bound, the error is logged and the channel is closed as well.
func (m *Server) Ready() <-chan struct{} {
	ready := make(chan struct{})
	defer close(ready)

	listener, err := net.Listen("tcp", m.server.Addr)
	if err != nil {
		m.log.Err(err).Str("address", m.server.Addr).Msg("could not start metrics server")
		return ready
	}
	m.listener = listener
	m.log.Info().Str("address", listener.Addr().String()).Str("endpoint", metricsEndpoint).Msg("metrics server started")

	go func() {
		err := m.server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			m.log.Debug().Msg("metrics server shutdown")
			return
		}
		m.log.Err(err).Msg("metrics server failed")
	}()
	return ready
}

// Addr returns the address the server listens on, or nil before it is ready.
func (m *Server) Addr() net.Addr {
	if m.listener == nil {
		return nil
	}
	return m.listener.Addr()
}

// Done returns a channel that will close when shutdown is complete.
func (m *Server) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := m.server.Shutdown(ctx)
		if err != nil {
			m.log.Warn().Err(err).Msg("metrics server did not shut down cleanly")
		}
	}()
	return done
}
