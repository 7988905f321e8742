package rest

import (
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/onflow/flow-crowdfund/custody"
	"github.com/onflow/flow-crowdfund/engine/api/rest/middleware"
	"github.com/onflow/flow-crowdfund/engine/api/rest/routes"
	"github.com/onflow/flow-crowdfund/module"
	"github.com/onflow/flow-crowdfund/module/signature"
)

// Config holds the listen address and the CORS policy of the REST server.
type Config struct {
	ListenAddress  string
	AllowedOrigins []string
}

// NewServer returns an HTTP server initialized with the REST API handler
func NewServer(
	backend custody.API,
	config Config,
	logger zerolog.Logger,
	verifier signature.Verifier,
	restCollector module.RestMetrics,
) (*http.Server, error) {
	logger = logger.With().Str("component", "rest_api").Logger()
	router, err := routes.NewRouter(backend, logger, verifier, restCollector)
	if err != nil {
		return nil, err
	}

	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodHead},
	})

	return &http.Server{
		Addr:         config.ListenAddress,
		Handler:      c.Handler(router),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}, nil
}
