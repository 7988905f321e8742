package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	httpmiddleware "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"

	"github.com/onflow/flow-crowdfund/module"
)

const unknownRoute = "unknown"

// MetricsMiddleware records request count, latency and response size per
// named route.
func MetricsMiddleware(restCollector module.RestMetrics) mux.MiddlewareFunc {
	metricsMiddleware := httpmiddleware.New(httpmiddleware.Config{Recorder: restCollector})
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			routeName := routeName(req)
			restCollector.AddTotalRequests(req.Context(), req.Method, routeName)

			// wraps the handler so the go-http-metrics recorder observes it under the route name
			handler := std.Handler(routeName, metricsMiddleware, next)
			handler.ServeHTTP(w, req)
		})
	}
}

func routeName(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return unknownRoute
	}
	name := route.GetName()
	if name == "" {
		return unknownRoute
	}
	return name
}
