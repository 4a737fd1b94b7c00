package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

// Route forwards requests matching Prefix to Target with the path unchanged.
// Prefix follows ServeMux rules: a trailing slash matches the whole subtree,
// otherwise only that exact path.
type Route struct {
	Prefix string
	Target string
}

// Routes maps the browser-facing origin onto the catalog API and the web
// frontend.
func Routes(cfg config.GatewayConfig) []Route {
	return []Route{
		{Prefix: "/api", Target: cfg.CatalogServiceURL},
		{Prefix: "/api/", Target: cfg.CatalogServiceURL},
		{Prefix: "/", Target: cfg.WebFrontendURL},
	}
}

func newSingleHostReverseProxy(targetHost string) (*httputil.ReverseProxy, error) {
	targetURL, err := url.Parse(targetHost)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target URL '%s': %w", targetHost, err)
	}
	if targetURL.Scheme == "" || targetURL.Host == "" {
		return nil, fmt.Errorf("target URL '%s' must be absolute", targetHost)
	}

	proxy := httputil.NewSingleHostReverseProxy(targetURL)
	proxy.ErrorHandler = func(rw http.ResponseWriter, req *http.Request, err error) {
		logger.Error("Gateway: proxy error for %s %s to %s", err, req.Method, req.URL.Path, targetURL)
		http.Error(rw, "Service unavailable or proxy error", http.StatusBadGateway)
	}
	return proxy, nil
}

// NewHandler builds a mux with one reverse proxy per route. ServeMux picks
// the longest matching prefix.
func NewHandler(routes []Route) (http.Handler, error) {
	if len(routes) == 0 {
		return nil, errors.New("gateway needs at least one route")
	}

	mux := http.NewServeMux()
	for _, route := range routes {
		proxy, err := newSingleHostReverseProxy(route.Target)
		if err != nil {
			return nil, fmt.Errorf("could not route %s: %w", route.Prefix, err)
		}
		mux.Handle(route.Prefix, proxy)
		logger.Info("Routing %s to %s", route.Prefix, route.Target)
	}
	return mux, nil
}
