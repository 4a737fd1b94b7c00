package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstream(name string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, name+" "+r.URL.RequestURI())
	}))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewHandler_RoutesByPrefix(t *testing.T) {
	api := upstream("api")
	defer api.Close()
	web := upstream("web")
	defer web.Close()

	h, err := NewHandler(Routes(config.GatewayConfig{
		CatalogServiceURL: api.URL,
		WebFrontendURL:    web.URL,
	}))
	require.NoError(t, err)

	w := get(t, h, "/api/plants?search=rose")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "api /api/plants?search=rose", w.Body.String())

	w = get(t, h, "/api")
	assert.Equal(t, "api /api", w.Body.String())

	w = get(t, h, "/api?x=1")
	assert.Equal(t, "api /api?x=1", w.Body.String())

	w = get(t, h, "/apiary")
	assert.Equal(t, "web /apiary", w.Body.String())

	w = get(t, h, "/?category=Indoor")
	assert.Equal(t, "web /?category=Indoor", w.Body.String())

	w = get(t, h, "/admin/add-plant")
	assert.Equal(t, "web /admin/add-plant", w.Body.String())
}

func TestNewHandler_UpstreamDown(t *testing.T) {
	dead := upstream("dead")
	dead.Close()

	h, err := NewHandler([]Route{{Prefix: "/api/", Target: dead.URL}})
	require.NoError(t, err)

	w := get(t, h, "/api/plants")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Service unavailable")
}

func TestNewHandler_InvalidRoutes(t *testing.T) {
	_, err := NewHandler(nil)
	assert.Error(t, err)

	_, err = NewHandler([]Route{{Prefix: "/api/", Target: "localhost:5001"}})
	assert.Error(t, err)

	_, err = NewHandler([]Route{{Prefix: "/api/", Target: "http://[::1"}})
	assert.Error(t, err)
}
