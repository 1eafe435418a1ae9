// internal/adapters/in/http/router_test.go
package httpin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterUnknownRouteEnvelope(t *testing.T) {
	router := NewRouter(Deps{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body["data"])
	assert.Equal(t, "Route not found /nope", body["error"])
}

func TestRouterRegistersPublicRoutes(t *testing.T) {
	hit := false
	router := NewRouter(Deps{
		Search: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit = true
			w.WriteHeader(http.StatusOK)
		}),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?searchTerm=x", nil))

	assert.True(t, hit)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterAuthedRoutesRejectWithoutVerifier(t *testing.T) {
	router := NewRouter(Deps{
		Cart: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("cart handler must not be reached without a verifier")
		}),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
