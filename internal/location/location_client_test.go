package location_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JSON-FX/lgu-sso/internal/location"
	locationerrors "github.com/JSON-FX/lgu-sso/internal/location/errors"

	"github.com/stretchr/testify/assert"
)

func TestClient_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/regions", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`[{"code":"1000000000","name":"Region X (Northern Mindanao)"}]`))
		}))
		defer srv.Close()

		places, err := location.NewClient(srv.URL).List(ctx, "regions")

		assert.NoError(t, err)
		assert.Len(t, places, 1)
		assert.Equal(t, "1000000000", places[0].Code)
		assert.Equal(t, "Region X (Northern Mindanao)", places[0].Name)
	})

	t.Run("negative - malformed upstream body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer srv.Close()

		_, err := location.NewClient(srv.URL).List(ctx, "regions")

		assert.ErrorIs(t, err, locationerrors.ErrUpstreamUnavailable)
	})
}

func TestClient_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/provinces/1043000000", r.URL.Path)
			w.Write([]byte(`{"code":"1043000000","name":"Misamis Oriental"}`))
		}))
		defer srv.Close()

		place, err := location.NewClient(srv.URL).Get(ctx, "provinces/1043000000")

		assert.NoError(t, err)
		assert.Equal(t, "Misamis Oriental", place.Name)
	})

	t.Run("negative - unknown code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := location.NewClient(srv.URL).Get(ctx, "provinces/9999999999")

		assert.ErrorIs(t, err, locationerrors.ErrLocationNotFound)
	})

	t.Run("negative - upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := location.NewClient(srv.URL).Get(ctx, "provinces/1043000000")

		assert.ErrorIs(t, err, locationerrors.ErrUpstreamUnavailable)
	})

	t.Run("negative - unreachable upstream", func(t *testing.T) {
		_, err := location.NewClient("http://127.0.0.1:1").Get(ctx, "regions")

		assert.ErrorIs(t, err, locationerrors.ErrUpstreamUnavailable)
	})
}
