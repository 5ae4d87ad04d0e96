package metadatarepo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_ParsesFirstMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		require.Equal(t, "Dune", r.URL.Query().Get("title"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title":"Dune","author":"Frank Herbert","year":"1965"}]`))
	}))
	defer srv.Close()

	r := &httpRepo{apiKey: "secret", baseURL: srv.URL, client: srv.Client()}
	facts, err := r.Lookup("Dune")
	require.NoError(t, err)
	require.NotNil(t, facts)
	require.Equal(t, "Frank Herbert", facts.Author)
	require.Equal(t, int16(1965), facts.Year)
}

func TestLookup_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	r := &httpRepo{apiKey: "k", baseURL: srv.URL, client: srv.Client()}
	facts, err := r.Lookup("nothing")
	require.NoError(t, err)
	require.Nil(t, facts)
}

func TestLookup_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := &httpRepo{apiKey: "k", baseURL: srv.URL, client: srv.Client()}
	_, err := r.Lookup("Dune")
	require.Error(t, err)
}
