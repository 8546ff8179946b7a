package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homeBody = `{"data":{"StandardCollection":{
  "text":{"title":{"full":{"collection":{"default":{"content":"Home"}}}}},
  "containers":[
    {"set":{"setId":"s1","type":"CuratedSet","text":{"title":{"full":{"set":{"default":{"content":"New"}}}}},"items":[]}},
    {"set":{"refId":"r2","type":"SetRef","text":{"title":{"full":{"set":{"default":{"content":"Trending"}}}}}}}
  ]}}}`

const setBody = `{"data":{"TrendingSet":{"items":[{"contentId":"c1"},{"contentId":"c2"}]}}}`

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/home.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(homeBody))
	})
	mux.HandleFunc("/sets/r2.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(setBody))
	})
	mux.HandleFunc("/sets/bad.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchHome(t *testing.T) {
	srv := newCatalogServer(t)
	client := NewClient(srv.URL+"/home.json", srv.URL+"/sets", time.Second)

	home, err := client.FetchHome(context.Background())
	require.NoError(t, err)
	require.Len(t, home.Containers, 2)
	assert.Equal(t, "s1", home.Containers[0].ID())
	assert.True(t, home.Containers[0].Prepopulated())
	assert.Equal(t, "r2", home.Containers[1].ID())
	assert.False(t, home.Containers[1].Prepopulated())
}

func TestFetchSet(t *testing.T) {
	srv := newCatalogServer(t)
	client := NewClient(srv.URL+"/home.json", srv.URL+"/sets/", time.Second)

	items, err := client.FetchSet(context.Background(), "r2")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c1", items[0].ID())
	assert.Equal(t, "c2", items[1].ID())
}

func TestFetchSetStatusError(t *testing.T) {
	srv := newCatalogServer(t)
	client := NewClient(srv.URL+"/home.json", srv.URL+"/sets", time.Second)

	_, err := client.FetchSet(context.Background(), "missing")
	require.Error(t, err)
	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusNotFound, status.StatusCode)
	assert.Contains(t, err.Error(), "fetch set missing")
}

func TestFetchSetMalformed(t *testing.T) {
	srv := newCatalogServer(t)
	client := NewClient(srv.URL+"/home.json", srv.URL+"/sets", time.Second)

	_, err := client.FetchSet(context.Background(), "bad")
	require.ErrorIs(t, err, catalog.ErrMalformedSet)
}

func TestFetchSetWithoutPrefix(t *testing.T) {
	client := NewClient("http://example.invalid/home.json", "", time.Second)
	_, err := client.FetchSet(context.Background(), "x")
	require.ErrorIs(t, err, ErrNoSetsURL)
}

func TestSetURLEscapesID(t *testing.T) {
	client := NewClient("", "https://cdn.example/sets/", 0)
	got, err := client.SetURL("a b/c")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/sets/a%20b%2Fc.json", got)
}

func TestFetchHomeCancelled(t *testing.T) {
	srv := newCatalogServer(t)
	client := NewClient(srv.URL+"/home.json", srv.URL+"/sets", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.FetchHome(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
