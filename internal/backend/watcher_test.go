package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, w *Watcher, n int) []Event {
	t.Helper()
	var got []Event
	timeout := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case evt := <-w.Events():
			got = append(got, evt)
		case <-timeout:
			t.Fatalf("timed out waiting for %d events, got %d", n, len(got))
		}
	}
	return got
}

func TestWatcherReportsOnlyFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.jpg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("img"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	w := NewWatcher(WatcherOptions{Loader: HTTPImageLoader{Client: srv.Client()}, Workers: 2})
	require.True(t, w.Submit("good", srv.URL+"/ok.jpg"))
	require.True(t, w.Submit("broken", srv.URL+"/missing.jpg"))

	got := collect(t, w, 1)
	assert.Equal(t, KindImage, got[0].Kind)
	assert.Equal(t, "broken", got[0].TileID)
	assert.Equal(t, srv.URL+"/missing.jpg", got[0].URL)
	var status *StatusError
	assert.ErrorAs(t, got[0].Err, &status)

	w.Stop()
	w.Wait()
	_, open := <-w.Events()
	assert.False(t, open, "events channel closes after Wait")
}

func TestWatcherSkipsPlaceholderAndDuplicates(t *testing.T) {
	var calls int32
	loader := ImageLoaderFunc(func(ctx context.Context, url string) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("nope")
	})
	w := NewWatcher(WatcherOptions{Loader: loader})
	assert.False(t, w.Submit("a", ""))
	assert.False(t, w.Submit("a", grid.PlaceholderImage))
	assert.True(t, w.Submit("a", "https://img/a"))
	assert.False(t, w.Submit("a", "https://img/a"))
	assert.True(t, w.Submit("b", "https://img/a"), "same url on another tile is probed")

	collect(t, w, 2)
	w.Stop()
	w.Wait()
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestWatcherRejectsAfterStop(t *testing.T) {
	w := NewWatcher(WatcherOptions{Loader: ImageLoaderFunc(func(context.Context, string) error { return nil })})
	w.Stop()
	assert.False(t, w.Submit("a", "https://img/a"))
	w.Wait()
}

func TestWatcherBoundsConcurrency(t *testing.T) {
	var inFlight, peak int32
	release := make(chan struct{})
	loader := ImageLoaderFunc(func(ctx context.Context, url string) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		<-release
		atomic.AddInt32(&inFlight, -1)
		return errors.New("fail")
	})
	w := NewWatcher(WatcherOptions{Loader: loader, Workers: 2})
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		w.Submit(id, "https://img/"+id)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	collect(t, w, 5)
	w.Stop()
	w.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestThrottleWaitHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, th.wait(ctx))
	cancel()
	assert.False(t, th.wait(ctx))

	var nilThrottle *throttle
	assert.True(t, nilThrottle.wait(context.Background()))
}
