package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"CityRipple/shared/assetcache"
)

const objBody = "o tower\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func newServer(t *testing.T, hits *int32, failFirst int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(hits, 1)
		if n <= failFirst {
			http.Error(w, "indisponível", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(objBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestFetcher(t *testing.T, retries int) *Fetcher {
	t.Helper()
	cache, err := assetcache.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(cache.Close)
	f := NewFetcher(cache, retries)
	f.Backoff = time.Millisecond
	return f
}

func TestFetchUsesCacheOnSecondCall(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, 0)
	f := newTestFetcher(t, 1)
	url := srv.URL + "/buildings.obj"

	for i := 0; i < 2; i++ {
		p, err := f.Fetch(context.Background(), url)
		if err != nil {
			t.Fatalf("Fetch #%d: %v", i, err)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != objBody {
			t.Fatalf("conteúdo = %q", data)
		}
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("%d requisições, want 1 (segunda deveria vir do cache)", hits)
	}

	f.Refresh = true
	if _, err := f.Fetch(context.Background(), url); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Errorf("Refresh não foi à rede: %d requisições", hits)
	}
}

func TestFetchRetries(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, 2)
	f := newTestFetcher(t, 3)

	if _, err := f.Fetch(context.Background(), srv.URL+"/b.obj"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Errorf("%d requisições, want 3", hits)
	}
}

func TestFetchFailure(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, 100)
	f := newTestFetcher(t, 2)

	p, err := f.Fetch(context.Background(), srv.URL+"/b.obj")
	if err == nil {
		t.Fatalf("esperava erro, caminho %q", p)
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Errorf("%d requisições, want 2", hits)
	}
}

func TestFetchAsyncCancelled(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, 100)
	f := newTestFetcher(t, 5)
	f.Backoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	ch := f.FetchAsync(ctx, srv.URL+"/b.obj")
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case res := <-ch:
		if res.Err == nil {
			t.Fatal("esperava erro de cancelamento")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("FetchAsync não respeitou o cancelamento")
	}
}

func TestFetchWithoutCache(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, 0)
	f := NewFetcher(nil, 1)

	p, err := f.Fetch(context.Background(), srv.URL+"/x.obj")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(p)
	if data, _ := os.ReadFile(p); string(data) != objBody {
		t.Errorf("conteúdo = %q", data)
	}
}
