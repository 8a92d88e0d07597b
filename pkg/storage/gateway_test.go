package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch_FirstGatewayWins(t *testing.T) {
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ipfs/QmTest" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	g := NewGatewayClient([]string{srv.URL + "/ipfs/{cid}"}, time.Second)
	data, mimeType, err := g.Fetch(context.Background(), "QmTest")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected data: %q", data)
	}
	if mimeType != "text/plain" {
		t.Fatalf("unexpected mime type: %q", mimeType)
	}
}

func TestFetch_FallsBackPastTimeout(t *testing.T) {
	slow := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer slow.Close()

	fast := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("from b"))
	}))
	defer fast.Close()

	g := NewGatewayClient([]string{
		slow.URL + "/ipfs/{cid}",
		fast.URL + "/ipfs/{cid}",
	}, 50*time.Millisecond)

	data, _, err := g.Fetch(context.Background(), "QmTest")
	if err != nil {
		t.Fatalf("expected fallback success, got error: %v", err)
	}
	if string(data) != "from b" {
		t.Fatalf("unexpected data: %q", data)
	}
}

func TestFetch_AllNotFound(t *testing.T) {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	a := startHTTPServer(t, notFound)
	defer a.Close()
	b := startHTTPServer(t, notFound)
	defer b.Close()

	g := NewGatewayClient([]string{a.URL + "/ipfs/{cid}", b.URL + "/ipfs/{cid}"}, time.Second)
	_, _, err := g.Fetch(context.Background(), "QmMissing")
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestFetch_AllTimedOut(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	})
	a := startHTTPServer(t, slow)
	defer a.Close()
	b := startHTTPServer(t, slow)
	defer b.Close()

	g := NewGatewayClient([]string{a.URL + "/ipfs/{cid}", b.URL + "/ipfs/{cid}"}, 50*time.Millisecond)
	_, _, err := g.Fetch(context.Background(), "QmTest")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestFetch_MixedFailuresAreUnreachable(t *testing.T) {
	broken := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	missing := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer missing.Close()

	g := NewGatewayClient([]string{broken.URL + "/ipfs/{cid}", missing.URL + "/ipfs/{cid}"}, time.Second)
	_, _, err := g.Fetch(context.Background(), "QmTest")
	if !errors.Is(err, ErrGatewayUnreachable) {
		t.Fatalf("expected ErrGatewayUnreachable, got %v", err)
	}
}

func TestFetch_GoneCountsAsNotFound(t *testing.T) {
	gone := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer gone.Close()

	g := NewGatewayClient([]string{gone.URL + "/ipfs/{cid}"}, time.Second)
	_, _, err := g.Fetch(context.Background(), "QmTest")
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound for 410, got %v", err)
	}
}

func TestFetch_NoGateways(t *testing.T) {
	g := NewGatewayClient(nil, time.Second)
	_, _, err := g.Fetch(context.Background(), "QmTest")
	if !errors.Is(err, ErrGatewayUnreachable) {
		t.Fatalf("expected ErrGatewayUnreachable, got %v", err)
	}
}

func TestBuildGatewayURL(t *testing.T) {
	got := buildGatewayURL("https://gw/ipfs/{cid}", "QmA")
	if got != "https://gw/ipfs/QmA" {
		t.Fatalf("placeholder substitution: %q", got)
	}

	got = buildGatewayURL("https://gw/ipfs/", "QmA")
	if got != "https://gw/ipfs/QmA" {
		t.Fatalf("concatenation fallback: %q", got)
	}
}

func startHTTPServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "operation not permitted") {
				t.Skip("network operations not permitted in sandbox")
			}
			panic(r)
		}
	}()
	return httptest.NewServer(handler)
}
