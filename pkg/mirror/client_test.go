package mirror

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dists/stable/main/Contents-amd64.gz" {
			http.NotFound(w, r)
			return
		}
		if ua := r.Header.Get("User-Agent"); ua != "pkgstats" {
			t.Errorf("unexpected User-Agent: %q", ua)
		}
		io.WriteString(w, "payload")
	}))
	defer server.Close()

	c := NewClient()
	src := Source{Base: server.URL, Suite: "stable", Component: "main"}

	body, err := c.Fetch(context.Background(), src.ContentsURL("amd64", false))
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("read %q, want %q", data, "payload")
	}
}

func TestClient_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := NewClient()
	_, err := c.Fetch(context.Background(), server.URL+"/dists/stable/main/Contents-m68k.gz")
	if err == nil {
		t.Fatal("expected error for missing index")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient()
	_, err := c.Fetch(context.Background(), server.URL+"/dists/stable/Release")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

func TestClient_Fetch_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient()
	if _, err := c.Fetch(ctx, server.URL+"/dists/stable/Release"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
