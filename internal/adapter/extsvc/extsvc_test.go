package extsvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func stubServer(t *testing.T, wantPath string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		if r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientDirectoryExists(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{"found", http.StatusOK, true, false},
		{"missing", http.StatusNotFound, false, false},
		{"upstream failure", http.StatusBadGateway, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := stubServer(t, "/clients/abc", tt.status)
			dir := NewClientDirectory(srv.Client(), srv.URL, zap.NewNop())

			got, err := dir.Exists(context.Background(), "abc")
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Exists = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocumentResolverResolve(t *testing.T) {
	srv := stubServer(t, "/documents/doc-1", http.StatusOK)
	res := NewDocumentResolver(srv.Client(), srv.URL, zap.NewNop())

	ok, err := res.Resolve(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !ok {
		t.Fatal("expected document to resolve")
	}
}

func TestDocumentResolverMissing(t *testing.T) {
	srv := stubServer(t, "/documents/nope", http.StatusNotFound)
	res := NewDocumentResolver(srv.Client(), srv.URL, zap.NewNop())

	ok, err := res.Resolve(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ok {
		t.Fatal("expected missing document")
	}
}
