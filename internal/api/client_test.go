package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success": true, "errors": [], "result": {"id": "u1", "email": "dev@example.com"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-123")
	user, err := client.Whoami(context.Background())
	if err != nil {
		t.Fatalf("Whoami: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
	if user.Email != "dev@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "dev@example.com")
	}
}

func TestClientSurfacesEnvelopeErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success": false, "errors": [{"code": 10000, "message": "authentication error"}], "result": null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token")
	_, err := client.ListNamespaces(context.Background(), "acct")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "10000") || !strings.Contains(err.Error(), "authentication error") {
		t.Errorf("error %q should carry the API code and message", err)
	}
}

func TestClientRejectsNonEnvelopeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	_, err := client.ListRoutes(context.Background(), "zone")
	if err == nil {
		t.Fatal("expected an error for a non-JSON response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q should name the HTTP status", err)
	}
}

func TestReadKeyReturnsRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/values/greeting") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	value, err := client.ReadKey(context.Background(), "acct", "ns", "greeting")
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if string(value) != "hello" {
		t.Errorf("value = %q, want %q", value, "hello")
	}
}

func TestWriteKeySetsTTL(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success": true, "errors": [], "result": null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	if err := client.WriteKey(context.Background(), "acct", "ns", "k", []byte("v"), 300); err != nil {
		t.Fatalf("WriteKey: %v", err)
	}
	if gotQuery != "expiration_ttl=300" {
		t.Errorf("query = %q, want expiration_ttl=300", gotQuery)
	}
}
