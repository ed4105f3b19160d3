package homes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeBackend is a minimal json-server lookalike.
type fakeBackend struct {
	mu      sync.Mutex
	homes   []map[string]any
	nextID  int
	bodies  [][]byte
	headers []http.Header
	methods []string
	paths   []string
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body, _ := io.ReadAll(r.Body)
	f.bodies = append(f.bodies, body)
	f.headers = append(f.headers, r.Header.Clone())
	f.methods = append(f.methods, r.Method)
	f.paths = append(f.paths, r.URL.EscapedPath())

	w.Header().Set("Content-Type", "application/json")
	id := strings.TrimPrefix(r.URL.Path, "/homes/")

	switch {
	case r.URL.Path == "/homes" && r.Method == http.MethodGet:
		_ = json.NewEncoder(w).Encode(f.homes)
	case r.URL.Path == "/homes" && r.Method == http.MethodPost:
		var rec map[string]any
		if err := json.Unmarshal(body, &rec); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		f.nextID++
		rec["id"] = f.nextID
		f.homes = append(f.homes, rec)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rec)
	case strings.HasPrefix(r.URL.Path, "/homes/") && r.Method == http.MethodGet:
		for _, rec := range f.homes {
			if idString(rec["id"]) == id {
				_ = json.NewEncoder(w).Encode(rec)
				return
			}
		}
		http.Error(w, "{}", http.StatusNotFound)
	case strings.HasPrefix(r.URL.Path, "/homes/") && r.Method == http.MethodDelete:
		for i, rec := range f.homes {
			if idString(rec["id"]) == id {
				f.homes = append(f.homes[:i], f.homes[i+1:]...)
				_ = json.NewEncoder(w).Encode(rec)
				return
			}
		}
		http.Error(w, "{}", http.StatusNotFound)
	default:
		http.NotFound(w, r)
	}
}

func idString(v any) string {
	switch id := v.(type) {
	case int:
		return strconv.Itoa(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case string:
		return id
	default:
		return ""
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != DefaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, DefaultAPIBase)
	}

	u, err = parseBaseURL("https://homes.example.com:8443/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}

func TestClient_CreateThenFetchRoundTrip(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	c := newTestClient(t, backend)
	ctx := testContext(t)

	listing := Listing{
		Title:         "Sea view loft",
		Description:   "Bright and quiet",
		Location:      "Lisbon",
		ImageURL:      "https://img.example.com/loft.jpg",
		PricePerNight: 120,
		Guests:        2,
		Bedrooms:      1,
		Bathrooms:     1,
		Amenities:     []string{"wifi", "pool"},
	}

	created, err := c.CreateHome(ctx, listing)
	if err != nil {
		t.Fatalf("CreateHome returned error: %v", err)
	}
	if created.ID.Empty() {
		t.Fatalf("CreateHome id is empty, want server-assigned id")
	}
	if !reflect.DeepEqual(created.Listing, listing) {
		t.Fatalf("CreateHome listing = %#v, want %#v", created.Listing, listing)
	}

	var sent map[string]any
	if err := json.Unmarshal(backend.bodies[0], &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if _, ok := sent["id"]; ok {
		t.Fatalf("create payload carries an id: %s", backend.bodies[0])
	}
	if backend.methods[0] != http.MethodPost || backend.paths[0] != "/homes" {
		t.Fatalf("create request = %s %s, want POST /homes", backend.methods[0], backend.paths[0])
	}

	got, err := c.GetHome(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetHome returned error: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("GetHome = %#v, want %#v", got, created)
	}
}

func TestClient_SendsJSONHeaders(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	c := newTestClient(t, backend)

	if _, err := c.ListHomes(testContext(t)); err != nil {
		t.Fatalf("ListHomes returned error: %v", err)
	}
	h := backend.headers[0]
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", got)
	}
	if got := h.Get("Accept"); got != "application/json" {
		t.Fatalf("Accept = %q, want application/json", got)
	}
	if got := h.Get("User-Agent"); !strings.HasPrefix(got, "homes/") {
		t.Fatalf("User-Agent = %q, want homes/*", got)
	}
	if got := h.Get(headerRequestID); got == "" {
		t.Fatalf("%s header missing", headerRequestID)
	}
	if got := h.Get("Authorization"); got != "" {
		t.Fatalf("Authorization = %q, want none", got)
	}
}

func TestClient_ListHomesIsStableWithoutMutation(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{homes: []map[string]any{
		{"id": "b", "title": "Second", "amenities": []string{}},
		{"id": "a", "title": "First", "amenities": []string{"wifi"}},
	}}
	c := newTestClient(t, backend)
	ctx := testContext(t)

	first, err := c.ListHomes(ctx)
	if err != nil {
		t.Fatalf("ListHomes returned error: %v", err)
	}
	second, err := c.ListHomes(ctx)
	if err != nil {
		t.Fatalf("ListHomes returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ListHomes not stable: %#v vs %#v", first, second)
	}
	if len(first) != 2 || first[0].ID != "b" || first[1].ID != "a" {
		t.Fatalf("ListHomes order = %#v, want server order b, a", first)
	}
}

func TestClient_ListHomesNullBodyIsEmpty(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	got, err := c.ListHomes(testContext(t))
	if err != nil {
		t.Fatalf("ListHomes returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("ListHomes = %#v, want empty non-nil slice", got)
	}
}

func TestClient_GetHomeNotFoundIsStatusError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, &fakeBackend{})
	_, err := c.GetHome(testContext(t), ID("404"))
	if err == nil {
		t.Fatalf("GetHome returned nil error, want not found")
	}
	if KindOf(err) != KindStatus || StatusOf(err) != http.StatusNotFound {
		t.Fatalf("GetHome error = %v (kind %v, status %d), want status 404", err, KindOf(err), StatusOf(err))
	}
	if !strings.Contains(err.Error(), "returned status 404") {
		t.Fatalf("GetHome error = %q, want it to mention status 404", err.Error())
	}
}

func TestClient_MissingIDSendsNothing(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	c := newTestClient(t, backend)
	ctx := testContext(t)

	if _, err := c.GetHome(ctx, ID("  ")); !errors.Is(err, ErrMissingID) {
		t.Fatalf("GetHome error = %v, want ErrMissingID", err)
	}
	if err := c.DeleteHome(ctx, ""); KindOf(err) != KindPrecondition {
		t.Fatalf("DeleteHome error = %v, want precondition", err)
	}
	if len(backend.methods) != 0 {
		t.Fatalf("backend saw %d requests, want 0", len(backend.methods))
	}
}

func TestClient_DeleteIgnoresBodyAndEscapesID(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{homes: []map[string]any{{"id": "a/b"}}}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backend.mu.Lock()
		backend.methods = append(backend.methods, r.Method)
		backend.paths = append(backend.paths, r.URL.EscapedPath())
		backend.mu.Unlock()
		_, _ = w.Write([]byte("this is not json"))
	}))

	if err := c.DeleteHome(testContext(t), ID("a/b")); err != nil {
		t.Fatalf("DeleteHome returned error: %v", err)
	}
	if backend.methods[0] != http.MethodDelete {
		t.Fatalf("method = %s, want DELETE", backend.methods[0])
	}
	if backend.paths[0] != "/homes/a%2Fb" {
		t.Fatalf("path = %q, want /homes/a%%2Fb", backend.paths[0])
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	ctx := testContext(t)

	_, err := c.ListHomes(ctx)
	if KindOf(err) != KindDecode || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListHomes error = %v, want decode response error", err)
	}

	_, err = c.CreateHome(ctx, Listing{Title: "x"})
	if KindOf(err) != KindStatus || StatusOf(err) != http.StatusInternalServerError {
		t.Fatalf("CreateHome error = %v, want status 500 error", err)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.ListHomes(context.Background())
	if err == nil {
		t.Fatalf("ListHomes returned nil error, want transport failure")
	}
	if KindOf(err) != KindTransport {
		t.Fatalf("ListHomes kind = %v, want transport", KindOf(err))
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.ListHomes(context.Background()); KindOf(err) != KindPrecondition {
		t.Fatalf("nil ListHomes error = %v, want precondition", err)
	}
}
