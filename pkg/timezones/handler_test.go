package timezones

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/model"
)

type handlerResponse struct {
	Data []model.Option `json:"data"`
}

func serve(t *testing.T, h http.Handler, method, target string) *http.Response {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec.Result()
}

func TestNewHandler_EmptyQueryReturnsEmptyDataArray(t *testing.T) {
	res := serve(t, NewHandler(WithZones([]string{"UTC"})), http.MethodGet, "/options/timezones")

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_SearchAndLimitClamped(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"America/Chicago", "America/New_York", "Europe/Paris", "UTC"}),
		WithSearchConfig(SearchConfig{DefaultLimit: 10, MaxLimit: 2}),
	)
	res := serve(t, h, http.MethodGet, "/options/timezones?q=America&limit=10")

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []model.Option{
		{Label: "America/Chicago", Value: "America/Chicago"},
		{Label: "America/New York", Value: "America/New_York"},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHandler_DefaultListAndHead(t *testing.T) {
	res := serve(t, NewHandler(), http.MethodGet, "/options/timezones?q=madrid")
	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "Europe/Madrid" {
		t.Fatalf("unexpected data %#v", payload.Data)
	}

	head := serve(t, NewHandler(), http.MethodHead, "/options/timezones?q=madrid")
	if head.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for HEAD, got %d", head.StatusCode)
	}
}

func TestNewHandler_RejectsOtherMethods(t *testing.T) {
	res := serve(t, NewHandler(), http.MethodPost, "/options/timezones")
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.StatusCode)
	}
	if allow := res.Header.Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}
