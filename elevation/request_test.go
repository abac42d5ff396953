package elevation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/types"
)

func TestRequest_Validate(t *testing.T) {
	c := maps.NewClient("k")
	pt := types.LatLng{Lat: 39.73, Lng: -104.98}

	if err := NewRequest(c).Validate(); !maps.IsValidation(err) {
		t.Errorf("empty request should fail validation, got %v", err)
	}

	both := NewRequest(c).ForLocations(pt).ForSampledPath([]types.LatLng{pt}, 3)
	if err := both.Validate(); !maps.IsValidation(err) {
		t.Errorf("locations and path together should fail validation, got %v", err)
	}

	if err := NewRequest(c).ForSampledPath([]types.LatLng{pt}, 0).Validate(); !maps.IsValidation(err) {
		t.Errorf("zero samples should fail validation, got %v", err)
	}
	if err := NewRequest(c).ForSampledPath([]types.LatLng{pt}, 513).Validate(); !maps.IsValidation(err) {
		t.Errorf("513 samples should fail validation, got %v", err)
	}
	if err := NewRequest(c).ForSampledPath([]types.LatLng{pt}, 512).Validate(); err != nil {
		t.Errorf("512 samples rejected: %v", err)
	}

	if err := NewRequest(c).ForLocations(types.LatLng{Lat: 95}).Validate(); !maps.IsValidation(err) {
		t.Errorf("out-of-range location should fail validation, got %v", err)
	}
	if err := NewRequest(c).ForLocations(pt).Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestRequest_Build(t *testing.T) {
	c := maps.NewClient("k")
	a := types.LatLng{Lat: 39.73, Lng: -104.98}
	b := types.LatLng{Lat: 36.45, Lng: -116.86}

	r := NewRequest(c).ForLocations(a, b).Build()
	q, err := url.ParseQuery(r.Query())
	if err != nil {
		t.Fatalf("query did not parse: %v", err)
	}
	if q.Get("locations") != "39.73,-104.98|36.45,-116.86" {
		t.Errorf("locations = %q", q.Get("locations"))
	}
	if q.Get("key") != "k" {
		t.Errorf("key = %q", q.Get("key"))
	}

	r = NewRequest(c).ForSampledPath([]types.LatLng{a, b}, 3).Build()
	q, err = url.ParseQuery(r.Query())
	if err != nil {
		t.Fatalf("query did not parse: %v", err)
	}
	if q.Get("path") != "39.73,-104.98|36.45,-116.86" || q.Get("samples") != "3" {
		t.Errorf("unexpected query: %s", r.Query())
	}
}

func TestRequest_Execute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/elevation/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"elevation": 1608.637,
				"location": {"lat": 39.739, "lng": -104.984},
				"resolution": 4.771
			}]
		}`))
	}))
	defer srv.Close()

	c := maps.NewClient("k", maps.WithBaseURL(srv.URL))
	resp, err := NewRequest(c).
		ForLocations(types.LatLng{Lat: 39.739, Lng: -104.984}).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0].Elevation != 1608.637 || resp.Results[0].Resolution != 4.771 {
		t.Errorf("unexpected result: %+v", resp.Results[0])
	}
}
