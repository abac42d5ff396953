package directions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/types"
)

func TestRequest_Build(t *testing.T) {
	c := maps.NewClient("k")
	r := NewRequest(c, Address("Toronto ON"), Coordinate(types.LatLng{Lat: 45.5, Lng: -73.6})).
		WithTravelMode(ModeTransit).
		WithWaypoints(PlaceID("abc123"), Address("Kingston ON")).
		WithAlternatives(true).
		WithLanguage("fr").
		WithRegion("ca").
		Build()

	q, err := url.ParseQuery(r.Query())
	if err != nil {
		t.Fatalf("query did not parse: %v", err)
	}
	if q.Get("origin") != "Toronto ON" {
		t.Errorf("origin = %q", q.Get("origin"))
	}
	if q.Get("destination") != "45.5,-73.6" {
		t.Errorf("destination = %q", q.Get("destination"))
	}
	if q.Get("mode") != "transit" {
		t.Errorf("mode = %q", q.Get("mode"))
	}
	if q.Get("waypoints") != "place_id:abc123|Kingston ON" {
		t.Errorf("waypoints = %q", q.Get("waypoints"))
	}
	if q.Get("alternatives") != "true" {
		t.Errorf("alternatives = %q", q.Get("alternatives"))
	}
	if q.Get("language") != "fr" || q.Get("region") != "ca" {
		t.Errorf("language/region = %q/%q", q.Get("language"), q.Get("region"))
	}
	if q.Get("key") != "k" {
		t.Errorf("key = %q", q.Get("key"))
	}
}

func TestRequest_Validate(t *testing.T) {
	c := maps.NewClient("k")

	if err := NewRequest(c, Location{}, Address("x")).Validate(); !maps.IsValidation(err) {
		t.Errorf("missing origin should fail validation, got %v", err)
	}
	if err := NewRequest(c, Address("x"), Location{}).Validate(); !maps.IsValidation(err) {
		t.Errorf("missing destination should fail validation, got %v", err)
	}
	bad := Coordinate(types.LatLng{Lat: 91})
	if err := NewRequest(c, bad, Address("x")).Validate(); !maps.IsValidation(err) {
		t.Errorf("out-of-range origin should fail validation, got %v", err)
	}
	if err := NewRequest(c, Address("a"), Address("b")).Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestRequest_GetWithoutBuild(t *testing.T) {
	c := maps.NewClient("k", maps.WithBaseURL("http://invalid.localhost"))
	_, err := NewRequest(c, Address("a"), Address("b")).Get(context.Background())
	if !maps.IsQueryNotBuilt(err) {
		t.Fatalf("expected query-not-built error, got %v", err)
	}
}

func TestRequest_Execute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/directions/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("origin") != "Toronto" {
			t.Errorf("origin not forwarded: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"geocoded_waypoints": [{"geocoder_status": "OK", "place_id": "p1"}],
			"routes": [{
				"summary": "ON-401 E",
				"legs": [{
					"distance": {"text": "542 km", "value": 542382},
					"duration": {"text": "5 hours 21 mins", "value": 19257},
					"start_address": "Toronto, ON, Canada",
					"end_address": "Montreal, QC, Canada",
					"start_location": {"lat": 43.65, "lng": -79.38},
					"end_location": {"lat": 45.5, "lng": -73.56}
				}],
				"overview_polyline": {"points": "abc"}
			}]
		}`))
	}))
	defer srv.Close()

	c := maps.NewClient("k", maps.WithBaseURL(srv.URL))
	resp, err := NewRequest(c, Address("Toronto"), Address("Montreal")).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Routes) != 1 || resp.Routes[0].Summary != "ON-401 E" {
		t.Fatalf("unexpected routes: %+v", resp.Routes)
	}
	leg := resp.Routes[0].Legs[0]
	if leg.Distance.Value != 542382 || leg.Duration.Value != 19257 {
		t.Errorf("unexpected leg metrics: %+v", leg)
	}
	if leg.StartLocation.Lat != 43.65 || leg.EndLocation.Lng != -73.56 {
		t.Errorf("unexpected leg endpoints: %+v", leg)
	}
	if resp.GeocodedWaypoints[0].PlaceID != "p1" {
		t.Errorf("unexpected waypoints: %+v", resp.GeocodedWaypoints)
	}
}

func TestRequest_ExecuteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "NOT_FOUND", "routes": []}`))
	}))
	defer srv.Close()

	c := maps.NewClient("k", maps.WithBaseURL(srv.URL))
	_, err := NewRequest(c, Address("nowhere"), Address("anywhere")).Execute(context.Background())
	if !maps.IsService(err) {
		t.Fatalf("expected service error, got %v", err)
	}
}
