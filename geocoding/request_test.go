package geocoding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/types"
)

func TestRequest_Build(t *testing.T) {
	c := maps.NewClient("k")
	bounds := types.Bounds{
		Southwest: types.LatLng{Lat: 34.17, Lng: -118.6},
		Northeast: types.LatLng{Lat: 34.23, Lng: -118.5},
	}
	r := NewRequest(c, "Winnetka").
		WithBounds(bounds).
		WithRegion("us").
		WithLanguage("en").
		WithComponents(Component{Filter: FilterCountry, Value: "US"}).
		Build()

	q, err := url.ParseQuery(r.Query())
	if err != nil {
		t.Fatalf("query did not parse: %v", err)
	}
	if q.Get("address") != "Winnetka" {
		t.Errorf("address = %q", q.Get("address"))
	}
	if q.Get("bounds") != "34.17,-118.6|34.23,-118.5" {
		t.Errorf("bounds = %q", q.Get("bounds"))
	}
	if q.Get("components") != "country:US" {
		t.Errorf("components = %q", q.Get("components"))
	}
	if q.Get("region") != "us" || q.Get("language") != "en" || q.Get("key") != "k" {
		t.Errorf("unexpected query: %s", r.Query())
	}
}

func TestRequest_Validate(t *testing.T) {
	c := maps.NewClient("k")

	if err := NewRequest(c, "").Validate(); !maps.IsValidation(err) {
		t.Errorf("empty request should fail validation, got %v", err)
	}
	if err := NewRequest(c, "").WithComponents(Component{Filter: FilterPostalCode, Value: "90210"}).Validate(); err != nil {
		t.Errorf("components-only request rejected: %v", err)
	}
	if err := NewRequest(c, "x").WithComponents(Component{Filter: FilterCountry}).Validate(); !maps.IsValidation(err) {
		t.Errorf("component without value should fail validation, got %v", err)
	}
	bad := types.Bounds{Southwest: types.LatLng{Lat: -91}}
	if err := NewRequest(c, "x").WithBounds(bad).Validate(); !maps.IsValidation(err) {
		t.Errorf("out-of-range bounds should fail validation, got %v", err)
	}
}

func TestRequest_Execute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Winnetka, Los Angeles, CA, USA",
				"place_id": "ChIJ0fd4S_KbwoAR2hRDrsr3HmQ",
				"types": ["neighborhood", "political"],
				"geometry": {
					"location": {"lat": 34.213, "lng": -118.571},
					"location_type": "APPROXIMATE",
					"viewport": {
						"southwest": {"lat": 34.19, "lng": -118.59},
						"northeast": {"lat": 34.23, "lng": -118.55}
					}
				}
			}]
		}`))
	}))
	defer srv.Close()

	c := maps.NewClient("k", maps.WithBaseURL(srv.URL))
	resp, err := NewRequest(c, "Winnetka").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}
	res := resp.Results[0]
	if res.FormattedAddress != "Winnetka, Los Angeles, CA, USA" {
		t.Errorf("unexpected address: %q", res.FormattedAddress)
	}
	if res.Geometry.Location.Lat != 34.213 || res.Geometry.Location.Lng != -118.571 {
		t.Errorf("unexpected location: %+v", res.Geometry.Location)
	}
	if res.Geometry.Viewport.Northeast.Lat != 34.23 {
		t.Errorf("unexpected viewport: %+v", res.Geometry.Viewport)
	}
}

func TestRequest_ExecuteZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	c := maps.NewClient("k", maps.WithBaseURL(srv.URL))
	_, err := NewRequest(c, "qqqqq").Execute(context.Background())
	if !maps.IsService(err) {
		t.Fatalf("expected service error, got %v", err)
	}
	var me *maps.Error
	if !errors.As(err, &me) {
		t.Fatal("expected *maps.Error")
	}
	if me.Status != maps.StatusZeroResults {
		t.Errorf("expected ZERO_RESULTS, got %s", me.Status)
	}
}
