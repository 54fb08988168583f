package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/voyage/pkg/trip"
)

func TestAllTripsParsesNestedTree(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trips/allTrips" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": [
				{
					"id": "trip-1",
					"name": "Paris Adventure",
					"destination": "Paris, France",
					"startDate": "2025-06-10",
					"endDate": "2025-06-13",
					"color": "blue",
					"active": true,
					"days": [
						{
							"id": "d1",
							"name": "Day 1",
							"date": "2025-06-10",
							"activities": [
								{"id": "a1", "title": "Flight to Paris", "time": "08:30 AM", "description": "Air France"}
							]
						}
					]
				}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{AccessToken: "tok"})
	trips, err := c.AllTrips(context.Background())
	if err != nil {
		t.Fatalf("all trips: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("want 1 trip, got %d", len(trips))
	}
	tr := trips[0]
	if tr.Name != "Paris Adventure" || !tr.Active || tr.Color != trip.Blue {
		t.Fatalf("trip fields wrong: %+v", tr)
	}
	if len(tr.Days) != 1 || len(tr.Days[0].Activities) != 1 {
		t.Fatalf("nested tree wrong: %+v", tr)
	}
	if tr.Days[0].Activities[0].Title != "Flight to Paris" {
		t.Fatalf("activity wrong: %+v", tr.Days[0].Activities[0])
	}
	if tr.StartDate.String() != "2025-06-10" {
		t.Fatalf("start date wrong: %q", tr.StartDate)
	}
}

func TestRequestsCarrySessionCookies(t *testing.T) {
	var gotAccess, gotRefresh string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("accessToken"); err == nil {
			gotAccess = c.Value
		}
		if c, err := r.Cookie("refreshToken"); err == nil {
			gotRefresh = c.Value
		}
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{AccessToken: "aaa", RefreshToken: "rrr"})
	if _, err := c.AllTrips(context.Background()); err != nil {
		t.Fatalf("all trips: %v", err)
	}
	if gotAccess != "aaa" || gotRefresh != "rrr" {
		t.Fatalf("cookies not sent: access=%q refresh=%q", gotAccess, gotRefresh)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success": false, "message": "token expired"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{AccessToken: "stale"})
	if _, err := c.AllTrips(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestServerRejectionCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "message": "name is required"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{AccessToken: "tok"})
	err := c.CreateTrip(context.Background(), trip.Draft{})
	var re *RejectionError
	if !errors.As(err, &re) {
		t.Fatalf("want RejectionError, got %v", err)
	}
	if re.Status != http.StatusBadRequest || re.Message != "name is required" {
		t.Fatalf("rejection fields wrong: %+v", re)
	}
}

func TestEnvelopeFailureWithoutHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "trip not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{AccessToken: "tok"})
	err := c.DeleteTrip(context.Background(), "ghost")
	var re *RejectionError
	if !errors.As(err, &re) {
		t.Fatalf("want RejectionError, got %v", err)
	}
	if re.Message != "trip not found" {
		t.Fatalf("message wrong: %q", re.Message)
	}
}

func TestNetworkFailureIsDetectable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, Credentials{AccessToken: "tok"})
	_, err := c.AllTrips(context.Background())
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if !IsNetwork(err) {
		t.Fatalf("want network error, got %v", err)
	}
	if errors.As(err, new(*RejectionError)) {
		t.Fatalf("network error misclassified as rejection: %v", err)
	}
}

func TestLoginAdoptsTopLevelTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ada@example.com" || body["password"] != "s3cret" {
			t.Errorf("login body wrong: %v", body)
		}
		w.Write([]byte(`{"success": true, "data": {"accessToken": "at", "refreshToken": "rt"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{})
	creds, err := c.Login(context.Background(), "ada@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if creds.AccessToken != "at" || creds.RefreshToken != "rt" {
		t.Fatalf("tokens wrong: %+v", creds)
	}
}

func TestRegisterUnwrapsNestedTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": {"createToken": {"accessToken": "at2", "refreshToken": "rt2"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{})
	creds, err := c.Register(context.Background(), "Ada", "ada@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if creds.AccessToken != "at2" || creds.RefreshToken != "rt2" {
		t.Fatalf("tokens wrong: %+v", creds)
	}
}

func TestVerifyWithoutSessionShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{})
	if _, err := c.Verify(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if called {
		t.Fatal("verify should not hit the server without a session")
	}
}

func TestStatsParsesDashboardPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/stats" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"success": true, "data": {"totalTrips": 2, "activeTrips": 1, "countries": 2, "totalActivities": 12}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{AccessToken: "tok"})
	st, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Trips != 2 || st.Active != 1 || st.Countries != 2 || st.Activities != 12 {
		t.Fatalf("stats wrong: %+v", st)
	}
}

func TestUpdateTripSendsOnlySetFields(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/trips/trip-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{AccessToken: "tok"})
	name := "Renamed"
	if err := c.UpdateTrip(context.Background(), "trip-1", trip.TripPatch{Name: &name}); err != nil {
		t.Fatalf("update trip: %v", err)
	}
	if body["name"] != "Renamed" {
		t.Fatalf("name not sent: %v", body)
	}
	if _, ok := body["destination"]; ok {
		t.Fatalf("unset field leaked into patch: %v", body)
	}
}
