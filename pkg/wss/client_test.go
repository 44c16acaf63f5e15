package wss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/storagefront/wss-backend/pkg/config"
	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(config.WSSConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		LocationID: "1032354",
	}, nil, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientConfigValidation(t *testing.T) {
	if _, err := NewClient(config.WSSConfig{LocationID: "1"}, nil, nil); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeConfiguration {
		t.Fatalf("expected configuration error for missing api key, got %v", err)
	}
	if _, err := NewClient(config.WSSConfig{APIKey: "k"}, nil, nil); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeConfiguration {
		t.Fatalf("expected configuration error for missing location id, got %v", err)
	}
}

func TestRequestSendsBearerAuth(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"location":{"units":[]}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.FetchLocationDetail(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotPath != "/location/1032354" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestErrorMessagePriority(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad unit","error":"ignored"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchMoveInAvailability(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if typed.Message() != "bad unit" {
		t.Fatalf("expected message field to win, got %q", typed.Message())
	}
}

func TestErrorMessageFallsBackToErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"unit not rentable"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchMoveInAvailability(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Message() != "unit not rentable" {
		t.Fatalf("expected error field fallback, got %v", err)
	}
}

func TestErrorSnippetTruncatedAndAnnotated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>" + strings.Repeat("x", 600)))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchLocationDetail(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	msg := typed.Message()
	if !strings.Contains(msg, "status 502") {
		t.Fatalf("expected status annotation, got %q", msg)
	}
	if !strings.Contains(msg, "(url: ") {
		t.Fatalf("expected url annotation, got %q", msg)
	}
	if strings.Count(msg, "x") > errorSnippetLimit {
		t.Fatalf("expected snippet capped at %d chars: %q", errorSnippetLimit, msg)
	}
}

func TestMalformedJSONOnSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchLocationDetail(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeMalformed {
		t.Fatalf("expected malformed-response error, got %v", err)
	}
}

func TestGetMoveInCostQueryOmitsBlanks(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"totalDue":118.0}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetMoveInCost(context.Background(), CostQuery{
		UnitID:             "X",
		UnitIDAlias:        "X",
		RentableObjectID:   "X",
		TaxExemptNumber:    "0",
		MoveInDate:         "2024-05-01",
		ExpectedMoveInDate: "2024-05-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery["unitID"]; len(got) != 1 || got[0] != "X" {
		t.Fatalf("expected unitID alias in query, got %v", gotQuery)
	}
	if got := gotQuery["expectedMoveInDate"]; len(got) != 1 || got[0] != "2024-05-01" {
		t.Fatalf("expected date alias in query, got %v", gotQuery)
	}
	if _, ok := gotQuery["insuranceId"]; ok {
		t.Fatal("expected blank insuranceId to be omitted")
	}
	if _, ok := gotQuery["promoCode"]; ok {
		t.Fatal("expected blank promoCode to be omitted")
	}
}

func TestFetchInventoryImagesFailureIsBestEffort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/images"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"imagery down"}`))
		case strings.HasPrefix(r.URL.Path, "/movein/"):
			w.Write([]byte(`{"availableUnits":[{"rentableObjectId":9001,"monthly":95,"vacantUnits":2,"units":[{"unitId":"A1"}]}]}`))
		default:
			w.Write([]byte(`{"location":{"units":[{"unitId":"A1","unitSize":"10' x 10'"}]}}`))
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	snap, err := c.FetchInventory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.ImagesErr == nil {
		t.Fatal("expected images error to be recorded")
	}
	if snap.LocationErr != nil || snap.MoveInErr != nil {
		t.Fatalf("expected unit sources to settle cleanly: %v / %v", snap.LocationErr, snap.MoveInErr)
	}
	if len(snap.MoveIn.AvailableUnits) != 1 {
		t.Fatalf("expected one move-in unit, got %d", len(snap.MoveIn.AvailableUnits))
	}
	if got := snap.MoveIn.AvailableUnits[0].RentableObjectID.String(); got != "9001" {
		t.Fatalf("expected numeric rentableObjectId coerced to string, got %q", got)
	}
}

func TestFetchInventoryBothSourcesFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"maintenance"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchInventory(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNoInventory {
		t.Fatalf("expected no-inventory error, got %v", err)
	}
}
