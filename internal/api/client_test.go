package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/pvlkuz/moodtrack-cli/internal/errors"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Email != "a@b.com" {
			t.Errorf("email = %q", req.Email)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "T"})
	}))
	defer srv.Close()

	token, err := NewClient(srv.URL, nil).Login(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "T" {
		t.Errorf("token = %q, want T", token)
	}
}

func TestListRangeSortsAndAuthorizes(t *testing.T) {
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer T" {
			t.Errorf("Authorization = %q", got)
		}
		q := r.URL.Query()
		if q.Get("from") != "2024-02-26" || q.Get("to") != "2024-03-31" {
			t.Errorf("range = %s..%s", q.Get("from"), q.Get("to"))
		}
		// Deliberately unordered, dates in the backend's RFC3339 form.
		json.NewEncoder(w).Encode([]map[string]string{
			{"id": ids[0], "date": "2024-03-10T00:00:00Z", "icon": "😊", "comment": ""},
			{"id": ids[1], "date": "2024-03-01T00:00:00Z", "icon": "😡", "comment": "зранку"},
			{"id": ids[2], "date": "2024-03-05T00:00:00Z", "icon": "😐", "comment": ""},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("T"))
	records, err := client.ListRange(context.Background(), day(2024, time.February, 26), day(2024, time.March, 31))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d", len(records))
	}
	wantOrder := []string{"2024-03-01", "2024-03-05", "2024-03-10"}
	for i, rec := range records {
		if rec.Date.Key() != wantOrder[i] {
			t.Errorf("records[%d].Date = %s, want %s", i, rec.Date.Key(), wantOrder[i])
		}
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		date     *time.Time
		wantDate string // "" means the field must be absent
	}{
		{"server-side today", nil, ""},
		{"explicit date", timePtr(day(2024, time.March, 10)), "2024-03-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req map[string]string
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatal(err)
				}
				if req["icon"] != "😊" || req["comment"] != "добре" {
					t.Errorf("body = %v", req)
				}
				if got, ok := req["date"]; ok != (tt.wantDate != "") || got != tt.wantDate {
					t.Errorf("date = %q (present=%v), want %q", got, ok, tt.wantDate)
				}
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]string{
					"id": "r1", "date": "2024-03-10T00:00:00Z", "icon": "😊", "comment": "добре",
				})
			}))
			defer srv.Close()

			rec, err := NewClient(srv.URL, staticTokens("T")).Create(context.Background(), "😊", "добре", tt.date)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if rec.ID != "r1" || rec.Icon != "😊" {
				t.Errorf("record = %+v", rec)
			}
		})
	}
}

func TestUpdateToleratesEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/mood/r1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL, staticTokens("T")).
		Update(context.Background(), "r1", "😃", "чудово", day(2024, time.March, 10))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.ID != "r1" || rec.Icon != "😃" || rec.Date.Key() != "2024-03-10" {
		t.Errorf("record = %+v", rec)
	}
}

func TestDelete(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete || r.URL.Path != "/mood/r1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := NewClient(srv.URL, staticTokens("T")).Delete(context.Background(), "r1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !called {
		t.Error("DELETE never issued")
	}
}

func TestRegisterTelegram(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/telegram/register" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req map[string]int64
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req["chat_id"] != 123456789 {
			t.Errorf("chat_id = %d", req["chat_id"])
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := NewClient(srv.URL, staticTokens("T")).RegisterTelegram(context.Background(), 123456789); err != nil {
		t.Fatalf("RegisterTelegram: %v", err)
	}
}

func TestErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "icon is required", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("T"))
	_, err := client.Create(context.Background(), "", "", nil)

	var aerr *apperrors.APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("want APIError, got %T: %v", err, err)
	}
	if aerr.Status != http.StatusBadRequest || aerr.Message != "icon is required" {
		t.Errorf("APIError = %+v", aerr)
	}

	// Server gone: transport failure maps to NetworkError.
	srv.Close()
	_, err = client.ListRange(context.Background(), day(2024, time.March, 1), day(2024, time.March, 2))
	var nerr *apperrors.NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("want NetworkError, got %T: %v", err, err)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("Authorization header sent without a token")
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "T"})
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, staticTokens("")).Login(context.Background(), "a@b.com"); err != nil {
		t.Fatal(err)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
