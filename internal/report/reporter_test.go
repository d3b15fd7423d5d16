package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReportSendsSubmission(t *testing.T) {
	var got Submission

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("cannot decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := New(srv.URL, nil)

	if err := r.Report(context.Background(), "2048", 1024); err != nil {
		t.Fatalf("Report() failed: %v", err)
	}

	if got.GameID != "2048" {
		t.Errorf("game_id = %q, want 2048", got.GameID)
	}
	if got.Score != 1024 {
		t.Errorf("score = %d, want 1024", got.Score)
	}
	if got.SubmissionID == "" {
		t.Error("submission_id should be set")
	}
}

func TestReportRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	r := New(srv.URL, nil)

	if err := r.Report(context.Background(), "2048", 100); err == nil {
		t.Error("Report should return an error on non-2xx status")
	}
}

func TestReportEndpointDown(t *testing.T) {
	// Connect to a closed server
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	r := New(url, nil)

	if err := r.Report(context.Background(), "2048", 100); err == nil {
		t.Error("Report should return an error when the endpoint is unreachable")
	}
}

func TestReportDisabledWithoutURL(t *testing.T) {
	r := New("", nil)

	if r.Enabled() {
		t.Error("reporter with empty URL should be disabled")
	}
	if err := r.Report(context.Background(), "2048", 100); err != nil {
		t.Errorf("disabled reporter should be a no-op, got %v", err)
	}
}
