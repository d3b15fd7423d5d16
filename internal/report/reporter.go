// Package report submits final scores to the platform's external
// score-submission endpoint. Submission is fire-and-forget: the endpoint
// being down never affects the play flow.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const defaultTimeout = 5 * time.Second

// Submission is the JSON body sent to the score endpoint.
type Submission struct {
	SubmissionID string `json:"submission_id"`
	GameID       string `json:"game_id"`
	Score        int    `json:"score"`
}

// Reporter posts final scores to an HTTP endpoint. An empty URL disables
// reporting. Failures are logged; callers may inspect the returned error but
// must not surface it to the player.
type Reporter struct {
	url    string
	client *http.Client
	logger *log.Logger
}

// New creates a reporter for the given endpoint URL.
func New(url string, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
		logger: logger,
	}
}

// Enabled reports whether an endpoint URL is configured.
func (r *Reporter) Enabled() bool {
	return r != nil && r.url != ""
}

// Report sends the final score for the given game. Each submission carries a
// fresh id so the endpoint can deduplicate retries.
func (r *Reporter) Report(ctx context.Context, gameID string, score int) error {
	if !r.Enabled() {
		return nil
	}

	sub := Submission{
		SubmissionID: uuid.NewString(),
		GameID:       gameID,
		Score:        score,
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("report: cannot encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("report: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("score submission failed", "game", gameID, "score", score, "error", err)
		return fmt.Errorf("report: cannot submit score: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Warn("score endpoint rejected submission",
			"game", gameID, "score", score, "status", resp.StatusCode)
		return fmt.Errorf("report: score endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
