// Package wire holds the HTTP plumbing shared by the scoring clients:
// the authenticated POST with domain error mapping and the defensive
// extraction of the single scalar prediction.
package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diapredict/diapredict/pkg/domain"
)

// maxErrorBody bounds how much of a rejection body is carried in the
// error, so oversized upstream diagnostics cannot bloat responses.
const maxErrorBody = 2048

// Post performs the single authenticated scoring call and maps
// failures to domain errors. The credential goes only into the request
// header and is never part of any returned error.
func Post(ctx context.Context, client *http.Client, endpoint, token string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.RemoteRejectionError{
			StatusCode: resp.StatusCode,
			Body:       truncate(respBody, maxErrorBody),
		}
	}

	return respBody, nil
}

// ExtractScalar pulls the single prediction out of the response value.
// The serving contract is one row and one column; both the nested
// [[x]] shape and the flat [x] shape are accepted, anything else is
// rejected.
func ExtractScalar(raw json.RawMessage) (float64, error) {
	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err == nil {
		if len(rows) != 1 || len(rows[0]) != 1 {
			return 0, &domain.ParseError{Reason: "expected exactly one row and one column"}
		}
		return rows[0][0], nil
	}

	var flat []float64
	if err := json.Unmarshal(raw, &flat); err == nil {
		if len(flat) != 1 {
			return 0, &domain.ParseError{Reason: "expected exactly one prediction"}
		}
		return flat[0], nil
	}

	return 0, &domain.ParseError{Reason: "predictions is not a numeric array"}
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}
