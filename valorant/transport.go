package valorant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// envelope is the wire format of every valorant-api.com response:
// status plus data on success, status plus error on failure.
type envelope struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

// get performs a single GET against the API and returns the raw data
// field of the response envelope
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("url", requestURL).
		Msg("Requesting valorant-api resource")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiErrorFromResponse(resp.StatusCode, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return env.Data, nil
}

// apiErrorFromResponse maps a failure response to an APIError.
// Malformed bodies degrade to the HTTP status plus a body snippet
// instead of a decode failure.
func apiErrorFromResponse(httpStatus int, body []byte) *APIError {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Status == 0 {
		return &APIError{StatusCode: httpStatus, Message: snippet(body)}
	}

	message := env.Error
	if message == "" {
		switch env.Status {
		case http.StatusBadRequest:
			message = "invalid or missing parameters"
		case http.StatusNotFound:
			message = "resource not found"
		default:
			message = http.StatusText(env.Status)
		}
	}
	return &APIError{StatusCode: env.Status, Message: message}
}

const maxSnippetLen = 200

func snippet(body []byte) string {
	s := string(body)
	if len(s) > maxSnippetLen {
		return s[:maxSnippetLen] + "..."
	}
	return s
}
