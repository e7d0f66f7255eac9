// Package jsonreq builds outbound JSON requests for the provider packages.
package jsonreq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentType is set on every outbound provider request.
const ContentType = "application/json"

// New encodes body as JSON and wraps it in a POST request to url.
func New(ctx context.Context, url string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating upstream request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)

	return req, nil
}
