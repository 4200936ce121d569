package providers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

var errNoHTTPClient = errors.New("http client not configured")

// doRequest executes req exactly once. Non-2xx responses are drained and
// returned as *weather.UpstreamError; on success the caller owns resp.Body.
func doRequest(client *http.Client, req *http.Request) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request weather provider: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &weather.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return resp, nil
}
