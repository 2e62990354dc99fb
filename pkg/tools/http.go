package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	httpTimeout      = 30 * time.Second
	maxHTTPBodyBytes = 1 << 20
)

func (r *Runner) invokeHTTP(ctx context.Context, def Definition, params map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, httpTimeout)
	defer cancel()

	method := def.Method
	if method == "" {
		method = http.MethodGet
	}
	url := interpolate(def.URL, params)

	var body io.Reader
	if def.Body != "" {
		body = strings.NewReader(interpolate(def.Body, params))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return "", fmt.Errorf("failed to build request for tool %q: %w", def.Name, err)
	}
	for k, v := range def.Headers {
		req.Header.Set(k, interpolate(v, params))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tool %q request failed: %w", def.Name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxHTTPBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response for tool %q: %w", def.Name, err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("tool %q returned HTTP %d: %s", def.Name, resp.StatusCode, truncate(string(data), 500))
	}
	return string(data), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
