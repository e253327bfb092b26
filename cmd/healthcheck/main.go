// Command healthcheck is the container HEALTHCHECK for grocerylist. It exits
// non-zero unless the API reports status "ok" together with an entry count,
// which proves the list was loaded from its record store.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

// healthBody mirrors the fields of the /api/v1/health response this check
// relies on.
type healthBody struct {
	Status  string `json:"status"`
	Entries *int   `json:"entries"`
}

func main() {
	addr := normalizeAddr(os.Getenv("GROCERYLIST_LISTEN_ADDR"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client := &http.Client{Timeout: 2 * time.Second}
	entries, err := checkHealth(ctx, client, fmt.Sprintf("http://%s/api/v1/health", addr))
	if err != nil {
		fmt.Fprintln(os.Stderr, "unhealthy:", err)
		os.Exit(1)
	}
	fmt.Printf("healthy: %d entries\n", entries)
}

// checkHealth fetches url and returns the reported entry count.
func checkHealth(ctx context.Context, client *http.Client, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status %d", resp.StatusCode)
	}

	var body healthBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode health response: %w", err)
	}
	if body.Status != "ok" {
		return 0, fmt.Errorf("status field %q", body.Status)
	}
	if body.Entries == nil {
		return 0, errors.New("entries field missing")
	}
	return *body.Entries, nil
}

// normalizeAddr ensures the healthcheck connects to loopback rather than the
// bind-all address. Docker containers bind 0.0.0.0 but the healthcheck runs
// inside the same container, so loopback is reachable and more correct.
func normalizeAddr(raw string) string {
	if raw == "" {
		return "127.0.0.1:8080"
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return "127.0.0.1:8080"
	}

	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
