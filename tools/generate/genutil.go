package generate

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// fetchTimeout bounds every request a generator makes.
const fetchTimeout = time.Minute

var httpClient = &http.Client{Timeout: fetchTimeout}

// fetchURL downloads url and returns the response body. Any non-200
// response is an error.
func fetchURL(url string) ([]byte, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
