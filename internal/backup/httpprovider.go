package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPProvider talks to the export service's REST API.
type HTTPProvider struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

func NewHTTPProvider(baseURL, apiToken string) *HTTPProvider {
	return &HTTPProvider{
		baseURL:  baseURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HTTPProvider) VerifyBackupExists(ctx context.Context, year, month int) (bool, error) {
	info, err := p.GetBackupInfo(ctx, year, month)
	if err != nil {
		return false, err
	}

	return info.Exists, nil
}

func (p *HTTPProvider) GetBackupInfo(ctx context.Context, year, month int) (*Info, error) {
	url := fmt.Sprintf("%s/api/v1/backups/%d/%d", p.baseURL, year, month)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if p.apiToken != "" {
		req.Header.Set("Authorization", "Token "+p.apiToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &Info{Exists: false}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for url %s", resp.StatusCode, url)
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding backup info: %w", err)
	}

	return &info, nil
}
