package workbook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/unidoc/unioffice/spreadsheet"
)

// Fetch downloads the credits workbook and parses it. A fresh token is
// appended to the query string and no-store semantics requested, so
// spreadsheet edits show up without a redeploy. One attempt, no retry:
// a failed load just leaves the dataset empty.
func Fetch(ctx context.Context, client *http.Client, rawURL string) (*spreadsheet.Workbook, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("workbook url: %w", err)
	}
	q := u.Query()
	q.Set("ts", uuid.NewString())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch workbook: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read workbook body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch workbook: status %d", resp.StatusCode)
	}

	wb, err := spreadsheet.Read(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	return wb, nil
}
