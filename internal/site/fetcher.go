package site

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/olatundun-care/sitecms/internal/db/controller/setting"
)

// Fetcher moves whole records between the client cache and the settings
// service.
type Fetcher interface {
	// Fetch retrieves the full current record.
	Fetch(ctx context.Context) (Record, error)
	// Push writes the given pairs through the service. Pushing the same
	// record twice yields the same stored state.
	Push(ctx context.Context, rec Record) error
}

const defaultHTTPTimeout = 30 * time.Second

// SettingsPath is the settings API route.
const SettingsPath = "/api/settings"

// HTTPFetcher talks to a running sitecms instance over its JSON API. It backs
// the remote admin CLI commands.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher against the given base URL
// (e.g. "http://localhost:3000").
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+SettingsPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build settings request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "settings fetch failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("settings fetch returned status %d", resp.StatusCode)
	}

	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "malformed settings response")
	}

	return rec, nil
}

// Push implements Fetcher.
func (f *HTTPFetcher) Push(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings")
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, f.baseURL+SettingsPath, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build settings request")
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "settings push failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("settings push returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

// StoreFetcher reads and writes the settings store directly. It serves the
// in-process rendering handlers, which sit in the same binary as the store.
type StoreFetcher struct {
	db *gorm.DB
}

// NewStoreFetcher creates a fetcher over the given database handle.
func NewStoreFetcher(db *gorm.DB) *StoreFetcher {
	return &StoreFetcher{db: db}
}

// Fetch implements Fetcher.
func (f *StoreFetcher) Fetch(_ context.Context) (Record, error) {
	pairs, err := setting.ReadAll(f.db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings")
	}

	return Record(pairs), nil
}

// Push implements Fetcher.
func (f *StoreFetcher) Push(_ context.Context, rec Record) error {
	return setting.WriteMany(f.db, rec)
}
