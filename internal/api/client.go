// Package api is the HTTP client for the game-server admin API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/models"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const maxBodyBytes = 1 << 20

type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Log        *logrus.Entry
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Entry
}

var _ mute.Creator = (*Client)(nil)

// New builds a client. A non-empty Token is sent as a bearer token on every
// request.
func New(opts Options) *Client {
	base := opts.HTTPClient
	if base == nil {
		base = &http.Client{}
	}
	hc := base
	if opts.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: opts.Token,
			TokenType:   "Bearer",
		}))
	}
	if opts.Timeout > 0 {
		copied := *hc
		copied.Timeout = opts.Timeout
		hc = &copied
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
		log:     log,
	}
}

// StatusError is a non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *StatusError) StatusCode() int { return e.Status }

func (e *StatusError) ResponseBody() []byte { return e.Body }

// CreateMute posts the draft verbatim to /api/mutes. Any 2xx is success
// and the response body is discarded.
func (c *Client) CreateMute(ctx context.Context, d mute.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode mute: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, config.MutesPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return nil
}

// ListMutes fetches the mute list. The API may answer with a bare array or
// with an object holding a "mutes" array.
func (c *Client) ListMutes(ctx context.Context) ([]models.Mute, error) {
	resp, err := c.do(ctx, http.MethodGet, config.MutesPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes*8))
	if err != nil {
		return nil, fmt.Errorf("read mute list: %w", err)
	}
	return decodeMuteList(body)
}

func decodeMuteList(body []byte) ([]models.Mute, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if body[0] == '[' {
		var mutes []models.Mute
		if err := json.Unmarshal(body, &mutes); err != nil {
			return nil, fmt.Errorf("decode mute list: %w", err)
		}
		return mutes, nil
	}
	var wrapped struct {
		Mutes []models.Mute `json:"mutes"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode mute list: %w", err)
	}
	return wrapped.Mutes, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	entry := c.log.WithFields(logrus.Fields{
		"method":  method,
		"path":    path,
		"elapsed": time.Since(start).Round(time.Millisecond),
	})
	if err != nil {
		entry.WithError(err).Debug("API request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	entry = entry.WithField("status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		entry.Debug("API request rejected")
		return nil, &StatusError{Method: method, Path: path, Status: resp.StatusCode, Body: data}
	}
	entry.Debug("API request done")
	return resp, nil
}
