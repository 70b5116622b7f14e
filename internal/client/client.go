// SPDX-License-Identifier: Apache-2.0

// Package client implements the HTTP boundary to the remote protection
// service on top of resty.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/polyguard/protect-cli/internal/archive"
	"github.com/polyguard/protect-cli/internal/files"
	"github.com/polyguard/protect-cli/internal/logger"
	"github.com/polyguard/protect-cli/models"
)

const defaultPollInterval = 500 * time.Millisecond

// Config configures the HTTP client for the protection service.
type Config struct {
	// BaseURL is the service endpoint, e.g. "https://api4.jscrambler.com:443".
	BaseURL string
	// Keys sign every request.
	Keys models.Keys
	// CAFile optionally adds an internal certificate authority.
	CAFile string
	// Proxy optionally routes requests through an HTTP proxy. When empty,
	// the standard proxy environment variables apply.
	Proxy string
	// PollInterval is the delay between protection status polls; a sane
	// default is used when zero.
	PollInterval time.Duration
}

// Client talks to the protection service. It implements [RemoteService].
type Client struct {
	http         *resty.Client
	log          *logger.Logger
	pollInterval time.Duration
}

var _ RemoteService = (*Client)(nil)

// BaseURL builds the service endpoint from resolved connection settings.
func BaseURL(conn models.Connection) string {
	return fmt.Sprintf("%s://%s:%d", conn.Protocol, conn.Host, conn.Port)
}

// New creates a Client. Every request of the invocation carries the same
// X-Request-Id so a whole run can be correlated on the service side.
func New(cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}

	requestID := uuid.NewString()
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("X-Request-Id", requestID).
		OnBeforeRequest(signingMiddleware(cfg.Keys))

	if cfg.CAFile != "" {
		cli.SetRootCertificate(cfg.CAFile)
	}
	if cfg.Proxy != "" {
		cli.SetProxy(cfg.Proxy)
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &Client{
		http:         cli,
		log:          &logger.Logger{Logger: log.With().Str("requestId", requestID).Logger()},
		pollInterval: interval,
	}
}

// protectionSettings is the wire body that starts a protection job.
type protectionSettings struct {
	Params                 []models.Parameter `json:"params,omitempty"`
	AreSubscribersOrdered  bool               `json:"areSubscribersOrdered"`
	SourceMaps             bool               `json:"sourceMaps"`
	RandomizationSeed      string             `json:"randomizationSeed,omitempty"`
	UseRecommendedOrder    bool               `json:"useRecommendedOrder"`
	TolerateMinification   bool               `json:"tolerateMinification"`
	JscramblerVersion      string             `json:"jscramblerVersion,omitempty"`
	DebugMode              bool               `json:"debugMode"`
	CodeHardeningThreshold *int64             `json:"codeHardeningThreshold,omitempty"`
	UseProfilingData       bool               `json:"useProfilingData"`
	Werror                 *bool              `json:"werror,omitempty"`
	ApplicationTypes       []string           `json:"applicationTypes,omitempty"`
	Languages              []string           `json:"languages,omitempty"`
}

// ProtectAndDownload runs the full protect flow: upload the sources (unless
// the application keeps server-side sources), start a protection, poll until
// it reaches a terminal state and unpack the protected result into
// req.FilesDest.
func (c *Client) ProtectAndDownload(ctx context.Context, req models.ProtectRequest) error {
	if len(req.Files) > 0 {
		if err := c.uploadSources(ctx, req); err != nil {
			return err
		}
	} else {
		c.log.Debug().Msg("no local sources, protecting server-side sources")
	}

	protectionID, err := c.createProtection(ctx, req)
	if err != nil {
		return err
	}
	c.log.Debug().Str("protectionId", protectionID).Msg("protection started")

	status, err := c.awaitProtection(ctx, protectionID)
	if err != nil {
		return err
	}
	if err := protectionError(status); err != nil {
		return err
	}

	return c.downloadResult(ctx, protectionID, req.FilesDest)
}

// FetchSourceMaps downloads the source-map archive of an existing protection
// and unpacks it into req.FilesDest.
func (c *Client) FetchSourceMaps(ctx context.Context, req models.SourceMapsRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/application/sourceMaps/" + req.ProtectionID)
	if err != nil {
		return fmt.Errorf("source maps request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	if err := archive.Unpack(resp.Body(), req.FilesDest); err != nil {
		return fmt.Errorf("source maps for protection %s: %w", req.ProtectionID, err)
	}

	c.log.Debug().Str("protectionId", req.ProtectionID).
		Str("dest", req.FilesDest).Msg("source maps downloaded")
	return nil
}

func (c *Client) uploadSources(ctx context.Context, req models.ProtectRequest) error {
	payload, err := sourcesPayload(req)
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", "sources.zip", bytes.NewReader(payload)).
		Post("/application/" + req.ApplicationID + "/sources")
	if err != nil {
		return fmt.Errorf("upload sources request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	c.log.Debug().Int("files", len(req.Files)).Int("bytes", len(payload)).Msg("sources uploaded")
	return nil
}

// sourcesPayload returns the zip to upload: the archive itself when the
// source list is a single zip, a fresh pack of the matched files otherwise.
func sourcesPayload(req models.ProtectRequest) ([]byte, error) {
	if files.IsArchiveSource(req.Files) {
		cwd := req.Cwd
		if cwd == "" {
			cwd = "."
		}
		payload, err := os.ReadFile(filepath.Join(cwd, req.Files[0]))
		if err != nil {
			return nil, fmt.Errorf("error reading archive %s: %w", req.Files[0], err)
		}
		return payload, nil
	}
	return archive.Pack(req.Files, req.Cwd)
}

func (c *Client) createProtection(ctx context.Context, req models.ProtectRequest) (string, error) {
	body := protectionSettings{
		Params:                 req.Params,
		AreSubscribersOrdered:  req.AreSubscribersOrdered,
		SourceMaps:             req.SourceMapsEnabled,
		RandomizationSeed:      req.RandomizationSeed,
		UseRecommendedOrder:    req.UseRecommendedOrder,
		TolerateMinification:   req.TolerateMinification,
		JscramblerVersion:      req.JscramblerVersion,
		DebugMode:              req.DebugMode,
		CodeHardeningThreshold: req.CodeHardeningThreshold,
		UseProfilingData:       req.UseProfilingData,
		Werror:                 req.Werror,
		ApplicationTypes:       req.ApplicationTypes,
		Languages:              req.Languages,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/application/" + req.ApplicationID + "/protections")
	if err != nil {
		return "", fmt.Errorf("create protection request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	var status models.ProtectionStatus
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return "", fmt.Errorf("decode create protection response: %w", err)
	}
	if status.ID == "" {
		return "", fmt.Errorf("service did not return a protection id")
	}
	return status.ID, nil
}

func (c *Client) awaitProtection(ctx context.Context, protectionID string) (models.ProtectionStatus, error) {
	for {
		resp, err := c.http.R().
			SetContext(ctx).
			Get("/application/protections/" + protectionID)
		if err != nil {
			return models.ProtectionStatus{}, fmt.Errorf("protection status request: %w", err)
		}
		if err := mapHTTPError(resp); err != nil {
			return models.ProtectionStatus{}, err
		}

		var status models.ProtectionStatus
		if err := json.Unmarshal(resp.Body(), &status); err != nil {
			return models.ProtectionStatus{}, fmt.Errorf("decode protection status: %w", err)
		}
		if status.Done() {
			return status, nil
		}

		c.log.Debug().Str("protectionId", protectionID).Str("state", status.State).Msg("protection in progress")
		select {
		case <-ctx.Done():
			return models.ProtectionStatus{}, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func protectionError(status models.ProtectionStatus) error {
	switch status.State {
	case models.ProtectionStateFinished:
		return nil
	case models.ProtectionStateCanceled:
		return ErrProtectionCanceled
	default:
		msg := status.ErrorMessage
		for _, src := range status.Sources {
			if src.Level == "error" {
				msg = fmt.Sprintf("%s; %s: %s", msg, src.Filename, src.Message)
			}
		}
		return fmt.Errorf("protection %s failed: %s", status.ID, strings.TrimPrefix(msg, "; "))
	}
}

func (c *Client) downloadResult(ctx context.Context, protectionID, destDir string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/application/protections/" + protectionID + "/download")
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	if err := archive.Unpack(resp.Body(), destDir); err != nil {
		return fmt.Errorf("protection %s result: %w", protectionID, err)
	}

	c.log.Debug().Str("protectionId", protectionID).Str("dest", destDir).Msg("protected files downloaded")
	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("protection service responded %d: %s", resp.StatusCode(), body)
}
