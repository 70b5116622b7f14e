// SPDX-License-Identifier: Apache-2.0

// Package dispatch chooses and runs the single remote operation of an
// invocation.
package dispatch

import (
	"context"
	"fmt"

	"github.com/polyguard/protect-cli/internal/client"
	"github.com/polyguard/protect-cli/internal/config"
	"github.com/polyguard/protect-cli/internal/logger"
	"github.com/polyguard/protect-cli/models"
)

// Dispatcher assembles the final request from the resolved configuration and
// the matched files, and invokes exactly one remote operation: source-map
// download when a protection id was requested, protect-and-download
// otherwise. The two request shapes are mutually exclusive by construction.
type Dispatcher struct {
	svc client.RemoteService
	log *logger.Logger
}

// New creates a Dispatcher on top of the given remote service.
func New(svc client.RemoteService, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{svc: svc, log: log}
}

// Dispatch runs the invocation's single remote round-trip. The outcome of
// the remote call is the terminal event of the run; the returned error maps
// directly to the process exit code.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg *config.Config, matched []string) error {
	keys := models.Keys{AccessKey: cfg.AccessKey, SecretKey: cfg.SecretKey}
	conn := models.Connection{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Protocol: cfg.Protocol,
		CAFile:   cfg.CAFile,
	}

	if cfg.SourceMaps != "" {
		req := models.SourceMapsRequest{
			Keys:         keys,
			Connection:   conn,
			FilesDest:    cfg.FilesDest,
			Files:        matched,
			ProtectionID: cfg.SourceMaps,
			DebugMode:    cfg.DebugMode,
		}

		d.log.Debug().Str("protectionId", cfg.SourceMaps).Msg("downloading source maps")
		if err := d.svc.FetchSourceMaps(ctx, req); err != nil {
			return fmt.Errorf("fetch source maps: %w", err)
		}
		return nil
	}

	req := models.ProtectRequest{
		Keys:          keys,
		Connection:    conn,
		ApplicationID: cfg.ApplicationID,
		Files:         matched,
		FilesDest:     cfg.FilesDest,
		Cwd:           cfg.Cwd,

		Params:                cfg.Params,
		AreSubscribersOrdered: len(cfg.Params) > 0,
		SourceMapsEnabled:     false,
		ApplicationTypes:      cfg.ApplicationTypes,
		Languages:             cfg.Languages,

		RandomizationSeed:      cfg.RandomizationSeed,
		UseRecommendedOrder:    cfg.UseRecommendedOrder,
		TolerateMinification:   cfg.TolerateMinification,
		JscramblerVersion:      cfg.JscramblerVersion,
		DebugMode:              cfg.DebugMode,
		Proxy:                  cfg.Proxy,
		CodeHardeningThreshold: cfg.CodeHardeningThreshold,
		UseProfilingData:       cfg.UseProfilingData,

		// Tri-state: forwarded only if some layer ever defined it.
		Werror: cfg.Werror,
	}

	d.log.Debug().Str("applicationId", cfg.ApplicationID).Int("files", len(matched)).Msg("protecting application")
	if err := d.svc.ProtectAndDownload(ctx, req); err != nil {
		return fmt.Errorf("protect and download: %w", err)
	}
	return nil
}
