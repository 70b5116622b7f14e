package client

import (
	"context"

	"github.com/polyguard/protect-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_service_mock.go -package=mock

// RemoteService is the boundary to the remote protection service. Exactly
// one of its operations runs per invocation.
type RemoteService interface {
	// ProtectAndDownload uploads the request's sources, starts a protection,
	// waits for it to finish and downloads the protected result into the
	// request's destination directory.
	ProtectAndDownload(ctx context.Context, req models.ProtectRequest) error

	// FetchSourceMaps downloads the source maps of an existing protection
	// into the request's destination directory.
	FetchSourceMaps(ctx context.Context, req models.SourceMapsRequest) error
}
