package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/polyguard/protect-cli/internal/config"
	"github.com/polyguard/protect-cli/internal/logger"
	"github.com/polyguard/protect-cli/internal/mock"
	"github.com/polyguard/protect-cli/models"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *mock.MockRemoteService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockRemoteService(ctrl)
	return New(svc, logger.Nop()), svc
}

func TestDispatch_SourceMapsPath(t *testing.T) {
	d, svc := newTestDispatcher(t)

	cfg := &config.Config{
		AccessKey:     "AK",
		SecretKey:     "SK",
		Host:          "api.example.com",
		Port:          443,
		Protocol:      "https",
		FilesDest:     "out",
		SourceMaps:    "prot-42",
		ApplicationID: "app-1", // present in config, must not leak into the request
		Params:        []models.Parameter{{Name: "p"}},
	}

	var captured models.SourceMapsRequest
	svc.EXPECT().
		FetchSourceMaps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.SourceMapsRequest) error {
			captured = req
			return nil
		})

	err := d.Dispatch(context.Background(), cfg, []string{"a.js"})
	require.NoError(t, err)

	assert.Equal(t, "prot-42", captured.ProtectionID)
	assert.Equal(t, "out", captured.FilesDest)
	assert.Equal(t, []string{"a.js"}, captured.Files)
	assert.Equal(t, "AK", captured.Keys.AccessKey)
	assert.Equal(t, 443, captured.Connection.Port)
}

func TestDispatch_ProtectPath(t *testing.T) {
	d, svc := newTestDispatcher(t)

	threshold := int64(0)
	werror := false
	cfg := &config.Config{
		AccessKey:              "AK",
		SecretKey:              "SK",
		Host:                   "api.example.com",
		Port:                   443,
		Protocol:               "https",
		ApplicationID:          "app-1",
		FilesDest:              "out",
		Cwd:                    "/tmp/app",
		Params:                 []models.Parameter{{Name: "p"}},
		CodeHardeningThreshold: &threshold,
		Werror:                 &werror,
		JscramblerVersion:      "5.2",
		UseRecommendedOrder:    true,
	}

	var captured models.ProtectRequest
	svc.EXPECT().
		ProtectAndDownload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ProtectRequest) error {
			captured = req
			return nil
		})

	err := d.Dispatch(context.Background(), cfg, []string{"a.js", "b.js"})
	require.NoError(t, err)

	assert.Equal(t, "app-1", captured.ApplicationID)
	assert.Equal(t, []string{"a.js", "b.js"}, captured.Files)
	assert.True(t, captured.AreSubscribersOrdered)
	assert.True(t, captured.UseRecommendedOrder)
	assert.Equal(t, "5.2", captured.JscramblerVersion)

	// Never a source-map identifier on the protect path.
	assert.False(t, captured.SourceMapsEnabled)

	// Explicit zero threshold and explicit false werror survive intact.
	require.NotNil(t, captured.CodeHardeningThreshold)
	assert.Equal(t, int64(0), *captured.CodeHardeningThreshold)
	require.NotNil(t, captured.Werror)
	assert.False(t, *captured.Werror)
}

func TestDispatch_WerrorNeverDefinedStaysNil(t *testing.T) {
	d, svc := newTestDispatcher(t)

	var captured models.ProtectRequest
	svc.EXPECT().
		ProtectAndDownload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ProtectRequest) error {
			captured = req
			return nil
		})

	err := d.Dispatch(context.Background(), &config.Config{ApplicationID: "app-1"}, nil)
	require.NoError(t, err)
	assert.Nil(t, captured.Werror)
	assert.False(t, captured.AreSubscribersOrdered)
}

func TestDispatch_RemoteFailurePropagates(t *testing.T) {
	d, svc := newTestDispatcher(t)

	remoteErr := errors.New("service exploded")
	svc.EXPECT().
		ProtectAndDownload(gomock.Any(), gomock.Any()).
		Return(remoteErr)

	err := d.Dispatch(context.Background(), &config.Config{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, remoteErr)
}

func TestDispatch_SourceMapsFailurePropagates(t *testing.T) {
	d, svc := newTestDispatcher(t)

	remoteErr := errors.New("not found")
	svc.EXPECT().
		FetchSourceMaps(gomock.Any(), gomock.Any()).
		Return(remoteErr)

	err := d.Dispatch(context.Background(), &config.Config{SourceMaps: "prot-1"}, nil)
	assert.ErrorIs(t, err, remoteErr)
}
