package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/adapter/connectrpc"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/config"
)

func newTestServer(t *testing.T) (*httptest.Server, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", HTTPPort: 0, CORSOrigins: []string{"https://app.example"}}}
	srv := NewServer(cfg, logger, &connectrpc.Services{
		Stats: connectrpc.NewStatsServiceServer(nil),
		Play:  connectrpc.NewPlayServiceServer(nil, nil),
		Theme: connectrpc.NewThemeServiceServer(nil),
		User:  connectrpc.NewUserServiceServer(nil),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, hook
}

func TestDetermineLogLevel(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, determineLogLevel(connect.CodeUnknown, nil))
	assert.Equal(t, logrus.WarnLevel, determineLogLevel(connect.CodeNotFound, errors.New("x")))
	assert.Equal(t, logrus.WarnLevel, determineLogLevel(connect.CodeUnauthenticated, errors.New("x")))
	assert.Equal(t, logrus.ErrorLevel, determineLogLevel(connect.CodeInternal, errors.New("x")))
}

func TestLoggingInterceptorRecordsRejectedCalls(t *testing.T) {
	ts, hook := newTestServer(t)

	client := connect.NewClient[cortexexv1.GetProfileStatsRequest, cortexexv1.ProfileStats](
		ts.Client(), ts.URL+cortexexv1.StatsServiceGetProfileStatsProcedure, connect.WithCodec(connectrpc.JSONCodec{}))
	_, err := client.CallUnary(context.Background(), connect.NewRequest(&cortexexv1.GetProfileStatsRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, cortexexv1.StatsServiceGetProfileStatsProcedure, entry.Data["procedure"])
	assert.Equal(t, connect.CodeUnauthenticated.String(), entry.Data["status"])
}

func TestCORSPreflightAllowsIdentityHeader(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+cortexexv1.PlayServiceBuildSessionPoolProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-user-id")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "https://app.example", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Less(t, resp.StatusCode, 300)
}
