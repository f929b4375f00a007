package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/handler"
	myHTTP "github.com/MKhiriev/activity-tracker/internal/handler/http"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticVersion string

func (v staticVersion) GetAppVersion(context.Context) string { return string(v) }

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	cfg := config.StructuredConfig{
		App:    config.App{Version: "1.0.0"},
		Server: config.Server{HTTPAddress: "127.0.0.1:0"},
	}
	services := &service.Services{AppInfoService: staticVersion("1.0.0")}
	return &handler.Handlers{HTTP: myHTTP.NewHandler(services, nil, cfg, logger.Nop())}
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":1234"}, logger.Nop())

	assert.Equal(t, ":1234", h.server.Addr)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
	assert.Equal(t, idleTimeout, h.server.IdleTimeout)
	assert.Equal(t, ":1234", h.Addr())
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	require.NoError(t, s.httpServer.listen())
	addr := s.httpServer.Addr()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://%s/api/version", addr))
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "1.0.0", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(fmt.Sprintf("http://%s/api/version", addr))
	assert.Error(t, err)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
