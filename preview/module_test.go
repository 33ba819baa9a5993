package preview

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewModule_ServesDir(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	dir := artifactDir(t)

	app := fxtest.New(t, NewModule(addr, dir))

	app.RequireStart()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+addr+"/common.puml", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "!define PUML_ENTITY\n", string(body))

	app.RequireStop()
}

func TestNewModule_ShutdownStopsServer(t *testing.T) {
	t.Parallel()

	addr := freePort(t)

	app := fxtest.New(t, NewModule(addr, t.TempDir()))

	app.RequireStart()
	app.RequireStop()

	dialer := net.Dialer{Timeout: 100 * time.Millisecond}

	conn, dialErr := dialer.DialContext(context.Background(), "tcp", addr)
	if dialErr == nil {
		_ = conn.Close()
	}

	assert.Error(t, dialErr, "should not be able to connect after shutdown")
}

func TestNewModule_EmptyDir(t *testing.T) {
	t.Parallel()

	app := fx.New(
		NewModule(":0", ""),
		fx.NopLogger,
	)

	err := app.Err()
	require.Error(t, err, "should fail with empty directory")
	assert.ErrorIs(t, err, ErrEmptyDir)
}

func TestNewModule_ListenFailure(t *testing.T) {
	t.Parallel()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	app := fx.New(
		NewModule(ln.Addr().String(), t.TempDir()),
		fx.NopLogger,
	)

	err = app.Start(context.Background())
	assert.Error(t, err, "should fail when port is already in use")
}
