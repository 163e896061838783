package daemon

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payzee/internal/platform/config"
	"payzee/internal/session"
	"payzee/pkg/requestcontext"
)

func TestVersion(t *testing.T) {
	a, err := New()
	require.NoError(t, err, "Setup: New should not return an error")

	var out bytes.Buffer
	a.RootCmd().SetOut(&out)
	a.SetArgs("version")

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), CmdName)
	assert.False(t, a.UsageError())
}

func TestUsageError(t *testing.T) {
	a, err := New()
	require.NoError(t, err, "Setup: New should not return an error")
	a.SetArgs("doesnotexist")

	require.Error(t, a.Run(context.Background()))
	assert.True(t, a.UsageError(), "Usage error is reported as such")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payzee.yaml")
	content := "addr: \":9090\"\nbackend:\n  base_url: http://api.payzee.test/v1\n  failure_threshold: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Setup: couldn't write config file")

	a, err := New()
	require.NoError(t, err)
	a.configFile = path
	a.envFile = ""

	require.NoError(t, a.loadConfig())
	assert.Equal(t, ":9090", a.Config().Addr)
	assert.Equal(t, "http://api.payzee.test/v1", a.Config().Backend.BaseURL)
	assert.Equal(t, 3, a.Config().Backend.FailureThreshold)
	assert.Equal(t, config.Defaults().Backend.Timeout, a.Config().Backend.Timeout)
}

func TestMissingConfigFileErrors(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	a.configFile = "/does/not/exist.yaml"

	assert.Error(t, a.loadConfig())
}

func TestFlagsAndEnvironment(t *testing.T) {
	t.Setenv("PAYZEE_LOG_LEVEL", "debug")

	a, err := New()
	require.NoError(t, err)
	a.envFile = ""
	require.NoError(t, a.RootCmd().PersistentFlags().Set("addr", ":7070"))

	require.NoError(t, a.loadConfig())
	assert.Equal(t, ":7070", a.Config().Addr)
	assert.Equal(t, "debug", a.Config().LogLevel)
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAYZEE_ENVIRONMENT=staging\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PAYZEE_ENVIRONMENT") })

	a, err := New()
	require.NoError(t, err)
	a.envFile = path

	require.NoError(t, a.loadConfig())
	assert.Equal(t, "staging", a.Config().Environment)
}

func TestBuildHandlerServesProbes(t *testing.T) {
	h, err := buildHandler(t.Context(), config.Defaults(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schemes", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBuildHandlerRejectsBadProxies(t *testing.T) {
	cfg := config.Defaults()
	cfg.TrustedProxies = []string{"not-an-ip"}

	_, err := buildHandler(t.Context(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestServeStopsWhenContextEnds(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	a.config = config.Defaults()
	a.config.Addr = "127.0.0.1:0"
	a.config.LogLevel = "error"

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.serve(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the context ended")
	}
}

func TestSessionCommand(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	a.config = config.Defaults()

	var out bytes.Buffer
	userID := "6f1c2b9e-3d4a-4f5b-8c7d-1e2f3a4b5c6d"
	require.NoError(t, a.mintSession(&out, userID, requestcontext.UserTypeGovernment, true))

	var got sessionOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "government", got.UserType)

	codec, err := session.NewCodec(a.config.Session.Secret, a.config.Session.TTL, false)
	require.NoError(t, err)
	identity, err := codec.Parse(got.Token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, userID, identity.GovernmentID.String())
}

func TestSessionCommandRejectsBadUserID(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	a.config = config.Defaults()

	assert.Error(t, a.mintSession(io.Discard, "not-a-uuid", requestcontext.UserTypeGovernment, false))
}

func TestSecretCommand(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	var out bytes.Buffer
	a.RootCmd().SetOut(&out)
	a.SetArgs("secret")

	require.NoError(t, a.Run(context.Background()))
	assert.GreaterOrEqual(t, len(strings.TrimSpace(out.String())), 40)
}
