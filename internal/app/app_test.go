package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexdb/internal/app/loader"
	"github.com/heartmarshall/lexdb/internal/config"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestServe_AnswersAndShutsDown(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "WordNetMappings30-noun.txt"),
		[]byte("01855672 05 n 01 goose 0 000 | web-footed long-necked migratory aquatic birds &%Goose+\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noun.exc"), []byte("geese goose\n"), 0o644))

	cfg := &config.Config{
		Lexicon: loader.Config{BaseDir: dir, MaxIssuesPerFile: 10},
		Lookup:  config.LookupConfig{CacheSize: 16},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            freePort(t),
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET"},
		Log:  config.LogConfig{Level: "info", Format: "json"},
	}
	base := fmt.Sprintf("http://%s", cfg.Server.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ready")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond)

	resp, err := http.Get(base + "/api/v1/words/geese")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
