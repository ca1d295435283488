package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/armoury-api/internal/config"
	"github.com/phrazzld/armoury-api/internal/domain/deck"
	"github.com/phrazzld/armoury-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(policy string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug", ShutdownTimeoutSeconds: 2},
		Catalog: config.CatalogConfig{
			Source:   config.CatalogSourceFile,
			FilePath: "testdata/catalog.yaml",
		},
		Deck: config.DeckConfig{Policy: policy},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, policy string) *application {
	t.Helper()
	app, err := newApplication(context.Background(), testConfig(policy), testLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

func request(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestNewApplication_FileCatalog(t *testing.T) {
	app := newTestApp(t, "advisory")
	assert.Nil(t, app.db)
	assert.NotNil(t, app.catalog)
	assert.NotNil(t, app.deckService)
}

func TestNewApplication_Errors(t *testing.T) {
	t.Run("missing catalog file", func(t *testing.T) {
		cfg := testConfig("advisory")
		cfg.Catalog.FilePath = filepath.Join(t.TempDir(), "absent.yaml")

		_, err := newApplication(context.Background(), cfg, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load catalog file")
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := newApplication(context.Background(), testConfig("lenient"), testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deck policy")
	})

	t.Run("unknown source", func(t *testing.T) {
		cfg := testConfig("advisory")
		cfg.Catalog.Source = "s3"

		_, err := newApplication(context.Background(), cfg, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown catalog source")
	})
}

func TestRouter_Health(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t, "advisory").setupRouter())
	defer srv.Close()

	resp, body := request(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

func TestRouter_DraftLifecycle(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t, "advisory").setupRouter())
	defer srv.Close()

	resp, body := request(t, srv, http.MethodGet, "/api/divisions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Div_US_3rd_Armored")

	resp, body = request(t, srv, http.MethodPost, "/api/decks", map[string]any{"division": "Div_US_3rd_Armored"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var started service.DeckView
	require.NoError(t, json.Unmarshal(body, &started))
	deckPath := "/api/decks/" + started.ID.String()
	assert.Equal(t, "advisory", started.Policy)
	assert.Equal(t, 0, started.Total)

	resp, body = request(t, srv, http.MethodPost, deckPath+"/packs", map[string]any{
		"pack_descriptor":      "Descriptor_Deck_Pack_Rifles",
		"veterancy":            1,
		"transport_descriptor": "Unit_M113",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var added service.AddPackResult
	require.NoError(t, json.Unmarshal(body, &added))
	assert.Equal(t, 1, added.Selection.ID)
	require.NotNil(t, added.Selection.Transport)
	assert.Equal(t, "Unit_M113", added.Selection.Transport.Descriptor)
	assert.Equal(t, 1, added.Deck.Total)

	// Infantry row costs [0, 1, 1, 2]: the second slot costs 1.
	infantry := added.Deck.Categories[1].Slots
	assert.Equal(t, deck.CategoryInfantry, infantry.Category)
	assert.Equal(t, 1, infantry.UsedSlots)
	require.NotNil(t, infantry.NextSlotCost)
	assert.Equal(t, 1, *infantry.NextSlotCost)
	// 8 * 0.75 units at veterancy 1.
	assert.Equal(t, 6, infantry.UnitCount)

	resp, body = request(t, srv, http.MethodGet, deckPath+"/armoury", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var armoury deck.Armoury
	require.NoError(t, json.Unmarshal(body, &armoury))
	assert.Equal(t, 1, armoury.Categories[1].Packs[0].Selected)
	assert.True(t, armoury.Categories[1].Packs[0].CanPurchase)

	resp, _ = request(t, srv, http.MethodDelete, deckPath+"/packs/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = request(t, srv, http.MethodGet, deckPath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view service.DeckView
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 0, view.Total)

	resp, _ = request(t, srv, http.MethodDelete, deckPath, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = request(t, srv, http.MethodGet, deckPath, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_StrictPolicyRejectsOverLimit(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t, "strict").setupRouter())
	defer srv.Close()

	resp, body := request(t, srv, http.MethodPost, "/api/decks", map[string]any{"division": "Div_US_3rd_Armored"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var started service.DeckView
	require.NoError(t, json.Unmarshal(body, &started))
	packsPath := "/api/decks/" + started.ID.String() + "/packs"

	// The recon pack lands in the catch-all category, which has no slot.
	resp, _ = request(t, srv, http.MethodPost, packsPath,
		map[string]any{"pack_descriptor": "Descriptor_Deck_Pack_OH58", "veterancy": 0})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The tank pack allows two cards.
	tank := map[string]any{"pack_descriptor": "Descriptor_Deck_Pack_M1A1", "veterancy": 0}
	for i := 0; i < 2; i++ {
		resp, body = request(t, srv, http.MethodPost, packsPath, tank)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}
	resp, body = request(t, srv, http.MethodPost, packsPath, tank)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "Card limit reached")
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	app := newTestApp(t, "advisory")

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, listener, app.setupRouter()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestLoadAppConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
catalog:
  source: file
  file_path: testdata/catalog.yaml
deck:
  policy: strict
`), 0o600))

	cfg, err := loadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "strict", cfg.Deck.Policy)

	l, err := setupAppLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, l)
}
