package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haptitalk/feedback-engine/server/mocks"
)

func newTestServer(t *testing.T) (*Server, *mocks.FeedbackEngineMock, *mocks.StoreMock, *httptest.Server) {
	t.Helper()

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}
	engine := &mocks.FeedbackEngineMock{}
	store := &mocks.StoreMock{}

	srv := New(cfg, engine, store, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return srv, engine, store, ts
}

func TestServer_Status(t *testing.T) {
	_, _, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestServer_Ping(t *testing.T) {
	_, _, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Run(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", time.Second },
	}
	srv := New(cfg, &mocks.FeedbackEngineMock{}, &mocks.StoreMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond) // let the listener come up
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
