package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matt-g-everett/logocube/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedSource scene.State

func (s fixedSource) Snapshot() scene.State { return scene.State(s) }

func TestGetState(t *testing.T) {
	src := fixedSource{Frame: 3, Width: 640, Height: 480, SpinSpeed: 0.02}
	srv := httptest.NewServer(NewApi(src, scene.NewInbox(1), zap.NewNop()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got scene.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, scene.State(src), got)
}

func TestPostPointer(t *testing.T) {
	inbox := scene.NewInbox(1)
	srv := httptest.NewServer(NewApi(fixedSource{}, inbox, zap.NewNop()).Handler())
	defer srv.Close()

	post := func(body string) int {
		resp, err := http.Post(srv.URL+"/pointer", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusAccepted, post(`{"x":0.1,"y":0.9}`))
	assert.Equal(t, http.StatusServiceUnavailable, post(`{"x":0.1,"y":0.9}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"x":-1,"y":0}`))
	assert.Equal(t, http.StatusBadRequest, post(`garbage`))

	ev := <-inbox
	assert.Equal(t, scene.PointerEvent{X: 0.1, Y: 0.9, Normalized: true, Source: "http"}, ev)

	resp, err := http.Get(srv.URL + "/pointer")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
