package spacedeck

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, public string) (*PresentationServer, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	log := logrus.New()
	log.Out = ioutil.Discard

	server, err := NewPresentationServer(ctx, controllerDeck(t), ServerOptions{PublicDir: public, Log: log})
	require.NoError(t, err)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return server, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads messages until one of the given type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) wsMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		msg := wsMessage{}
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == typ {
			return msg
		}
	}
}

// readState skips state pushes until one contains want.
func readState(t *testing.T, conn *websocket.Conn, want string) wsMessage {
	t.Helper()
	for {
		msg := readUntil(t, conn, msgState)
		if strings.Contains(msg.HTML, want) {
			return msg
		}
	}
}

func TestControlChannel(t *testing.T) {
	server, ts := newTestServer(t, t.TempDir())
	conn := dial(t, ts)

	readState(t, conn, "1 / 3")
	require.Eventually(t, func() bool { return server.Sessions() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteJSON(wsMessage{Type: msgKey, Key: KeyRight}))
	readState(t, conn, "2 / 3")

	require.NoError(t, conn.WriteJSON(wsMessage{Type: msgAction, Action: &Action{Kind: ActionGoto, Index: 2}}))
	readState(t, conn, "3 / 3")

	require.NoError(t, conn.WriteJSON(wsMessage{Type: msgAction, Action: &Action{Kind: ActionToggleFullscreen}}))
	readUntil(t, conn, msgFullscreen)

	require.NoError(t, conn.WriteJSON(wsMessage{Type: msgFullscreenChange, Active: true}))
	readState(t, conn, "is-full")

	server.Reload(controllerDeck(t))
	readUntil(t, conn, msgReload)

	conn.Close()
	require.Eventually(t, func() bool { return server.Sessions() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestSessionsAreIndependent(t *testing.T) {
	_, ts := newTestServer(t, t.TempDir())
	a := dial(t, ts)
	b := dial(t, ts)
	readState(t, a, "1 / 3")
	readState(t, b, "1 / 3")

	require.NoError(t, a.WriteJSON(wsMessage{Type: msgKey, Key: KeyRight}))
	readState(t, a, "2 / 3")

	require.NoError(t, b.WriteJSON(wsMessage{Type: msgAction, Action: &Action{Kind: ActionToggleOverview}}))
	msg := readState(t, b, "overview-grid")
	assert.Contains(t, msg.HTML, "1 / 3")
}

func TestPages(t *testing.T) {
	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "prompts"), 0777))
	require.NoError(t, os.MkdirAll(filepath.Join(public, "notes"), 0777))
	require.NoError(t, os.WriteFile(filepath.Join(public, "prompts", "a.md"), []byte("# A"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "notes", "presenter_notes.md"), []byte("# Fala inicial"), 0644))
	_, ts := newTestServer(t, public)

	get := func(path string) (int, string) {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	code, body := get("/present")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "1 / 3")

	code, body = get("/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `href="/present"`)

	code, body = get("/landing")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Falha ao carregar")

	code, body = get("/notes")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Fala inicial</h1>")

	code, body = get("/prompts/a.md")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "# A", body)

	code, _ = get("/prompts/missing.md")
	assert.Equal(t, http.StatusNotFound, code)

	code, body = get("/static/present.js")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "WebSocket")
}

func TestNotesMissing(t *testing.T) {
	_, ts := newTestServer(t, t.TempDir())
	resp, err := http.Get(ts.URL + "/notes")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := ioutil.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Falha ao carregar "+NotesPath)
}
