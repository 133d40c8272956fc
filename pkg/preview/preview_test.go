package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/vtree"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

// newTestServer builds a server with an isolated metrics registry so
// tests never collide on the default registerer.
func newTestServer(t *testing.T, src Source) *Server {
	t.Helper()
	resetGlobalMetricsForTest()

	s, err := New(&Config{
		Source:         src,
		MetricsOptions: []MetricsOption{WithRegistry(prometheus.NewRegistry())},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func greetingSource(c *vtree.Context) vtree.Node {
	return c.Element("div", vtree.Class("preview-root"),
		c.Element("h1", "hello"),
	)
}

func TestNewRequiresSource(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		if _, err := New(nil); !errors.HasCode(err, "E501") {
			t.Errorf("New(nil) error = %v, want E501", err)
		}
	})

	t.Run("nil source", func(t *testing.T) {
		if _, err := New(&Config{}); !errors.HasCode(err, "E501") {
			t.Errorf("New(&Config{}) error = %v, want E501", err)
		}
	})
}

func TestIndexServesRenderedTree(t *testing.T) {
	s := newTestServer(t, greetingSource)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<div class="preview-root">`) {
		t.Errorf("body missing rendered root: %q", body)
	}
	if !strings.Contains(body, "<h1>hello</h1>") {
		t.Errorf("body missing rendered child: %q", body)
	}
	if !strings.Contains(body, "<title>Loom Preview</title>") {
		t.Errorf("body missing default title: %q", body)
	}
}

func TestIndexReportsConstructionFailure(t *testing.T) {
	s := newTestServer(t, func(c *vtree.Context) vtree.Node {
		return c.Element("") // empty tag fails the pass
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "E200") {
		t.Errorf("body = %q, want E200 mentioned", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, greetingSource)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, greetingSource)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func dialPreview(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) *protocol.Snapshot {
	t.Helper()
	msgType, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", msgType)
	}
	snap, err := protocol.DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snap
}

func TestWebSocketInitialSnapshot(t *testing.T) {
	s := newTestServer(t, greetingSource)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialPreview(t, srv)
	defer conn.Close()

	snap := readSnapshot(t, conn)
	if len(snap.Nodes) == 0 {
		t.Fatal("snapshot has no nodes")
	}

	var root *protocol.WireNode
	for i := range snap.Nodes {
		if snap.Nodes[i].ID == snap.Root {
			root = &snap.Nodes[i]
		}
	}
	if root == nil {
		t.Fatalf("root %d not in node table", snap.Root)
	}
	if root.Tag != "div" {
		t.Errorf("root tag = %q, want div", root.Tag)
	}
	if root.Attrs["class"] != "preview-root" {
		t.Errorf("root class = %q, want preview-root", root.Attrs["class"])
	}
}

func TestInvalidatePushesFreshPass(t *testing.T) {
	s := newTestServer(t, greetingSource)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialPreview(t, srv)
	defer conn.Close()

	first := readSnapshot(t, conn)

	// The connection is registered just after the initial snapshot
	// write; wait for it so the push below has a recipient.
	deadline := time.Now().Add(2 * time.Second)
	for s.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := s.Invalidate(context.Background()); err != nil {
		t.Fatalf("Invalidate() error: %v", err)
	}
	second := readSnapshot(t, conn)

	// Each push is a distinct render pass.
	if first.PassID == second.PassID {
		t.Errorf("pass id unchanged across Invalidate: %s", first.PassID)
	}
}

func TestInvalidateSurfacesPassError(t *testing.T) {
	s := newTestServer(t, func(c *vtree.Context) vtree.Node {
		return c.Element("")
	})

	if err := s.Invalidate(context.Background()); !errors.HasCode(err, "E200") {
		t.Errorf("Invalidate() error = %v, want E200", err)
	}
}
