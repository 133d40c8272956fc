package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vtree"
)

// Source builds the preview tree for one render pass.
type Source func(c *vtree.Context) vtree.Node

// Config configures the preview server.
type Config struct {
	// Address is the listen address (default: ":4600").
	Address string

	// Owner is the component instance passes are attributed to.
	// Defaults to an internal preview owner when nil.
	Owner vtree.Component

	// Source builds the tree served at "/". Required.
	Source Source

	// Title is the page title for the HTML shell (default: "Loom Preview").
	Title string

	// Pretty enables indented HTML output.
	Pretty bool

	// CheckOrigin validates WebSocket upgrade origins.
	// Default: allow all (this is a development server).
	CheckOrigin func(r *http.Request) bool

	// ReadBufferSize is the WebSocket read buffer size (default: 4096).
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size (default: 4096).
	WriteBufferSize int

	// WriteTimeout bounds WebSocket snapshot writes (default: 10s).
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default: 30s).
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds HTTP header reads (default: 10s).
	ReadHeaderTimeout time.Duration

	// MetricsOptions configure the Prometheus metrics.
	MetricsOptions []MetricsOption

	// TraceOptions configure the per-pass OpenTelemetry span.
	TraceOptions []TraceOption
}

// DefaultConfig returns the default preview configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":4600",
		Title:             "Loom Preview",
		CheckOrigin:       func(r *http.Request) bool { return true },
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// previewOwner is the fallback owner for passes without a user component.
type previewOwner struct{}

func (previewOwner) Render(c *vtree.Context) vtree.Node {
	return c.Element("div")
}

// Server is the development preview server. It renders a Source to HTML
// on demand, serves Prometheus metrics, and pushes snapshot frames to
// attached WebSocket clients whenever Invalidate is called.
type Server struct {
	config   *Config
	owner    vtree.Component
	renderer *render.Renderer
	traceCfg TraceConfig
	upgrader websocket.Upgrader
	router   chi.Router
	logger   *slog.Logger

	httpServer *http.Server

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a preview server for the given configuration.
func New(config *Config) (*Server, error) {
	if config == nil || config.Source == nil {
		return nil, errors.New("E501").WithDetail("preview requires a Source to render")
	}

	defaults := DefaultConfig()
	if config.Address == "" {
		config.Address = defaults.Address
	}
	if config.Title == "" {
		config.Title = defaults.Title
	}
	if config.CheckOrigin == nil {
		config.CheckOrigin = defaults.CheckOrigin
	}
	if config.ReadBufferSize == 0 {
		config.ReadBufferSize = defaults.ReadBufferSize
	}
	if config.WriteBufferSize == 0 {
		config.WriteBufferSize = defaults.WriteBufferSize
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = defaults.WriteTimeout
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if config.ReadHeaderTimeout == 0 {
		config.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}

	owner := config.Owner
	if owner == nil {
		owner = previewOwner{}
	}

	Metrics(config.MetricsOptions...)

	s := &Server{
		config:   config,
		owner:    owner,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
		traceCfg: newTraceConfig(config.TraceOptions...),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger:  slog.Default().With("component", "preview"),
		clients: make(map[*websocket.Conn]struct{}),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Handler returns the server's http.Handler for mounting in external routers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetLogger sets the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// renderPass runs one traced, metered construction pass.
func (s *Server) renderPass(ctx context.Context) (vtree.Node, *vtree.Context, error) {
	_, span := s.traceCfg.startPassSpan(ctx)

	start := time.Now()
	root, rctx, err := vtree.Build(s.owner, s.config.Source)
	seconds := time.Since(start).Seconds()

	s.traceCfg.finishPassSpan(span, rctx, err)

	code := ""
	nodes := 0
	if rctx != nil {
		nodes = len(rctx.Nodes())
	}
	if le, ok := err.(*errors.LoomError); ok {
		code = le.Code
	}
	recordPass(seconds, nodes, err, code)

	if err != nil {
		s.logger.Error("render pass failed", "error", err)
		return vtree.Node{}, nil, err
	}

	s.logger.Debug("render pass complete",
		"pass_id", rctx.PassID(),
		"nodes", nodes,
		"duration_ms", time.Since(start).Milliseconds())
	return root, rctx, nil
}

// handleIndex renders the source tree and serves it inside an HTML shell.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	root, _, err := s.renderPass(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := s.renderer.RenderToString(root)
	if err != nil {
		s.logger.Error("html render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, s.config.Title, body)
}

// pageShell wraps rendered output for the browser. The script reloads
// the page whenever a new snapshot frame arrives.
const pageShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
%s
<script>
(function() {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.binaryType = "arraybuffer";
  ws.onmessage = function() { location.reload(); };
})();
</script>
</body>
</html>
`

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWebSocket upgrades the connection and pushes an initial snapshot.
// The connection then stays registered for Invalidate pushes until the
// client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		recordWebSocketError("upgrade")
		return
	}

	frame, err := s.snapshotFrame(r.Context())
	if err != nil {
		recordWebSocketError("snapshot")
		conn.Close()
		return
	}

	conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		s.logger.Error("initial snapshot write failed", "error", err)
		recordWebSocketError("write")
		conn.Close()
		return
	}
	recordSnapshot(len(frame))

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
	recordClientAttach()
	s.logger.Info("preview client attached", "remote", conn.RemoteAddr())

	// Reader loop: the client sends nothing meaningful; this just
	// detects disconnects and drains control frames.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			recordClientDetach()
			conn.Close()
			s.logger.Info("preview client detached", "remote", conn.RemoteAddr())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// snapshotFrame runs a render pass and encodes it as a wire frame.
func (s *Server) snapshotFrame(ctx context.Context) ([]byte, error) {
	root, rctx, err := s.renderPass(ctx)
	if err != nil {
		return nil, err
	}
	snap := protocol.Capture(root, rctx)
	return protocol.EncodeSnapshot(snap)
}

// Invalidate re-renders the source and pushes the new snapshot to every
// attached client. Call it when the inputs to the Source change.
func (s *Server) Invalidate(ctx context.Context) error {
	frame, err := s.snapshotFrame(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			s.logger.Warn("snapshot push failed", "remote", conn.RemoteAddr(), "error", err)
			recordWebSocketError("write")
			continue
		}
		recordSnapshot(len(frame))
	}

	s.logger.Info("snapshot pushed", "clients", len(conns), "bytes", len(frame))
	return nil
}

// ClientCount returns the number of attached WebSocket clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("preview server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server and closes attached clients.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	for conn := range s.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(time.Second))
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("preview server shutdown complete")
	return nil
}
