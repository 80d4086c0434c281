package feed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
)

// Path is where the feed is served.
const Path = "/feed"

const (
	clientBuffer = 16
	writeTimeout = 2 * time.Second
)

type client struct {
	msgs chan []byte
}

// Hub fans frames out to every connected client. A client that falls behind
// loses frames instead of slowing the game down.
type Hub struct {
	logger  *log.Logger
	origins []string

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte

	dropped atomic.Uint64
}

// NewHub creates a hub. A nil logger discards output. Browsers may connect
// from the feed's own host or from a host matching one of origins, given as
// path.Match patterns such as "localhost:*". Clients that send no Origin
// header are always accepted.
func NewHub(logger *log.Logger, origins ...string) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{logger: logger, origins: origins, clients: make(map[*client]struct{})}
}

// Publish sends f to every client without blocking.
func (h *Hub) Publish(f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		h.logger.Warn("cannot encode frame", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	for c := range h.clients {
		select {
		case c.msgs <- msg:
		default:
			h.dropped.Add(1)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many frames were skipped for slow clients.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// add registers a client and queues the latest frame so late joiners see
// the current HUD at once.
func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.msgs <- h.last
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// ServeHTTP upgrades the request and streams frames until the client leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	// The feed is one-way; CloseRead handles pings and cancels on close.
	ctx := conn.CloseRead(r.Context())

	c := &client{msgs: make(chan []byte, clientBuffer)}
	h.add(c)
	defer h.remove(c)
	h.logger.Debug("feed client connected", "remote", r.RemoteAddr)

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("feed client gone", "remote", r.RemoteAddr)
			return
		case msg := <-c.msgs:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

// Handler returns a mux serving the hub at Path.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, h)
	return mux
}

// ListenAndServe serves the feed on addr until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	h.logger.Info("feed listening", "address", addr, "path", Path)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
