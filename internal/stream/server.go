package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/MagicLemma/alchimia/internal/sand"
)

// Command is a world mutation requested by a connected client.
type Command struct {
	Op       string  `json:"op"` // "brush", "explode" or "clear"
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Material string  `json:"material,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
}

type hello struct {
	Size int `json:"size"`
}

// A server application calls the Upgrade method from an HTTP request handler
// to initiate a connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Server steps a world at a fixed rate and broadcasts each frame's RGBA
// buffer to every websocket client. Clients steer the world by sending
// Commands. The simulation itself stays single-threaded: every touch of the
// world happens under one mutex.
type Server struct {
	world *sand.World
	log   *zap.Logger

	mu    sync.Mutex // guards world and conns
	conns map[*websocket.Conn]struct{}
}

// New returns a Server wrapping the given world.
func New(world *sand.World, log *zap.Logger) *Server {
	return &Server{
		world: world,
		log:   log,
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Run starts the tick loop and serves the websocket endpoint on /ws. It
// blocks until the listener fails.
func (s *Server) Run(addr string, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	go s.tickLoop(time.Second / time.Duration(tps))

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	s.log.Info("serving frames", zap.String("addr", addr), zap.Int("tps", tps))
	return http.ListenAndServe(addr, mux)
}

func (s *Server) tickLoop(step time.Duration) {
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		s.world.Step()
		frame := append([]byte(nil), s.world.Display()...)
		conns := make([]*websocket.Conn, 0, len(s.conns))
		for c := range s.conns {
			conns = append(conns, c)
		}
		s.mu.Unlock()

		for _, c := range conns {
			if err := c.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				s.drop(c, err)
			}
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.Error(err))
		return
	}

	if err := conn.WriteJSON(hello{Size: s.world.Size()}); err != nil {
		conn.Close()
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
	s.log.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))

	go s.readSocket(conn)
}

// readSocket listens for commands sent by a client.
func (s *Server) readSocket(conn *websocket.Conn) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Warn("read failed", zap.Error(err))
			}
			s.drop(conn, err)
			return
		}

		var cmd Command
		if err := json.Unmarshal(msg, &cmd); err != nil {
			s.log.Warn("bad command", zap.Error(err))
			continue
		}
		s.apply(cmd)
	}
}

func (s *Server) apply(cmd Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Op {
	case "brush":
		t, ok := sand.TypeByName(cmd.Material)
		if !ok {
			s.log.Warn("unknown material", zap.String("material", cmd.Material))
			return
		}
		rng := s.world.Rand()
		for i := 0; i < 2*int(cmd.Radius)+1; i++ {
			dx, dy := rng.InDisc(cmd.Radius)
			pos := sand.Pos{X: cmd.X + int(dx), Y: cmd.Y + int(dy)}
			if s.world.Valid(pos) {
				s.world.Set(pos, sand.Spawn(t, rng))
			}
		}

	case "explode":
		r := cmd.Radius
		if r <= 0 {
			r = 10
		}
		sand.ApplyExplosion(s.world, sand.Pos{X: cmd.X, Y: cmd.Y}, sand.Explosion{
			MinRadius: 0.8 * r,
			MaxRadius: r,
			Scorch:    0.25 * r,
		})

	case "clear":
		s.world.Fill(sand.Air())

	default:
		s.log.Warn("unknown op", zap.String("op", cmd.Op))
	}
}

func (s *Server) drop(conn *websocket.Conn, err error) {
	s.mu.Lock()
	_, open := s.conns[conn]
	delete(s.conns, conn)
	s.mu.Unlock()

	if open {
		s.log.Info("client disconnected",
			zap.String("remote", conn.RemoteAddr().String()), zap.Error(err))
		conn.Close()
	}
}
