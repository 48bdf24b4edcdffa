package ingest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/inkstream/inkstream/pkg/geometry"
	"github.com/inkstream/inkstream/pkg/input"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Sink receives events that passed validation.
type Sink func(session string, ev input.Input)

// Server exposes the websocket endpoint input producers stream events to.
type Server struct {
	cfg  Config
	log  *zap.Logger
	gate *Gate
	sink Sink
}

func NewServer(cfg Config, log *zap.Logger, gate *Gate, sink Sink) *Server {
	return &Server{cfg: cfg, log: log, gate: gate, sink: sink}
}

// Handler returns the HTTP handler exposing /v1/events.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/events", s.handleEvents)
	return mux
}

// eventFrame is the wire form of one input sample. Pressure, tilt and
// orientation are optional; absent means Unknown.
type eventFrame struct {
	EventType   string   `json:"event_type"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Time        float64  `json:"time"`
	Pressure    *float64 `json:"pressure,omitempty"`
	Tilt        *float64 `json:"tilt,omitempty"`
	Orientation *float64 `json:"orientation,omitempty"`
}

// ackFrame answers every event frame; rejected events carry the diagnostic.
type ackFrame struct {
	Accepted bool   `json:"accepted"`
	Error    string `json:"error,omitempty"`
}

// parseEventType maps an unrecognized string to an out-of-range EventType so
// the rejection comes from ValidateInput, the single validation authority.
func parseEventType(s string) input.EventType {
	switch s {
	case "down":
		return input.Down
	case "move":
		return input.Move
	case "up":
		return input.Up
	default:
		return input.EventType(-1)
	}
}

func (f eventFrame) toInput() input.Input {
	ev := input.NewInput(parseEventType(f.EventType), geometry.Vec2{X: f.X, Y: f.Y}, input.Time(f.Time))
	if f.Pressure != nil {
		ev.Pressure = *f.Pressure
	}
	if f.Tilt != nil {
		ev.Tilt = *f.Tilt
	}
	if f.Orientation != nil {
		ev.Orientation = *f.Orientation
	}
	return ev
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	session := uuid.NewString()
	log := s.log.With(
		zap.String("session", session),
		zap.String("remote", conn.RemoteAddr().String()),
	)
	log.Info("producer connected")
	defer func() {
		_ = conn.Close()
		log.Info("producer disconnected")
	}()

	conn.SetReadLimit(s.cfg.MaxMessageSize)
	for {
		if s.cfg.ReadTimeout.Duration > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout.Duration))
		}
		var frame eventFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("read failed", zap.Error(err))
			}
			return
		}

		ev := frame.toInput()
		ack := ackFrame{Accepted: true}
		if err := s.gate.Admit(session, ev); err != nil {
			ack = ackFrame{Accepted: false, Error: err.Error()}
		} else if s.sink != nil {
			s.sink(session, ev)
		}

		if s.cfg.WriteTimeout.Duration > 0 {
			_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout.Duration))
		}
		if err := conn.WriteJSON(ack); err != nil {
			log.Warn("write failed", zap.Error(err))
			return
		}
	}
}
