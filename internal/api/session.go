package api

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/mapeditor"
	"github.com/gorilla/websocket"
)

// Session messages. Clients send pointer events in canvas pixels; the
// server answers every event with the resulting editor state.
const (
	eventDown       = "down"
	eventMove       = "move"
	eventUp         = "up"
	eventLeave      = "leave"
	eventClick      = "click"
	eventDelete     = "delete"
	eventSave       = "save"
	eventRegenerate = "regenerate"

	replyState = "state"
	replySaved = "saved"
	replyError = "error"

	// eventUnknown labels metrics for event types the session does not know.
	eventUnknown = "unknown"

	buttonPrimary   = "primary"
	buttonSecondary = "secondary"
)

type sessionEvent struct {
	Type   string  `json:"type"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ID     string  `json:"id,omitempty"`
}

type editorState struct {
	LevelID     string              `json:"levelId"`
	Interaction string              `json:"interaction"`
	Nodes       []domain.MapNode    `json:"nodes"`
	Connections []domain.Connection `json:"connections"`
	Dirty       bool                `json:"dirty"`
	Generated   bool                `json:"generated"`
}

type sessionReply struct {
	Type       string        `json:"type"`
	State      *editorState  `json:"state,omitempty"`
	Level      *domain.Level `json:"level,omitempty"`
	Superseded bool          `json:"superseded,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// mapSession serves one live editing session over a websocket.
type mapSession struct {
	conn   *websocket.Conn
	editor *mapeditor.Editor
	saver  *mapeditor.Saver
	skills []domain.SkillSummary

	writeMu sync.Mutex
}

func (s *Server) mapSession(w http.ResponseWriter, r *http.Request) {
	levelID := r.PathValue("id")
	lc, err := s.svc.Maps.Load(r.Context(), levelID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WarnContext(r.Context(), "websocket_upgrade_failed", "error", err)
		return
	}
	defer conn.Close()

	sess := &mapSession{
		conn:   conn,
		editor: mapeditor.Open(levelID, lc.Map, lc.Skills),
		saver:  mapeditor.NewSaver(s.svc.Maps, levelID),
		skills: lc.Skills,
	}
	s.logger.InfoContext(r.Context(), "map_session_opened", "level", levelID)

	if err := sess.write(sessionReply{Type: replyState, State: sess.state()}); err != nil {
		return
	}
	for {
		var ev sessionEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.InfoContext(r.Context(), "map_session_closed", "level", levelID, "error", err)
			}
			return
		}
		EditorEventsTotal.WithLabelValues(eventLabel(ev.Type)).Inc()
		if err := sess.write(s.handleEvent(r.Context(), sess, ev)); err != nil {
			return
		}
	}
}

// eventLabel keeps the metric label set closed; clients choose ev.Type.
func eventLabel(t string) string {
	switch t {
	case eventDown, eventMove, eventUp, eventLeave, eventClick, eventDelete, eventSave, eventRegenerate:
		return t
	default:
		return eventUnknown
	}
}

func (s *Server) handleEvent(ctx context.Context, sess *mapSession, ev sessionEvent) sessionReply {
	e := sess.editor
	p := domain.Point{X: ev.X, Y: ev.Y}

	switch ev.Type {
	case eventDown:
		n, onNode := e.NodeAt(p)
		switch {
		case ev.Button == buttonSecondary && onNode:
			e.BeginConnect(n.ID)
		case ev.Button == buttonSecondary:
			// nothing to connect from
		case onNode:
			e.BeginDrag(n.ID, p)
		default:
			e.ClickConnection(p)
		}
	case eventMove:
		e.ContinueDrag(p)
	case eventUp:
		e.Release(p)
	case eventLeave:
		e.Leave()
	case eventClick:
		e.ClickConnection(p)
	case eventDelete:
		e.DeleteConnection(ev.ID)
	case eventRegenerate:
		e.Regenerate(sess.skills)
	case eventSave:
		return s.saveSession(ctx, sess)
	default:
		return sessionReply{Type: replyError, Error: "unknown event type " + ev.Type, State: sess.state()}
	}
	return sessionReply{Type: replyState, State: sess.state()}
}

func (s *Server) saveSession(ctx context.Context, sess *mapSession) sessionReply {
	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()

	res, err := sess.saver.Save(ctx, sess.editor)
	if err != nil {
		MapSavesTotal.WithLabelValues("failed").Inc()
		msg := err.Error()
		var verr *domain.MapValidationError
		if !errors.As(err, &verr) && statusFor(err) == http.StatusInternalServerError {
			s.logger.ErrorContext(ctx, "map_session_save_failed", "level", sess.editor.LevelID(), "error", err)
			msg = "save failed"
		}
		return sessionReply{Type: replyError, Error: msg, State: sess.state()}
	}
	if res.Superseded {
		MapSavesTotal.WithLabelValues("superseded").Inc()
	} else {
		MapSavesTotal.WithLabelValues("committed").Inc()
		sess.editor.MarkSaved(res.Revision)
	}
	return sessionReply{Type: replySaved, Level: res.Level, Superseded: res.Superseded, State: sess.state()}
}

func (sess *mapSession) state() *editorState {
	e := sess.editor
	return &editorState{
		LevelID:     e.LevelID(),
		Interaction: mapeditor.InteractionName(e.Interaction()),
		Nodes:       e.Nodes(),
		Connections: e.Connections(),
		Dirty:       e.Dirty(),
		Generated:   e.Generated(),
	}
}

// write sends one reply. gorilla allows a single concurrent writer.
func (sess *mapSession) write(reply sessionReply) error {
	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	return sess.conn.WriteJSON(reply)
}
