package site

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/coleweb/internal/metrics"
	"github.com/ziadkadry99/coleweb/internal/viewstate"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// sessionMessage is the outgoing websocket message format.
type sessionMessage struct {
	Type   string           `json:"type"` // "state", "scroll" or "error"
	State  *viewstate.State `json:"state,omitempty"`
	Target string           `json:"target,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// clientActions are the action types a browser may send. The popup timer
// is owned by the server.
var clientActions = map[viewstate.ActionType]bool{
	viewstate.ActionToggleMenu:    true,
	viewstate.ActionNavigate:      true,
	viewstate.ActionDismissPopup:  true,
	viewstate.ActionClosePopup:    true,
	viewstate.ActionPopupDownload: true,
	viewstate.ActionSetSection:    true,
}

// session is one page's live connection.
type session struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	live    atomic.Bool
	popup   viewstate.PopupState
	verbose bool
}

func (s *session) send(m sessionMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(m); err != nil {
		log.Printf("site: websocket write: %v", err)
	}
}

func (s *session) sendState(st viewstate.State) {
	s.send(sessionMessage{Type: "state", State: &st})
}

func (s *session) sendError(msg string) {
	s.send(sessionMessage{Type: "error", Error: msg})
}

// onChange is the controller listener. It runs under the controller lock, so
// popup is only touched here. Nothing is recorded or sent unless live.
func (s *session) onChange(st viewstate.State, eff viewstate.Effect) {
	if !s.live.Load() {
		return
	}
	if st.Popup != s.popup {
		s.popup = st.Popup
		metrics.PopupTransitionsTotal.WithLabelValues(string(st.Popup)).Inc()
	}
	s.sendState(st)
	if eff.Scroll != "" {
		s.send(sessionMessage{Type: "scroll", Target: eff.Scroll})
	}
}

// sessionHandler upgrades to a websocket and runs one view-state controller
// for the lifetime of the connection. The page and section query parameters
// describe what the client rendered; only the landing page arms the popup.
func (s *Site) sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("site: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		sess := &session{conn: conn, popup: viewstate.PopupHidden, verbose: s.opts.Verbose}
		ctrl := viewstate.NewController(s.opts.Clock, s.opts.PopupDelay, sess.onChange)
		defer ctrl.Stop()
		// Runs before Stop, so a timer firing during teardown finds the
		// session closed.
		defer sess.live.Store(false)

		metrics.SessionsActive.Inc()
		defer metrics.SessionsActive.Dec()

		q := r.URL.Query()
		if sec, ok := viewstate.ParseSection(q.Get("section")); ok {
			ctrl.Dispatch(viewstate.Action{Type: viewstate.ActionSetSection, Label: string(sec)})
		}

		sess.sendState(ctrl.State())
		sess.live.Store(true)
		if q.Get("page") == routeHome {
			ctrl.Start()
		}

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("site: websocket read: %v", err)
				}
				return
			}

			var a viewstate.Action
			if err := json.Unmarshal(msg, &a); err != nil {
				sess.sendError("invalid message format")
				continue
			}
			if !clientActions[a.Type] {
				sess.sendError("unknown action type: " + string(a.Type))
				continue
			}

			metrics.SessionActionsTotal.WithLabelValues(string(a.Type)).Inc()
			if sess.verbose {
				log.Printf("site: session action %s", a.Type)
			}
			before := ctrl.State()
			after := ctrl.Dispatch(a)
			// Unchanged state with no effect produces no listener call; echo
			// the state so every client action gets a reply.
			if before == after && !hasEffect(before, a) {
				sess.sendState(after)
			}
		}
	}
}

// hasEffect reports whether a applied to st emits an effect.
func hasEffect(st viewstate.State, a viewstate.Action) bool {
	_, eff := viewstate.Apply(st, a)
	return !eff.Empty()
}
