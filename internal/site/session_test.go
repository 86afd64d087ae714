package site

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/ziadkadry99/coleweb/internal/metrics"
	"github.com/ziadkadry99/coleweb/internal/viewstate"
)

func dialSession(t *testing.T, s *Site, query string) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(setupRouter(s))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) sessionMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var m sessionMessage
	if err := conn.ReadJSON(&m); err != nil {
		t.Fatalf("read: %v", err)
	}
	return m
}

func readState(t *testing.T, conn *websocket.Conn) viewstate.State {
	t.Helper()
	m := readMessage(t, conn)
	if m.Type != "state" || m.State == nil {
		t.Fatalf("expected state message, got %+v", m)
	}
	return *m.State
}

func send(t *testing.T, conn *websocket.Conn, a viewstate.Action) {
	t.Helper()
	if err := conn.WriteJSON(a); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func waitForTimer(t *testing.T, clk *clocktesting.FakeClock) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !clk.HasWaiters() {
		if time.Now().After(deadline) {
			t.Fatal("popup timer was never armed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionPopupLifecycle(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Now())
	s := newTestSite(t, Options{Clock: clk, PopupDelay: 5 * time.Second})
	conn := dialSession(t, s, "?page=home")

	st := readState(t, conn)
	if st != viewstate.Initial() {
		t.Fatalf("initial state = %+v", st)
	}

	waitForTimer(t, clk)
	clk.Step(4 * time.Second)
	clk.Step(time.Second)

	if st = readState(t, conn); st.Popup != viewstate.PopupShown {
		t.Fatalf("popup = %s, want shown", st.Popup)
	}

	send(t, conn, viewstate.Action{Type: viewstate.ActionDismissPopup})
	if st = readState(t, conn); st.Popup != viewstate.PopupDismissed {
		t.Fatalf("popup = %s, want dismissed", st.Popup)
	}
}

func TestSessionDismissBeforeTimer(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Now())
	s := newTestSite(t, Options{Clock: clk})
	conn := dialSession(t, s, "?page=home")
	readState(t, conn)
	waitForTimer(t, clk)

	send(t, conn, viewstate.Action{Type: viewstate.ActionClosePopup})
	if st := readState(t, conn); st.Popup != viewstate.PopupDismissed {
		t.Fatalf("popup = %s, want dismissed", st.Popup)
	}
	if clk.HasWaiters() {
		t.Error("expected popup timer cancelled after dismissal")
	}

	clk.Step(time.Minute)
	// Dismissed is sticky; the next reply reflects the client's action only.
	send(t, conn, viewstate.Action{Type: viewstate.ActionToggleMenu})
	st := readState(t, conn)
	if st.Popup != viewstate.PopupDismissed || !st.MenuOpen {
		t.Errorf("state = %+v", st)
	}
}

func TestSessionNavigation(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Now())
	conn := dialSession(t, newTestSite(t, Options{Clock: clk}), "?page=about")
	readState(t, conn)

	send(t, conn, viewstate.Action{Type: viewstate.ActionToggleMenu})
	if st := readState(t, conn); !st.MenuOpen {
		t.Fatal("expected menu open")
	}

	send(t, conn, viewstate.Action{Type: viewstate.ActionNavigate, Target: "#features", Found: true})
	if st := readState(t, conn); st.MenuOpen {
		t.Error("navigation should close the menu")
	}
	if m := readMessage(t, conn); m.Type != "scroll" || m.Target != "#features" {
		t.Errorf("expected scroll to #features, got %+v", m)
	}

	// Placeholder anchors change nothing but still get a reply.
	send(t, conn, viewstate.Action{Type: viewstate.ActionNavigate, Target: "#", Found: true})
	if st := readState(t, conn); st.MenuOpen {
		t.Error("state should be unchanged")
	}

	send(t, conn, viewstate.Action{Type: viewstate.ActionPopupDownload})
	if st := readState(t, conn); st.Popup != viewstate.PopupDismissed {
		t.Errorf("popup = %s, want dismissed", st.Popup)
	}
	if m := readMessage(t, conn); m.Type != "scroll" || m.Target != viewstate.DownloadAnchor {
		t.Errorf("expected scroll to #download, got %+v", m)
	}

	if clk.HasWaiters() {
		t.Error("only the landing page arms the popup timer")
	}
}

func TestSessionDocsSection(t *testing.T) {
	conn := dialSession(t, newTestSite(t, Options{Clock: clocktesting.NewFakeClock(time.Now())}), "?page=docs&section=faq")

	if st := readState(t, conn); st.Section != viewstate.SectionFAQ {
		t.Fatalf("section = %q, want FAQ", st.Section)
	}

	send(t, conn, viewstate.Action{Type: viewstate.ActionSetSection, Label: "Installation"})
	if st := readState(t, conn); st.Section != viewstate.SectionInstallation {
		t.Errorf("section = %q, want Installation", st.Section)
	}

	send(t, conn, viewstate.Action{Type: viewstate.ActionSetSection, Label: "Pricing"})
	if st := readState(t, conn); st.Section != viewstate.SectionInstallation {
		t.Errorf("unknown label changed section to %q", st.Section)
	}
}

func TestSessionRejectsBadMessages(t *testing.T) {
	conn := dialSession(t, newTestSite(t, Options{Clock: clocktesting.NewFakeClock(time.Now())}), "?page=home")
	readState(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if m := readMessage(t, conn); m.Type != "error" {
		t.Errorf("expected error for invalid JSON, got %+v", m)
	}

	send(t, conn, viewstate.Action{Type: viewstate.ActionPopupTimerElapsed})
	if m := readMessage(t, conn); m.Type != "error" {
		t.Errorf("expected error for client popup_timer, got %+v", m)
	}

	send(t, conn, viewstate.Action{Type: "toggle_theme"})
	m := readMessage(t, conn)
	if m.Type != "error" || !strings.Contains(m.Error, "toggle_theme") {
		t.Errorf("expected error naming toggle_theme, got %+v", m)
	}
}

func TestSessionIgnoresChangesWhenClosed(t *testing.T) {
	// No conn: any write attempt would panic.
	sess := &session{popup: viewstate.PopupHidden}
	shown := metrics.PopupTransitionsTotal.WithLabelValues(string(viewstate.PopupShown))
	before := testutil.ToFloat64(shown)

	sess.onChange(viewstate.State{Popup: viewstate.PopupShown}, viewstate.Effect{Scroll: viewstate.DownloadAnchor})

	if got := testutil.ToFloat64(shown); got != before {
		t.Errorf("popup_transitions_total{state=shown} = %v, want %v", got, before)
	}
	if sess.popup != viewstate.PopupHidden {
		t.Errorf("popup = %s, want hidden", sess.popup)
	}
}

func TestSessionStopsTimerOnDisconnect(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Now())
	conn := dialSession(t, newTestSite(t, Options{Clock: clk}), "?page=home")
	readState(t, conn)
	waitForTimer(t, clk)

	shown := metrics.PopupTransitionsTotal.WithLabelValues(string(viewstate.PopupShown))
	before := testutil.ToFloat64(shown)

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for clk.HasWaiters() {
		if time.Now().After(deadline) {
			t.Fatal("popup timer still armed after disconnect")
		}
		time.Sleep(5 * time.Millisecond)
	}

	clk.Step(time.Minute)
	if got := testutil.ToFloat64(shown); got != before {
		t.Errorf("popup_transitions_total{state=shown} = %v, want %v", got, before)
	}
}
