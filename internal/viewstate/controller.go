package viewstate

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// DefaultPopupDelay is how long after the first paint the popup appears.
const DefaultPopupDelay = 5 * time.Second

// Listener receives every state change together with its effect. It is
// called with the controller lock held and must not call back into the
// controller.
type Listener func(State, Effect)

// Controller owns one session's State and its one-shot popup timer.
type Controller struct {
	mu       sync.Mutex
	clock    clock.WithDelayedExecution
	delay    time.Duration
	state    State
	timer    clock.Timer
	started  bool
	listener Listener
}

// NewController returns a controller in the initial state. A nil clk uses
// the real clock; a non-positive delay uses DefaultPopupDelay.
func NewController(clk clock.WithDelayedExecution, delay time.Duration, listener Listener) *Controller {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if delay <= 0 {
		delay = DefaultPopupDelay
	}
	return &Controller{
		clock:    clk,
		delay:    delay,
		state:    Initial(),
		listener: listener,
	}
}

// Start arms the popup timer. Only the first call has any effect, and a
// popup dismissed before Start is never shown.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	if c.state.Popup != PopupHidden {
		return
	}
	c.timer = c.clock.AfterFunc(c.delay, func() {
		c.Dispatch(Action{Type: ActionPopupTimerElapsed})
	})
}

// Dispatch applies a and returns the resulting state. The listener is
// notified when the state changes or an effect is produced.
func (c *Controller) Dispatch(a Action) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.state
	next, eff := Apply(prev, a)
	c.state = next

	if next.Popup == PopupDismissed && c.timer != nil && a.Type != ActionPopupTimerElapsed {
		c.timer.Stop()
		c.timer = nil
	}

	if c.listener != nil && (next != prev || !eff.Empty()) {
		c.listener(next, eff)
	}
	return next
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Stop cancels a pending popup timer.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
