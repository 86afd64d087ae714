package viewstate

// ActionType names a view-state transition.
type ActionType string

const (
	ActionToggleMenu        ActionType = "toggle_menu"
	ActionNavigate          ActionType = "navigate"
	ActionPopupTimerElapsed ActionType = "popup_timer"
	ActionDismissPopup      ActionType = "dismiss_popup"
	ActionClosePopup        ActionType = "close_popup"
	ActionPopupDownload     ActionType = "popup_download"
	ActionSetSection        ActionType = "set_section"
)

// DownloadAnchor is where the popup's call-to-action scrolls to.
const DownloadAnchor = "#download"

// Action is one transition request. Target and Found apply to navigate,
// Label to set_section.
type Action struct {
	Type   ActionType `json:"type"`
	Target string     `json:"target,omitempty"`
	Found  bool       `json:"found,omitempty"`
	Label  string     `json:"label,omitempty"`
}

// Effect is a side effect the render layer performs after a transition.
type Effect struct {
	Scroll string `json:"scroll,omitempty"`
}

// Empty reports whether the effect does nothing.
func (e Effect) Empty() bool { return e.Scroll == "" }

// Reduce returns the state after applying a.
func Reduce(s State, a Action) State {
	next, _ := Apply(s, a)
	return next
}

// Apply returns the state after a and any effect it triggers. Unknown
// actions and no-op navigations return s unchanged.
func Apply(s State, a Action) (State, Effect) {
	switch a.Type {
	case ActionToggleMenu:
		s.MenuOpen = !s.MenuOpen

	case ActionNavigate:
		if a.Target == "" || a.Target == "#" || !a.Found {
			return s, Effect{}
		}
		s.MenuOpen = false
		return s, Effect{Scroll: a.Target}

	case ActionPopupTimerElapsed:
		if s.Popup == PopupHidden {
			s.Popup = PopupShown
		}

	case ActionDismissPopup, ActionClosePopup:
		s.Popup = PopupDismissed

	case ActionPopupDownload:
		s.Popup = PopupDismissed
		s.MenuOpen = false
		return s, Effect{Scroll: DownloadAnchor}

	case ActionSetSection:
		if sec, ok := ParseSection(a.Label); ok {
			s.Section = sec
		}
	}
	return s, Effect{}
}
