// Package viewstate holds the per-session UI state of the site (mobile menu,
// download popup, active documentation section) and the reducer that moves
// it between values.
package viewstate

import "strings"

// PopupState is the download-suggestion popup's lifecycle.
type PopupState string

const (
	PopupHidden    PopupState = "hidden"
	PopupShown     PopupState = "shown"
	PopupDismissed PopupState = "dismissed"
)

// Section is a documentation section label.
type Section string

const (
	SectionOverview     Section = "Overview"
	SectionInstallation Section = "Installation"
	SectionQuickStart   Section = "Quick Start"
	SectionFeatures     Section = "Features"
	SectionTechStack    Section = "Tech Stack"
	SectionFAQ          Section = "FAQ"
)

var sections = []Section{
	SectionOverview,
	SectionInstallation,
	SectionQuickStart,
	SectionFeatures,
	SectionTechStack,
	SectionFAQ,
}

// Sections returns the documentation sections in sidebar order. The first
// one is the default.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ParseSection accepts either a label ("Quick Start") or its slug ("quick-start").
func ParseSection(s string) (Section, bool) {
	for _, sec := range sections {
		if string(sec) == s || sec.Slug() == s {
			return sec, true
		}
	}
	return "", false
}

// Slug is the URL form of the section label.
func (s Section) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

// State is the complete view state of one page session.
type State struct {
	MenuOpen bool       `json:"menu_open"`
	Popup    PopupState `json:"popup"`
	Section  Section    `json:"section"`
}

// Initial is the state every page session starts in.
func Initial() State {
	return State{Popup: PopupHidden, Section: sections[0]}
}
