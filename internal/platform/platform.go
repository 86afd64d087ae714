// Package platform classifies a visitor's operating system from the
// browser-supplied User-Agent string and maps it to a download card.
package platform

import "strings"

// Platform is the operating system a client is believed to be running.
type Platform string

const (
	Windows Platform = "Windows"
	MacOS   Platform = "macOS"
	Linux   Platform = "Linux"
	Android Platform = "Android"
	IOS     Platform = "iOS"
	Unknown Platform = "Unknown"
)

// rule is one ordered substring test. The first rule with a matching token wins.
type rule struct {
	platform Platform
	tokens   []string
}

// rules are evaluated in order. Desktop tokens come before mobile ones, so an
// iPhone UA carrying "Mac OS X" resolves to macOS and an Android UA carrying
// "Linux" resolves to Linux.
var rules = []rule{
	{Windows, []string{"Windows"}},
	{MacOS, []string{"Mac"}},
	{Linux, []string{"Linux"}},
	{Android, []string{"Android"}},
	{IOS, []string{"iOS", "iPhone", "iPad"}},
}

// Classify maps a User-Agent string to a Platform. It never fails; input that
// matches no token yields Unknown.
func Classify(userAgent string) Platform {
	for _, r := range rules {
		for _, tok := range r.tokens {
			if strings.Contains(userAgent, tok) {
				return r.platform
			}
		}
	}
	return Unknown
}

// Parse converts a platform name or slug back to a Platform.
func Parse(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows":
		return Windows
	case "macos", "mac":
		return MacOS
	case "linux":
		return Linux
	case "android":
		return Android
	case "ios":
		return IOS
	default:
		return Unknown
	}
}

// Name is the user-facing platform name.
func (p Platform) Name() string {
	if p == Unknown || p == "" {
		return "Unknown OS"
	}
	return string(p)
}

// Slug is the lowercase identifier used for CSS classes. Unknown has none.
func (p Platform) Slug() string {
	switch p {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	case Android:
		return "android"
	case IOS:
		return "ios"
	default:
		return ""
	}
}

// Icon returns the icon classes for the detected platform itself, not the
// download card it falls back to.
func (p Platform) Icon() string {
	switch p {
	case Windows:
		return "fab fa-windows text-blue-600"
	case MacOS, IOS:
		return "fab fa-apple text-gray-800"
	case Linux:
		return "fab fa-linux text-orange-600"
	case Android:
		return "fab fa-android text-green-600"
	default:
		return ""
	}
}
