package platform

// CardID identifies one of the desktop download cards on the landing page.
type CardID string

const (
	CardNone    CardID = ""
	CardWindows CardID = "windows"
	CardMacOS   CardID = "macos"
	CardLinux   CardID = "linux"
)

// cardFor maps each platform to the download card that gets highlighted.
// Mobile platforms fall back to the nearest desktop installer.
var cardFor = map[Platform]CardID{
	Windows: CardWindows,
	MacOS:   CardMacOS,
	Linux:   CardLinux,
	Android: CardLinux,
	IOS:     CardMacOS,
}

// DownloadCard returns the card to highlight for p, or CardNone for Unknown.
func DownloadCard(p Platform) CardID {
	return cardFor[p]
}

// Card is a download card rendered in the #download section.
type Card struct {
	ID       CardID
	Title    string
	Icon     string
	Subtitle string
	Button   string
	Href     string
	AltLabel string
	AltHref  string
}

var cards = []Card{
	{
		ID:       CardWindows,
		Title:    "Windows",
		Icon:     "fab fa-windows",
		Subtitle: "Works with PowerShell and Windows Terminal",
		Button:   "Download .exe",
		Href:     "/downloads/cole-installer.exe",
	},
	{
		ID:       CardMacOS,
		Title:    "macOS",
		Icon:     "fab fa-apple",
		Subtitle: "Integrates with Terminal and iTerm2",
		Button:   "Download .dmg",
		Href:     "/downloads/cole-macos.dmg",
	},
	{
		ID:       CardLinux,
		Title:    "Linux",
		Icon:     "fab fa-linux",
		Subtitle: "Compatible with Bash, Zsh, and other shells",
		Button:   "Download .AppImage",
		Href:     "/downloads/cole-linux.AppImage",
		AltLabel: "Download .deb",
		AltHref:  "/downloads/cole-linux.deb",
	},
}

// Cards returns the download cards in display order.
func Cards() []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
