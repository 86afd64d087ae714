package site

// feature is one card in the landing page #features grid.
type feature struct {
	Icon  string
	Title string
	Body  string
}

var features = []feature{
	{
		Icon:  "fas fa-magic",
		Title: "Intelligent Command Generation",
		Body:  "Describe what you want to do in plain language, and CoLE will generate the exact command you need for your terminal.",
	},
	{
		Icon:  "fas fa-history",
		Title: "Command Learning & History",
		Body:  "CoLE learns from your command history to provide better suggestions and adapts to your specific workflow patterns.",
	},
	{
		Icon:  "fas fa-desktop",
		Title: "Cross-Platform Terminal Support",
		Body:  "Works seamlessly across Windows, macOS, and Linux terminals, providing consistent assistance regardless of your environment.",
	},
	{
		Icon:  "fas fa-shield-alt",
		Title: "Secure Environment",
		Body:  "Learn with peace of mind in our secure, encrypted platform that protects your data and privacy.",
	},
}

// storyParagraphs is the About page narrative.
var storyParagraphs = []string{
	"You're in the flow, building something amazing, when suddenly you need that one terminal command. The one with the specific flags and syntax that you used three weeks ago but can't quite remember. So you stop.",
	"We've all been there. And that's exactly why we built CoLE. As developers ourselves, we were tired of the cognitive overload: the constant mental tax of remembering complex command structures across different environments.",
	"We wanted something that would let us stay in the zone, a tool that would learn from us and with us, becoming more helpful the more we used it. Something lightweight that wouldn't slow down our machines or require constant internet connectivity.",
	"CoLE understands what you're trying to accomplish, not just what you've typed. It works offline, runs cross-platform, and becomes more personalized to your workflow patterns over time.",
	"We're building this for you, with you. Every feature, every improvement is driven by real developer needs and feedback. Join us. Let's build without limits.",
}

type teamMember struct {
	Name string
	Role string
	Bio  string
}

var team = []teamMember{
	{"Dimitri Ouro-Djow", "Senior Full-Stack Developer", "Passionate about creating seamless user experiences with 8+ years in React and Node.js."},
	{"Tete Winner Benissan-Adodjiss", "Lead Backend Engineer", "Expert in scalable architectures and cloud systems, loves solving complex technical challenges."},
	{"Jeremiah Kamara", "Frontend Architect", "Design-focused developer who bridges the gap between beautiful UX and robust engineering."},
}

// socialLink is a footer icon link. AriaLabel is derived from Network.
type socialLink struct {
	Network string
	Href    string
}

func (s socialLink) AriaLabel() string { return "Visit our " + s.Network + " page" }

var socials = []socialLink{
	{"twitter", "https://twitter.com/"},
	{"facebook", "https://facebook.com/"},
	{"linkedin", "https://linkedin.com/"},
	{"github", "https://github.com/"},
}

// footerColumn is one titled list of links in the footer. A Route link is
// resolved through pageData.Href; otherwise Anchor is used as-is.
type footerColumn struct {
	Title string
	Links []footerLink
}

type footerLink struct {
	Label  string
	Route  string
	Anchor string
}

var footerColumns = []footerColumn{
	{"Product", []footerLink{
		{Label: "Features", Route: "home", Anchor: "#features"},
		{Label: "Download", Route: "home", Anchor: "#download"},
		{Label: "Pricing", Anchor: "#"},
		{Label: "Roadmap", Anchor: "#"},
	}},
	{"Company", []footerLink{
		{Label: "About", Route: "about"},
		{Label: "Careers", Anchor: "#"},
		{Label: "Contact", Anchor: "#"},
	}},
	{"Resources", []footerLink{
		{Label: "Documentation", Route: "docs"},
		{Label: "Command Library", Anchor: "#"},
		{Label: "Developer Blog", Anchor: "#"},
		{Label: "Support", Anchor: "#"},
	}},
	{"Legal", []footerLink{
		{Label: "Privacy Policy", Anchor: "#"},
		{Label: "Terms of Service", Anchor: "#"},
		{Label: "Cookie Policy", Anchor: "#"},
		{Label: "Contact Us", Anchor: "#"},
	}},
}
