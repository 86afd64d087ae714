package site

// layoutTemplate is the shared page shell: nav, mobile menu, footer.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en" class="{{if .Dark}}dark{{end}}" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteName}}</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
  <link rel="stylesheet" href="{{.Static "site.css"}}">
</head>
<body data-page="{{.Page}}" data-live="{{.Live}}" data-popup-delay="{{.PopupDelayMS}}" data-section="{{.State.Section}}">
  <a href="{{if eq .Page "home"}}#features{{else}}#main{{end}}" class="skip-to-content">Skip to main content</a>
  <nav class="navbar">
    <div class="nav-inner">
      <a href="{{.Href "home"}}" class="brand">
        <span class="brand-name">{{.SiteName}}</span>
        <span class="brand-tagline">Command Line Experience</span>
      </a>
      <div class="nav-links">
        {{if eq .Page "home"}}<a href="#features">Features</a>{{else}}<a href="{{.Href "home"}}">Home</a>{{end}}
        <a href="{{.Href "about"}}"{{if eq .Page "about"}} class="active"{{end}}>About</a>
        <a href="{{.Href "docs"}}"{{if eq .Page "docs"}} class="active"{{end}}>Documentation</a>
        {{if eq .Page "home"}}<a href="#download" class="btn btn-primary">Download Now</a>{{end}}
      </div>
      <button id="theme-toggle" class="icon-btn" aria-label="Toggle theme">
        <i id="theme-toggle-icon" class="fas {{if .Dark}}fa-sun{{else}}fa-moon{{end}}"></i>
      </button>
      <button id="mobile-menu-button" class="icon-btn mobile-only" aria-label="Open menu" aria-controls="mobile-menu">
        <i class="fas fa-bars"></i>
      </button>
    </div>
    <div id="mobile-menu" class="mobile-menu{{if not .State.MenuOpen}} hidden{{end}}">
      {{if eq .Page "home"}}<a href="#features">Features</a>
      <a href="#download">Download</a>{{else}}<a href="{{.Href "home"}}">Home</a>{{end}}
      <a href="{{.Href "about"}}">About</a>
      <a href="{{.Href "docs"}}">Documentation</a>
    </div>
  </nav>

  <main id="main">
{{template "content" .}}
  </main>

  <footer class="footer">
    <div class="footer-grid">
      <div>
        <h3>{{.SiteName}}</h3>
        <p>Command Line Experience - Supercharging your terminal productivity.</p>
        <div class="socials">
          {{range .Socials}}<a href="{{.Href}}" aria-label="{{.AriaLabel}}"><i class="fab fa-{{.Network}}"></i></a>
          {{end}}
        </div>
      </div>
      {{range .Footer}}
      <div>
        <h4>{{.Title}}</h4>
        <ul>
          {{range .Links}}<li><a href="{{$.Link .}}">{{.Label}}</a></li>
          {{end}}
        </ul>
      </div>
      {{end}}
    </div>
    <p class="copyright">&copy; {{.Year}} JWD. All rights reserved.</p>
  </footer>
  <script src="{{.Static "site.js"}}"></script>
</body>
</html>{{end}}`

// homeTemplate is the landing page body.
const homeTemplate = `{{define "content"}}
    <section class="hero">
      <h1><span>Supercharge Your</span> <span class="accent">Terminal Experience</span></h1>
      <p>CoLE is a smart terminal assistant that uses Large Language Models to generate efficient commands, making your terminal workflow faster and less mentally taxing.</p>
      <a href="#download" class="btn btn-primary">Download Now <i class="fas fa-arrow-down"></i></a>
    </section>

    <section id="features" class="features">
      <h2>Powerful Features for Terminal Productivity</h2>
      <p class="lead">Discover how CoLE transforms your command line workflow and boosts productivity.</p>
      <div class="feature-grid">
        {{range .Features}}<div class="feature-card">
          <i class="{{.Icon}}"></i>
          <h3>{{.Title}}</h3>
          <p>{{.Body}}</p>
        </div>
        {{end}}
      </div>
    </section>

    <section id="download" class="download">
      <h2>Boost Your Terminal Productivity Today</h2>
      <p class="lead">Get started with CoLE on your preferred platform. We've detected you're using <span id="detected-os" class="accent">{{.Platform.Name}}</span>.</p>
      <div class="download-grid">
        {{range .Cards}}<div id="{{.ID}}-download" class="download-card{{if .Highlight}} download-highlight{{end}}" data-card="{{.ID}}">
          <i class="{{.Icon}}"></i>
          <h3>{{.Title}}</h3>
          <p>{{.Subtitle}}</p>
          <a href="{{.Href}}" class="btn btn-{{.ID}}">{{.Button}}</a>
          {{if .AltHref}}<a href="{{.AltHref}}" class="btn btn-outline">{{.AltLabel}}</a>{{end}}
        </div>
        {{end}}
      </div>
    </section>

    <div id="download-suggestion" class="download-suggestion{{if .PopupShown}} show{{end}}" role="dialog" aria-labelledby="popup-title">
      <div id="popup-os-icon" class="popup-icon">{{with .Platform.Icon}}<i class="{{.}}"></i>{{end}}</div>
      <div class="popup-body">
        <h3 id="popup-title">Download for <span id="popup-os-name">{{.Platform.Name}}</span></h3>
        <p>Supercharge your terminal productivity with our native app.</p>
        <div class="popup-actions">
          <a id="popup-download-btn" href="#download" class="btn btn-primary" data-action="popup_download">Download Now</a>
          <button id="popup-dismiss-btn" class="btn btn-outline" data-action="dismiss_popup">Dismiss</button>
        </div>
      </div>
      <button id="popup-close-btn" class="icon-btn" data-action="close_popup"><span class="sr-only">Close</span><i class="fas fa-times"></i></button>
    </div>
{{end}}`

// aboutTemplate is the About page body.
const aboutTemplate = `{{define "content"}}
    <section class="hero hero-small">
      <h1>About <span class="accent">{{.SiteName}}</span></h1>
      <p>The team behind CoLE - Command Line Experience</p>
    </section>

    <section class="story">
      {{range .Story}}<p>{{.}}</p>
      {{end}}
    </section>

    <section class="team">
      <h2>Meet Our <span class="accent">Developers</span></h2>
      <p class="lead">Talented engineers who bring ideas to life with cutting-edge technology and creative solutions</p>
      <div class="feature-grid">
        {{range .Team}}<div class="feature-card">
          <h3>{{.Name}}</h3>
          <p class="role">{{.Role}}</p>
          <p>{{.Bio}}</p>
        </div>
        {{end}}
      </div>
    </section>
{{end}}`

// docsTemplate is the documentation viewer: section sidebar plus every
// section body, with all but the active one hidden.
const docsTemplate = `{{define "content"}}
    <div class="docs">
      <aside class="docs-sidebar">
        <nav>
          {{range .Sections}}<a href="{{$.DocHref .Slug}}" class="doc-link{{if .Active}} active{{end}}" data-section="{{.Label}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
          {{end}}
        </nav>
      </aside>
      <article class="docs-content">
        {{range .Sections}}<section class="doc-section" data-section="{{.Label}}"{{if not .Active}} hidden{{end}}>
{{.HTML}}
        </section>
        {{end}}
      </article>
    </div>
{{end}}`

// cssContent is the stylesheet for every page.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-alt: #f5f7ff;
  --text: #1f2937;
  --muted: #6b7280;
  --primary: #4f46e5;
  --border: #e5e7eb;
  --card: #ffffff;
}
html.dark {
  --bg: #111827;
  --bg-alt: #1f2937;
  --text: #f3f4f6;
  --muted: #9ca3af;
  --border: #374151;
  --card: #1f2937;
}

/* ============ Base ============ */
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; background: var(--bg); color: var(--text); line-height: 1.6; }
a { color: inherit; }
.hidden { display: none !important; }
.sr-only { position: absolute; width: 1px; height: 1px; overflow: hidden; clip: rect(0 0 0 0); }
.accent { color: var(--primary); }
.lead { color: var(--muted); max-width: 42rem; margin: 0 auto 2rem; font-size: 1.15rem; }
.skip-to-content { position: absolute; left: -999px; top: 0; background: var(--primary); color: #fff; padding: .5rem 1rem; z-index: 100; }
.skip-to-content:focus { left: 0; }

/* ============ Buttons ============ */
.btn { display: inline-flex; align-items: center; gap: .5rem; padding: .6rem 1.2rem; border-radius: .375rem; border: 1px solid transparent; text-decoration: none; font-weight: 500; cursor: pointer; background: none; color: inherit; font-size: 1rem; }
.btn-primary { background: var(--primary); color: #fff; }
.btn-windows { background: #2563eb; color: #fff; }
.btn-macos { background: #1f2937; color: #fff; }
.btn-linux { background: #ea580c; color: #fff; }
.btn-outline { border-color: var(--border); }
.icon-btn { background: none; border: none; color: inherit; font-size: 1.1rem; cursor: pointer; padding: .5rem; }

/* ============ Nav ============ */
.navbar { position: sticky; top: 0; background: var(--bg); border-bottom: 1px solid var(--border); z-index: 40; }
.nav-inner { display: flex; align-items: center; gap: 1rem; max-width: 72rem; margin: 0 auto; padding: .75rem 1.5rem; }
.brand { display: flex; flex-direction: column; text-decoration: none; margin-right: auto; }
.brand-name { font-size: 1.5rem; font-weight: 700; color: var(--primary); }
.brand-tagline { font-size: .8rem; color: var(--muted); }
.nav-links { display: flex; align-items: center; gap: 1.25rem; }
.nav-links a { text-decoration: none; }
.nav-links a.active { color: var(--primary); }
.mobile-only { display: none; }
.mobile-menu { display: flex; flex-direction: column; padding: .5rem 1.5rem 1rem; gap: .5rem; }
.mobile-menu a { text-decoration: none; }
@media (max-width: 768px) {
  .nav-links { display: none; }
  .mobile-only { display: inline-block; }
}
@media (min-width: 769px) {
  .mobile-menu { display: none; }
}

/* ============ Sections ============ */
section { padding: 4rem 1.5rem; text-align: center; }
.hero h1 { font-size: 3rem; margin: 0 0 1rem; }
.hero h1 span { display: block; }
.hero p { max-width: 40rem; margin: 0 auto 2rem; color: var(--muted); font-size: 1.2rem; }
.hero-small h1 { font-size: 2.25rem; }
.features, .team { background: var(--bg-alt); }
.feature-grid, .download-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(14rem, 1fr)); gap: 1.5rem; max-width: 72rem; margin: 0 auto; }
.feature-card, .download-card { background: var(--card); border: 1px solid var(--border); border-radius: .75rem; padding: 1.5rem; transition: transform .2s, box-shadow .2s; }
.feature-card:hover, .download-card:hover { transform: translateY(-4px); box-shadow: 0 10px 20px rgba(0,0,0,.08); }
.feature-card i, .download-card > i { font-size: 2rem; color: var(--primary); }
.download-card { display: flex; flex-direction: column; align-items: center; gap: .5rem; }
.download-highlight { border: 2px solid var(--primary); box-shadow: 0 0 0 4px rgba(79,70,229,.15); }
.role { color: var(--primary); font-weight: 600; }
.story { max-width: 48rem; margin: 0 auto; text-align: left; }

/* ============ Popup ============ */
.download-suggestion { position: fixed; right: 1rem; bottom: 1rem; display: flex; gap: 1rem; max-width: 24rem; padding: 1.25rem; background: var(--card); border: 1px solid var(--primary); border-radius: .75rem; box-shadow: 0 20px 40px rgba(0,0,0,.15); transform: translateY(150%); opacity: 0; transition: transform .3s, opacity .3s; z-index: 50; }
.download-suggestion.show { transform: translateY(0); opacity: 1; }
.popup-body h3 { margin: 0; }
.popup-body p { margin: .25rem 0 .75rem; color: var(--muted); }
.popup-actions { display: flex; gap: .5rem; }

/* ============ Docs ============ */
.docs { display: flex; max-width: 72rem; margin: 0 auto; min-height: 70vh; }
.docs-sidebar { width: 14rem; border-right: 1px solid var(--border); padding: 2rem 1rem; }
.docs-sidebar nav { display: flex; flex-direction: column; gap: .25rem; }
.doc-link { display: block; padding: .5rem .75rem; border-radius: .375rem; text-decoration: none; }
.doc-link:hover { background: var(--bg-alt); }
.doc-link.active { background: var(--primary); color: #fff; }
.docs-content { flex: 1; padding: 0 2rem; }
.doc-section { text-align: left; padding: 2rem 0; }
.doc-section pre { padding: .75rem; border-radius: .375rem; overflow-x: auto; }
.doc-section code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
@media (max-width: 768px) {
  .docs { flex-direction: column; }
  .docs-sidebar { width: auto; border-right: none; border-bottom: 1px solid var(--border); }
}

/* ============ Footer ============ */
.footer { background: #111827; color: #d1d5db; padding: 3rem 1.5rem 1.5rem; }
.footer-grid { display: grid; grid-template-columns: 2fr repeat(4, 1fr); gap: 2rem; max-width: 72rem; margin: 0 auto; }
.footer h3, .footer h4 { color: #fff; margin-top: 0; }
.footer ul { list-style: none; padding: 0; margin: 0; }
.footer li { margin-bottom: .4rem; }
.footer a { text-decoration: none; }
.footer a:hover { color: #fff; }
.socials { display: flex; gap: 1rem; font-size: 1.25rem; }
.copyright { text-align: center; border-top: 1px solid #374151; margin-top: 2rem; padding-top: 1.5rem; }
@media (max-width: 768px) {
  .footer-grid { grid-template-columns: 1fr 1fr; }
}
`

// jsContent is the client script. Served pages talk to the server's view
// state over /ws; exported pages run the same transitions locally.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var body = document.body;
  var live = body.getAttribute("data-live") === "true";
  var page = body.getAttribute("data-page");
  var socket = null;
  var state = { menu_open: false, popup: "hidden", section: body.getAttribute("data-section") || "" };

  function byId(id) { return document.getElementById(id); }

  // ===== Rendering state =====
  function apply(next) {
    state = next;
    var menu = byId("mobile-menu");
    if (menu) { menu.classList.toggle("hidden", !next.menu_open); }
    var popup = byId("download-suggestion");
    if (popup) { popup.classList.toggle("show", next.popup === "shown"); }
    document.querySelectorAll(".doc-section").forEach(function(el) {
      el.hidden = el.getAttribute("data-section") !== next.section;
    });
    document.querySelectorAll(".doc-link").forEach(function(el) {
      el.classList.toggle("active", el.getAttribute("data-section") === next.section);
    });
  }

  function scrollTo(target) {
    var el = document.querySelector(target);
    if (el) { el.scrollIntoView({ behavior: "smooth", block: "start" }); }
  }

  // ===== Local transitions (exported pages, or no socket) =====
  function reduce(s, a) {
    var n = { menu_open: s.menu_open, popup: s.popup, section: s.section };
    var scroll = "";
    switch (a.type) {
      case "toggle_menu": n.menu_open = !n.menu_open; break;
      case "navigate":
        if (!a.target || a.target === "#" || !a.found) { return { state: s, scroll: "" }; }
        n.menu_open = false; scroll = a.target; break;
      case "popup_timer": if (n.popup === "hidden") { n.popup = "shown"; } break;
      case "dismiss_popup":
      case "close_popup": n.popup = "dismissed"; break;
      case "popup_download": n.popup = "dismissed"; n.menu_open = false; scroll = "#download"; break;
      case "set_section": n.section = a.label; break;
    }
    return { state: n, scroll: scroll };
  }

  function dispatchLocal(action) {
    var res = reduce(state, action);
    apply(res.state);
    if (res.scroll) { scrollTo(res.scroll); }
  }

  // Actions raised before the server's first state frame wait in pending,
  // otherwise that frame would overwrite them.
  var synced = false;
  var pending = [];

  function dispatch(action) {
    if (socket && synced && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(action));
      return;
    }
    if (socket && !synced) {
      pending.push(action);
      return;
    }
    dispatchLocal(action);
  }

  var popupTimerArmed = false;

  function armPopupTimer() {
    if (popupTimerArmed || page !== "home") { return; }
    popupTimerArmed = true;
    var delay = parseInt(body.getAttribute("data-popup-delay"), 10) || 5000;
    setTimeout(function() { dispatchLocal({ type: "popup_timer" }); }, delay);
  }

  // ===== Live session =====
  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    socket = new WebSocket(proto + location.host + "/ws?page=" + encodeURIComponent(page) +
      "&section=" + encodeURIComponent(state.section));
    socket.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === "state") {
        apply(msg.state);
        if (!synced) {
          synced = true;
          var queued = pending;
          pending = [];
          queued.forEach(function(a) { socket.send(JSON.stringify(a)); });
        }
      } else if (msg.type === "scroll") {
        scrollTo(msg.target);
      }
    };
    // Without a session the page keeps working on local transitions,
    // including the popup timer the server would have owned.
    socket.onclose = function() {
      socket = null;
      synced = false;
      var queued = pending;
      pending = [];
      queued.forEach(dispatchLocal);
      if (state.popup === "hidden") { armPopupTimer(); }
    };
  }

  // ===== Platform detection for exported pages =====
  var ORDER = [["Windows", ["Windows"]], ["macOS", ["Mac"]], ["Linux", ["Linux"]],
               ["Android", ["Android"]], ["iOS", ["iOS", "iPhone", "iPad"]]];
  var CARD = { Windows: "windows", macOS: "macos", Linux: "linux", Android: "linux", iOS: "macos" };
  var ICON = {
    Windows: "fab fa-windows text-blue-600",
    macOS: "fab fa-apple text-gray-800",
    Linux: "fab fa-linux text-orange-600",
    Android: "fab fa-android text-green-600",
    iOS: "fab fa-apple text-gray-800"
  };

  function classify(ua) {
    for (var i = 0; i < ORDER.length; i++) {
      for (var j = 0; j < ORDER[i][1].length; j++) {
        if (ua.indexOf(ORDER[i][1][j]) !== -1) { return ORDER[i][0]; }
      }
    }
    return "Unknown OS";
  }

  function detectLocally() {
    var os = classify(window.navigator.userAgent);
    ["detected-os", "popup-os-name"].forEach(function(id) {
      var el = byId(id);
      if (el) { el.textContent = os; }
    });
    var card = CARD[os] && byId(CARD[os] + "-download");
    if (card) { card.classList.add("download-highlight"); }
    var iconBox = byId("popup-os-icon");
    if (iconBox && ICON[os]) {
      var icon = document.createElement("i");
      icon.className = ICON[os];
      iconBox.replaceChildren(icon);
    }
  }

  // ===== Theme =====
  var themeToggle = byId("theme-toggle");
  var themeIcon = byId("theme-toggle-icon");

  function setTheme(theme) {
    html.classList.toggle("dark", theme === "dark");
    html.setAttribute("data-theme", theme);
    if (themeIcon) {
      themeIcon.classList.toggle("fa-sun", theme === "dark");
      themeIcon.classList.toggle("fa-moon", theme !== "dark");
    }
  }

  if (!live) {
    try { if (localStorage.theme === "dark") { setTheme("dark"); } } catch (e) {}
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      if (live) {
        fetch("/api/theme/toggle", { method: "POST", credentials: "same-origin" })
          .then(function(r) { return r.json(); })
          .then(function(data) { if (data.theme) { setTheme(data.theme); } });
        return;
      }
      var next = html.classList.contains("dark") ? "light" : "dark";
      setTheme(next);
      try { localStorage.theme = next; } catch (e) {}
    });
  }

  // ===== Events =====
  var menuButton = byId("mobile-menu-button");
  if (menuButton) {
    menuButton.addEventListener("click", function() { dispatch({ type: "toggle_menu" }); });
  }

  document.addEventListener("click", function(e) {
    var actionEl = e.target.closest("[data-action]");
    if (actionEl) {
      e.preventDefault();
      dispatch({ type: actionEl.getAttribute("data-action") });
      return;
    }
    var docLink = e.target.closest(".doc-link");
    if (docLink) {
      e.preventDefault();
      dispatch({ type: "set_section", label: docLink.getAttribute("data-section") });
      if (window.history && history.pushState) { history.pushState(null, "", docLink.getAttribute("href")); }
      return;
    }
    var anchor = e.target.closest("a[href^='#']");
    if (anchor) {
      var target = anchor.getAttribute("href");
      if (target === "#") { return; }
      e.preventDefault();
      dispatch({ type: "navigate", target: target, found: !!document.querySelector(target) });
    }
  });

  // Back and forward restore the section named by the URL.
  window.addEventListener("popstate", function() {
    var links = document.querySelectorAll(".doc-link");
    if (!links.length) { return; }
    var label = links[0].getAttribute("data-section");
    links.forEach(function(el) {
      if (new URL(el.getAttribute("href"), location.href).pathname === location.pathname) {
        label = el.getAttribute("data-section");
      }
    });
    dispatch({ type: "set_section", label: label });
  });

  if (live) {
    connect();
  } else if (page === "home") {
    detectLocally();
    armPopupTimer();
  }
})();
`
