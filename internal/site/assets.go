package site

// CSS and JavaScript shipped next to every page.

// cssContent is the full stylesheet for the site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-alt: #fafafa;
  --card: #ffffff;
  --text: #0f172a;
  --muted: #64748b;
  --border: #e2e8f0;
  --accent: #2563eb;
  --accent-hover: #1d4ed8;
  --accent-soft: #eff6ff;
  --hero-bg: #0f172a;
  --hero-tile: #1e293b;
  --hero-border: #334155;
  --code-bg: #f8fafc;
  --success-bg: #dcfce7;
  --success-text: #166534;
  --error-bg: #fee2e2;
  --error-text: #991b1b;
  --radius: 0.75rem;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 10px 25px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #020617;
  --bg-alt: #0b1120;
  --card: #0f172a;
  --text: #f1f5f9;
  --muted: #94a3b8;
  --border: #1e293b;
  --accent: #60a5fa;
  --accent-hover: #93c5fd;
  --accent-soft: #172554;
  --hero-bg: #020617;
  --code-bg: #111827;
  --success-bg: #14532d;
  --success-text: #bbf7d0;
  --error-bg: #450a0a;
  --error-text: #fecaca;
  --shadow: 0 1px 3px rgba(0,0,0,0.4);
  --shadow-lg: 0 10px 25px rgba(0,0,0,0.5);
}

/* ============ Base ============ */
* { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}
a { color: inherit; text-decoration: none; }
code, pre { font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace; font-size: 0.875rem; }
h1 { font-size: clamp(3rem, 8vw, 4.5rem); font-weight: 800; margin-bottom: 1.5rem; }
h2 { font-size: 2.25rem; font-weight: 700; margin-bottom: 1rem; }
h3 { font-size: 1.25rem; font-weight: 600; margin-bottom: 0.75rem; }
h4 { font-weight: 600; margin: 1rem 0 0.5rem; }
[hidden] { display: none !important; }
.sr-only, .visually-hidden {
  position: absolute; width: 1px; height: 1px; overflow: hidden;
  clip: rect(0 0 0 0); white-space: nowrap;
}

.container { max-width: 1200px; margin: 0 auto; padding: 0 1rem; }
.narrow-6 { max-width: 72rem; }
.narrow-4 { max-width: 56rem; }
.center { text-align: center; }
.muted { color: var(--muted); }
.stack > * + * { margin-top: 1.5rem; }
.grid { display: grid; gap: 1.5rem; }
.grid.two { grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); }
.grid.three { grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }

/* ============ Icons ============ */
.icon { width: 1.5rem; height: 1.5rem; flex-shrink: 0; }
.icon.small { width: 1rem; height: 1rem; }
.icon.tiny { width: 0.75rem; height: 0.75rem; }
.icon.large { width: 3rem; height: 3rem; }
.spin { animation: spin 1s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }

/* ============ Buttons & Badges ============ */
.button {
  display: inline-flex; align-items: center; gap: 0.5rem;
  padding: 0.5rem 1rem; border-radius: 0.5rem; border: 1px solid transparent;
  font: inherit; font-size: 0.875rem; font-weight: 500; cursor: pointer;
  background: var(--card); color: var(--text); transition: background 0.2s, color 0.2s;
}
.button.primary { background: var(--accent); color: #fff; }
.button.primary:hover { background: var(--accent-hover); }
.button.outline { border-color: var(--border); background: transparent; }
.button.outline:hover { background: var(--bg-alt); }
.button.secondary { background: var(--bg-alt); border-color: var(--border); }
.button.ghost { background: transparent; }
.button.small { padding: 0.35rem 0.6rem; }
.button.large { padding: 0.75rem 1.5rem; font-size: 1rem; }
.button[aria-disabled="true"] { opacity: 0.6; pointer-events: none; }
.icon-button { background: none; border: none; color: var(--muted); cursor: pointer; padding: 0.25rem; }
.icon-button:hover { color: var(--text); }
.badge {
  display: inline-flex; align-items: center; gap: 0.25rem;
  padding: 0.15rem 0.6rem; border-radius: 999px; font-size: 0.75rem; font-weight: 600;
  background: var(--bg-alt); color: var(--muted); border: 1px solid var(--border);
}
.badge.dark { background: var(--hero-tile); color: #e2e8f0; border-color: var(--hero-border); margin-bottom: 1rem; }
.badge.success { background: var(--success-bg); color: var(--success-text); border-color: transparent; }

/* ============ Header ============ */
.site-header {
  position: sticky; top: 0; z-index: 50; border-bottom: 1px solid var(--border);
  background: color-mix(in srgb, var(--bg) 85%, transparent); backdrop-filter: blur(8px);
}
.header-inner { display: flex; align-items: center; justify-content: space-between; height: 4rem; }
.brand { display: flex; align-items: center; gap: 0.5rem; font-size: 1.25rem; font-weight: 700; }
.brand-icon { color: var(--accent); }
.site-nav { display: flex; gap: 1.5rem; font-size: 0.875rem; font-weight: 500; }
.site-nav a:hover { color: var(--accent); }
.header-actions { display: flex; gap: 0.5rem; }
.moon-icon { display: none; }
[data-theme="dark"] .sun-icon { display: none; }
[data-theme="dark"] .moon-icon { display: inline; }
@media (max-width: 768px) { .site-nav { display: none; } }

/* ============ Hero ============ */
.hero { background: var(--hero-bg); color: #fff; padding: 6rem 0; }
.hero .lead { font-size: 1.35rem; color: #cbd5e1; max-width: 48rem; margin: 0 auto 2rem; }
.hero-actions { display: flex; flex-wrap: wrap; gap: 1rem; justify-content: center; margin-bottom: 3rem; }
.hero .button.outline { color: #cbd5e1; border-color: #475569; }
.hero .button.outline:hover { background: var(--hero-tile); }
.format-grid { display: grid; grid-template-columns: repeat(6, 1fr); gap: 1rem; max-width: 42rem; margin: 0 auto; }
.format { background: var(--hero-tile); border: 1px solid var(--hero-border); border-radius: 0.5rem; padding: 0.75rem; font-size: 0.875rem; font-weight: 500; }
@media (max-width: 768px) { .format-grid { grid-template-columns: repeat(2, 1fr); } }

/* ============ Sections & Cards ============ */
.section { padding: 6rem 0; }
.section.alt { background: var(--bg-alt); }
.section-head { text-align: center; margin-bottom: 4rem; }
.section-head p { font-size: 1.25rem; color: var(--muted); max-width: 42rem; margin: 0 auto; }
.card { background: var(--card); border: 1px solid var(--border); border-radius: var(--radius); padding: 1.5rem; box-shadow: var(--shadow); }
.card.flush { padding: 0; overflow: hidden; box-shadow: var(--shadow-lg); }
.card-bar { display: flex; align-items: center; gap: 0.5rem; background: var(--hero-bg); color: #fff; padding: 1rem 1.5rem; font-weight: 600; }
.card-body { padding: 2rem; }
.feature { transition: box-shadow 0.3s; }
.feature:hover { box-shadow: var(--shadow-lg); }
.feature-top { display: flex; justify-content: space-between; align-items: center; margin-bottom: 0.75rem; }
.feature-icon { padding: 0.5rem; border-radius: 0.5rem; background: var(--accent-soft); color: var(--accent); }
.stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 2rem; margin-top: 4rem; padding: 2rem; border-radius: 1rem; background: var(--bg-alt); text-align: center; }
.stat-value { font-size: 1.875rem; font-weight: 700; color: var(--accent); margin-bottom: 0.5rem; }
@media (max-width: 768px) { .stats { grid-template-columns: repeat(2, 1fr); } }

/* ============ Tabs ============ */
.tab-list { display: grid; grid-auto-flow: column; grid-auto-columns: 1fr; gap: 0.25rem; padding: 0.25rem; border-radius: 0.5rem; background: var(--card); border: 1px solid var(--border); }
.tab { display: flex; align-items: center; justify-content: center; gap: 0.5rem; padding: 0.5rem; border-radius: 0.375rem; font-size: 0.875rem; font-weight: 500; color: var(--muted); }
.tab.active { background: var(--bg-alt); color: var(--text); box-shadow: var(--shadow); }
.tab-panel { margin-top: 2rem; }

/* ============ Code ============ */
.code-line { position: relative; background: var(--code-bg); border-radius: 0.5rem; padding: 1rem; }
.code-line .icon-button { position: absolute; right: 0.5rem; top: 0.5rem; }
code.block { display: block; background: var(--code-bg); padding: 0.5rem; border-radius: 0.375rem; }
.code pre { padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
.code.wrap pre { white-space: pre-wrap; }
.sample-head { display: flex; align-items: center; justify-content: space-between; }
.platform { border-left-width: 4px; }
.accent-blue { border-left: 4px solid #3b82f6; padding-left: 1rem; }
.accent-green { border-left: 4px solid #22c55e; }
.accent-purple { border-left: 4px solid #a855f7; }
.platform.accent-blue { padding-left: 1.5rem; }
.methods { list-style: none; font-size: 0.875rem; }
.methods li + li { margin-top: 0.25rem; }

/* ============ Examples ============ */
.example { padding: 0; overflow: hidden; }
.example-head { display: flex; justify-content: space-between; align-items: center; gap: 1rem; padding: 1.5rem 1.5rem 0.75rem; }
.example-title { display: flex; gap: 0.75rem; align-items: center; }
.example-title h3 { margin: 0; }
.example-actions { display: flex; gap: 0.5rem; }
.tags { display: flex; gap: 0.5rem; padding: 0 1.5rem 1rem; }
.example .code pre { border-radius: 0; }
.cta { max-width: 42rem; margin: 4rem auto 0; padding: 2rem; }
.cta .hero-actions { margin-bottom: 0; margin-top: 1.5rem; }

/* ============ Demo ============ */
.dropzone { border: 2px dashed var(--border); border-radius: 0.5rem; padding: 3rem; text-align: center; transition: border-color 0.2s; }
.dropzone:hover { border-color: var(--accent); }
.dropzone p { margin-bottom: 1rem; }
.alert { padding: 0.75rem 1rem; border-radius: 0.5rem; margin-bottom: 1rem; font-size: 0.875rem; }
.alert.error { background: var(--error-bg); color: var(--error-text); }
.alert.notice { background: var(--accent-soft); color: var(--accent); }
.extracted { background: var(--code-bg); border-radius: 0.5rem; padding: 1rem; max-height: 16rem; overflow-y: auto; white-space: pre-wrap; }
.stats-list { display: grid; grid-template-columns: auto 1fr; gap: 0.75rem; }
.stats-list dt { color: var(--muted); }
.stats-list dd { text-align: right; font-weight: 500; }
.reset-row { margin-top: 1.5rem; }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid var(--border); padding: 2rem 0; }
.site-footer h3 { font-size: 1.125rem; }
.links { list-style: none; }
.links li + li { margin-top: 0.5rem; }
.links a, .social a { color: var(--muted); }
.links a:hover, .social a:hover { color: var(--text); }
.social { display: flex; gap: 1rem; }
.copyright { margin-top: 2rem; padding-top: 2rem; border-top: 1px solid var(--border); text-align: center; color: var(--muted); }
`

// jsContent wires tabs, copy buttons, the theme toggle, the demo upload
// and, when enabled, live reload.
const jsContent = `(function () {
  "use strict";

  // ---- Theme ----
  var root = document.documentElement;
  var saved = localStorage.getItem("theme");
  if (saved) {
    root.setAttribute("data-theme", saved);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    root.setAttribute("data-theme", "dark");
  }
  document.querySelectorAll("[data-theme-toggle]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var next = root.getAttribute("data-theme") === "light" ? "dark" : "light";
      root.setAttribute("data-theme", next);
      localStorage.setItem("theme", next);
    });
  });

  // ---- Tabs ----
  // Each group switches independently; panels are only hidden, never removed.
  function selectTab(group, id) {
    group.querySelectorAll(":scope > .tab-list > [data-tab]").forEach(function (tab) {
      var active = tab.getAttribute("data-tab") === id;
      tab.classList.toggle("active", active);
      tab.setAttribute("aria-selected", active ? "true" : "false");
    });
    group.querySelectorAll(":scope > [data-panel]").forEach(function (panel) {
      panel.hidden = panel.getAttribute("data-panel") !== id;
    });
  }
  document.querySelectorAll("[data-tab-group]").forEach(function (group) {
    group.querySelectorAll(":scope > .tab-list > [data-tab]").forEach(function (tab) {
      tab.addEventListener("click", function (e) {
        e.preventDefault();
        var id = tab.getAttribute("data-tab");
        selectTab(group, id);
        var name = group.getAttribute("data-tab-group");
        if (name !== "demo-result" && window.history && window.URLSearchParams) {
          var params = new URLSearchParams(location.search);
          params.set(name, id);
          history.replaceState(null, "", "?" + params.toString() + location.hash);
        }
      });
    });
  });

  // ---- Copy to clipboard ----
  document.querySelectorAll("[data-copy]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      if (!navigator.clipboard) return;
      navigator.clipboard.writeText(btn.getAttribute("data-copy")).then(function () {
        btn.classList.add("copied");
        setTimeout(function () { btn.classList.remove("copied"); }, 1500);
      });
    });
  });

  // ---- Live demo ----
  var demo = document.querySelector("[data-demo]");
  if (demo) {
    var input = demo.querySelector("[data-demo-input]");
    var form = demo.querySelector("[data-demo-form]");
    var button = demo.querySelector("[data-demo-button]");
    var upload = demo.querySelector("[data-demo-upload]");
    var result = demo.querySelector("[data-demo-result]");
    var errorBox = demo.querySelector("[data-demo-error]");
    var noticeBox = demo.querySelector("[data-demo-notice]");
    var api = demo.getAttribute("data-api");

    // A file outside the accept list counts as no file: the panel keeps
    // its state and only shows a notice.
    var isAccepted = function (name) {
      var accept = (input.getAttribute("accept") || "").toLowerCase().split(",").filter(Boolean);
      if (accept.length === 0) return true;
      var base = name.toLowerCase().split(/[\\/]/).pop();
      return accept.some(function (ext) {
        ext = ext.trim();
        return ext.charAt(0) === "." && base.length > ext.length && base.slice(-ext.length) === ext;
      });
    };

    var setState = function (state) {
      demo.setAttribute("data-state", state);
      var busy = state === "processing";
      input.disabled = busy || !api;
      if (busy || !api) { button.setAttribute("aria-disabled", "true"); } else { button.removeAttribute("aria-disabled"); }
      button.querySelector("[data-idle]").hidden = busy;
      button.querySelector("[data-busy]").hidden = !busy;
      upload.hidden = state === "result";
      result.hidden = state !== "result";
    };

    var fill = function (data) {
      var meta = data.metadata || {};
      var show = function (v, suffix) { return v === undefined || v === null ? "—" : String(v) + (suffix || ""); };
      var values = {
        text: data.text || "",
        words: show(meta.words),
        pages: show(meta.pages),
        characters: show(meta.characters),
        fileSize: show(meta.fileSize, " bytes"),
        fileName: meta.fileName ? meta.fileName : "—"
      };
      result.querySelectorAll("[data-field]").forEach(function (el) {
        el.textContent = values[el.getAttribute("data-field")];
      });
      var group = result.querySelector("[data-tab-group]");
      if (group) selectTab(group, "text");
    };

    var fail = function (message) {
      errorBox.textContent = message;
      errorBox.hidden = false;
      setState("failed");
    };

    input.addEventListener("change", function () {
      var file = input.files && input.files[0];
      if (!file || !api) return;
      errorBox.hidden = true;
      noticeBox.hidden = true;
      if (!isAccepted(file.name)) {
        noticeBox.textContent = file.name + " is not a supported format.";
        noticeBox.hidden = false;
        form.reset();
        return;
      }
      setState("processing");

      var body = new FormData();
      body.append("document", file);
      fetch(api, { method: "POST", body: body })
        .then(function (res) {
          return res.json().catch(function () { return {}; }).then(function (json) {
            if (!res.ok || !json.data) {
              throw new Error(json.error || "The document could not be processed (status " + res.status + ").");
            }
            return json.data;
          });
        })
        .then(function (data) {
          fill(data);
          setState("result");
        })
        .catch(function (err) {
          console.error("Error processing document:", err);
          fail(err && err.message ? err.message : "Something went wrong while processing the document. Please try again.");
        })
        .finally(function () { form.reset(); });
    });

    var reset = demo.querySelector("[data-demo-reset]");
    if (reset) {
      reset.addEventListener("click", function (e) {
        e.preventDefault();
        errorBox.hidden = true;
        noticeBox.hidden = true;
        setState("empty");
      });
    }
  }

  // ---- Live reload ----
  var script = document.currentScript;
  var reloadPath = script && script.getAttribute("data-livereload");
  if (reloadPath && window.WebSocket) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + reloadPath);
    ws.onmessage = function (e) {
      if (e.data === "reload") location.reload();
    };
  }
})();
`

// Asset returns the body and content type of a static asset by file name.
func Asset(name string) (body []byte, contentType string, ok bool) {
	switch name {
	case "style.css":
		return []byte(cssContent), "text/css; charset=utf-8", true
	case "script.js":
		return []byte(jsContent), "text/javascript; charset=utf-8", true
	}
	return nil, "", false
}
