package site

// styleCSS is the stylesheet for every page.
const styleCSS = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f4f1ea;
  --text: #1f1d1a;
  --text-muted: #6b665d;
  --border: #e2ddd2;
  --accent: #7a2e2e;
  --accent-text: #ffffff;
  --radius: 8px;
  --max-width: 860px;
}

[data-theme="dark"] {
  --bg: #151412;
  --bg-secondary: #23211e;
  --text: #ece8e0;
  --text-muted: #a39d92;
  --border: #3a3732;
  --accent: #d98b6a;
  --accent-text: #151412;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: Georgia, "Times New Roman", serif;
  line-height: 1.6;
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Header & Footer ============ */
.site-header {
  display: flex;
  align-items: center;
  gap: 1.5rem;
  padding: 1rem 2.5rem;
  border-bottom: 1px solid var(--border);
}
.site-header .brand { font-size: 1.25rem; font-weight: bold; color: var(--text); }
.site-header nav { display: flex; gap: 1rem; flex: 1; }
.search-open, .theme-toggle {
  background: var(--bg-secondary);
  color: var(--text-muted);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  padding: 0.35rem 0.75rem;
  cursor: pointer;
}
.site-footer {
  display: flex;
  justify-content: space-between;
  flex-wrap: wrap;
  gap: 1rem;
  margin-top: 6rem;
  padding: 1.5rem 2.5rem;
  border-top: 1px solid var(--border);
  color: var(--text-muted);
  font-size: 0.85rem;
}

/* ============ Content ============ */
.content { max-width: var(--max-width); margin: 0 auto; padding: 2rem 1.25rem; }
h1 { text-align: center; font-weight: normal; }
.hero { background: var(--bg-secondary); padding: 4rem 2rem; border-radius: var(--radius); text-align: center; }
.lead { font-size: 1.2rem; }
.button {
  display: inline-block;
  background: var(--accent);
  color: var(--accent-text);
  border: none;
  border-radius: var(--radius);
  padding: 0.6rem 1.4rem;
  cursor: pointer;
}
.button:hover { text-decoration: none; opacity: 0.9; }
.muted, .stats { color: var(--text-muted); }

.breadcrumb ol { list-style: none; display: flex; flex-wrap: wrap; gap: 0.5rem; padding: 0; margin: 0 0 3rem; }
.breadcrumb li + li::before { content: "/"; margin-right: 0.5rem; color: var(--text-muted); }

.items { list-style: none; padding: 0; }
.items a {
  display: flex;
  justify-content: space-between;
  padding: 1rem 2rem;
  border-bottom: 1px solid var(--border);
  color: var(--text);
}
.items a:hover { background: var(--bg-secondary); text-decoration: none; }

.description { text-align: justify; font-size: 1.1rem; }

/* ============ Article ============ */
.article section { border: 1px solid var(--border); border-radius: var(--radius); padding: 1rem 1.5rem; margin: 1.5rem 0; }
.article h3 { font-size: 1rem; margin-bottom: 0.25rem; }
.paragraph + .paragraph { border-top: 1px solid var(--border); }
.counter { font-style: italic; }
.pager { display: flex; justify-content: space-between; gap: 1rem; margin-top: 2.5rem; }
.pager .button { max-width: 45%; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }

/* ============ Search ============ */
.search form { display: flex; gap: 0.5rem; }
.search input, .search-dialog input {
  flex: 1;
  padding: 0.6rem 0.8rem;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: var(--bg);
  color: var(--text);
  font-size: 1rem;
}
.hits { list-style: none; padding: 0; }
.hit a { display: flex; flex-direction: column; padding: 0.75rem 1rem; border-bottom: 1px solid var(--border); color: var(--text); }
.hit a:hover { background: var(--bg-secondary); text-decoration: none; }
.hit-snippet { color: var(--text-muted); }
.hit-snippet em, .hit-snippet strong { background: var(--accent); color: var(--accent-text); font-style: normal; }
.hit-label { font-size: 0.75rem; color: var(--text-muted); }
.notice.error { background: #b3261e; color: #fff; padding: 1rem; border-radius: var(--radius); }

.search-dialog {
  width: min(640px, 92vw);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: var(--bg);
  color: var(--text);
  padding: 1rem;
}
.search-dialog::backdrop { background: rgba(0, 0, 0, 0.4); }
.search-dialog-header { display: flex; gap: 0.5rem; }
.search-dialog-results { max-height: 60vh; overflow-y: auto; }

@media (max-width: 640px) {
  .site-header { padding: 1rem; flex-wrap: wrap; }
  .items a { padding: 1rem; }
}
`

// appJS persists the theme and drives the live search dialog over a websocket.
const appJS = `(function () {
  var root = document.documentElement;
  var saved = localStorage.getItem("theme");
  if (saved) {
    root.setAttribute("data-theme", saved);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    root.setAttribute("data-theme", "dark");
  }

  var toggle = document.getElementById("theme-toggle");
  if (toggle) {
    toggle.addEventListener("click", function () {
      var next = root.getAttribute("data-theme") === "dark" ? "light" : "dark";
      root.setAttribute("data-theme", next);
      localStorage.setItem("theme", next);
    });
  }

  var dialog = document.getElementById("search-dialog");
  var input = document.getElementById("live-query");
  var results = document.getElementById("live-results");
  var opener = document.getElementById("search-open");
  if (!dialog || !input || !results) {
    return;
  }

  var socket = null;
  var timer = null;

  function connect() {
    if (socket && socket.readyState <= 1) {
      return socket;
    }
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    socket = new WebSocket(scheme + location.host + "/ws/search");
    socket.onmessage = function (event) {
      var msg = JSON.parse(event.data);
      if (msg.query !== input.value.trim()) {
        return;
      }
      if (msg.type === "error") {
        results.innerHTML = "";
        var p = document.createElement("p");
        p.className = "notice error";
        p.textContent = msg.error;
        results.appendChild(p);
        return;
      }
      render(msg.hits || []);
    };
    return socket;
  }

  function render(hits) {
    results.innerHTML = "";
    var list = document.createElement("ul");
    list.className = "hits";
    hits.forEach(function (hit) {
      var li = document.createElement("li");
      li.className = "hit";
      var a = document.createElement("a");
      a.href = hit.href;
      var title = document.createElement("span");
      title.className = "hit-title";
      title.textContent = hit.title;
      var snippet = document.createElement("span");
      snippet.className = "hit-snippet";
      snippet.innerHTML = hit.snippet_html;
      var label = document.createElement("span");
      label.className = "hit-label";
      label.textContent = hit.label;
      a.appendChild(title);
      a.appendChild(snippet);
      a.appendChild(label);
      li.appendChild(a);
      list.appendChild(li);
    });
    results.appendChild(list);
  }

  function send() {
    var query = input.value.trim();
    if (query === "") {
      results.innerHTML = "";
      return;
    }
    var ws = connect();
    var payload = JSON.stringify({ query: query, limit: 10 });
    if (ws.readyState === 1) {
      ws.send(payload);
    } else {
      ws.addEventListener("open", function () { ws.send(payload); }, { once: true });
    }
  }

  function open() {
    dialog.showModal();
    input.focus();
  }

  if (opener) {
    opener.addEventListener("click", open);
  }
  document.addEventListener("keydown", function (e) {
    var tag = (e.target.tagName || "").toLowerCase();
    if (e.key === "/" && tag !== "input" && tag !== "textarea" && !dialog.open) {
      e.preventDefault();
      open();
    }
  });
  input.addEventListener("input", function () {
    clearTimeout(timer);
    timer = setTimeout(send, 200);
  });
})();
`
