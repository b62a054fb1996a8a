package web

import "net/http"

const uiIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>OnboardAI</title>
  <link rel="stylesheet" href="/ui/styles.css" />
</head>
<body>
  <header class="topbar">
    <div class="title">OnboardAI</div>
    <div class="subtitle">HR onboarding assistant</div>
    <div class="badge" id="authBadge">Workspace: checking…</div>
  </header>

  <main class="grid">
    <aside class="panel">
      <div class="panelTitle">Setup</div>
      <label for="apiKey">Gemini API Key</label>
      <input id="apiKey" type="password" autocomplete="off" placeholder="Paste key" />
      <div class="hint" id="keyStatus">No key set.</div>

      <label for="employee">New employee name</label>
      <input id="employee" type="text" placeholder="e.g. Asha Rao" />
      <button id="btnOnboard" class="btn primary">Initiate Onboarding</button>
      <div class="hint" id="onboardStatus"></div>

      <div class="exports">
        <a href="/api/session/export?format=json">Export JSON</a>
        <a href="/api/session/export?format=yaml">Export YAML</a>
      </div>
    </aside>

    <section class="panel">
      <div class="panelTitle">Policy chat</div>
      <div id="chat" class="chat"></div>
      <form id="askForm" class="composer">
        <input id="question" type="text" placeholder="Ask about leave, WFH, probation…" />
        <button class="btn" type="submit">Ask</button>
      </form>
    </section>

    <aside class="panel">
      <div class="panelTitle">Agent trace</div>
      <div id="trace" class="trace"></div>
    </aside>
  </main>

  <script src="/ui/app.js"></script>
</body>
</html>
`

const uiStylesCSS = `* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: #0f1115; color: #e6e6e6; }
.topbar { display: flex; align-items: baseline; gap: 16px; padding: 14px 20px; border-bottom: 1px solid #262a33; }
.title { font-size: 20px; font-weight: 700; }
.subtitle { color: #8a8f98; }
.badge { margin-left: auto; font-size: 12px; padding: 4px 8px; border-radius: 6px; background: #262a33; }
.badge.ok { background: #1d3b2a; color: #7ee2a8; }
.badge.bad { background: #3b1d1d; color: #e27e7e; }
.grid { display: grid; grid-template-columns: 280px 1fr 380px; gap: 12px; padding: 12px; height: calc(100vh - 56px); }
.panel { background: #161920; border: 1px solid #262a33; border-radius: 8px; padding: 12px; display: flex; flex-direction: column; gap: 8px; overflow: hidden; }
.panelTitle { font-weight: 600; margin-bottom: 4px; }
label { font-size: 12px; color: #8a8f98; }
input { width: 100%; padding: 8px; border-radius: 6px; border: 1px solid #333844; background: #0f1115; color: inherit; }
.btn { padding: 8px 12px; border-radius: 6px; border: 1px solid #333844; background: #222631; color: inherit; cursor: pointer; }
.btn.primary { background: #2f6fed; border-color: #2f6fed; }
.btn:disabled { opacity: 0.5; cursor: default; }
.hint { font-size: 12px; color: #8a8f98; min-height: 16px; }
.exports { margin-top: auto; display: flex; gap: 12px; font-size: 12px; }
.exports a { color: #8ab4f8; }
.chat, .trace { flex: 1; overflow-y: auto; display: flex; flex-direction: column; gap: 6px; }
.turn { padding: 8px 10px; border-radius: 6px; white-space: pre-wrap; }
.turn.user { background: #222631; align-self: flex-end; max-width: 80%; }
.turn.assistant { background: #1b2233; max-width: 90%; }
.entry { font-family: ui-monospace, monospace; font-size: 12px; padding: 4px 0; border-bottom: 1px dashed #262a33; }
.composer { display: flex; gap: 8px; }
`

const uiAppJS = `(function () {
  const $ = (id) => document.getElementById(id);

  function escapeHTML(s) {
    return String(s).replace(/[&<>"']/g, (c) => ({
      "&": "&amp;", "<": "&lt;", ">": "&gt;", '"': "&quot;", "'": "&#39;"
    }[c]));
  }

  function renderLine(s) {
    return escapeHTML(s).replace(/\*\*(.+?)\*\*/g, "<b>$1</b>");
  }

  async function api(method, path, body) {
    const res = await fetch(path, {
      method,
      credentials: "same-origin",
      headers: body ? { "Content-Type": "application/json" } : {},
      body: body ? JSON.stringify(body) : undefined,
    });
    const data = await res.json();
    if (!res.ok || !data.ok) throw new Error(data.error || res.statusText);
    return data;
  }

  function render(state) {
    const badge = $("authBadge");
    badge.textContent = state.authenticated ? "Workspace: connected" : "Workspace: not connected";
    badge.className = "badge " + (state.authenticated ? "ok" : "bad");
    $("keyStatus").textContent = state.has_key ? "Key set for this session." : "No key set.";

    $("trace").innerHTML = (state.trace || [])
      .map((e) => '<div class="entry">' + renderLine(e.line) + "</div>")
      .join("");

    $("chat").innerHTML = (state.chat || [])
      .map((t) => '<div class="turn ' + escapeHTML(t.role) + '">' + escapeHTML(t.content) + "</div>")
      .join("");
    $("chat").scrollTop = $("chat").scrollHeight;
  }

  async function refresh() {
    try {
      render(await api("GET", "/api/session"));
    } catch (err) {
      $("onboardStatus").textContent = err.message;
    }
  }

  $("apiKey").addEventListener("change", async (ev) => {
    try {
      await api("POST", "/api/key", { api_key: ev.target.value });
    } catch (err) {
      $("keyStatus").textContent = err.message;
    }
    refresh();
  });

  $("btnOnboard").addEventListener("click", async () => {
    const btn = $("btnOnboard");
    btn.disabled = true;
    $("onboardStatus").textContent = "Running…";
    try {
      const res = await api("POST", "/api/onboard", { name: $("employee").value });
      $("onboardStatus").textContent = res.status;
    } catch (err) {
      $("onboardStatus").textContent = err.message;
    }
    btn.disabled = false;
    refresh();
  });

  $("askForm").addEventListener("submit", async (ev) => {
    ev.preventDefault();
    const q = $("question").value.trim();
    if (!q) return;
    $("question").value = "";
    try {
      await api("POST", "/api/ask", { query: q });
    } catch (err) {
      $("onboardStatus").textContent = err.message;
    }
    refresh();
  });

  refresh();
})();
`

func registerUI(mux *http.ServeMux) {
	serve := func(contentType, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", contentType)
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(body))
		}
	}

	mux.HandleFunc("GET /{$}", serve("text/html; charset=utf-8", uiIndexHTML))
	mux.HandleFunc("GET /ui/styles.css", serve("text/css; charset=utf-8", uiStylesCSS))
	mux.HandleFunc("GET /ui/app.js", serve("text/javascript; charset=utf-8", uiAppJS))
}
