package site

// Stylesheet is the CSS for the menu page.
const Stylesheet = `/* ============ Variables ============ */
:root {
  --bg: #fffaf3;
  --bg-card: #ffffff;
  --text: #2d2a26;
  --text-muted: #7a7169;
  --accent: #c0392b;
  --accent-hover: #a93226;
  --accent-light: #fdecea;
  --green: #2e7d32;
  --border: #eadfd3;
  --shadow: 0 4px 14px rgba(45, 42, 38, 0.08);
  --radius: 12px;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

html { scroll-behavior: smooth; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

/* ============ Header ============ */
.header {
  position: sticky;
  top: 0;
  z-index: 10;
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 1rem 2rem;
  background: var(--bg-card);
  box-shadow: var(--shadow);
}

.logo { font-size: 1.4rem; font-weight: 700; color: var(--accent); }

.nav { display: flex; gap: 1.5rem; }

.nav-link {
  color: var(--text);
  text-decoration: none;
  font-weight: 500;
  padding-bottom: 2px;
  border-bottom: 2px solid transparent;
}

.nav-link:hover, .nav-link.active { color: var(--accent); border-bottom-color: var(--accent); }

/* ============ Hero ============ */
.hero {
  padding: 5rem 2rem 4rem;
  text-align: center;
  background: linear-gradient(135deg, var(--accent-light), var(--bg));
}

.hero h1 { font-size: 2.8rem; margin-bottom: 0.5rem; }
.tagline { font-size: 1.2rem; color: var(--text-muted); }
.intro { max-width: 640px; margin: 1.5rem auto 0; }

/* ============ Sections ============ */
.menu-section, .bevande-section, .contatti-section { padding: 4rem 2rem; max-width: 1200px; margin: 0 auto; }

.section-title { text-align: center; font-size: 2rem; margin-bottom: 2rem; }

/* ============ Filters ============ */
.filters { display: flex; justify-content: center; gap: 0.75rem; margin-bottom: 2rem; flex-wrap: wrap; }

.filter-btn {
  padding: 0.5rem 1.4rem;
  border: 2px solid var(--accent);
  border-radius: 999px;
  background: transparent;
  color: var(--accent);
  font-weight: 600;
  cursor: pointer;
  transition: background 0.2s, color 0.2s;
}

.filter-btn:hover, .filter-btn.active { background: var(--accent); color: #fff; }

/* ============ Menu grid ============ */
.menu-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: 1.5rem;
}

.menu-item {
  background: var(--bg-card);
  border-radius: var(--radius);
  box-shadow: var(--shadow);
  overflow: hidden;
  cursor: pointer;
  transition: transform 0.2s;
}

.menu-item:hover { transform: translateY(-4px); }

.menu-item-image {
  font-size: 4rem;
  text-align: center;
  padding: 1.5rem 0;
  background: var(--accent-light);
}

.menu-item-content { padding: 1.2rem; }

.menu-item-category {
  font-size: 0.75rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
}

.menu-item-name { font-size: 1.25rem; margin: 0.25rem 0; }
.menu-item-ingredients { color: var(--text-muted); font-size: 0.9rem; min-height: 2.8rem; }

.menu-item-footer { display: flex; align-items: center; justify-content: space-between; margin-top: 1rem; }

.menu-item-price, .modal-price { font-weight: 700; color: var(--accent); font-size: 1.15rem; }

.menu-item-btn, .modal-action {
  border: none;
  border-radius: 8px;
  padding: 0.45rem 1rem;
  background: var(--accent);
  color: #fff;
  cursor: pointer;
}

.menu-item-btn:hover, .modal-action:hover { background: var(--accent-hover); }

/* ============ Beverages ============ */
.bevande-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 2rem; }

.bevande-column h3 { margin-bottom: 1rem; color: var(--accent); }

.bevanda-item {
  display: flex;
  justify-content: space-between;
  padding: 0.6rem 0;
  border-bottom: 1px dashed var(--border);
}

.bevanda-price { font-weight: 600; }

/* ============ Modal ============ */
.modal {
  display: none;
  position: fixed;
  inset: 0;
  z-index: 100;
  background: rgba(0, 0, 0, 0.55);
}

.modal-content {
  position: relative;
  max-width: 480px;
  margin: 8vh auto;
  padding: 2rem;
  background: var(--bg-card);
  border-radius: var(--radius);
  text-align: center;
}

.close {
  position: absolute;
  top: 0.75rem;
  right: 1rem;
  font-size: 1.8rem;
  cursor: pointer;
  color: var(--text-muted);
}

#modal-image { margin: 1rem 0; }
#modal-details { text-align: left; }
.modal-footer { display: flex; align-items: center; justify-content: space-between; margin-top: 1.5rem; }

/* ============ Notifications ============ */
#notifications {
  position: fixed;
  right: 1.5rem;
  bottom: 1.5rem;
  z-index: 200;
  display: flex;
  flex-direction: column;
  gap: 0.5rem;
}

.notification {
  padding: 0.8rem 1.2rem;
  border-radius: 8px;
  background: var(--green);
  color: #fff;
  box-shadow: var(--shadow);
  animation: slide-in 0.3s ease-out;
}

@keyframes slide-in {
  from { transform: translateX(120%); opacity: 0; }
  to { transform: translateX(0); opacity: 1; }
}

@media (max-width: 640px) {
  .header { flex-direction: column; gap: 0.5rem; }
  .hero h1 { font-size: 2rem; }
}
`

// Script is the page's client shim. In live mode it forwards every
// interaction to the server session over a websocket and applies the
// instruction batches it receives. Without a connection it answers the same
// events from the pre-rendered <template> fragments embedded in the page.
const Script = `(function () {
  "use strict";

  var body = document.body;
  var live = body.getAttribute("data-live") === "true";
  var ttl = parseInt(body.getAttribute("data-ttl") || "3000", 10);
  var socket = null;
  var pending = [];
  var modalOpen = false;
  var nextID = 0;

  function region(id) {
    return document.getElementById(id);
  }

  function activate(selector, attr, token) {
    document.querySelectorAll(selector).forEach(function (el) {
      el.classList.toggle("active", el.getAttribute(attr) === token);
    });
  }

  function apply(batch) {
    (batch || []).forEach(function (ins) {
      var el = ins.region ? region(ins.region) : null;
      switch (ins.op) {
        case "replace":
          if (el) el.innerHTML = ins.html || "";
          break;
        case "show":
          if (el) el.style.display = "block";
          if (ins.region === "modal") modalOpen = true;
          break;
        case "hide":
          if (el) el.style.display = "none";
          if (ins.region === "modal") modalOpen = false;
          break;
        case "append":
          if (el) el.insertAdjacentHTML("beforeend", ins.html || "");
          break;
        case "remove":
          if (el) el.remove();
          break;
        case "activate":
          if (ins.region === "filters") activate(".filter-btn", "data-filter", ins.token);
          if (ins.region === "nav") activate(".nav-link", "data-nav", ins.token);
          break;
        case "error":
          console.warn("menu:", ins.message);
          break;
      }
    });
  }

  function fragment(kind, key) {
    var found = null;
    document.querySelectorAll("template[data-kind]").forEach(function (t) {
      if (t.getAttribute("data-kind") === kind && t.getAttribute("data-key") === key) found = t;
    });
    return found ? found.innerHTML : null;
  }

  function closeModal() {
    return [
      { op: "hide", region: "modal" },
      { op: "replace", region: "modal-content", html: "" }
    ];
  }

  // local answers an event from the embedded fragments.
  function local(ev) {
    switch (ev.type) {
      case "filter":
        var menu = fragment("menu", ev.filter);
        if (menu === null) return [{ op: "error", message: "unknown filter " + ev.filter }];
        return [
          { op: "activate", region: "filters", token: ev.filter },
          { op: "replace", region: "pizze-grid", html: menu }
        ];
      case "nav":
        return [{ op: "activate", region: "nav", token: ev.link }];
      case "select":
        var modal = fragment("modal", ev.name);
        if (modal === null) return [{ op: "error", message: "unknown entry " + ev.name }];
        return [
          { op: "replace", region: "modal-content", html: modal },
          { op: "show", region: "modal" }
        ];
      case "dismiss":
        if (!modalOpen || ev.target === "content") return [];
        return closeModal();
      case "confirm":
        if (!modalOpen) return [];
        var note = document.createElement("div");
        note.className = "notification";
        note.id = "notification-local-" + nextID++;
        note.textContent = "✓ " + ev.name + " aggiunto al carrello!";
        var id = note.id;
        setTimeout(function () { apply([{ op: "remove", region: id }]); }, ttl);
        return closeModal().concat([{ op: "append", region: "notifications", html: note.outerHTML }]);
    }
    return [];
  }

  // Events raised while the socket is connecting wait for it, so the
  // server session sees every interaction in order.
  function send(ev) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(ev));
      return;
    }
    if (socket && socket.readyState === WebSocket.CONNECTING) {
      pending.push(ev);
      return;
    }
    apply(local(ev));
  }

  document.addEventListener("click", function (e) {
    var t = e.target;

    var filter = t.closest("[data-filter]");
    if (filter) {
      send({ type: "filter", filter: filter.getAttribute("data-filter") });
      return;
    }

    var nav = t.closest("[data-nav]");
    if (nav) {
      e.preventDefault();
      var link = nav.getAttribute("data-nav");
      send({ type: "nav", link: link });
      var section = region(link);
      if (section) section.scrollIntoView({ behavior: "smooth" });
      return;
    }

    var confirm = t.closest("[data-confirm]");
    if (confirm) {
      send({
        type: "confirm",
        name: confirm.getAttribute("data-confirm"),
        price: confirm.getAttribute("data-price")
      });
      return;
    }

    if (t.closest("[data-dismiss]")) {
      send({ type: "dismiss", target: "close" });
      return;
    }
    if (t.id === "modal") {
      send({ type: "dismiss", target: "backdrop" });
      return;
    }

    // The details button sits inside the card, so one click is one select.
    var card = t.closest("[data-select]");
    if (card) {
      send({ type: "select", name: card.getAttribute("data-select") });
    }
  });

  if (live && "WebSocket" in window) {
    var scheme = location.protocol === "https:" ? "wss:" : "ws:";
    socket = new WebSocket(scheme + "//" + location.host + "/ws" + location.search);
    socket.onopen = function () {
      var queued = pending;
      pending = [];
      queued.forEach(function (ev) { socket.send(JSON.stringify(ev)); });
    };
    socket.onmessage = function (msg) {
      apply(JSON.parse(msg.data));
    };
    socket.onclose = function () {
      socket = null;
      var queued = pending;
      pending = [];
      queued.forEach(function (ev) { apply(local(ev)); });
    };
  }
})();
`
