package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
	"github.com/ziadkadry99/pizzeria/internal/render"
	"github.com/ziadkadry99/pizzeria/internal/session"
	"github.com/ziadkadry99/pizzeria/internal/site"
)

func newTestServer(cfg Config) *Server {
	if cfg.Meta.Title == "" {
		cfg.Meta = site.Meta{Title: "Pizzeria Test"}
	}
	return New(cfg, render.New(catalog.Default()))
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(Config{Port: 0})

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(Config{})

	w := get(t, srv, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{"<title>Pizzeria Test</title>", `data-live="true"`, `src="/script.js"`, "Margherita"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if w := get(t, srv, "/?filter=vegan"); w.Code != http.StatusBadRequest {
		t.Errorf("unknown filter: expected 400, got %d", w.Code)
	}
}

func TestAssets(t *testing.T) {
	srv := newTestServer(Config{})

	css := get(t, srv, "/style.css")
	if !strings.HasPrefix(css.Header().Get("Content-Type"), "text/css") || css.Body.String() != site.Stylesheet {
		t.Error("style.css not served")
	}
	js := get(t, srv, "/script.js")
	if !strings.HasPrefix(js.Header().Get("Content-Type"), "application/javascript") || js.Body.String() != site.Script {
		t.Error("script.js not served")
	}
}

func TestMenuFragment(t *testing.T) {
	srv := newTestServer(Config{})

	tests := []struct {
		path  string
		code  int
		cards int
	}{
		{"/fragments/menu", http.StatusOK, 12},
		{"/fragments/menu?filter=all", http.StatusOK, 12},
		{"/fragments/menu?filter=classic", http.StatusOK, 4},
		{"/fragments/menu?filter=special", http.StatusOK, 8},
		{"/fragments/menu?filter=vegan", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, srv, tt.path)
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
			if tt.code != http.StatusOK {
				return
			}
			if got := strings.Count(w.Body.String(), `class="menu-item"`); got != tt.cards {
				t.Errorf("cards = %d, want %d", got, tt.cards)
			}
		})
	}
}

func TestModalFragment(t *testing.T) {
	srv := newTestServer(Config{})

	w := get(t, srv, "/fragments/modal/Quattro%20Formaggi")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Quattro Formaggi") || !strings.Contains(body, "€ 9.50") {
		t.Errorf("unexpected modal: %s", body)
	}

	if w := get(t, srv, "/fragments/modal/Hawaii"); w.Code != http.StatusNotFound {
		t.Errorf("unknown pizza: expected 404, got %d", w.Code)
	}
}

func TestMenuAPI(t *testing.T) {
	srv := newTestServer(Config{})

	w := get(t, srv, "/api/menu?filter=special")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view render.MenuView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if view.Filter != "special" || len(view.Cards) != 8 {
		t.Errorf("view = %s with %d cards", view.Filter, len(view.Cards))
	}
	for _, c := range view.Cards {
		if c.Category != "special" {
			t.Errorf("card %s has category %s", c.Name, c.Category)
		}
	}

	w = get(t, srv, "/api/menu?filter=nope")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)
	if !strings.Contains(body["error"], "unknown filter") {
		t.Errorf("error = %q", body["error"])
	}
}

func TestEntryAPI(t *testing.T) {
	srv := newTestServer(Config{})

	w := get(t, srv, "/api/menu/Diavola")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view render.ModalView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatal(err)
	}
	if view.Title != "Diavola" || view.Price != "€ 8.50" || view.IconSize != 120 {
		t.Errorf("view = %+v", view)
	}

	if w := get(t, srv, "/api/menu/Nessuna"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestBeveragesAPI(t *testing.T) {
	srv := newTestServer(Config{})

	w := get(t, srv, "/api/beverages")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var sections []render.BeverageSectionView
	if err := json.NewDecoder(w.Body).Decode(&sections); err != nil {
		t.Fatal(err)
	}
	want := []string{"Bibite", "Birre", "Vini"}
	if len(sections) != len(want) {
		t.Fatalf("sections = %d, want %d", len(sections), len(want))
	}
	for i, s := range sections {
		if s.Title != want[i] {
			t.Errorf("section %d = %q, want %q", i, s.Title, want[i])
		}
	}
}

func dialLive(t *testing.T, srv *Server, query string) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	return conn
}

func readBatch(t *testing.T, conn *websocket.Conn) []session.Instruction {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var batch []session.Instruction
	if err := conn.ReadJSON(&batch); err != nil {
		t.Fatalf("read: %v", err)
	}
	return batch
}

func TestLiveSession(t *testing.T) {
	srv := newTestServer(Config{NotificationTTL: 50 * time.Millisecond})
	conn := dialLive(t, srv, "")

	initial := readBatch(t, conn)
	if len(initial) == 0 || initial[0].Region != session.RegionMenu {
		t.Fatalf("initial batch = %+v", initial)
	}
	if got := strings.Count(initial[0].HTML, `class="menu-item"`); got != 12 {
		t.Errorf("initial cards = %d, want 12", got)
	}

	conn.WriteJSON(map[string]string{"type": "filter", "filter": "classic"})
	batch := readBatch(t, conn)
	if len(batch) != 2 || batch[0].Op != session.OpActivate || batch[0].Token != "classic" {
		t.Fatalf("filter batch = %+v", batch)
	}
	if got := strings.Count(batch[1].HTML, `class="menu-item"`); got != 4 {
		t.Errorf("classic cards = %d, want 4", got)
	}

	conn.WriteJSON(map[string]string{"type": "select", "name": "Margherita"})
	batch = readBatch(t, conn)
	if len(batch) != 2 || batch[1].Op != session.OpShow || !strings.Contains(batch[0].HTML, "Margherita") {
		t.Fatalf("select batch = %+v", batch)
	}

	conn.WriteJSON(map[string]string{"type": "confirm", "name": "Margherita", "price": "6.50"})
	batch = readBatch(t, conn)
	if len(batch) != 3 || batch[2].Op != session.OpAppend {
		t.Fatalf("confirm batch = %+v", batch)
	}
	if !strings.Contains(batch[2].HTML, "✓ Margherita aggiunto al carrello!") {
		t.Errorf("notification = %q", batch[2].HTML)
	}

	// The notification removes itself after its ttl.
	batch = readBatch(t, conn)
	if len(batch) != 1 || batch[0].Op != session.OpRemove || !strings.HasPrefix(batch[0].Region, "notification-") {
		t.Fatalf("expiry batch = %+v", batch)
	}
}

func TestLiveSessionInitialFilter(t *testing.T) {
	srv := newTestServer(Config{})
	conn := dialLive(t, srv, "?filter=special")

	initial := readBatch(t, conn)
	if got := strings.Count(initial[0].HTML, `class="menu-item"`); got != 8 {
		t.Errorf("initial cards = %d, want 8", got)
	}
	if initial[1].Token != "special" {
		t.Errorf("active filter = %q, want special", initial[1].Token)
	}
}

func TestLiveSessionRejectsBadEvents(t *testing.T) {
	srv := newTestServer(Config{})
	conn := dialLive(t, srv, "")
	readBatch(t, conn)

	conn.WriteMessage(websocket.TextMessage, []byte("not json"))
	batch := readBatch(t, conn)
	if len(batch) != 1 || batch[0].Op != session.OpError {
		t.Fatalf("batch = %+v", batch)
	}

	conn.WriteJSON(map[string]string{"type": "filter", "filter": "vegan"})
	batch = readBatch(t, conn)
	if len(batch) != 1 || batch[0].Op != session.OpError || !strings.Contains(batch[0].Message, "unknown filter") {
		t.Fatalf("batch = %+v", batch)
	}

	// Confirm with the modal closed is reported, not acted on.
	conn.WriteJSON(map[string]string{"type": "confirm", "name": "Margherita", "price": "6.50"})
	batch = readBatch(t, conn)
	if len(batch) != 1 || batch[0].Op != session.OpError {
		t.Fatalf("batch = %+v", batch)
	}
}
