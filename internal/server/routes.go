package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/pizzeria/internal/render"
	"github.com/ziadkadry99/pizzeria/internal/session"
	"github.com/ziadkadry99/pizzeria/internal/site"
)

func (s *Server) registerRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/style.css", serveAsset("text/css; charset=utf-8", site.Stylesheet))
	r.Get("/script.js", serveAsset("application/javascript; charset=utf-8", site.Script))

	r.Get("/fragments/menu", s.handleMenuFragment)
	r.Get("/fragments/modal/{name}", s.handleModalFragment)

	r.Get("/api/menu", s.handleMenu)
	r.Get("/api/menu/{name}", s.handleEntry)
	r.Get("/api/beverages", s.handleBeverages)
}

// filterParam reads ?filter=, defaulting to "all", and rejects filters the
// catalog cannot satisfy.
func (s *Server) filterParam(r *http.Request) (render.Filter, error) {
	f := render.Filter(r.URL.Query().Get("filter"))
	if f == "" {
		return render.FilterAll, nil
	}
	if !session.ValidFilter(s.renderer, f) {
		return "", session.ErrUnknownFilter
	}
	return f, nil
}

// lookupParam resolves the {name} path parameter to a catalog entry.
func (s *Server) lookupParam(r *http.Request) (render.ModalView, bool) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	entry, ok := s.renderer.Catalog().Lookup(name)
	if !ok {
		return render.ModalView{}, false
	}
	return s.renderer.Modal(entry), true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	f, err := s.filterParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := site.NewPage(s.renderer, s.cfg.Meta, site.PageOptions{
		Filter:          f,
		Live:            true,
		NotificationTTL: s.cfg.NotificationTTL,
		BasePath:        "/",
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := render.WritePage(&buf, page); err != nil {
		log.Printf("server: %v", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (s *Server) handleMenuFragment(w http.ResponseWriter, r *http.Request) {
	f, err := s.filterParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	html, err := render.MenuHTML(s.renderer.Menu(f))
	if err != nil {
		log.Printf("server: %v", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, []byte(html))
}

func (s *Server) handleModalFragment(w http.ResponseWriter, r *http.Request) {
	view, ok := s.lookupParam(r)
	if !ok {
		http.Error(w, session.ErrUnknownEntry.Error(), http.StatusNotFound)
		return
	}
	html, err := render.ModalHTML(view)
	if err != nil {
		log.Printf("server: %v", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, []byte(html))
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	f, err := s.filterParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.renderer.Menu(f))
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	view, ok := s.lookupParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": session.ErrUnknownEntry.Error()})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleBeverages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.renderer.Beverages())
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
