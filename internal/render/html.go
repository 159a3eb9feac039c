package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// Control is a button or link in a mutually exclusive group.
type Control struct {
	Token  string `json:"token"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// NotificationView is a transient add-to-cart acknowledgment.
type NotificationView struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Fragment is a pre-rendered region kept in the page for script-only use.
type Fragment struct {
	Kind string
	Key  string
	HTML template.HTML
}

// Page holds everything the full menu page template needs.
type Page struct {
	Title     string
	Tagline   string
	Intro     template.HTML
	Nav       []Control
	Filters   []Control
	Menu      MenuView
	Beverages []BeverageSectionView
	// Live makes the client shim open a session socket instead of
	// running purely static.
	Live bool
	// Fragments are embedded as <template> elements so a static copy of
	// the page can switch filters and open the modal without a server.
	Fragments             []Fragment
	NotificationTTLMillis int64
	BasePath              string
}

var templates = template.Must(template.New("page").Parse(pageTemplate))

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// MenuHTML renders the pizza grid contents. An empty view yields "".
func MenuHTML(v MenuView) (string, error) { return execute("menu", v) }

// BeveragesHTML renders the rows of one beverage section.
func BeveragesHTML(v BeverageSectionView) (string, error) { return execute("beverages", v) }

// ModalHTML renders the modal content for the selected pizza.
func ModalHTML(v ModalView) (string, error) { return execute("modal", v) }

// NotificationHTML renders a single notification.
func NotificationHTML(v NotificationView) (string, error) { return execute("notification", v) }

// WritePage renders the full document to w.
func WritePage(w io.Writer, p Page) error {
	if err := templates.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="it">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-live="{{.Live}}" data-ttl="{{.NotificationTTLMillis}}">
  <header class="header">
    <div class="logo">{{.Title}}</div>
    <nav class="nav">
      {{range .Nav}}<a href="#{{.Token}}" class="nav-link{{if .Active}} active{{end}}" data-nav="{{.Token}}">{{.Label}}</a>
      {{end}}
    </nav>
  </header>

  <section class="hero" id="home">
    <h1>{{.Title}}</h1>
    {{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
    {{if .Intro}}<div class="intro">{{.Intro}}</div>{{end}}
  </section>

  <section class="menu-section" id="pizze">
    <h2 class="section-title">Le nostre pizze</h2>
    <div class="filters">
      {{range .Filters}}<button class="filter-btn{{if .Active}} active{{end}}" data-filter="{{.Token}}">{{.Label}}</button>
      {{end}}
    </div>
    <div class="menu-grid" id="pizze-grid">{{template "menu" .Menu}}</div>
  </section>

  <section class="bevande-section" id="bevande">
    <h2 class="section-title">Bevande</h2>
    <div class="bevande-grid">
      {{range .Beverages}}<div class="bevande-column">
        <h3>{{.Title}}</h3>
        <div class="bevande-list" id="{{.Region}}">{{template "beverages" .}}</div>
      </div>
      {{end}}
    </div>
  </section>

  <section class="contatti-section" id="contatti">
    <h2 class="section-title">Contatti</h2>
  </section>

  <div id="modal" class="modal" data-backdrop="true">
    <div class="modal-content" id="modal-content"></div>
  </div>
  <div id="notifications"></div>

  {{range .Fragments}}<template data-kind="{{.Kind}}" data-key="{{.Key}}">{{.HTML}}</template>
  {{end}}
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
{{define "menu"}}{{range .Cards}}<div class="menu-item" data-select="{{.Name}}">
  <div class="menu-item-image">{{.Emoji}}</div>
  <div class="menu-item-content">
    <div class="menu-item-category">{{.CategoryLabel}}</div>
    <h3 class="menu-item-name">{{.Name}}</h3>
    <p class="menu-item-ingredients">{{.Ingredients}}</p>
    <div class="menu-item-footer">
      <span class="menu-item-price">{{.Price}}</span>
      <button class="menu-item-btn">Dettagli</button>
    </div>
  </div>
</div>
{{end}}{{end}}
{{define "beverages"}}{{range .Rows}}<div class="bevanda-item">
  <span class="bevanda-name">{{.Name}}</span>
  <span class="bevanda-price">{{.Price}}</span>
</div>
{{end}}{{end}}
{{define "modal"}}<span class="close" data-dismiss="close">&times;</span>
<h2 id="modal-title">{{.Title}}</h2>
<div id="modal-image" style="font-size: {{.IconSize}}px">{{.Icon}}</div>
<div id="modal-details">
  <div>
    <p><strong>Ingredienti:</strong></p>
    <p>{{.Ingredients}}</p>
  </div>
  <div class="modal-footer">
    <span class="modal-price">{{.Price}}</span>
    <button class="modal-action" data-confirm="{{.Action.Name}}" data-price="{{.Action.Price}}">Aggiungi al carrello</button>
  </div>
</div>{{end}}
{{define "notification"}}<div class="notification" id="notification-{{.ID}}">{{.Message}}</div>{{end}}
`
