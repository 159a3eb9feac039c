package session

import (
	"fmt"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
	"github.com/ziadkadry99/pizzeria/internal/render"
)

// Group is a set of controls of which exactly one is active.
type Group struct {
	controls []render.Control
}

// NewGroup creates a group with initial active. If initial is not one of
// the controls, the first control is activated.
func NewGroup(controls []render.Control, initial string) *Group {
	g := &Group{controls: append([]render.Control(nil), controls...)}
	if !g.Activate(initial) && len(g.controls) > 0 {
		g.Activate(g.controls[0].Token)
	}
	return g
}

// Activate deactivates every control and then activates token. It returns
// false, leaving the group unchanged, if no control has that token.
func (g *Group) Activate(token string) bool {
	idx := -1
	for i, c := range g.controls {
		if c.Token == token {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for i := range g.controls {
		g.controls[i].Active = false
	}
	g.controls[idx].Active = true
	return true
}

// Active returns the token of the active control.
func (g *Group) Active() string {
	for _, c := range g.controls {
		if c.Active {
			return c.Token
		}
	}
	return ""
}

// Controls returns a copy of the controls in display order.
func (g *Group) Controls() []render.Control {
	return append([]render.Control(nil), g.controls...)
}

// NavLinks are the top-level page anchors.
var NavLinks = []render.Control{
	{Token: "home", Label: "Home"},
	{Token: "pizze", Label: "Pizze"},
	{Token: "bevande", Label: "Bevande"},
	{Token: "contatti", Label: "Contatti"},
}

// NewNavGroup returns the navigation group with "home" active. It never
// affects the filter or the rendered menu.
func NewNavGroup() *Group {
	return NewGroup(NavLinks, "home")
}

// FilterController owns the active category filter of one page.
type FilterController struct {
	renderer *render.Renderer
	current  render.Filter
	group    *Group
}

// NewFilterController starts with FilterAll, offering one control for
// "all" and one per category present in the catalog.
func NewFilterController(r *render.Renderer) *FilterController {
	controls := []render.Control{{Token: string(render.FilterAll), Label: render.FilterLabel(render.FilterAll)}}
	for _, c := range r.Catalog().Categories() {
		f := render.Filter(c)
		controls = append(controls, render.Control{Token: string(f), Label: render.FilterLabel(f)})
	}
	return &FilterController{
		renderer: r,
		current:  render.FilterAll,
		group:    NewGroup(controls, string(render.FilterAll)),
	}
}

// Current returns the active filter.
func (c *FilterController) Current() render.Filter { return c.current }

// Controls returns the filter buttons with their active flags.
func (c *FilterController) Controls() []render.Control { return c.group.Controls() }

// View renders the menu for the active filter.
func (c *FilterController) View() render.MenuView { return c.renderer.Menu(c.current) }

// Select makes f the active filter and returns the recomputed menu.
func (c *FilterController) Select(f render.Filter) (render.MenuView, error) {
	if !c.group.Activate(string(f)) {
		return render.MenuView{}, fmt.Errorf("%w: %q", ErrUnknownFilter, f)
	}
	c.current = f
	return c.renderer.Menu(f), nil
}

// ValidFilter reports whether f is "all" or a category present in the
// renderer's catalog.
func ValidFilter(r *render.Renderer, f render.Filter) bool {
	return f == render.FilterAll || r.Catalog().HasCategory(catalog.Category(f))
}
