package session

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
	"github.com/ziadkadry99/pizzeria/internal/render"
)

// DismissTarget is where a dismissal interaction landed.
type DismissTarget string

const (
	// TargetClose is the modal's close control.
	TargetClose DismissTarget = "close"
	// TargetBackdrop is the overlay around the modal content.
	TargetBackdrop DismissTarget = "backdrop"
	// TargetContent is anything inside the modal content; it never dismisses.
	TargetContent DismissTarget = "content"
)

// ModalController is the detail view state machine: closed, or open on one
// entry.
type ModalController struct {
	renderer *render.Renderer
	notifier *Notifier
	open     bool
	entry    catalog.MenuEntry
	view     render.ModalView
}

// NewModalController creates a closed modal. Confirmed actions are reported
// to notifier.
func NewModalController(r *render.Renderer, notifier *Notifier) *ModalController {
	return &ModalController{renderer: r, notifier: notifier}
}

// IsOpen reports whether an entry is displayed.
func (m *ModalController) IsOpen() bool { return m.open }

// Entry returns the displayed entry, if any.
func (m *ModalController) Entry() (catalog.MenuEntry, bool) {
	return m.entry, m.open
}

// View returns the displayed detail view, if any.
func (m *ModalController) View() (render.ModalView, bool) {
	return m.view, m.open
}

// Select opens the modal on the named entry, replacing whatever was shown.
// An unknown name leaves the state untouched.
func (m *ModalController) Select(name string) (render.ModalView, error) {
	e, ok := m.renderer.Catalog().Lookup(name)
	if !ok {
		return render.ModalView{}, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}
	m.entry = e
	m.view = m.renderer.Modal(e)
	m.open = true
	return m.view, nil
}

// Dismiss closes the modal if target is the close control or the backdrop.
// It reports whether the modal transitioned from open to closed.
func (m *ModalController) Dismiss(target DismissTarget) bool {
	if target != TargetClose && target != TargetBackdrop {
		return false
	}
	if !m.open {
		return false
	}
	m.open = false
	m.entry = catalog.MenuEntry{}
	m.view = render.ModalView{}
	return true
}

// Confirm handles the add-to-cart action for the displayed entry: the modal
// closes and a notification naming the item is raised. The action must name
// the open entry; a zero price is accepted, any other price must match the
// catalog. On error the modal stays open.
func (m *ModalController) Confirm(name string, price decimal.Decimal) (*Notification, error) {
	if !m.open {
		return nil, ErrModalClosed
	}
	if name != m.entry.Name {
		return nil, fmt.Errorf("%w: %q is not the open entry", ErrUnknownEntry, name)
	}
	if !price.IsZero() && !price.Equal(m.entry.Price) {
		return nil, fmt.Errorf("%w: %s", ErrPriceMismatch, price)
	}
	entry := m.entry
	m.Dismiss(TargetClose)
	return m.notifier.Notify(entry.Name), nil
}
