package session

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ziadkadry99/pizzeria/internal/render"
)

// Event is a discrete interaction dispatched to a Session.
type Event interface {
	eventType() string
}

// FilterSelected is a click on a filter control.
type FilterSelected struct {
	Filter render.Filter
}

// NavSelected is a click on a top-level navigation link.
type NavSelected struct {
	Link string
}

// ItemSelected is a click on a pizza card.
type ItemSelected struct {
	Name string
}

// ModalDismissed is a click on the modal close control or its backdrop.
type ModalDismissed struct {
	Target DismissTarget
}

// ActionConfirmed is a click on the modal's add-to-cart control.
type ActionConfirmed struct {
	Name  string
	Price decimal.Decimal
}

// NotificationExpired is raised by a notification's own timer.
type NotificationExpired struct {
	ID string
}

func (FilterSelected) eventType() string      { return "filter" }
func (NavSelected) eventType() string         { return "nav" }
func (ItemSelected) eventType() string        { return "select" }
func (ModalDismissed) eventType() string      { return "dismiss" }
func (ActionConfirmed) eventType() string     { return "confirm" }
func (NotificationExpired) eventType() string { return "expired" }

// wireEvent is the JSON shape the page script sends.
type wireEvent struct {
	Type   string          `json:"type"`
	Filter string          `json:"filter,omitempty"`
	Link   string          `json:"link,omitempty"`
	Name   string          `json:"name,omitempty"`
	Target string          `json:"target,omitempty"`
	Price  decimal.Decimal `json:"price,omitempty"`
}

// DecodeEvent parses a client message. Timer events cannot be sent by
// clients.
func DecodeEvent(data []byte) (Event, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}

	switch w.Type {
	case "filter":
		return FilterSelected{Filter: render.Filter(w.Filter)}, nil
	case "nav":
		return NavSelected{Link: w.Link}, nil
	case "select":
		if w.Name == "" {
			return nil, fmt.Errorf("select event: name is required")
		}
		return ItemSelected{Name: w.Name}, nil
	case "dismiss":
		return ModalDismissed{Target: DismissTarget(w.Target)}, nil
	case "confirm":
		if w.Name == "" {
			return nil, fmt.Errorf("confirm event: name is required")
		}
		return ActionConfirmed{Name: w.Name, Price: w.Price}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", w.Type)
	}
}
