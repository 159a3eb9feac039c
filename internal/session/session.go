// Package session holds the per-page menu state: the active filter, the
// detail modal and the add-to-cart notifications. A Session handles one
// event at a time and answers each with render instructions.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/pizzeria/internal/render"
)

// Page regions addressed by instructions.
const (
	RegionMenu          = "pizze-grid"
	RegionFilters       = "filters"
	RegionNav           = "nav"
	RegionModal         = "modal"
	RegionModalContent  = "modal-content"
	RegionNotifications = "notifications"
)

// Op is what the page should do with a region.
type Op string

const (
	OpReplace  Op = "replace"
	OpShow     Op = "show"
	OpHide     Op = "hide"
	OpAppend   Op = "append"
	OpRemove   Op = "remove"
	OpActivate Op = "activate"
	OpError    Op = "error"
)

// Instruction is one render step for the page.
type Instruction struct {
	Op      Op     `json:"op"`
	Region  string `json:"region,omitempty"`
	HTML    string `json:"html,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// NotificationRegion returns the region id of a notification element.
func NotificationRegion(id string) string { return "notification-" + id }

// Options configures a Session.
type Options struct {
	// Filter is the initial filter. Empty or unknown values start at "all".
	Filter          render.Filter
	NotificationTTL time.Duration
	Clock           Clock
}

// Session is the state of one open menu page.
type Session struct {
	ID       string
	renderer *render.Renderer
	filter   *FilterController
	nav      *Group
	modal    *ModalController
	notifier *Notifier

	timers    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a session over r with the filter at opts.Filter (default
// "all"), the modal closed and no notifications.
func New(r *render.Renderer, opts Options) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		renderer: r,
		filter:   NewFilterController(r),
		nav:      NewNavGroup(),
		timers:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
	if opts.Filter != "" {
		_, _ = s.filter.Select(opts.Filter)
	}
	s.notifier = NewNotifier(opts.NotificationTTL, opts.Clock, s.postExpiry)
	s.modal = NewModalController(r, s.notifier)
	return s
}

// postExpiry runs on a timer goroutine and hands the expiry to the loop.
func (s *Session) postExpiry(id string) {
	select {
	case s.timers <- NotificationExpired{ID: id}:
	case <-s.done:
	}
}

// Filter returns the filter controller.
func (s *Session) Filter() *FilterController { return s.filter }

// Nav returns the navigation group.
func (s *Session) Nav() *Group { return s.nav }

// Modal returns the modal controller.
func (s *Session) Modal() *ModalController { return s.modal }

// Notifier returns the notification stub.
func (s *Session) Notifier() *Notifier { return s.notifier }

// Initial returns the instructions for first load: the full menu, every
// beverage list and the initial active controls.
func (s *Session) Initial() ([]Instruction, error) {
	menu, err := render.MenuHTML(s.filter.View())
	if err != nil {
		return nil, err
	}
	out := []Instruction{
		{Op: OpReplace, Region: RegionMenu, HTML: menu},
		{Op: OpActivate, Region: RegionFilters, Token: string(s.filter.Current())},
		{Op: OpActivate, Region: RegionNav, Token: s.nav.Active()},
	}
	for _, section := range s.renderer.Beverages() {
		html, err := render.BeveragesHTML(section)
		if err != nil {
			return nil, err
		}
		out = append(out, Instruction{Op: OpReplace, Region: section.Region, HTML: html})
	}
	return out, nil
}

// Dispatch handles one event to completion. On error the session state is
// unchanged.
func (s *Session) Dispatch(ev Event) ([]Instruction, error) {
	switch e := ev.(type) {
	case FilterSelected:
		view, err := s.filter.Select(e.Filter)
		if err != nil {
			return nil, err
		}
		html, err := render.MenuHTML(view)
		if err != nil {
			return nil, err
		}
		return []Instruction{
			{Op: OpActivate, Region: RegionFilters, Token: string(e.Filter)},
			{Op: OpReplace, Region: RegionMenu, HTML: html},
		}, nil

	case NavSelected:
		if !s.nav.Activate(e.Link) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLink, e.Link)
		}
		return []Instruction{{Op: OpActivate, Region: RegionNav, Token: e.Link}}, nil

	case ItemSelected:
		view, err := s.modal.Select(e.Name)
		if err != nil {
			return nil, err
		}
		html, err := render.ModalHTML(view)
		if err != nil {
			return nil, err
		}
		return []Instruction{
			{Op: OpReplace, Region: RegionModalContent, HTML: html},
			{Op: OpShow, Region: RegionModal},
		}, nil

	case ModalDismissed:
		if !s.modal.Dismiss(e.Target) {
			return nil, nil
		}
		return closeModal(), nil

	case ActionConfirmed:
		note, err := s.modal.Confirm(e.Name, e.Price)
		if err != nil {
			return nil, err
		}
		html, err := render.NotificationHTML(note.View())
		if err != nil {
			return nil, err
		}
		return append(closeModal(),
			Instruction{Op: OpAppend, Region: RegionNotifications, HTML: html},
		), nil

	case NotificationExpired:
		if !s.notifier.Remove(e.ID) {
			return nil, nil
		}
		return []Instruction{{Op: OpRemove, Region: NotificationRegion(e.ID)}}, nil

	default:
		return nil, fmt.Errorf("unsupported event %T", ev)
	}
}

func closeModal() []Instruction {
	return []Instruction{
		{Op: OpHide, Region: RegionModal},
		{Op: OpReplace, Region: RegionModalContent, HTML: ""},
	}
}

// Run serializes client events from in and timer expiries onto a single
// goroutine, sending each batch of instructions to out. Errors are reported
// to the page as OpError instructions and do not stop the loop. Run returns
// when ctx is done or in is closed.
func (s *Session) Run(ctx context.Context, in <-chan Event, out chan<- []Instruction) error {
	defer s.Close()

	initial, err := s.Initial()
	if err != nil {
		return fmt.Errorf("initial render: %w", err)
	}
	if !s.send(ctx, out, initial) {
		return ctx.Err()
	}

	for {
		var ev Event
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-in:
			if !ok {
				return nil
			}
			ev = e
		case e := <-s.timers:
			ev = e
		}

		batch, err := s.Dispatch(ev)
		if err != nil {
			batch = []Instruction{{Op: OpError, Message: err.Error()}}
		}
		if len(batch) == 0 {
			continue
		}
		if !s.send(ctx, out, batch) {
			return ctx.Err()
		}
	}
}

func (s *Session) send(ctx context.Context, out chan<- []Instruction, batch []Instruction) bool {
	select {
	case out <- batch:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close cancels pending notification timers and releases any timer
// callbacks blocked on the loop.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.notifier.Close()
	})
}
