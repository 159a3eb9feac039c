package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/pizzeria/internal/render"
)

// DefaultNotificationTTL is how long an add-to-cart notification stays up.
const DefaultNotificationTTL = 3 * time.Second

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Notification is one transient acknowledgment. Each carries its own timer,
// so cancelling or removing one never touches another.
type Notification struct {
	ID      string
	Name    string
	Message string
	timer   Timer
}

// View returns the render model of the notification.
func (n *Notification) View() render.NotificationView {
	return render.NotificationView{ID: n.ID, Message: n.Message}
}

// Cancel stops the notification's pending removal. It reports whether the
// timer was still pending.
func (n *Notification) Cancel() bool {
	if n.timer == nil {
		return false
	}
	return n.timer.Stop()
}

// Notifier is the add-to-cart feedback stub. It keeps no cart; it only
// tracks which notifications are currently on screen.
type Notifier struct {
	mu     sync.Mutex
	ttl    time.Duration
	clock  Clock
	expire func(id string)
	active []*Notification
}

// NewNotifier creates a Notifier. When a notification's ttl elapses,
// expire is called with its ID from the timer goroutine; the owner is
// expected to call Remove. A nil expire removes the notification directly.
// A nil clock uses the wall clock.
func NewNotifier(ttl time.Duration, clock Clock, expire func(id string)) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	if clock == nil {
		clock = realClock{}
	}
	n := &Notifier{ttl: ttl, clock: clock, expire: expire}
	if n.expire == nil {
		n.expire = func(id string) { n.Remove(id) }
	}
	return n
}

// Notify shows a notification naming the added item and schedules its
// removal.
func (n *Notifier) Notify(name string) *Notification {
	note := &Notification{
		ID:      uuid.New().String(),
		Name:    name,
		Message: "✓ " + name + " aggiunto al carrello!",
	}
	id := note.ID

	n.mu.Lock()
	defer n.mu.Unlock()
	note.timer = n.clock.AfterFunc(n.ttl, func() { n.expire(id) })
	n.active = append(n.active, note)
	return note
}

// Remove takes the notification off screen. It reports whether it was
// still active.
func (n *Notifier) Remove(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, note := range n.active {
		if note.ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the notifications on screen, oldest first.
func (n *Notifier) Active() []render.NotificationView {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]render.NotificationView, len(n.active))
	for i, note := range n.active {
		out[i] = note.View()
	}
	return out
}

// Close cancels every pending removal.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, note := range n.active {
		note.Cancel()
	}
}
