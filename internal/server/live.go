package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/pizzeria/internal/render"
	"github.com/ziadkadry99/pizzeria/internal/session"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleLive runs one Session per connection. The reader decodes client
// events into the session loop, which is the only place state changes;
// a single writer sends every instruction batch back.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sess := session.New(s.renderer, session.Options{
		Filter:          render.Filter(r.URL.Query().Get("filter")),
		NotificationTTL: s.cfg.NotificationTTL,
		Clock:           s.cfg.Clock,
	})

	in := make(chan session.Event)
	out := make(chan []session.Instruction, 8)
	rejected := make(chan []session.Instruction, 8)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer cancel()
		if err := sess.Run(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("server: session %s: %v", sess.ID, err)
		}
	}()
	go func() {
		defer wg.Done()
		writeLoop(ctx, conn, out, rejected)
	}()

read:
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			break
		}

		ev, err := session.DecodeEvent(msg)
		if err != nil {
			select {
			case rejected <- []session.Instruction{{Op: session.OpError, Message: err.Error()}}:
			case <-ctx.Done():
				break read
			}
			continue
		}

		select {
		case in <- ev:
		case <-ctx.Done():
			break read
		}
	}

	close(in)
	cancel()
	wg.Wait()
}

// writeLoop is the only goroutine writing to conn. It closes the connection
// when the session ends so a blocked reader returns.
func writeLoop(ctx context.Context, conn *websocket.Conn, out, rejected <-chan []session.Instruction) {
	defer conn.Close()
	for {
		var batch []session.Instruction
		select {
		case <-ctx.Done():
			return
		case batch = <-out:
		case batch = <-rejected:
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(batch); err != nil {
			log.Printf("server: websocket write: %v", err)
			return
		}
	}
}
