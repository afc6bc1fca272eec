package controller

import (
	"fmt"
	"io"
	"sync"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindPrompt  Kind = "prompt"
	KindFailure Kind = "failure"
)

// Notification is a short user-facing message emitted on a transition.
type Notification struct {
	Kind        Kind
	Title       string
	Description string
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// WriterNotifier prints notifications as single lines to W.
type WriterNotifier struct {
	W io.Writer
}

func (w WriterNotifier) Notify(n Notification) {
	marker := "*"
	switch n.Kind {
	case KindFailure:
		marker = "x"
	case KindPrompt:
		marker = "!"
	}
	fmt.Fprintf(w.W, "[%s] %s: %s\n", marker, n.Title, n.Description)
}

// Recorder keeps every notification; used by tests and the interactive loop.
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.list = append(r.list, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.list...)
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}
