// Package toast is the notification sink the site's forms report through.
package toast

import (
	"log"
	"sync"
	"time"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

type Toast struct {
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}

// Notifier receives user-facing notifications (title + one sentence).
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(title, message string, severity Severity)

func (f NotifierFunc) Notify(title, message string, severity Severity) {
	f(title, message, severity)
}

/* ===================== Buffer ===================== */

// Buffer keeps toasts until the next response drains them. Oldest are
// dropped once limit is reached.
type Buffer struct {
	mu     sync.Mutex
	toasts []Toast
	limit  int
	now    func() time.Time
}

func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = 20
	}
	return &Buffer{limit: limit, now: time.Now}
}

func (b *Buffer) Notify(title, message string, severity Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.toasts) >= b.limit {
		b.toasts = b.toasts[1:]
	}
	b.toasts = append(b.toasts, Toast{
		Title:    title,
		Message:  message,
		Severity: severity,
		At:       b.now(),
	})
}

// Drain returns the pending toasts (never nil) and empties the buffer.
func (b *Buffer) Drain() []Toast {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.toasts
	b.toasts = nil
	if out == nil {
		out = []Toast{}
	}
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.toasts)
}

/* ===================== Log + fan-out ===================== */

// LogNotifier mirrors toasts into the process log.
type LogNotifier struct {
	Scope string
}

func (l LogNotifier) Notify(title, message string, severity Severity) {
	tag := "[TOAST]"
	if severity == SeverityDestructive {
		tag = "[TOAST][WARN]"
	}
	if l.Scope != "" {
		log.Printf("%s %s | %s: %s", tag, l.Scope, title, message)
		return
	}
	log.Printf("%s %s: %s", tag, title, message)
}

// Multi fans a toast out to every non-nil notifier.
type Multi []Notifier

func (m Multi) Notify(title, message string, severity Severity) {
	for _, n := range m {
		if n != nil {
			n.Notify(title, message, severity)
		}
	}
}
