package dom

import (
	"context"
	"fmt"
	"slices"

	"github.com/PuerkitoBio/goquery"

	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

// Well-known event names.
const (
	EventClick = "click"
	// EventContentLoaded mirrors the browser's DOMContentLoaded.
	EventContentLoaded = "DOMContentLoaded"
)

// Event is a named notification dispatched on a Document.
type Event struct {
	Type string
	// Target is the element the event originated from; empty for
	// document-level notifications.
	Target *goquery.Selection
	Detail any

	defaultPrevented bool
}

// PreventDefault marks the event as handled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Listener handles an event.
type Listener func(ctx context.Context, ev *Event)

type listenerEntry struct {
	id uint64
	fn Listener
}

// AddEventListener registers fn for events of the given type and returns a
// function that removes it.
func (d *Document) AddEventListener(eventType string, fn Listener) (remove func()) {
	if fn == nil {
		return func() {}
	}

	d.mu.Lock()
	d.nextID++
	entry := &listenerEntry{id: d.nextID, fn: fn}
	d.listeners[eventType] = append(d.listeners[eventType], entry)
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.listeners[eventType] = slices.DeleteFunc(d.listeners[eventType], func(l *listenerEntry) bool {
			return l.id == entry.id
		})
	}
}

// Dispatch invokes every listener registered for ev.Type in registration
// order. A panicking listener is logged and does not stop the others.
func (d *Document) Dispatch(ctx context.Context, ev *Event) {
	if ev == nil {
		return
	}
	if ev.Target == nil {
		ev.Target = d.doc.Selection.Slice(0, 0)
	}

	d.mu.Lock()
	snapshot := slices.Clone(d.listeners[ev.Type])
	d.mu.Unlock()

	for _, l := range snapshot {
		d.invoke(ctx, l.fn, ev)
	}
}

// Emit dispatches a document-level event carrying detail.
func (d *Document) Emit(ctx context.Context, eventType string, detail any) {
	d.Dispatch(ctx, &Event{Type: eventType, Detail: detail})
}

// Click dispatches a click originating at the first element of target and
// reports whether a listener prevented the default action.
func (d *Document) Click(ctx context.Context, target *goquery.Selection) bool {
	if target == nil || target.Length() == 0 {
		return false
	}
	ev := &Event{Type: EventClick, Target: target.First()}
	d.Dispatch(ctx, ev)
	return ev.DefaultPrevented()
}

func (d *Document) invoke(ctx context.Context, fn Listener, ev *Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "event listener failed",
				logger.Event(ev.Type),
				logger.Error(fmt.Errorf("panic: %v", r)),
			)
		}
	}()
	fn(ctx, ev)
}
