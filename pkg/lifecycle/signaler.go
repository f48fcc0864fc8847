package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

// Stage is a readiness milestone.
type Stage int

const (
	PartialsLoaded Stage = iota + 1
	ContentReady
	LanguageApplied
)

var stages = []Stage{PartialsLoaded, ContentReady, LanguageApplied}

// Event names carried by the DOM for each stage.
const (
	EventPartialsLoaded  = "partials:loaded"
	EventContentReady    = dom.EventContentLoaded
	EventLanguageApplied = "i18n:applied"
)

// String returns the DOM event name of the stage.
func (s Stage) String() string {
	switch s {
	case PartialsLoaded:
		return EventPartialsLoaded
	case ContentReady:
		return EventContentReady
	case LanguageApplied:
		return EventLanguageApplied
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Handler runs once its stage is reached.
type Handler func(ctx context.Context)

// Signaler tracks which stages have been reached.
type Signaler struct {
	logger *slog.Logger

	mu       sync.Mutex
	reported map[Stage]bool
	reached  Stage
	done     map[Stage]chan struct{}
	handlers map[Stage][]Handler
}

// Option configures a Signaler.
type Option func(*Signaler)

// WithLogger sets the logger used for failing handlers.
func WithLogger(l *slog.Logger) Option {
	return func(s *Signaler) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Signaler with no stage reached.
func New(opts ...Option) *Signaler {
	s := &Signaler{
		logger:   logger.Discard(),
		reported: make(map[Stage]bool),
		done:     make(map[Stage]chan struct{}),
		handlers: make(map[Stage][]Handler),
	}
	for _, st := range stages {
		s.done[st] = make(chan struct{})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signal reports stage. Duplicate reports are ignored. Handlers of every
// stage that becomes reachable run on the calling goroutine, in stage order.
func (s *Signaler) Signal(ctx context.Context, stage Stage) {
	if _, ok := s.done[stage]; !ok {
		return
	}

	s.mu.Lock()
	if s.reported[stage] {
		s.mu.Unlock()
		return
	}
	s.reported[stage] = true

	type batch struct {
		stage    Stage
		handlers []Handler
	}
	var ready []batch
	for _, st := range stages {
		if st <= s.reached {
			continue
		}
		if !s.reported[st] {
			break
		}
		s.reached = st
		close(s.done[st])
		ready = append(ready, batch{stage: st, handlers: s.handlers[st]})
		s.handlers[st] = nil
	}
	s.mu.Unlock()

	for _, b := range ready {
		s.logger.DebugContext(ctx, "lifecycle stage reached", logger.Event(b.stage.String()))
		for _, h := range b.handlers {
			s.run(ctx, b.stage, h)
		}
	}
}

// On runs h when stage is reached, or right away if it already was.
func (s *Signaler) On(ctx context.Context, stage Stage, h Handler) {
	if h == nil {
		return
	}
	s.mu.Lock()
	if stage <= s.reached {
		s.mu.Unlock()
		s.run(ctx, stage, h)
		return
	}
	s.handlers[stage] = append(s.handlers[stage], h)
	s.mu.Unlock()
}

// Reached reports whether stage has been reached.
func (s *Signaler) Reached(stage Stage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stage <= s.reached && stage > 0
}

// Done returns a channel closed once stage is reached. Unknown stages
// return a nil channel.
func (s *Signaler) Done(stage Stage) <-chan struct{} {
	return s.done[stage]
}

// Watch signals stages from the matching DOM events on doc and returns a
// function that stops watching.
func (s *Signaler) Watch(doc *dom.Document) (stop func()) {
	removers := make([]func(), 0, len(stages))
	for _, st := range stages {
		removers = append(removers, doc.AddEventListener(st.String(), func(ctx context.Context, _ *dom.Event) {
			s.Signal(ctx, st)
		}))
	}
	return func() {
		for _, r := range removers {
			r()
		}
	}
}

func (s *Signaler) run(ctx context.Context, stage Stage, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "lifecycle handler failed",
				logger.Event(stage.String()),
				logger.Error(fmt.Errorf("panic: %v", r)),
			)
		}
	}()
	h(ctx)
}
