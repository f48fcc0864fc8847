package posts

import (
	"context"
	"strconv"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

// Metrics are the layout measurements of a scrollable container.
type Metrics struct {
	ScrollLeft  float64
	ScrollWidth float64
	ClientWidth float64
	// CardWidth is the width of the first card, zero without cards.
	CardWidth float64
	Gap       float64
}

// Viewport supplies layout for containers identified by id.
type Viewport interface {
	Metrics(id string) Metrics
	ScrollBy(id string, dx float64)
}

// step is one card plus gap, or 80% of the visible width without cards.
func (m Metrics) step() float64 {
	if m.CardWidth > 0 {
		return m.CardWidth + m.Gap
	}
	return 0.8 * m.ClientWidth
}

const scrollEpsilon = 1

func (m Metrics) canPrev() bool { return m.ScrollLeft > scrollEpsilon }

func (m Metrics) canNext() bool {
	return m.ScrollLeft+m.ClientWidth < m.ScrollWidth-scrollEpsilon
}

// BindScroll wires the {id}-prev and {id}-next controls of a container. It
// is a no-op without a viewport, without controls, or when the container is
// already bound, and reports whether it bound anything.
func (b *Board) BindScroll(ctx context.Context, id string) bool {
	if b.viewport == nil {
		return false
	}
	prev := b.page.ByID(id + "-prev")
	next := b.page.ByID(id + "-next")
	if prev.Length() == 0 && next.Length() == 0 {
		return false
	}

	b.mu.Lock()
	if b.scrollBound[id] {
		b.mu.Unlock()
		return false
	}
	b.scrollBound[id] = true
	b.mu.Unlock()

	update := func() {
		m := b.viewport.Metrics(id)
		setDisabled(prev, !m.canPrev())
		setDisabled(next, !m.canNext())
	}

	b.page.AddEventListener(dom.EventClick, func(ctx context.Context, ev *dom.Event) {
		var dir float64
		switch {
		case dom.SameNode(ev.Target.Closest("#"+id+"-prev"), prev):
			dir = -1
		case dom.SameNode(ev.Target.Closest("#"+id+"-next"), next):
			dir = 1
		default:
			return
		}
		ev.PreventDefault()
		b.viewport.ScrollBy(id, dir*b.viewport.Metrics(id).step())
		update()
	})
	b.page.AddEventListener(EventRendered, func(_ context.Context, ev *dom.Event) {
		if d, ok := ev.Detail.(RenderedDetail); ok && d.Container == id {
			update()
		}
	})

	update()
	b.logger.DebugContext(ctx, "scroll navigation bound", logger.Container(id))
	return true
}

func setDisabled(control *goquery.Selection, disabled bool) {
	if control.Length() == 0 {
		return
	}
	if disabled {
		control.SetAttr("disabled", "")
	} else {
		control.RemoveAttr("disabled")
	}
	control.SetAttr("aria-disabled", strconv.FormatBool(disabled))
}

// MemoryViewport is a Viewport with fixed widths per container, for
// rendering without a layout engine and for tests.
type MemoryViewport struct {
	mu      sync.Mutex
	metrics map[string]Metrics
}

// NewMemoryViewport returns an empty viewport.
func NewMemoryViewport() *MemoryViewport {
	return &MemoryViewport{metrics: make(map[string]Metrics)}
}

// Set records the metrics of a container.
func (v *MemoryViewport) Set(id string, m Metrics) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.metrics[id] = m
}

func (v *MemoryViewport) Metrics(id string) Metrics {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.metrics[id]
}

// ScrollBy moves the scroll position, clamped to the scrollable range.
func (v *MemoryViewport) ScrollBy(id string, dx float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	m := v.metrics[id]
	maxLeft := max(m.ScrollWidth-m.ClientWidth, 0)
	m.ScrollLeft = min(max(m.ScrollLeft+dx, 0), maxLeft)
	v.metrics[id] = m
}
