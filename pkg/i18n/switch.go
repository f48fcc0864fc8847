package i18n

import (
	"context"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/lifecycle"
	"github.com/brauerei-andermatt/sitekit/pkg/logger"
)

// Bind wires the store into its page:
//   - a click on, or inside, a [data-lang-switch] control selects that
//     control's language and prevents the default action;
//   - partials:loaded re-applies the active document to the new fragments.
//
// It returns a function that removes both listeners.
func (s *Store) Bind() (unbind func()) {
	if s.page == nil {
		return func() {}
	}

	removeClick := s.page.AddEventListener(dom.EventClick, func(ctx context.Context, ev *dom.Event) {
		control := ev.Target.Closest("[" + AttrSwitch + "]")
		if control.Length() == 0 {
			return
		}
		ev.PreventDefault()

		code, _ := control.Attr(AttrSwitch)
		if code == "" {
			return
		}
		if _, err := s.SetLanguage(ctx, Language(code)); err != nil {
			s.logger.WarnContext(ctx, "language switch ignored", logger.Lang(code), logger.Error(err))
		}
	})

	removeReapply := s.page.AddEventListener(lifecycle.EventPartialsLoaded, func(ctx context.Context, _ *dom.Event) {
		s.Reapply(ctx)
	})

	return func() {
		removeClick()
		removeReapply()
	}
}
