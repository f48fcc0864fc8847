package i18n

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/brauerei-andermatt/sitekit/pkg/dom"
	"github.com/brauerei-andermatt/sitekit/pkg/lifecycle"
)

// DOM contract of the applier.
const (
	AttrKey     = "data-lang-key"
	AttrTarget  = "data-lang-attr"
	AttrSwitch  = "data-lang-switch"
	ActiveClass = "is-active"

	// EventApplied is dispatched after every application.
	EventApplied = lifecycle.EventLanguageApplied
)

// AppliedDetail is the payload of EventApplied.
type AppliedDetail struct {
	Lang     Language
	Document Document
}

// Apply writes doc into page for the active language lang and returns the
// number of elements it updated.
//
// Elements carrying data-lang-key receive the resolved value, as the
// attribute named by data-lang-attr when present, otherwise as inner HTML.
// Keys that do not resolve to a scalar leave the element untouched.
// Switch controls whose data-lang-switch equals lang get the is-active
// class, the others lose it. A nil doc is a no-op.
func Apply(ctx context.Context, page *dom.Document, lang Language, doc Document) int {
	if page == nil || doc == nil {
		return 0
	}

	page.Root().SetAttr("lang", string(lang))

	updated := 0
	page.Find("[" + AttrKey + "]").Each(func(_ int, el *goquery.Selection) {
		key, _ := el.Attr(AttrKey)
		if key == "" {
			return
		}
		value, ok := Lookup(key, doc)
		if !ok {
			return
		}
		if attr, _ := el.Attr(AttrTarget); attr != "" {
			el.SetAttr(attr, value)
		} else {
			el.SetHtml(value)
		}
		updated++
	})

	page.Find("[" + AttrSwitch + "]").Each(func(_ int, el *goquery.Selection) {
		if code, _ := el.Attr(AttrSwitch); Normalize(code) == lang {
			el.AddClass(ActiveClass)
		} else {
			el.RemoveClass(ActiveClass)
		}
	})

	page.Emit(ctx, EventApplied, AppliedDetail{Lang: lang, Document: doc})
	return updated
}
