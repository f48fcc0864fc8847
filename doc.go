// Package sitekit assembles the pages of the Brauerei Andermatt website.
//
// A Page wraps one parsed HTML document and owns everything the page needs
// while it is being assembled: the partial loader, the translation store,
// the post manifest, the posts board, the product modal and the lifecycle
// signaler. Nothing is shared between pages, so independent pages (and
// tests) never observe each other's language or caches.
//
// Boot runs the stages in a fixed order:
//
//  1. fragments marked with data-include are fetched concurrently and
//     mounted ("partials:loaded");
//  2. the page is declared ready ("DOMContentLoaded");
//  3. the translation store loads the persisted, preferred or default
//     language and applies it ("i18n:applied");
//  4. the diary containers are rendered from the post manifest;
//  5. language switch controls and the product modal start handling clicks.
//
// Basic usage:
//
//	fetcher := resource.NewFSFetcher(os.DirFS("./public"))
//	page, err := sitekit.Open(ctx, fetcher, "blog/y.html",
//		sitekit.WithLanguages("de", "en"),
//		sitekit.WithPreferredLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//	if err := page.Boot(ctx); err != nil {
//		return err
//	}
//	return page.Render(w)
//
// Failures of individual resources (a missing fragment, translation or
// manifest) never fail a page; they are logged and the page keeps its
// authored content.
package sitekit
