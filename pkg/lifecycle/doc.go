// Package lifecycle orders the page readiness stages:
//
//	partials:loaded -> DOMContentLoaded -> i18n:applied
//
// A Signaler records each stage once. Stages reported out of order are held
// back until every earlier stage has been reached, so a handler registered
// with On never observes a page whose fragments are still missing. Handlers
// registered after a stage was reached run immediately.
//
// Watch derives the stages from DOM events on a dom.Document, which is how
// the page wires it: the partial loader, the page bootstrap and the
// translation applier each emit their event, the signaler turns them into
// ordered stages.
package lifecycle
