// Package dom is a small in-memory page model for server-side page assembly.
//
// A Document wraps a goquery document (golang.org/x/net/html underneath) and
// adds what the page pipeline needs from a browser: document-level event
// listeners, synchronous dispatch of named events with a detail payload, and
// simulated clicks that bubble to delegated handlers.
//
// Documents are not safe for concurrent mutation. The goroutine that owns a
// page performs every mutation; concurrent work (fetching) happens elsewhere
// and hands results back.
package dom
