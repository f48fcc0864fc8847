// Package posts renders diary entries from the post manifest.
//
// The manifest at {basePath}/data/posts.json is a JSON array of records
// whose display fields are either strings or per-language objects. A
// Manifest fetches each path once and serves the same sorted slice to every
// caller. A Board keeps the home preview (#posts-container), the full grid
// (#blog-posts) and the related entries (#related-posts) rendered and
// re-renders them when the page language changes.
package posts
