// Package prefs persists small per-visitor preferences, the server-side
// counterpart of a browser's localStorage.
//
// Store is a string key/value interface. Implementations:
//
//   - MemoryStore: process memory, for tests and single-shot renders.
//   - FileStore: a JSON file on disk, for the CLI.
//   - RedisStore: a Redis hash per visitor namespace, built on go-redis.
//   - CookieStore: an HTTP cookie pair bound to one request/response.
//
// Missing keys are reported with ok == false, never as errors.
package prefs
