// Package resource fetches the page's auxiliary documents: partial
// fragments, translation documents and the post manifest.
//
// A Fetcher takes a reference already resolved against the page location
// (see Resolve) and returns the raw bytes. Implementations exist for HTTP
// origins, any fs.FS (a site directory or an embed.FS), S3 buckets and an
// in-memory map for tests and fixtures.
//
// A non-success response is reported as *StatusError so callers can tell a
// missing fragment from a transport failure:
//
//	body, err := f.Fetch(ctx, resource.Resolve(page, "./partials/header.html"), resource.CacheDefault)
//	if resource.IsNotFound(err) {
//		// leave the mount point empty
//	}
package resource
