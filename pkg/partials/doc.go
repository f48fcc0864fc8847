// Package partials splices shared HTML fragments into a page.
//
// Every element marked with data-include names a fragment stored at
// {basePath}/partials/{name}.html. All fragments of a page are fetched
// concurrently; once every fetch has settled the loader mounts the results,
// flags the body with data-partials-loaded="true" and emits the
// "partials:loaded" event exactly once. A fragment that cannot be fetched is
// logged and mounted as empty; it never fails the page.
//
//	<header data-include="header"></header>
//	<!-- partials/header.html -->
//	<a href="__BASE__/index.html">Start</a>
//
// The __BASE__ token is replaced with the base path before mounting.
package partials
