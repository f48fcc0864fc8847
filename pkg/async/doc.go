// Package async runs independent blocking calls concurrently and joins them.
//
// Async starts fn in its own goroutine and returns a Future. Await blocks for
// a single result; Settle joins a batch and reports every outcome, so one
// failure never hides the others:
//
//	futures := make([]*async.Future[[]byte], len(names))
//	for i, name := range names {
//		futures[i] = async.Async(ctx, name, fetch)
//	}
//	for _, r := range async.Settle(futures...) {
//		if r.Err != nil {
//			// handle this one, keep going
//		}
//	}
package async
