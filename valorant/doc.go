// Package valorant provides a client for the read-only valorant-api.com
// REST API, exposing game asset data (agents, buddies, bundles,
// contracts, ...) as typed Go values.
//
// # Architecture
//
//   - Client: the facade holding configuration and one service per
//     resource type
//   - Services: AgentsService, BuddiesService, ... expose FetchAll and
//     FetchByUUID operations
//   - Transport: a single context-aware GET with envelope decoding and
//     status-code to error mapping
//   - Cache: a bounded, mutex-guarded LRU with optional TTL, keyed by
//     endpoint plus the encoded query string
//
// # Usage
//
//	client, err := valorant.NewClient(
//		valorant.WithLanguage(valorant.LanguageGerman),
//		valorant.WithCacheTTL(time.Hour),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	agents, err := client.Agents.FetchAll(ctx, valorant.WithCached())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Repeat calls with WithCached and identical arguments are served from
// memory. Calls without WithCached invalidate the matching cache entry
// and always hit the network.
//
// # Non-blocking calls
//
// Every operation blocks the calling goroutine. For a non-blocking
// path, wrap any call with Async:
//
//	ch := valorant.Async(func() ([]valorant.Bundle, error) {
//		return client.Bundles.FetchAll(ctx)
//	})
//	// ... do other work ...
//	res := <-ch
//
// Client.PrefetchAll warms the cache for every list endpoint
// concurrently.
//
// # Error Handling
//
// Failures carry the server-reported status code as an *APIError and
// unwrap to sentinel errors:
//
//	_, err := client.Agents.FetchByUUID(ctx, "nonexistent-uuid")
//	if errors.Is(err, valorant.ErrNotFound) {
//		// unknown identifier
//	}
//
// ErrInvalidParameters covers HTTP 400, ErrNotFound covers HTTP 404,
// and ErrInvalidLanguage is reported at construction time. Malformed
// success payloads surface as *DecodeError.
package valorant
