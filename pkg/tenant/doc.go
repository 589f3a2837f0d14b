// Package tenant turns the tenant identifier chosen by the host router into
// a store record and puts it on the request context.
//
// Three pieces cooperate:
//
//  1. A Resolver extracts the identifier (slug) from the request. The
//     router resolver reads what hostrouter stored in the context; the path
//     resolver reads a path segment.
//  2. A Provider loads the store by slug. svc/tenant ships the Postgres
//     implementation; MemoryProvider serves development and tests.
//  3. Middleware ties them together with a Cache in front of the provider.
//
// Unknown and inactive stores are answered with a 404 JSON body
// {"error":"Store not found"} so that storefront visitors cannot tell
// them apart.
//
// # Usage
//
//	provider := tenant.NewMemoryProvider(seed...)
//	r.Route("/{tenant}", func(r chi.Router) {
//		r.Use(tenant.Middleware(tenant.NewRouterResolver(), provider))
//		r.Get("/*", storefront)
//	})
//
//	func storefront(w http.ResponseWriter, r *http.Request) {
//		store := tenant.MustFromContext(r.Context())
//		...
//	}
package tenant
