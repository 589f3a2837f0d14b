// Package hostrouter maps inbound hostnames onto tenant storefronts.
//
// A request for acme.example.com/products is served by the route
// /acme/products: the router classifies the host, and when it names a
// tenant it rewrites the path used for server-side routing while the
// client-visible URL stays unchanged. The bare root domain, its www alias
// and every reserved label (admin, api, docs, ...) are platform traffic
// and pass through untouched. A development rule does the same for
// *.localhost.
//
// Routing is a pure function of (host, path, Policy): Policy.Decide does
// no I/O and keeps no per-request state, so it is safe on any number of
// concurrent requests. Whether a tenant actually exists is not checked
// here; the downstream resolver in pkg/tenant answers "store not found".
//
//	policy, err := hostrouter.NewPolicy(cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(hostrouter.Middleware(policy, hostrouter.WithLogger(log)))
//
// Tenant hosts never expose platform-admin routes: /admin on a tenant host
// redirects to the tenant root and /api/admin answers 403.
package hostrouter
