// Package authgate keeps anonymous visitors out of the dashboard and
// signed-in users out of the login pages.
//
// Every path falls in exactly one class:
//
//   - public: static assets, auth callbacks, health and metrics endpoints;
//   - auth page: login and sign-up;
//   - protected: everything else.
//
// Without a session cookie a protected API path answers 401 with
// {"error":"Unauthorized"} and any other protected path redirects to the
// login page. With a session cookie an auth page redirects to the
// application root. All other combinations pass.
//
// By default the gate checks only that the session cookie is present. It
// never sees the token's signature or expiry, so a stale or forged cookie
// gets past the gate and is rejected later by the handler that verifies
// it. This keeps a verification round trip off every request and matches
// the behaviour of the deployed dashboard. Configure a Verifier (for
// example NewJWTVerifier with AUTH_JWT_SECRET) to validate at the gate
// instead; an invalid token is then treated as no session.
package authgate
