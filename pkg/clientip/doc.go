// Package clientip resolves the address of the client behind the edge.
//
// When the edge runs behind a trusted proxy the forwarded headers are
// consulted first, in order:
//
//	CF-Connecting-IP, X-Forwarded-For (first valid entry), X-Real-IP
//
// and the TCP peer address is the fallback. With trust disabled only the
// peer address is used, since any client can set those headers.
package clientip
