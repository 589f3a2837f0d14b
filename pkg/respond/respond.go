// Package respond writes the small JSON bodies the edge produces when it
// short-circuits a request before any application handler runs.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape of every edge-generated error.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSONError writes {"error": message} with the given status.
func JSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Error: message})
}

// Unauthorized writes the 401 body API clients receive without a session.
func Unauthorized(w http.ResponseWriter) {
	JSONError(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden writes the 403 body for routes a host may never reach.
func Forbidden(w http.ResponseWriter) {
	JSONError(w, http.StatusForbidden, "Forbidden")
}

// NotFound writes a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	JSONError(w, http.StatusNotFound, message)
}

// JSON writes v with status 200.
func JSON(w http.ResponseWriter, v any) error {
	return JSONStatus(w, http.StatusOK, v)
}

// JSONStatus writes v with the given status.
func JSONStatus(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
