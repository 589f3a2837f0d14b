// Package pathprefix is the segment-aware path prefix rule shared by the
// host router and the auth gate.
package pathprefix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRelative is returned by Clean for a prefix without a leading slash.
var ErrRelative = errors.New("relative path prefix")

// Match reports whether path equals a prefix or continues it with a new
// segment: /admin covers /admin and /admin/users but not /administrator.
func Match(path string, prefixes []string) bool {
	for _, pre := range prefixes {
		if path == pre || strings.HasPrefix(path, pre+"/") {
			return true
		}
	}
	return false
}

// Trim drops a trailing slash, except from the root path.
func Trim(p string) string {
	if p == "/" {
		return p
	}
	return strings.TrimSuffix(p, "/")
}

// Clean trims the prefixes, drops empty entries and rejects relative ones.
func Clean(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, pre := range in {
		pre = strings.TrimSpace(pre)
		if pre == "" {
			continue
		}
		if !strings.HasPrefix(pre, "/") {
			return nil, fmt.Errorf("%w %q", ErrRelative, pre)
		}
		out = append(out, Trim(pre))
	}
	return out, nil
}
