package hostrouter

import "errors"

var (
	ErrInvalidRootDomain   = errors.New("hostrouter: invalid root domain")
	ErrInvalidDevDomain    = errors.New("hostrouter: invalid dev domain")
	ErrInvalidPrefix       = errors.New("hostrouter: path prefix must start with /")
	ErrInvalidRedirectCode = errors.New("hostrouter: redirect code must be 301, 302, 303, 307 or 308")
)
