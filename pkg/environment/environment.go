package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps the short and long spellings accepted in APP_ENV to an Environment.
// Unknown values fall back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }
