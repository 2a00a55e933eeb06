package env

import (
	"os"
	"strings"

	"github.com/ekisa-team/singalong/internal/envvar"
)

// Environment is the deployment environment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv reads the environment from SINGALONG_ENV, defaulting to development.
func FromEnv() Environment {
	return Parse(os.Getenv(envvar.SingalongEnv))
}

// Parse maps a user supplied name to an Environment.
// Unknown names map to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production":
		return Production
	default:
		return Development
	}
}

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool {
	return e == Production
}
