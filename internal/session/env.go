package session

// Variables read by the library at import time.
const (
	EnvUseCache    = "SYMPY_USE_CACHE"
	EnvGroundTypes = "SYMPY_GROUND_TYPES"
	EnvDebug       = "SYMPY_DEBUG"
)

// Environment returns the variables the backend process needs for c. Only
// requested settings appear; anything else is inherited as-is.
func Environment(c Config) map[string]string {
	env := make(map[string]string)
	if !c.UseCache {
		env[EnvUseCache] = "no"
	}
	if c.GroundTypes != GroundTypesUnset {
		env[EnvGroundTypes] = string(c.GroundTypes)
	}
	if c.Debug {
		env[EnvDebug] = "True"
	}
	return env
}
