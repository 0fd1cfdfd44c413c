package configs

import "errors"

// CredentialSources lists the variables holding the generation API key, in
// priority order.
var CredentialSources = []string{"GEN_AI_KEY", "VITE_GEN_AI_KEY"}

var ErrUnconfigured = errors.New("generation credential is not configured")

// Credential is the resolved generation API key. The zero value is the
// unconfigured state.
type Credential struct {
	value  string
	source string
}

func NewCredential(value, source string) Credential {
	return Credential{value: value, source: source}
}

func (c Credential) Configured() bool {
	return c.value != ""
}

func (c Credential) Value() string {
	return c.value
}

// Source is the variable name the value was read from.
func (c Credential) Source() string {
	return c.source
}

func (c Credential) String() string {
	if !c.Configured() {
		return "unconfigured"
	}
	return "[redacted]"
}

// ResolveCredential returns the first non-empty value among names.
func ResolveCredential(lookup func(string) (string, bool), names ...string) Credential {
	for _, name := range names {
		if value, ok := lookup(name); ok && value != "" {
			return NewCredential(value, name)
		}
	}

	return Credential{}
}
