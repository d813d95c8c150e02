package token

import "fmt"

// Registry is an immutable denom to definition index built once per
// settlement computation.
type Registry struct {
	defs map[string]DenomDefinition
}

// NewRegistry indexes the given definitions by denom. Each definition is
// validated and duplicate denoms are rejected.
func NewRegistry(defs []DenomDefinition) (Registry, error) {
	index := make(map[string]DenomDefinition, len(defs))

	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return Registry{}, fmt.Errorf("invalid denom definition: %w", err)
		}
		if _, ok := index[d.Denom]; ok {
			return Registry{}, fmt.Errorf("duplicate definition of denom '%s'", d.Denom)
		}
		index[d.Denom] = d
	}

	return Registry{defs: index}, nil
}

// Get returns the definition of the given denom.
func (r Registry) Get(denom string) (DenomDefinition, bool) {
	d, ok := r.defs[denom]
	return d, ok
}

// IsIssuer reports whether the address is the issuer of the denom. Unknown
// denoms have no issuer.
func (r Registry) IsIssuer(denom, address string) bool {
	d, ok := r.defs[denom]
	return ok && d.Issuer == address
}
