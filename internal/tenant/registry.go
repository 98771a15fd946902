// internal/tenant/registry.go
package tenant

import (
	"fmt"
	"strings"
)

// Registry is the static, process-wide tenant table. It is read-only after
// construction; changing tenant configuration means redeploying.
type Registry struct {
	tenants []*Tenant
	byKey   map[string]*Tenant // lowercased key and aliases
}

// NewRegistry builds a registry from the given tenants, preserving order.
// The first tenant is the default for unresolvable traffic. Every tenant
// must carry at least one template per message kind.
func NewRegistry(tenants ...*Tenant) (*Registry, error) {
	if len(tenants) == 0 {
		return nil, fmt.Errorf("registry requires at least one tenant")
	}

	byKey := make(map[string]*Tenant)
	for _, t := range tenants {
		if t.Key == "" {
			return nil, fmt.Errorf("tenant with empty key")
		}
		for _, kind := range []MessageKind{KindDriver, KindCustomer, KindContact} {
			if len(t.Templates(kind)) == 0 {
				return nil, fmt.Errorf("tenant %q has no %s templates", t.Key, kind)
			}
		}

		names := append([]string{t.Key}, t.Aliases...)
		for _, name := range names {
			lowered := strings.ToLower(name)
			if existing, ok := byKey[lowered]; ok && existing != t {
				return nil, fmt.Errorf("tenant name %q registered twice", lowered)
			}
			byKey[lowered] = t
		}
	}

	return &Registry{tenants: tenants, byKey: byKey}, nil
}

// MustNewRegistry is NewRegistry for compile-time tenant tables.
func MustNewRegistry(tenants ...*Tenant) *Registry {
	r, err := NewRegistry(tenants...)
	if err != nil {
		panic(err)
	}
	return r
}

// Builtin returns the production registry with the two live brands.
func Builtin() *Registry {
	return MustNewRegistry(exclusiveTenant(), allSeasonsTenant())
}

// Lookup resolves a tenant key or alias, case-insensitively.
func (r *Registry) Lookup(key string) (*Tenant, bool) {
	t, ok := r.byKey[strings.ToLower(strings.TrimSpace(key))]
	return t, ok
}

// All returns the tenants in registration order.
func (r *Registry) All() []*Tenant {
	return r.tenants
}

// Default returns the first-registered tenant.
func (r *Registry) Default() *Tenant {
	return r.tenants[0]
}
