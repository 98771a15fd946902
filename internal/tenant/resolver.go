// internal/tenant/resolver.go
package tenant

import (
	"net/url"
	"strings"
)

// Resolution rules, in the order they are tried.
const (
	RuleOverride    = "override"
	RuleHostname    = "hostname"
	RuleRefererHint = "referer-hint"
	RuleDefault     = "default"
)

// previewSuffixes are the site-builder draft/preview hosting domains.
// Only traffic from these hosts may use an explicit tenant override.
var previewSuffixes = []string{
	".wixsite.com",
	".filesusr.com",
}

// Resolved is the outcome of tenant resolution for one request.
type Resolved struct {
	Tenant *Tenant
	Rule   string
}

// Resolve decides which tenant a request belongs to. Pure function of the
// three inputs:
//
//  1. Preview-suffix Origin with a valid explicit override wins. The
//     override is never honored over a production domain, so a caller
//     cannot impersonate a tenant from live traffic.
//  2. Exact Origin hostname match against canonical domains, in
//     registration order.
//  3. Referer substring hint, in registration order.
//  4. The default (first-registered) tenant.
//
// Malformed Origin/Referer values degrade to "no host", never an error.
func (r *Registry) Resolve(origin, referer, override string) Resolved {
	originHost := hostFromOrigin(origin)

	if override != "" && isPreviewHost(originHost) {
		if t, ok := r.Lookup(override); ok {
			return Resolved{Tenant: t, Rule: RuleOverride}
		}
	}

	if originHost != "" {
		for _, t := range r.tenants {
			if t.hasHostname(originHost) {
				return Resolved{Tenant: t, Rule: RuleHostname}
			}
		}
	}

	if referer != "" {
		for _, t := range r.tenants {
			for _, hint := range t.PreviewHints {
				if hint != "" && strings.Contains(referer, hint) {
					return Resolved{Tenant: t, Rule: RuleRefererHint}
				}
			}
		}
	}

	return Resolved{Tenant: r.Default(), Rule: RuleDefault}
}

// hostFromOrigin extracts the hostname from an Origin header value.
// Anything unparsable yields "".
func hostFromOrigin(origin string) string {
	if origin == "" {
		return ""
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Hostname()
}

func isPreviewHost(host string) bool {
	if host == "" {
		return false
	}
	for _, suffix := range previewSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}
