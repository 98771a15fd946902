// internal/server/cors.go
package server

import (
	"net/url"
	"strings"

	"towncar-relay/internal/tenant"
)

// alwaysAllowHosts are site-builder editor hosts and local development
// origins that may reach the API regardless of tenant.
var alwaysAllowHosts = map[string]struct{}{
	"editor.wix.com": {},
	"manage.wix.com": {},
	"localhost":      {},
	"127.0.0.1":      {},
	"0.0.0.0":        {},
}

// previewOriginSuffixes mirror the site-builder preview and asset domains.
var previewOriginSuffixes = []string{
	".wixsite.com",
	".filesusr.com",
}

// isAllowedOrigin implements the CORS allow decision: no Origin (curl,
// server-to-server) passes, tenant production domains pass, and the
// site-builder preview/editor hosts pass.
func isAllowedOrigin(origin string, registry *tenant.Registry) bool {
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Hostname() == "" {
		return false
	}
	host := u.Hostname()

	for _, t := range registry.All() {
		for _, h := range t.Hostnames {
			if h == host {
				return true
			}
		}
	}

	if _, ok := alwaysAllowHosts[host]; ok {
		return true
	}
	for _, suffix := range previewOriginSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}
