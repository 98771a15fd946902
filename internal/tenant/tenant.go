// internal/tenant/tenant.go
package tenant

// MessageKind distinguishes the template sets a tenant exposes.
type MessageKind string

const (
	KindDriver   MessageKind = "driver"
	KindCustomer MessageKind = "customer"
	KindContact  MessageKind = "contact"
)

// MessageTemplate is one interchangeable wording of a logical message.
// Bodies use {{placeholder}} substitution.
type MessageTemplate struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Tenant is the identity record of one branded car-service business.
// Instances are built once at startup and never mutated.
type Tenant struct {
	Key       string
	BrandName string

	// Hostnames are the canonical production domains. An exact Origin
	// hostname match is authoritative.
	Hostnames []string

	// PreviewHints are substrings matched against the Referer of
	// site-builder preview traffic only.
	PreviewHints []string

	// Aliases are accepted override spellings, compared case-insensitively.
	Aliases []string

	// AdminKeys is the ordered env-key fallback chain probed for admin
	// recipient lists. First non-empty key wins.
	AdminKeys []string

	DriverTemplates   []MessageTemplate
	CustomerTemplates []MessageTemplate
	ContactTemplates  []MessageTemplate
}

// Templates returns the variant set for a message kind.
func (t *Tenant) Templates(kind MessageKind) []MessageTemplate {
	switch kind {
	case KindDriver:
		return t.DriverTemplates
	case KindCustomer:
		return t.CustomerTemplates
	case KindContact:
		return t.ContactTemplates
	default:
		return nil
	}
}

func (t *Tenant) hasHostname(host string) bool {
	for _, h := range t.Hostnames {
		if h == host {
			return true
		}
	}
	return false
}
