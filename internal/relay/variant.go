// internal/relay/variant.go
package relay

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"towncar-relay/internal/common/errors"
	"towncar-relay/internal/tenant"
)

// VariantKey builds the stable, order-sensitive selection key for a logical
// booking. Identical bookings (retries, resends) produce identical keys so
// the customer never sees inconsistently worded confirmations.
func VariantKey(parts ...string) string {
	return strings.Join(parts, "|")
}

// PickVariant deterministically selects one template from a variant set.
// A single variant is returned directly. Larger sets hash the key with
// SHA-256 (determinism is the requirement here, not security) and reduce
// the first 8 digest bytes modulo the variant count.
func PickVariant(tenantKey string, kind tenant.MessageKind, variants []tenant.MessageTemplate, key string) (tenant.MessageTemplate, error) {
	switch len(variants) {
	case 0:
		return tenant.MessageTemplate{}, errors.NewTemplateSetEmptyError(tenantKey, string(kind))
	case 1:
		return variants[0], nil
	}

	sum := sha256.Sum256([]byte(key))
	idx := binary.BigEndian.Uint64(sum[:8]) % uint64(len(variants))
	return variants[idx], nil
}
