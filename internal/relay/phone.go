// internal/relay/phone.go
package relay

import "strings"

// NormalizePhoneList splits a comma-separated recipient list, trimming
// whitespace and dropping empty entries. Order is preserved and duplicates
// are kept.
func NormalizePhoneList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatDialable converts raw phone input to a dialable E.164-ish form.
// Input already carrying a + prefix is returned unchanged; everything else
// is stripped to digits and given the North-American +1 prefix. This is a
// best-effort formatter, not a validator: digit count and country code are
// not checked, and input with no digits yields a bare "+1". The request
// gate rejects digit-less phones before this runs.
func FormatDialable(raw string) string {
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "+1" + digits.String()
}

// FirstNonEmptyFromKeys probes configuration keys in order and returns the
// normalized phone list of the first key with a non-empty value. Returns an
// empty list when no key matches. Side-effect free.
func FirstNonEmptyFromKeys(keys []string, lookup func(string) string) []string {
	for _, k := range keys {
		if val := lookup(k); val != "" {
			return NormalizePhoneList(val)
		}
	}
	return []string{}
}
