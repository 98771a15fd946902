package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "trims and drops empty entries",
			raw:      " 555-1111, , 555-2222 ",
			expected: []string{"555-1111", "555-2222"},
		},
		{
			name:     "single entry",
			raw:      "+15551234567",
			expected: []string{"+15551234567"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: []string{},
		},
		{
			name:     "preserves order and duplicates",
			raw:      "111,222,111",
			expected: []string{"111", "222", "111"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhoneList(tt.raw))
		})
	}
}

func TestFormatDialable(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "bare national number gets +1",
			raw:      "9165551234",
			expected: "+19165551234",
		},
		{
			name:     "plus-prefixed input returned unchanged",
			raw:      "+44 20 7946 0958",
			expected: "+44 20 7946 0958",
		},
		{
			name:     "punctuation stripped",
			raw:      "(916) 555-1234",
			expected: "+19165551234",
		},
		{
			name:     "empty input yields bare prefix",
			raw:      "",
			expected: "+1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDialable(tt.raw))
		})
	}
}

func TestFirstNonEmptyFromKeys(t *testing.T) {
	env := map[string]string{
		"ADMIN_PHONES_EXCLUSIVE": "",
		"ADMIN_PHONES":           "555-1111, 555-2222",
		"ADMIN_PHONE":            "555-9999",
	}
	lookup := func(k string) string { return env[k] }

	t.Run("first non-empty key wins", func(t *testing.T) {
		got := FirstNonEmptyFromKeys([]string{"ADMIN_PHONES_EXCLUSIVE", "ADMIN_PHONES", "ADMIN_PHONE"}, lookup)
		assert.Equal(t, []string{"555-1111", "555-2222"}, got)
	})

	t.Run("no keys match", func(t *testing.T) {
		got := FirstNonEmptyFromKeys([]string{"MISSING_A", "MISSING_B"}, lookup)
		assert.Empty(t, got)
	})

	t.Run("probe order respected", func(t *testing.T) {
		got := FirstNonEmptyFromKeys([]string{"ADMIN_PHONE", "ADMIN_PHONES"}, lookup)
		assert.Equal(t, []string{"555-9999"}, got)
	})
}
