package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalTenant(key string, aliases ...string) *Tenant {
	return &Tenant{
		Key:               key,
		BrandName:         key,
		Aliases:           aliases,
		DriverTemplates:   []MessageTemplate{{Name: "d", Body: "driver"}},
		CustomerTemplates: []MessageTemplate{{Name: "c", Body: "customer"}},
		ContactTemplates:  []MessageTemplate{{Name: "i", Body: "inquiry"}},
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	t.Run("empty registry rejected", func(t *testing.T) {
		_, err := NewRegistry()
		assert.Error(t, err)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		_, err := NewRegistry(minimalTenant(""))
		assert.Error(t, err)
	})

	t.Run("missing template kind rejected", func(t *testing.T) {
		broken := minimalTenant("broken")
		broken.CustomerTemplates = nil
		_, err := NewRegistry(broken)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer")
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := NewRegistry(minimalTenant("one", "shared"), minimalTenant("two", "SHARED"))
		assert.Error(t, err)
	})
}

func TestRegistry_Lookup(t *testing.T) {
	reg, err := NewRegistry(minimalTenant("exclusive", "etc"), minimalTenant("allSeasons", "all-seasons"))
	require.NoError(t, err)

	tests := []struct {
		query     string
		expectKey string
		found     bool
	}{
		{"exclusive", "exclusive", true},
		{"EXCLUSIVE", "exclusive", true},
		{"  etc  ", "exclusive", true},
		{"allseasons", "allSeasons", true},
		{"all-seasons", "allSeasons", true},
		{"unknown", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := reg.Lookup(tt.query)
		assert.Equal(t, tt.found, ok, "query %q", tt.query)
		if tt.found {
			assert.Equal(t, tt.expectKey, got.Key, "query %q", tt.query)
		}
	}
}

func TestRegistry_DefaultIsFirstRegistered(t *testing.T) {
	reg, err := NewRegistry(minimalTenant("exclusive"), minimalTenant("allSeasons"))
	require.NoError(t, err)
	assert.Equal(t, "exclusive", reg.Default().Key)
	assert.Len(t, reg.All(), 2)
}

func TestBuiltin_ShapeOfLiveBrands(t *testing.T) {
	reg := Builtin()

	exclusive, ok := reg.Lookup("exclusive")
	require.True(t, ok)
	assert.Contains(t, exclusive.Hostnames, "www.exclusivetowncarservice.com")
	assert.Equal(t, []string{"ADMIN_PHONES_EXCLUSIVE", "ADMIN_PHONES", "ADMIN_PHONE"}, exclusive.AdminKeys)
	assert.GreaterOrEqual(t, len(exclusive.DriverTemplates), 2)
	assert.GreaterOrEqual(t, len(exclusive.CustomerTemplates), 2)

	allSeasons, ok := reg.Lookup("allSeasons")
	require.True(t, ok)
	assert.Contains(t, allSeasons.PreviewHints, "/website-4")
	assert.Equal(t, []string{"ADMIN_PHONES_ALLSEASONS"}, allSeasons.AdminKeys)

	assert.Equal(t, "exclusive", reg.Default().Key)
}
