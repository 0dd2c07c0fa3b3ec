package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campaignkit/campaignkit/pkg/registry"
)

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("known slug", func(t *testing.T) {
		t.Parallel()
		def, ok := registry.Get("hero")
		require.True(t, ok)
		assert.Equal(t, "hero", def.Slug)
		assert.NotEmpty(t, def.Fields)
	})

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()
		_, ok := registry.Get("carousel")
		assert.False(t, ok)
	})
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("unknown slug yields empty map", func(t *testing.T) {
		t.Parallel()
		defaults := registry.Defaults("carousel")
		require.NotNil(t, defaults)
		assert.Empty(t, defaults)
	})

	t.Run("returns a fresh map every call", func(t *testing.T) {
		t.Parallel()
		first := registry.Defaults("hero")
		first["headline"] = "mutated"
		second := registry.Defaults("hero")
		assert.Equal(t, "Big news", second["headline"])
	})

	t.Run("covers every field", func(t *testing.T) {
		t.Parallel()
		def, ok := registry.Get("coupon")
		require.True(t, ok)
		defaults := registry.Defaults("coupon")
		assert.Len(t, defaults, len(def.Fields))
	})
}

func TestCatalogInvariants(t *testing.T) {
	t.Parallel()

	for slug, def := range registry.All() {
		t.Run(slug, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, slug, def.Slug)
			assert.NotEmpty(t, def.Label)

			seen := map[string]bool{}
			for _, f := range def.Fields {
				assert.False(t, seen[f.Key], "duplicate field key %q", f.Key)
				seen[f.Key] = true

				switch f.Kind {
				case registry.KindNumber:
					assert.IsType(t, 0, f.Default, "field %q default must be int", f.Key)
				case registry.KindToggle:
					assert.IsType(t, false, f.Default, "field %q default must be bool", f.Key)
				case registry.KindSelect:
					require.NotEmpty(t, f.Options, "field %q needs options", f.Key)
					assert.Contains(t, f.Options, f.Default, "field %q default must be a valid option", f.Key)
				default:
					assert.IsType(t, "", f.Default, "field %q default must be string", f.Key)
				}
			}
		})
	}
}

func TestAllIsACopy(t *testing.T) {
	t.Parallel()
	all := registry.All()
	delete(all, "hero")
	_, ok := registry.Get("hero")
	assert.True(t, ok)
}
