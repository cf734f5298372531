package sitecontent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(section, key, value string) ContentItem {
	return ContentItem{
		Section:   section,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedBy: "editor-1",
	}
}

func TestResolveEmptyStoreReturnsDefaults(t *testing.T) {
	effective := Resolve(nil, Defaults())

	require.NotEmpty(t, effective)
	for addr, want := range Defaults() {
		got, ok := effective.Get(addr.Section, addr.Key)
		assert.True(t, ok, "missing default %s", addr)
		assert.Equal(t, want, got)
	}
}

func TestResolveOverrideWinsOverDefault(t *testing.T) {
	defaultHeading, ok := Defaults().Lookup(Address{Section: "hero", Key: "heading"})
	require.True(t, ok)
	assert.Equal(t, "Capturing Life's Beautiful Moments", defaultHeading)

	overrides := []ContentItem{item("hero", "heading", "Weddings Done Right")}
	effective := Resolve(overrides, Defaults())

	got, ok := effective.Get("hero", "heading")
	require.True(t, ok)
	assert.Equal(t, "Weddings Done Right", got)
}

func TestResolveUnknownAddressPassesThrough(t *testing.T) {
	overrides := []ContentItem{item("promo", "banner", "Monsoon offer")}
	effective := Resolve(overrides, Defaults())

	got, ok := effective.Get("promo", "banner")
	require.True(t, ok)
	assert.Equal(t, "Monsoon offer", got)
}

func TestResolveDuplicateAddressLastWins(t *testing.T) {
	overrides := []ContentItem{
		item("hero", "heading", "first"),
		item("about", "title", "untouched"),
		item("hero", "heading", "second"),
	}
	effective := Resolve(overrides, Defaults())

	got, _ := effective.Get("hero", "heading")
	assert.Equal(t, "second", got)
	about, _ := effective.Get("about", "title")
	assert.Equal(t, "untouched", about)
}

func TestResolveIsPure(t *testing.T) {
	overrides := []ContentItem{item("hero", "tagline", "changed")}
	defaults := Defaults()

	first := Resolve(overrides, defaults)
	second := Resolve(overrides, defaults)
	assert.Equal(t, first, second)

	// Mutating the result must not leak into the defaults catalog.
	first["hero.tagline"] = "mutated"
	fresh := Resolve(overrides, defaults)
	got, _ := fresh.Get("hero", "tagline")
	assert.Equal(t, "changed", got)
}

func TestResolveItemsSynthesizesDefaults(t *testing.T) {
	overrides := []ContentItem{item("hero", "heading", "override")}
	items := ResolveItems(overrides, Defaults())

	assert.Len(t, items, len(Defaults())) // heading shadowed, others synthetic

	byAddr := make(map[Address]ContentItem, len(items))
	for _, it := range items {
		byAddr[it.Address()] = it
	}

	heading := byAddr[Address{Section: "hero", Key: "heading"}]
	assert.Equal(t, "override", heading.Value)
	assert.Equal(t, "editor-1", heading.UpdatedBy)

	tagline := byAddr[Address{Section: "hero", Key: "tagline"}]
	assert.Equal(t, "system", tagline.UpdatedBy)
}

func TestResolveItemsDuplicateKeepsLastInStoredOrder(t *testing.T) {
	overrides := []ContentItem{
		item("a", "x", "one"),
		item("b", "y", "two"),
		item("a", "x", "three"),
	}
	items := ResolveItems(overrides, DefaultCatalog{})

	require.Len(t, items, 2)
	assert.Equal(t, "two", items[0].Value)
	assert.Equal(t, "three", items[1].Value)
}

func TestEffectiveContentMapSection(t *testing.T) {
	effective := Resolve(nil, Defaults())
	hero := effective.Section("hero")

	require.NotEmpty(t, hero)
	assert.Equal(t, "Capturing Life's Beautiful Moments", hero["heading"])
	for key := range hero {
		assert.NotContains(t, key, ".")
	}
}

func TestAddressValid(t *testing.T) {
	tests := []struct {
		name     string
		addr     Address
		valid    bool
		rendered string
	}{
		{"both parts", Address{Section: "hero", Key: "heading"}, true, "hero.heading"},
		{"empty section", Address{Key: "heading"}, false, ".heading"},
		{"empty key", Address{Section: "hero"}, false, "hero."},
		{"empty both", Address{}, false, "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.addr.Valid())
			assert.Equal(t, tt.rendered, tt.addr.String())
		})
	}
}

func TestChangeKindValid(t *testing.T) {
	assert.True(t, KindText.Valid())
	assert.True(t, KindImage.Valid())
	assert.False(t, ChangeKind("video").Valid())
	assert.False(t, ChangeKind("").Valid())
}
