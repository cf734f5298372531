package sitecontent

// Resolve merges persisted overrides over the compiled default catalog and
// returns the effective content map consumed by the public site.
//
// Defaults are applied first, then every override in input order, so an
// override always wins over a default for the same address. The store's
// uniqueness invariant should make duplicate addresses in the override list
// impossible, but the merge still defends against them: the last one
// encountered wins. No asset validation happens here; a dangling image URL
// renders broken rather than failing the merge.
func Resolve(overrides []ContentItem, defaults DefaultCatalog) EffectiveContentMap {
	effective := make(EffectiveContentMap, len(defaults)+len(overrides))

	for addr, value := range defaults {
		effective[addr.String()] = value
	}

	for _, item := range overrides {
		effective[item.Address().String()] = item.Value
	}

	return effective
}

// ResolveItems is the item-shaped variant of Resolve used by the public
// content endpoint: overrides come back as stored, and every defaulted
// address not shadowed by an override is emitted as a synthetic item
// attributed to the system.
func ResolveItems(overrides []ContentItem, defaults DefaultCatalog) []ContentItem {
	seen := make(map[Address]struct{}, len(overrides))
	// Defend against duplicate addresses: keep the last occurrence.
	deduped := make([]ContentItem, 0, len(overrides))
	for i := len(overrides) - 1; i >= 0; i-- {
		addr := overrides[i].Address()
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		deduped = append(deduped, overrides[i])
	}

	items := make([]ContentItem, 0, len(defaults)+len(deduped))
	// Reverse back to stored order.
	for i := len(deduped) - 1; i >= 0; i-- {
		items = append(items, deduped[i])
	}

	for addr, value := range defaults {
		if _, ok := seen[addr]; ok {
			continue
		}
		items = append(items, ContentItem{
			Section:   addr.Section,
			Key:       addr.Key,
			Value:     value,
			UpdatedBy: "system",
		})
	}

	return items
}
