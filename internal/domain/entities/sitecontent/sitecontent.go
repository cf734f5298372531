// Package sitecontent defines the content-override domain: addressable site
// copy that editors can change without a redeploy, merged over compiled
// defaults at render time.
package sitecontent

import "time"

// Address identifies a single editable field on the public site. It is a
// value type so it can be used directly as a map key without string
// concatenation collisions.
type Address struct {
	Section string `json:"section"`
	Key     string `json:"key"`
}

// Valid reports whether both parts of the address are non-empty.
func (a Address) Valid() bool {
	return a.Section != "" && a.Key != ""
}

// String renders the canonical "section.key" form used in API payloads.
func (a Address) String() string {
	return a.Section + "." + a.Key
}

// ContentItem is a persisted override for a single address.
type ContentItem struct {
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// Address returns the item's composite address.
func (c ContentItem) Address() Address {
	return Address{Section: c.Section, Key: c.Key}
}

// ChangeKind distinguishes plain text edits from uploaded-asset edits.
type ChangeKind string

const (
	KindText  ChangeKind = "text"
	KindImage ChangeKind = "image"
)

// Valid reports whether the kind is one of the known values.
func (k ChangeKind) Valid() bool {
	return k == KindText || k == KindImage
}

// PendingChange is a staged, uncommitted edit. For KindImage the value must
// already be a URL returned by the upload collaborator.
type PendingChange struct {
	Section string     `json:"section"`
	Key     string     `json:"key"`
	Value   string     `json:"value"`
	Kind    ChangeKind `json:"kind"`
}

// Address returns the change's composite address.
func (p PendingChange) Address() Address {
	return Address{Section: p.Section, Key: p.Key}
}

// EffectiveContentMap is the merged view rendered to site visitors, keyed by
// the canonical "section.key" form. It is derived per request and never
// persisted.
type EffectiveContentMap map[string]string

// Get returns the effective value for an address.
func (m EffectiveContentMap) Get(section, key string) (string, bool) {
	v, ok := m[Address{Section: section, Key: key}.String()]
	return v, ok
}

// Section returns the subset of the map belonging to one section, keyed by
// the bare field key.
func (m EffectiveContentMap) Section(section string) map[string]string {
	prefix := section + "."
	out := make(map[string]string)
	for addr, v := range m {
		if len(addr) > len(prefix) && addr[:len(prefix)] == prefix {
			out[addr[len(prefix):]] = v
		}
	}
	return out
}

// ChangeFailure reports one rejected change from a batch and why.
type ChangeFailure struct {
	Change PendingChange `json:"change"`
	Reason string        `json:"reason"`
}

// BatchResult summarizes a batch update: how many changes were persisted and
// which ones failed. A batch is best-effort, not transactional.
type BatchResult struct {
	AppliedCount int             `json:"appliedCount"`
	Failures     []ChangeFailure `json:"failures"`
}
