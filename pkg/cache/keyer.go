package cache

import "strings"

// KeyVersion is mixed into every key. Bump it when the layout algorithm or
// the serialized layout format changes so stale entries are never served.
const KeyVersion = 1

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key for the layout of a document.
	LayoutKey(docHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for one rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that change a computed layout.
type LayoutKeyOpts struct {
	Engine            string  `json:"engine"`
	Margin            float64 `json:"margin"`
	PaddingHorizontal float64 `json:"padding_horizontal"`
	PaddingVertical   float64 `json:"padding_vertical"`
}

// ArtifactKeyOpts are the options that change a rendered output.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Renderer  string  `json:"renderer,omitempty"`
	Theme     string  `json:"theme,omitempty"`
	Connector string  `json:"connector,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
	EmbedFont bool    `json:"embed_font,omitempty"`
	Detailed  bool    `json:"detailed,omitempty"`
}

// DefaultKeyer hashes key components into "kind:sha256" strings.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", KeyVersion, docHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", KeyVersion, layoutHash, opts)
}

// KeyType returns the kind of a key produced by a Keyer ("layout" or
// "artifact"), ignoring any scope prefix. Other keys yield "other".
func KeyType(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return "other"
	}
	switch kind := parts[len(parts)-2]; kind {
	case "layout", "artifact":
		return kind
	}
	return "other"
}
