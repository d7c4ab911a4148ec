package catalog

import (
	_ "embed"
)

//go:embed cards.yaml
var embeddedCards []byte

// Load builds the Catalog from the card set compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(embeddedCards)
}
