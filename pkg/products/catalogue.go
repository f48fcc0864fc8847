package products

import (
	"maps"
	"slices"

	"github.com/brauerei-andermatt/sitekit/pkg/i18n"
)

// Product is one beer.
type Product struct {
	ID      string
	Name    string
	ABV     string
	Tagline string
	Notes   string
	Pairs   string
}

// Catalogue maps product ids to products.
type Catalogue map[string]Product

// DefaultCatalogue returns the brewery's current range.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		"ipa": {
			ID:      "ipa",
			Name:    "IPA",
			ABV:     "5.6 % ABV",
			Tagline: "More hops than a mountain goat.",
			Notes:   "Bright citrus, pine resin and a crisp, bitter finish that echoes off the peaks.",
			Pairs:   "Spicy food, sharp cheddar and summiting your goals.",
		},
		"helles": {
			ID:      "helles",
			Name:    "Helles",
			ABV:     "5.0 % ABV",
			Tagline: "Crisper than the alpine air.",
			Notes:   "Subtle malt sweetness with a clean, refreshing finish.",
			Pairs:   "Bratwurst, pretzels and lakeside afternoons.",
		},
		"weizen": {
			ID:      "weizen",
			Name:    "Weizen",
			ABV:     "5.0 % ABV",
			Tagline: "Cloudy with a chance of genius.",
			Notes:   "Classic notes of banana and clove with a soft, full-bodied mouthfeel.",
			Pairs:   "Weisswurst, salads and sunny patios.",
		},
	}
}

// IDs returns the product ids in sorted order.
func (c Catalogue) IDs() []string {
	return slices.Sorted(maps.Keys(c))
}

// Localize returns the product with every text field overridden by
// products.{id}.{field} from doc when present.
func (p Product) Localize(doc i18n.Document) Product {
	override := func(field string, dst *string) {
		if v, ok := i18n.Lookup("products."+p.ID+"."+field, doc); ok && v != "" {
			*dst = v
		}
	}
	override("name", &p.Name)
	override("abv", &p.ABV)
	override("tagline", &p.Tagline)
	override("notes", &p.Notes)
	override("pairs", &p.Pairs)
	return p
}
