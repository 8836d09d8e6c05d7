// Package inspection contains the pure scoring logic for uniform
// inspections. Nothing in this package touches storage; the engine is
// handed a checklist catalog at construction and turns submitted scores
// into totals and ratings.
package inspection

// Section is one block of the published inspection checklist.
type Section struct {
	Name  string
	Items []string
}

// Catalog is the full checklist an inspection must cover. Item identity
// is the (section, item) label pair, matched case-sensitively.
type Catalog struct {
	Sections []Section
}

// ItemCount returns the number of scored lines in the catalog.
func (c Catalog) ItemCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Items)
	}
	return n
}

// MaxTotal returns the highest achievable total for the catalog.
func (c Catalog) MaxTotal() int {
	return c.ItemCount() * MaxItemScore
}

// contains reports whether the catalog lists the given item.
func (c Catalog) contains(section, item string) bool {
	for _, s := range c.Sections {
		if s.Name != section {
			continue
		}
		for _, it := range s.Items {
			if it == item {
				return true
			}
		}
	}
	return false
}

// DefaultCatalog returns the published 20-item checklist (60 max points).
func DefaultCatalog() Catalog {
	return Catalog{
		Sections: []Section{
			{
				Name:  "Personal Appearance",
				Items: []string{"Haircut", "Cleanliness", "Shave/Cosmetics"},
			},
			{
				Name: "Garments",
				Items: []string{
					"Cleanliness",
					"Press/Ironing",
					"No loose strings/frays",
					"Shirt tucked properly",
					"Proper sizing/fit",
					"No unauthorized bracelets",
					"Sleeves rolled properly (cuff visible)",
					"Undershirt correct (color/cut)",
				},
			},
			{
				Name:  "Accouterments",
				Items: []string{"Patches", "Insignia", "Ribbons/order", "Gig line"},
			},
			{
				Name:  "Footwear",
				Items: []string{"Boot blousing", "Shine / Cleanliness"},
			},
			{
				Name:  "Military Bearing",
				Items: []string{"Posture", "Hands at seam", "Focus / Bearing"},
			},
		},
	}
}
