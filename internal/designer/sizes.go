package designer

// SizeBand is one orderable size label with its AU shoe-size range.
type SizeBand struct {
	Label string `json:"label"`
	Range string `json:"range"`
}

// SizeMixed lets a club order an assortment across bands.
const SizeMixed = "mixed"

var sizeBands = []SizeBand{
	{Label: SizeMixed, Range: "Assorted sizes"},
	{Label: "Small (4-7)", Range: "AU 4-7"},
	{Label: "Medium (7-11)", Range: "AU 7-11"},
	{Label: "Large (11-14)", Range: "AU 11-14"},
	{Label: "Extra Large (14+)", Range: "AU 14+"},
}

// SizeBands returns the fixed set of orderable size bands.
func SizeBands() []SizeBand {
	out := make([]SizeBand, len(sizeBands))
	copy(out, sizeBands)
	return out
}

// ValidSize reports whether label is one of the fixed size bands.
func ValidSize(label string) bool {
	for _, b := range sizeBands {
		if b.Label == label {
			return true
		}
	}
	return false
}
