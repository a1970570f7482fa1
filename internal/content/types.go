package content

// UI-facing records reshaped from the content store. All image fields are
// fully resolved URLs; an unresolvable asset reference becomes "".

// Product is one catalogue entry. Owned by the content store; never mutated
// here.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	URLSlug          string   `json:"urlSlug"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Features         []string `json:"features"`
	MinimumOrder     int      `json:"minimumOrder"`
	MainImage        string   `json:"mainImage"`
	SecondaryImage   string   `json:"secondaryImage"`
	SoldOut          bool     `json:"soldOut"`
}

// Partner is one testimonial entry.
type Partner struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	URLSlug          string   `json:"urlSlug"`
	Logo             string   `json:"logo"`
	Testimonial      string   `json:"testimonial"`
	SupplierName     string   `json:"supplierName"`
	SupplierTitle    string   `json:"supplierTitle"`
	SupplierProducts []string `json:"supplierProducts"`
}

// GalleryImage is one homepage carousel image with display metadata.
type GalleryImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Wire shapes of the content delivery API.

type sysID struct {
	ID string `json:"id"`
}

type assetLink struct {
	Sys sysID `json:"sys"`
}

type imageDims struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type assetFile struct {
	URL     string    `json:"url"`
	Details struct {
		Image imageDims `json:"image"`
	} `json:"details"`
}

type assetFields struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	File        assetFile `json:"file"`
}

type asset struct {
	Sys    sysID       `json:"sys"`
	Fields assetFields `json:"fields"`
}

type includes struct {
	Asset []asset `json:"Asset"`
}

type productFields struct {
	Name             string     `json:"name"`
	URLSlug          string     `json:"urlSlug"`
	ShortDescription string     `json:"shortDescription"`
	Description      string     `json:"description"`
	Price            float64    `json:"price"`
	Features         []string   `json:"features"`
	MinimumOrder     int        `json:"minimumOrder"`
	MainImage        *assetLink `json:"mainImage"`
	SecondaryImage   *assetLink `json:"secondaryImage"`
	SoldOut          bool       `json:"soldOut"`
}

type productItem struct {
	Sys    sysID         `json:"sys"`
	Fields productFields `json:"fields"`
}

type productResponse struct {
	Total    int           `json:"total"`
	Items    []productItem `json:"items"`
	Includes includes      `json:"includes"`
}

type partnerFields struct {
	Name             string      `json:"name"`
	URLSlug          string      `json:"urlSlug"`
	Logo             *assetLink  `json:"logo"`
	Testimonial      string      `json:"testimonial"`
	SupplierName     string      `json:"supplierName"`
	SupplierTitle    string      `json:"supplierTitle"`
	SupplierProducts []assetLink `json:"supplierProducts"`
}

type partnerItem struct {
	Sys    sysID         `json:"sys"`
	Fields partnerFields `json:"fields"`
}

type partnerResponse struct {
	Total    int           `json:"total"`
	Items    []partnerItem `json:"items"`
	Includes includes      `json:"includes"`
}

type galleryFields struct {
	Title  string      `json:"title"`
	Images []assetLink `json:"images"`
}

type galleryItem struct {
	Sys    sysID         `json:"sys"`
	Fields galleryFields `json:"fields"`
}

type galleryResponse struct {
	Total    int           `json:"total"`
	Items    []galleryItem `json:"items"`
	Includes includes      `json:"includes"`
}
