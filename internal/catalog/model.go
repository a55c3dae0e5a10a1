package catalog

// Product mirrors the upstream products API payload. Instances are read-only
// snapshots; nothing in this service writes back to the upstream.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	Images             []string `json:"images"`
	Thumbnail          string   `json:"thumbnail"`
	AvailabilityStatus string   `json:"availabilityStatus,omitempty"`
	ShippingInfo       string   `json:"shippingInformation,omitempty"`
	WarrantyInfo       string   `json:"warrantyInformation,omitempty"`
	ReturnPolicy       string   `json:"returnPolicy,omitempty"`
	Reviews            []Review `json:"reviews,omitempty"`
}

type Review struct {
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}

// DiscountedPrice applies the upstream discount percentage. Full precision;
// callers round only when formatting for display.
func (p Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}

type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ProductPage is the shape every listing endpoint returns.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
