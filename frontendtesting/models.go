package frontendtesting

const (
	// Fixture identifiers used both in the request and to look up the created entities in the response.
	VendorKey  = "VENDOR1"
	ProductKey = "PRODUCT1"
)

type Request struct {
	Login     LoginRequest               `json:"login"`
	BPartners map[string]BPartnerRequest `json:"bpartners,omitempty"`
	Products  map[string]ProductRequest  `json:"products,omitempty"`
}

type LoginRequest struct {
	User UserRequest `json:"user"`
}

type UserRequest struct {
	Language string `json:"language"`
}

type BPartnerRequest struct {
	IsVendor      bool `json:"isVendor"`
	IsCustomer    bool `json:"isCustomer"`
	IsSoPriceList bool `json:"isSoPriceList"`
}

type ProductRequest struct {
	Name   string  `json:"name"`
	Value  string  `json:"value"`
	Type   string  `json:"type"`
	Prices []Price `json:"prices"`
}

type Price struct {
	Price        float64 `json:"price"`
	CurrencyCode string  `json:"currencyCode"`
}

// Response only models the fields this tool consumes. Pointers distinguish
// absent fields from empty ones.
type Response struct {
	// HTTP status code the response was received with. Not part of the body.
	StatusCode int `json:"-"`

	Login *struct {
		User *struct {
			Username *string `json:"username"`
			Password *string `json:"password"`
		} `json:"user"`
	} `json:"login"`
	BPartners map[string]*struct {
		BPartnerCode *string `json:"bpartnerCode"`
	} `json:"bpartners"`
	Products map[string]*struct {
		ProductName *string `json:"productName"`
	} `json:"products"`
}
