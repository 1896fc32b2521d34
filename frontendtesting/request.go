package frontendtesting

// NewRequest builds the payload asking the testing API for a user with the
// given language. The language is forwarded verbatim. With includeVendor, a
// vendor business partner and a priced product are requested as well, for
// material receipt scenarios.
func NewRequest(language string, includeVendor bool) *Request {
	request := &Request{
		Login: LoginRequest{
			User: UserRequest{Language: language},
		},
	}

	if includeVendor {
		request.BPartners = map[string]BPartnerRequest{
			VendorKey: {
				IsVendor:      true,
				IsCustomer:    false,
				IsSoPriceList: false,
			},
		}
		request.Products = map[string]ProductRequest{
			ProductKey: {
				Name:  "Test Product",
				Value: "TEST-001",
				Type:  "Item",
				Prices: []Price{
					{Price: 10.0, CurrencyCode: "EUR"},
				},
			},
		}
	}

	return request
}
