package report

import (
	"rbf.dev/frontend_testing_user/frontendtesting"
)

// Result holds the credentials of a freshly created test user. It is never
// mutated after FromResponse returns it.
type Result struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Language string  `json:"language"`
	Vendor   *string `json:"vendor,omitempty"`
	Product  *string `json:"product,omitempty"`
}

// FromResponse extracts the result from a testing API response. Every field
// read is required: an absent or null one yields a MissingFieldError.
func FromResponse(response *frontendtesting.Response, language string, includeVendor bool) (*Result, error) {
	if response == nil || response.Login == nil {
		return nil, missing("login")
	}
	if response.Login.User == nil {
		return nil, missing("login.user")
	}

	user := response.Login.User
	if user.Username == nil {
		return nil, missing("login.user.username")
	}
	if user.Password == nil {
		return nil, missing("login.user.password")
	}

	result := &Result{
		Username: *user.Username,
		Password: *user.Password,
		Language: language,
	}

	if !includeVendor {
		return result, nil
	}

	vendor := response.BPartners[frontendtesting.VendorKey]
	if vendor == nil {
		return nil, missing("bpartners." + frontendtesting.VendorKey)
	}
	if vendor.BPartnerCode == nil {
		return nil, missing("bpartners." + frontendtesting.VendorKey + ".bpartnerCode")
	}

	product := response.Products[frontendtesting.ProductKey]
	if product == nil {
		return nil, missing("products." + frontendtesting.ProductKey)
	}
	if product.ProductName == nil {
		return nil, missing("products." + frontendtesting.ProductKey + ".productName")
	}

	result.Vendor = vendor.BPartnerCode
	result.Product = product.ProductName

	return result, nil
}

func missing(field string) error {
	return &frontendtesting.MissingFieldError{Field: field}
}
