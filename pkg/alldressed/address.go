package alldressed

// Address is a postal address shared by shipping and billing payloads.
type Address struct {
	FirstName string      `json:"first_name,omitempty"`
	LastName  string      `json:"last_name,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Type      AddressType `json:"type,omitempty"`
	Line1     string      `json:"line_1,omitempty"`
	Line2     string      `json:"line_2,omitempty"`
	Company   string      `json:"company,omitempty"`
	City      string      `json:"city,omitempty"`
	State     string      `json:"state,omitempty"`
	Postcode  string      `json:"postcode,omitempty"`
	Country   string      `json:"country,omitempty"`
}

// Payload keys, without prefix.
const (
	addressFirstName = "first_name"
	addressLastName  = "last_name"
	addressPhone     = "phone"
	addressType      = "address_type"
	addressLine1     = "address_line_1"
	addressLine2     = "address_line_2"
	addressCompany   = "company"
	addressCity      = "city"
	addressState     = "state"
	addressPostcode  = "postcode"
	addressCountry   = "country"
)

// HasLine2 reports whether the second address line is set.
func (a *Address) HasLine2() bool {
	return a.Line2 != ""
}

// HasCompany reports whether the company is set.
func (a *Address) HasCompany() bool {
	return a.Company != ""
}

// SetCompany sets the company and marks the address as a business one.
func (a *Address) SetCompany(company string) *Address {
	a.Company = company
	a.Type = AddressTypeBusiness

	return a
}

// ToPayload flattens the address into the wire format, each key prefixed
// with prefix (e.g. "shipping_"). Unset fields are omitted.
func (a *Address) ToPayload(prefix string) Attributes {
	payload := Attributes{}

	put := func(key, value string) {
		if value != "" {
			payload[prefix+key] = value
		}
	}

	put(addressFirstName, a.FirstName)
	put(addressLastName, a.LastName)
	put(addressPhone, a.Phone)
	put(addressType, string(a.Type))
	put(addressLine1, a.Line1)
	put(addressLine2, a.Line2)
	put(addressCompany, a.Company)
	put(addressCity, a.City)
	put(addressState, a.State)
	put(addressPostcode, a.Postcode)
	put(addressCountry, a.Country)

	return payload
}

// AddressFromPayload rebuilds an address from keys written by ToPayload with
// the same prefix.
func AddressFromPayload(prefix string, payload Attributes) *Address {
	get := func(key string) string {
		value, _ := payload[prefix+key].(string)

		return value
	}

	return &Address{
		FirstName: get(addressFirstName),
		LastName:  get(addressLastName),
		Phone:     get(addressPhone),
		Type:      AddressType(get(addressType)),
		Line1:     get(addressLine1),
		Line2:     get(addressLine2),
		Company:   get(addressCompany),
		City:      get(addressCity),
		State:     get(addressState),
		Postcode:  get(addressPostcode),
		Country:   get(addressCountry),
	}
}
