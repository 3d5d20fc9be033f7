package client

import (
	"github.com/all-dressed/alldressed-go/internal/options"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// Option keys written by shippingSetter.
const (
	shippingAddressType  = "shipping_address_type"
	shippingAddressLine1 = "shipping_address_line_1"
	shippingAddressLine2 = "shipping_address_line_2"
	shippingCompany      = "shipping_company"
	shippingCity         = "shipping_city"
	shippingState        = "shipping_state"
	shippingPostcode     = "shipping_postcode"
	shippingCountry      = "shipping_country"
)

// shippingSetter implements alldressed.ShippingAddressSetter over the option
// store of the builder embedding it, returning self for chaining.
type shippingSetter[B any] struct {
	store *options.Store
	self  B
}

// SetShippingAddress copies every field of address. A nil address is ignored.
func (s *shippingSetter[B]) SetShippingAddress(address *alldressed.Address) B {
	if address == nil {
		return s.self
	}

	if address.HasLine2() {
		s.store.Set(shippingAddressLine2, address.Line2)
	}

	if address.HasCompany() {
		s.store.Set(shippingCompany, address.Company)
	}

	s.store.Set(shippingAddressType, string(address.Type))
	s.store.Set(shippingAddressLine1, address.Line1)
	s.store.Set(shippingCity, address.City)
	s.store.Set(shippingState, address.State)
	s.store.Set(shippingPostcode, address.Postcode)
	s.store.Set(shippingCountry, address.Country)

	return s.self
}

func (s *shippingSetter[B]) SetShippingAddressType(addressType alldressed.AddressType) B {
	s.store.Set(shippingAddressType, string(addressType))

	return s.self
}

func (s *shippingSetter[B]) SetShippingAddressLine1(line string) B {
	s.store.Set(shippingAddressLine1, line)

	return s.self
}

func (s *shippingSetter[B]) SetShippingAddressLine2(line string) B {
	s.store.Set(shippingAddressLine2, line)

	return s.self
}

func (s *shippingSetter[B]) SetShippingCompany(company string) B {
	s.store.Set(shippingCompany, company)

	return s.self
}

func (s *shippingSetter[B]) SetShippingCity(city string) B {
	s.store.Set(shippingCity, city)

	return s.self
}

func (s *shippingSetter[B]) SetShippingState(state string) B {
	s.store.Set(shippingState, state)

	return s.self
}

func (s *shippingSetter[B]) SetShippingPostcode(postcode string) B {
	s.store.Set(shippingPostcode, postcode)

	return s.self
}

func (s *shippingSetter[B]) SetShippingCountry(country string) B {
	s.store.Set(shippingCountry, country)

	return s.self
}

// shippingPayload returns the shipping_* options that were set.
func (s *shippingSetter[B]) shippingPayload() payload {
	out := payload{}

	for _, key := range []string{
		shippingAddressType,
		shippingAddressLine1,
		shippingAddressLine2,
		shippingCompany,
		shippingCity,
		shippingState,
		shippingPostcode,
		shippingCountry,
	} {
		if value := s.store.String(key); value != "" {
			out[key] = value
		}
	}

	return out
}
