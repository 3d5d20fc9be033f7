package alldressed

import (
	"context"
	"encoding/json"
	"fmt"
)

// Product is a sellable product.
type Product struct {
	Entity

	Currency *Currency `json:"-"`
}

func (p *Product) relations() relations {
	return relations{"currency": &p.Currency}
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Product) UnmarshalJSON(data []byte) error {
	return p.decode(data, p.relations())
}

// MarshalJSON implements json.Marshaler.
func (p Product) MarshalJSON() ([]byte, error) {
	return p.encode(p.relations())
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.String("name")
}

// Package is a bundle of products, possibly holding child packages.
type Package struct {
	Entity

	Packages []*Package `json:"-"`
	Products []*Product `json:"-"`

	productsLoaded bool
}

func (p *Package) relations() relations {
	return relations{
		"packages": &p.Packages,
		"products": &p.Products,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Package) UnmarshalJSON(data []byte) error {
	return p.decode(data, p.relations())
}

// MarshalJSON implements json.Marshaler.
func (p Package) MarshalJSON() ([]byte, error) {
	return p.encode(p.relations())
}

// Name returns the display name.
func (p *Package) Name() string {
	return p.String("name")
}

// HasPackages reports whether the package has child packages.
func (p *Package) HasPackages() bool {
	return p.Bool("has_packages")
}

// HasParent reports whether the package belongs to another package.
func (p *Package) HasParent() bool {
	return p.Bool("has_parent")
}

// IsRoot reports whether the package has no parent.
func (p *Package) IsRoot() bool {
	return !p.HasParent()
}

// LoadProducts returns the products of the package. They are fetched once
// when the payload the package was decoded from did not include them. Not
// safe for concurrent use.
func (p *Package) LoadProducts(ctx context.Context, client Client) ([]*Product, error) {
	if p.productsLoaded || p.Has("products") {
		return p.Products, nil
	}

	products, err := client.Products().ForPackage(p.ID()).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading products of package %s: %w", p.ID(), err)
	}

	p.Products = products
	p.productsLoaded = true

	return products, nil
}

// Item is an entry of a menu.
type Item struct {
	Entity
}

// Type returns whether the item is a product or a package.
func (i *Item) Type() ItemType {
	return ItemType(i.String("type"))
}

// Sellable is either a Product or a Package, chosen by the type field.
type Sellable struct {
	Type    SellableType
	Product *Product
	Package *Package
	// Raw holds the payload of a type this client does not know.
	Raw *Entity
}

// ID returns the id of the variant.
func (s *Sellable) ID() string {
	switch {
	case s.Product != nil:
		return s.Product.ID()
	case s.Package != nil:
		return s.Package.ID()
	case s.Raw != nil:
		return s.Raw.ID()
	default:
		return ""
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sellable) UnmarshalJSON(data []byte) error {
	var head struct {
		Type SellableType `json:"type"`
	}

	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("decoding sellable: %w", err)
	}

	*s = Sellable{Type: head.Type}

	switch head.Type {
	case SellableTypeProduct:
		s.Product = new(Product)

		return json.Unmarshal(data, s.Product)
	case SellableTypePackage:
		s.Package = new(Package)

		return json.Unmarshal(data, s.Package)
	default:
		s.Raw = new(Entity)

		return json.Unmarshal(data, s.Raw)
	}
}

// MarshalJSON implements json.Marshaler.
func (s Sellable) MarshalJSON() ([]byte, error) {
	switch {
	case s.Product != nil:
		return json.Marshal(s.Product)
	case s.Package != nil:
		return json.Marshal(s.Package)
	case s.Raw != nil:
		return json.Marshal(s.Raw)
	default:
		return []byte("null"), nil
	}
}

// Choosable is something a customer can pick for a menu.
type Choosable struct {
	Entity

	Sellable *Sellable `json:"-"`
}

func (c *Choosable) relations() relations {
	return relations{"sellable": &c.Sellable}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Choosable) UnmarshalJSON(data []byte) error {
	return c.decode(data, c.relations())
}

// MarshalJSON implements json.Marshaler.
func (c Choosable) MarshalJSON() ([]byte, error) {
	return c.encode(c.relations())
}

// Choice is a quantity of a choosable picked for a menu, optionally within a
// package.
type Choice struct {
	Entity

	Choosable *Choosable `json:"-"`
	Package   *Package   `json:"-"`
}

// NewChoice returns a choice ready to be sent.
func NewChoice(choosable *Choosable, quantity int, pkg *Package) *Choice {
	return &Choice{
		Entity:    NewEntity(Attributes{"quantity": quantity}),
		Choosable: choosable,
		Package:   pkg,
	}
}

func (c *Choice) relations() relations {
	return relations{
		"choosable": &c.Choosable,
		"package":   &c.Package,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Choice) UnmarshalJSON(data []byte) error {
	return c.decode(data, c.relations())
}

// MarshalJSON implements json.Marshaler.
func (c Choice) MarshalJSON() ([]byte, error) {
	return c.encode(c.relations())
}

// Quantity returns the picked quantity.
func (c *Choice) Quantity() int {
	return c.Int("quantity")
}

// ToPayload returns the wire form sent when updating choices.
func (c *Choice) ToPayload() Attributes {
	payload := Attributes{"quantity": c.Quantity()}

	if c.Choosable != nil {
		payload["id"] = c.Choosable.ID()
	}

	if c.Package != nil {
		payload["package"] = c.Package.ID()
	} else {
		payload["package"] = nil
	}

	return payload
}
