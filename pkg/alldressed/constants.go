package alldressed

// AddressType classifies an address.
type AddressType string

// Address types.
const (
	AddressTypeResidential AddressType = "residential"
	AddressTypeBusiness    AddressType = "business"
)

// DiscountValueType is how a discount value applies.
type DiscountValueType string

// Discount value types.
const (
	DiscountValueTypeFixed      DiscountValueType = "fixed"
	DiscountValueTypePercentage DiscountValueType = "percentage"
)

// Frequency is the number of weeks between two deliveries.
type Frequency int

// Delivery frequencies.
const (
	FrequencyWeekly      Frequency = 1
	FrequencyBiweekly    Frequency = 2
	FrequencyTriweekly   Frequency = 3
	FrequencyEvery4Weeks Frequency = 4
)

// SellableType discriminates the variants of a Sellable.
type SellableType string

// Sellable types.
const (
	SellableTypeProduct SellableType = "product"
	SellableTypePackage SellableType = "package"
)

// ItemType names what a menu item listing returns.
type ItemType string

// Item types.
const (
	ItemTypePackage ItemType = "package"
	ItemTypeProduct ItemType = "product"
)
