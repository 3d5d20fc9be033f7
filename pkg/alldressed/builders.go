package alldressed

import (
	"context"
	"time"
)

// Every builder accumulates options through chained calls and sends one
// request per terminal call. Builders mutate themselves and return the same
// instance: one builder, one call chain. They are not safe for concurrent use
// and must not be shared between goroutines. Ask the Client for a new builder
// for each chain.

// Query is the read side shared by the builders.
type Query[T any] interface {
	// Get sends the request described by the accumulated options.
	Get(ctx context.Context) ([]*T, error)
	// All is Get.
	All(ctx context.Context) ([]*T, error)
	// First returns the first result of Get, or nil when there is none.
	First(ctx context.Context) (*T, error)
	// Find looks up a single resource by id.
	Find(ctx context.Context, id string) (*T, error)
	// GetOption returns the option at a dotted key, or nil.
	GetOption(key string) any
}

// ShippingAddressSetter is implemented by builders that send a shipping_*
// address.
type ShippingAddressSetter[B any] interface {
	SetShippingAddress(address *Address) B
	SetShippingAddressType(addressType AddressType) B
	SetShippingAddressLine1(line string) B
	SetShippingAddressLine2(line string) B
	SetShippingCompany(company string) B
	SetShippingCity(city string) B
	SetShippingState(state string) B
	SetShippingPostcode(postcode string) B
	SetShippingCountry(country string) B
}

// ZoneBuilder queries delivery zones.
type ZoneBuilder interface {
	Query[Zone]
	WithOption(key string, value any) ZoneBuilder
	ForPostcode(postcode string) ZoneBuilder
}

// DeliveryScheduleBuilder queries the delivery schedules of a zone.
type DeliveryScheduleBuilder interface {
	Query[DeliverySchedule]
	WithOption(key string, value any) DeliveryScheduleBuilder
	ForPostcode(postcode string) DeliveryScheduleBuilder
	// Available restricts the listing to schedules open for new deliveries.
	Available() DeliveryScheduleBuilder
}

// DeliveryFrequencyBuilder queries the frequencies offered by a schedule.
type DeliveryFrequencyBuilder interface {
	Query[DeliveryFrequency]
	WithOption(key string, value any) DeliveryFrequencyBuilder
	ForSchedule(schedule string) DeliveryFrequencyBuilder
}

// CustomerBuilder queries and writes customers.
type CustomerBuilder interface {
	Query[Customer]
	WithOption(key string, value any) CustomerBuilder
	Create(ctx context.Context, attributes Attributes) (*Customer, error)
	Update(ctx context.Context, id string, attributes Attributes) (*Customer, error)
}

// SubscriptionCreate holds the arguments of SubscriptionBuilder.Create. Empty
// fields fall back to the options set on the builder.
type SubscriptionCreate struct {
	// Menu is the date of the first delivered menu.
	Menu             time.Time
	Frequency        Frequency
	Customer         string
	Currency         string
	PaymentMethod    string
	DeliverySchedule string
	Discount         *Discount
}

// SubscriptionBuilder queries and manages subscriptions.
type SubscriptionBuilder interface {
	Query[Subscription]
	ShippingAddressSetter[SubscriptionBuilder]
	WithOption(key string, value any) SubscriptionBuilder

	For(subscription string) SubscriptionBuilder
	ForCustomer(customer string) SubscriptionBuilder
	ForCurrency(currency string) SubscriptionBuilder
	ForDeliverySchedule(schedule string) SubscriptionBuilder
	// ForMenu includes the choices of the menu in Get.
	ForMenu(menu string) SubscriptionBuilder
	// WithMenus includes the upcoming menus in Get.
	WithMenus() SubscriptionBuilder
	Backoff() SubscriptionBuilder
	Bill() SubscriptionBuilder
	Name(name string) SubscriptionBuilder
	SetChoices(choices ...*Choice) SubscriptionBuilder
	SetDeliveryNotes(notes string) SubscriptionBuilder
	SetDiscount(discount *Discount) SubscriptionBuilder
	SetPaymentMethod(method string) SubscriptionBuilder

	Create(ctx context.Context, args SubscriptionCreate) (*Subscription, error)
	Cancel(ctx context.Context, reasons ...string) error
	Pause(ctx context.Context, until time.Time) error
	Resume(ctx context.Context) error
	ApplyDiscount(ctx context.Context, code string, choices []*DiscountItemChoice, menu string) error
	UpdateFreeItems(ctx context.Context, choices []*DiscountItemChoice, menu string) error
	UpdateFrequency(ctx context.Context, frequency Frequency) error
	UpdateNextDeliveryDate(ctx context.Context, menu, schedule string) error
	UpdateShippingAddress(ctx context.Context, address *Address, notes, schedule string, frequency Frequency) error
}

// MenuBuilder queries the menus of a subscription.
type MenuBuilder interface {
	Query[Menu]
	WithOption(key string, value any) MenuBuilder
	For(menu string) MenuBuilder
	ForSubscription(subscription string) MenuBuilder
	Skip(ctx context.Context) error
	Unskip(ctx context.Context) error
	Copy(ctx context.Context, from, to time.Time) (*Menu, error)
}

// ChoiceBuilder reads and replaces the choices of a subscription for a menu.
type ChoiceBuilder interface {
	Query[Choice]
	WithOption(key string, value any) ChoiceBuilder
	// ForMenu accepts a menu UUID or a Y-m-d date. Anything else makes the
	// terminal call fail with ErrInvalidMenuIdentifier.
	ForMenu(menu string) ChoiceBuilder
	OfSubscription(subscription string) ChoiceBuilder
	Update(ctx context.Context, choices []*Choice) error
}

// ItemBuilder lists the items of a menu.
type ItemBuilder interface {
	Query[Item]
	WithOption(key string, value any) ItemBuilder
	// ForMenu accepts a menu UUID or a Y-m-d date.
	ForMenu(menu string) ItemBuilder
	Packages() ItemBuilder
	Products() ItemBuilder
}

// PackageBuilder queries packages.
type PackageBuilder interface {
	Query[Package]
	WithOption(key string, value any) PackageBuilder
	ForMenu(menu string) PackageBuilder
	// Root restricts the listing to packages without a parent.
	Root() PackageBuilder
}

// ProductBuilder queries products.
type ProductBuilder interface {
	Query[Product]
	WithOption(key string, value any) ProductBuilder
	ForMenu(menu string) ProductBuilder
	ForPackage(pkg string) ProductBuilder
}

// OrderCreate holds the arguments of OrderBuilder.Create. Empty fields fall
// back to the options set on the builder.
type OrderCreate struct {
	Menu             string
	Customer         string
	Currency         string
	PaymentMethod    string
	DeliverySchedule string
	Discount         string
	GiftCard         string
	Products         []*LineItem
	Tags             []string
}

// OrderPayment holds the arguments of OrderBuilder.Pay. Empty fields fall
// back to the options set on the builder.
type OrderPayment struct {
	Order         string
	Customer      string
	Currency      string
	PaymentMethod string
}

// OrderBuilder queries and places orders.
type OrderBuilder interface {
	Query[Order]
	ShippingAddressSetter[OrderBuilder]
	WithOption(key string, value any) OrderBuilder

	ForCustomer(customer string) OrderBuilder
	ForSubscription(subscription string) OrderBuilder
	// Transactional lists the one-off orders of the customer.
	Transactional() OrderBuilder
	// Pending fetches the pending state of the order set with Find.
	Pending() OrderBuilder
	SetMenu(menu string) OrderBuilder
	SetCustomer(customer string) OrderBuilder
	SetCurrency(currency string) OrderBuilder
	SetPaymentMethod(method string) OrderBuilder
	SetDeliverySchedule(schedule string) OrderBuilder
	SetDeliveryNotes(notes string) OrderBuilder
	SetDiscount(code string) OrderBuilder
	SetGiftCard(code string) OrderBuilder
	SetTags(tags ...string) OrderBuilder
	AddProducts(products ...*LineItem) OrderBuilder
	AddPackage(pkg string, products ...*LineItem) OrderBuilder

	Create(ctx context.Context, args OrderCreate) (*Order, error)
	Pay(ctx context.Context, args OrderPayment) (*Order, error)
}

// PaymentMethodCreate holds the arguments of PaymentMethodBuilder.Create.
// Empty fields fall back to the options set on the builder.
type PaymentMethodCreate struct {
	Card     *Card
	Gateway  string
	Customer string
}

// PaymentMethodBuilder queries and manages the payment methods of a
// customer.
type PaymentMethodBuilder interface {
	Query[PaymentMethod]
	WithOption(key string, value any) PaymentMethodBuilder

	For(method string) PaymentMethodBuilder
	ForCustomer(customer string) PaymentMethodBuilder
	ForGateway(gateway string) PaymentMethodBuilder
	ForSubscription(subscription string) PaymentMethodBuilder
	AsPrimary() PaymentMethodBuilder
	SetBillingAddress(firstName, lastName, phone string, address *Address) PaymentMethodBuilder
	SetBillingFirstName(name string) PaymentMethodBuilder
	SetBillingLastName(name string) PaymentMethodBuilder
	SetBillingPhone(number string) PaymentMethodBuilder
	SetBillingAddressLine1(line string) PaymentMethodBuilder
	SetBillingAddressLine2(line string) PaymentMethodBuilder
	SetBillingCompany(company string) PaymentMethodBuilder
	SetBillingCity(city string) PaymentMethodBuilder
	SetBillingState(state string) PaymentMethodBuilder
	SetBillingPostcode(postcode string) PaymentMethodBuilder
	SetBillingCountry(country string) PaymentMethodBuilder

	Create(ctx context.Context, args PaymentMethodCreate) (*PaymentMethod, error)
	Delete(ctx context.Context) error
	// SetAsDefault makes the method primary, and the method of the customer's
	// active subscriptions when subscriptions is true.
	SetAsDefault(ctx context.Context, subscriptions bool) error
	Update(ctx context.Context, attributes Attributes) error
}

// DiscountCreate holds the arguments of DiscountBuilder.Create.
type DiscountCreate struct {
	Code             string
	Values           []*DiscountValue
	Orders           int
	NewCustomers     bool
	NewSubscriptions bool
}

// DiscountBuilder queries and creates discounts.
type DiscountBuilder interface {
	Query[Discount]
	WithOption(key string, value any) DiscountBuilder
	ForCode(code string) DiscountBuilder
	// ForCustomer scopes creation to referral codes of the customer.
	ForCustomer(customer string) DiscountBuilder
	ForSubscription(subscription string) DiscountBuilder
	WithReward(rewardType DiscountValueType, value int, currency string) DiscountBuilder
	Create(ctx context.Context, args DiscountCreate) (*Discount, error)
	// Delete removes the discount applied to the subscription.
	Delete(ctx context.Context) error
}

// GiftCardPurchase holds the arguments of GiftCardBuilder.Purchase. Empty
// fields fall back to the options set on the builder.
type GiftCardPurchase struct {
	Value         int
	Currency      string
	Customer      string
	PaymentMethod string
}

// GiftCardBuilder queries and purchases gift cards.
type GiftCardBuilder interface {
	Query[GiftCard]
	WithOption(key string, value any) GiftCardBuilder
	ForCode(code string) GiftCardBuilder
	ForCustomer(customer string) GiftCardBuilder
	SetPaymentMethod(method string) GiftCardBuilder
	SetSender(name, email string) GiftCardBuilder
	SetPrimaryReceiver(name, email string, delivery time.Time, message string) GiftCardBuilder
	Purchase(ctx context.Context, args GiftCardPurchase) ([]*GiftCard, error)
}

// TaxBuilder computes the shipping taxes of a location.
type TaxBuilder interface {
	Query[Tax]
	WithOption(key string, value any) TaxBuilder
	ForCountry(country string) TaxBuilder
	ForState(state string) TaxBuilder
	ForCity(city string) TaxBuilder
	ForPostcode(postcode string) TaxBuilder
}

// TagBuilder queries tags.
type TagBuilder interface {
	Query[Tag]
	WithOption(key string, value any) TagBuilder
}

// InvoiceBuilder lists the invoices of a customer, one page at a time.
type InvoiceBuilder interface {
	WithOption(key string, value any) InvoiceBuilder
	GetOption(key string) any
	ForCustomer(customer string) InvoiceBuilder
	Page(page int) InvoiceBuilder
	Get(ctx context.Context) (*Paginated[Invoice], error)
	All(ctx context.Context) (*Paginated[Invoice], error)
	First(ctx context.Context) (*Invoice, error)
}

// TransactionCreate holds the arguments of TransactionBuilder.Create. Empty
// fields fall back to the options set on the builder.
type TransactionCreate struct {
	Subscription  *Subscription
	PaymentMethod string
}

// TransactionBuilder charges subscriptions.
type TransactionBuilder interface {
	Query[Transaction]
	WithOption(key string, value any) TransactionBuilder
	ForMenu(menu string) TransactionBuilder
	ForSubscription(subscription *Subscription) TransactionBuilder
	SetPaymentMethod(method string) TransactionBuilder
	// Create charges the subscription for the menu. The payment method falls
	// back to the one of the subscription.
	Create(ctx context.Context, args TransactionCreate) (*Transaction, error)
}
