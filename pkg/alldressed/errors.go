package alldressed

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Configuration errors.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrMissingAccount = errors.New("no account configured for the All Dressed client")
	ErrMissingAPIKey  = errors.New("no API key configured for the All Dressed client")
)

// Missing context errors, raised before any request is sent.
var (
	ErrMissingCustomer         = errors.New("missing customer")
	ErrMissingSubscription     = errors.New("missing subscription")
	ErrMissingCurrency         = errors.New("missing currency")
	ErrMissingPaymentMethod    = errors.New("missing payment method")
	ErrMissingPaymentGateway   = errors.New("missing payment gateway")
	ErrMissingDeliverySchedule = errors.New("missing delivery schedule")
	ErrMissingMenu             = errors.New("missing menu")
	ErrMissingDiscountCode     = errors.New("missing discount code")
	ErrMissingBillingAddress   = errors.New("missing billing address")
	ErrMissingShippingAddress  = errors.New("missing shipping address")
	ErrMissingOrder            = errors.New("missing order")
	ErrMissingPostalCode       = errors.New("missing postal code")
	ErrMissingID               = errors.New("missing id")
	ErrInvalidMenuIdentifier   = errors.New("menu identifier must be a UUID or a Y-m-d date")
)

// Pagination errors.
var (
	ErrNoNextPage     = errors.New("there is no next page")
	ErrNoPreviousPage = errors.New("there is no previous page")
)

// ErrNotImplemented marks builder operations without a backing endpoint.
var ErrNotImplemented = errors.New("operation is not supported yet")

// ErrRequestFailed matches every *RequestError through errors.Is.
var ErrRequestFailed = errors.New("request failed")

// Not found errors, matched by *NotFoundError through errors.Is.
var (
	ErrZoneNotFound             = errors.New("zone not found")
	ErrDeliveryScheduleNotFound = errors.New("delivery schedule not found")
	ErrPackageNotFound          = errors.New("package not found")
	ErrProductNotFound          = errors.New("product not found")
	ErrDiscountNotFound         = errors.New("discount not found")
	ErrGiftCardNotFound         = errors.New("gift card not found")
)

// Resource names a resource type in not found errors.
type Resource string

// Resources with natural key lookups.
const (
	ResourceZone             Resource = "zone"
	ResourceDeliverySchedule Resource = "delivery schedule"
	ResourcePackage          Resource = "package"
	ResourceProduct          Resource = "product"
	ResourceDiscount         Resource = "discount"
	ResourceGiftCard         Resource = "gift card"
)

var notFoundSentinels = map[Resource]error{
	ResourceZone:             ErrZoneNotFound,
	ResourceDeliverySchedule: ErrDeliveryScheduleNotFound,
	ResourcePackage:          ErrPackageNotFound,
	ResourceProduct:          ErrProductNotFound,
	ResourceDiscount:         ErrDiscountNotFound,
	ResourceGiftCard:         ErrGiftCardNotFound,
}

// cardFields are the validation keys reported for card numbers.
var cardFields = []string{"number", "card_number", "card.number"}

// RequestError is returned for every non-2xx response.
type RequestError struct {
	StatusCode int
	Body       []byte
	Envelope   Envelope
}

func (e *RequestError) Error() string {
	if e.Envelope.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Envelope.Message)
	}

	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// ValidationError is returned for 422 responses.
type ValidationError struct {
	Request *RequestError
	Errors  map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}

	return "validation failed: " + strings.Join(slices.Sorted(maps.Keys(e.Errors)), ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Request
}

// HasError reports whether the given field failed validation.
func (e *ValidationError) HasError(field string) bool {
	return len(e.Errors[field]) > 0
}

// ErrorMessage returns the first message reported for field.
func (e *ValidationError) ErrorMessage(field string) string {
	if messages := e.Errors[field]; len(messages) > 0 {
		return messages[0]
	}

	return ""
}

// CardError is a validation failure on the payment card number.
type CardError struct {
	Field      string
	Message    string
	Validation *ValidationError
}

func (e *CardError) Error() string {
	return fmt.Sprintf("card rejected: %s", e.Message)
}

func (e *CardError) Unwrap() error {
	return e.Validation
}

// StatusCode is always 422.
func (e *CardError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// NotFoundError is a 404 on a lookup by natural key.
type NotFoundError struct {
	Resource Resource
	Key      string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the resource, e.g. ErrZoneNotFound.
func (e *NotFoundError) Is(target error) bool {
	sentinel, ok := notFoundSentinels[e.Resource]

	return ok && target == sentinel
}

// NewResponseError builds the error for a non-2xx response. A 422 yields a
// *ValidationError, or a *CardError when a card number field failed.
func NewResponseError(statusCode int, body []byte) error {
	envelope, _ := DecodeEnvelope(body)
	requestErr := &RequestError{
		StatusCode: statusCode,
		Body:       body,
		Envelope:   envelope,
	}

	if statusCode != http.StatusUnprocessableEntity {
		return requestErr
	}

	validation := &ValidationError{
		Request: requestErr,
		Errors:  envelope.Errors,
	}

	for _, field := range cardFields {
		if validation.HasError(field) {
			return &CardError{
				Field:      field,
				Message:    validation.ErrorMessage(field),
				Validation: validation,
			}
		}
	}

	return validation
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		return requestErr.StatusCode
	}

	return 0
}

// IsNotFound reports whether err is a 404, translated or not.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return true
	}

	return StatusCode(err) == http.StatusNotFound
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var validation *ValidationError

	return errors.As(err, &validation)
}

// Envelope is the standard response wrapper.
type Envelope struct {
	Data    json.RawMessage     `json:"data,omitempty"`
	Links   Links               `json:"links"`
	Meta    Meta                `json:"meta"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// DecodeEnvelope parses a response body. Bodies without a data key, such as
// a bare array, are kept whole as the data.
func DecodeEnvelope(body []byte) (Envelope, error) {
	var envelope Envelope

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return envelope, nil
	}

	if !strings.HasPrefix(trimmed, "{") {
		envelope.Data = json.RawMessage(trimmed)

		return envelope, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return envelope, fmt.Errorf("decoding envelope: %w", err)
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		// errors may come in shapes other than field => messages
		envelope = Envelope{Data: keys["data"], Message: rawString(keys["message"])}
	}

	if _, ok := keys["data"]; !ok && envelope.Message == "" && envelope.Errors == nil {
		envelope.Data = json.RawMessage(trimmed)
	}

	return envelope, nil
}

func rawString(raw json.RawMessage) string {
	var s string
	_ = json.Unmarshal(raw, &s)

	return s
}
