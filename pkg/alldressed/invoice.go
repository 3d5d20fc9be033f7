package alldressed

// Invoice is a bill issued to a customer.
type Invoice struct {
	Entity

	Currency     *Currency      `json:"-"`
	Lines        []*InvoiceLine `json:"-"`
	Order        *Order         `json:"-"`
	Transactions []*Transaction `json:"-"`
}

func (i *Invoice) relations() relations {
	return relations{
		"currency":     &i.Currency,
		"lines":        &i.Lines,
		"order":        &i.Order,
		"transactions": &i.Transactions,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Invoice) UnmarshalJSON(data []byte) error {
	return i.decode(data, i.relations())
}

// MarshalJSON implements json.Marshaler.
func (i Invoice) MarshalJSON() ([]byte, error) {
	return i.encode(i.relations())
}

// InvoiceLine is one billed product or package.
type InvoiceLine struct {
	Entity

	Sellable *Sellable `json:"-"`
}

func (l *InvoiceLine) relations() relations {
	return relations{"sellable": &l.Sellable}
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *InvoiceLine) UnmarshalJSON(data []byte) error {
	return l.decode(data, l.relations())
}

// MarshalJSON implements json.Marshaler.
func (l InvoiceLine) MarshalJSON() ([]byte, error) {
	return l.encode(l.relations())
}

// Transaction is a payment attempt.
type Transaction struct {
	Entity
}
