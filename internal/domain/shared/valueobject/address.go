package valueobject

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrAddressLineRequired indicates a non-empty address is missing line 1
var ErrAddressLineRequired = errors.New("address line 1 is required")

// Address is a value object representing a shipping address as it appears on
// an order. It is immutable - all operations return new Address instances.
// Address1 is required for a non-empty address; everything else is optional.
type Address struct {
	firstName  string
	lastName   string
	address1   string
	address2   string
	city       string
	province   string
	postalCode string
	phone      string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithAddress2 sets the second address line
func WithAddress2(address2 string) AddressOption {
	return func(a *Address) {
		a.address2 = strings.TrimSpace(address2)
	}
}

// WithPhone sets the contact phone
func WithPhone(phone string) AddressOption {
	return func(a *Address) {
		a.phone = strings.TrimSpace(phone)
	}
}

// NewAddress creates a new Address. Address1 is the only required field; a
// blank address1 yields an error so callers can distinguish "no address" from
// a partially filled one.
func NewAddress(firstName, lastName, address1, city, province, postalCode string, opts ...AddressOption) (Address, error) {
	address1 = strings.TrimSpace(address1)
	if address1 == "" {
		return Address{}, ErrAddressLineRequired
	}

	addr := Address{
		firstName:  strings.TrimSpace(firstName),
		lastName:   strings.TrimSpace(lastName),
		address1:   address1,
		city:       strings.TrimSpace(city),
		province:   strings.TrimSpace(province),
		postalCode: strings.TrimSpace(postalCode),
	}

	for _, opt := range opts {
		opt(&addr)
	}

	return addr, nil
}

// MustNewAddress creates a new Address, panics on error
func MustNewAddress(firstName, lastName, address1, city, province, postalCode string, opts ...AddressOption) Address {
	addr, err := NewAddress(firstName, lastName, address1, city, province, postalCode, opts...)
	if err != nil {
		panic(err)
	}
	return addr
}

// EmptyAddress returns an empty address (for orders without a shipping address)
func EmptyAddress() Address {
	return Address{}
}

// FirstName returns the recipient first name
func (a Address) FirstName() string {
	return a.firstName
}

// LastName returns the recipient last name
func (a Address) LastName() string {
	return a.lastName
}

// Address1 returns the first address line
func (a Address) Address1() string {
	return a.address1
}

// Address2 returns the second address line
func (a Address) Address2() string {
	return a.address2
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// Province returns the province or state
func (a Address) Province() string {
	return a.province
}

// PostalCode returns the postal code
func (a Address) PostalCode() string {
	return a.postalCode
}

// Phone returns the contact phone
func (a Address) Phone() string {
	return a.phone
}

// IsEmpty returns true if the address carries no street line. An address
// without a line 1 is not deliverable and is treated as absent.
func (a Address) IsEmpty() bool {
	return a.address1 == ""
}

// RecipientName returns the recipient's full name, or "" when unnamed
func (a Address) RecipientName() string {
	name := strings.TrimSpace(a.firstName + " " + a.lastName)
	return name
}

// HasRecipientName returns true if either name field is set
func (a Address) HasRecipientName() bool {
	return a.firstName != "" || a.lastName != ""
}

// WithRecipientName returns a copy of the address with the recipient name
// replaced. Used when the canonical address lacks a name and the order's
// customer name is borrowed instead.
func (a Address) WithRecipientName(firstName, lastName string) Address {
	a.firstName = strings.TrimSpace(firstName)
	a.lastName = strings.TrimSpace(lastName)
	return a
}

// Lines returns the address formatted as label lines, skipping blanks.
// Order: recipient, address1, address2, "city, province", postal code, phone.
func (a Address) Lines() []string {
	if a.IsEmpty() {
		return nil
	}

	lines := make([]string, 0, 6)
	if name := a.RecipientName(); name != "" {
		lines = append(lines, name)
	}
	lines = append(lines, a.address1)
	if a.address2 != "" {
		lines = append(lines, a.address2)
	}
	locality := a.city
	if a.province != "" {
		if locality != "" {
			locality += ", " + a.province
		} else {
			locality = a.province
		}
	}
	if locality != "" {
		lines = append(lines, locality)
	}
	if a.postalCode != "" {
		lines = append(lines, a.postalCode)
	}
	if a.phone != "" {
		lines = append(lines, a.phone)
	}
	return lines
}

// Equals checks if two addresses are identical field by field
func (a Address) Equals(other Address) bool {
	return a == other
}

// addressJSON is the serialization shape for Address
type addressJSON struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"zip,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		FirstName:  a.firstName,
		LastName:   a.lastName,
		Address1:   a.address1,
		Address2:   a.address2,
		City:       a.city,
		Province:   a.province,
		PostalCode: a.postalCode,
		Phone:      a.phone,
	})
}

// UnmarshalJSON implements json.Unmarshaler. No validation is applied on the
// way in; stored addresses are trusted as written.
func (a *Address) UnmarshalJSON(data []byte) error {
	var raw addressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.firstName = raw.FirstName
	a.lastName = raw.LastName
	a.address1 = raw.Address1
	a.address2 = raw.Address2
	a.city = raw.City
	a.province = raw.Province
	a.postalCode = raw.PostalCode
	a.phone = raw.Phone
	return nil
}
