package models

// AddressType tags what an address is used for.
type AddressType string

const (
	AddressTypeHome     AddressType = "home"
	AddressTypeOffice   AddressType = "office"
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

// DefaultCountry is applied when an address is stored without a country.
const DefaultCountry = "USA"

// ValidAddressType reports whether t is one of the known address tags.
func ValidAddressType(t AddressType) bool {
	switch t {
	case AddressTypeHome, AddressTypeOffice, AddressTypeBilling, AddressTypeShipping:
		return true
	}
	return false
}

// Address is a postal address. It may belong to a customer (home, office)
// or exist only to be referenced by an order or an order item.
type Address struct {
	ID      uint        `gorm:"primaryKey" json:"id"`
	Type    AddressType `gorm:"size:20" json:"type"`
	Street  string      `gorm:"size:255" json:"street"`
	City    string      `gorm:"size:100" json:"city"`
	State   string      `gorm:"size:50" json:"state"`
	ZipCode string      `gorm:"size:20;index" json:"zip_code"`
	Country string      `gorm:"size:100;default:'USA'" json:"country"`

	CustomerID *uint     `gorm:"index" json:"customer_id,omitempty"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}
