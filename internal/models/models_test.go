package models

import (
	"testing"
)

func TestValidAddressType(t *testing.T) {
	for _, at := range []AddressType{AddressTypeHome, AddressTypeOffice, AddressTypeBilling, AddressTypeShipping} {
		if !ValidAddressType(at) {
			t.Errorf("ValidAddressType(%q) = false, want true", at)
		}
	}
	for _, at := range []AddressType{"", "HOME", "warehouse"} {
		if ValidAddressType(at) {
			t.Errorf("ValidAddressType(%q) = true, want false", at)
		}
	}
}

func TestOrder_BeforeCreateStampsTimestamp(t *testing.T) {
	o := &Order{}
	if err := o.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if o.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
	if o.Timestamp.Location().String() != "UTC" {
		t.Errorf("expected UTC timestamp, got %s", o.Timestamp.Location())
	}
}

func TestAllMatchesTableNames(t *testing.T) {
	if len(All()) != len(TableNames) {
		t.Fatalf("All() has %d models, TableNames has %d", len(All()), len(TableNames))
	}
}
