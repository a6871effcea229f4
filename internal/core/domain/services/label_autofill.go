package services

import (
	"strings"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/parcel"
)

// LabelAutofill completes a scanned label with the contact data of a known customer.
type LabelAutofill struct {
	normalizer Normalizer
}

func NewLabelAutofill(normalizer Normalizer) LabelAutofill {
	return LabelAutofill{normalizer: normalizer}
}

// Fill copies phone, postal and address from c into empty fields of label.
// A locked customer is skipped entirely and label is returned unchanged.
// The address is rebuilt as "<street>, <city>, <province>" from the stored street.
func (a LabelAutofill) Fill(label parcel.Label, c *customer.Customer) (parcel.Label, bool) {
	if c == nil || c.Locked() {
		return label, false
	}

	filled := false
	if strings.TrimSpace(label.Phone) == "" && c.Phone() != "" {
		label.Phone = c.Phone()
		filled = true
	}
	if strings.TrimSpace(label.Postal) == "" && c.Postal() != "" {
		label.Postal = c.Postal()
		filled = true
	}
	if strings.TrimSpace(label.Address) == "" && c.Street() != "" {
		label.Address = c.Street() + ", " + a.normalizer.Region().Locality()
		filled = true
	}

	return label, filled
}

// Normalize applies the normalizer to the postal and address fields of label.
func (a LabelAutofill) Normalize(label parcel.Label) parcel.Label {
	label.Postal = a.normalizer.NormalizePostal(label.Postal)
	label.Address = a.normalizer.NormalizeAddress(label.Address, label.Postal)
	return label
}
