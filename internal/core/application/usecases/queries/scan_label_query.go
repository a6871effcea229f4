package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrScanLabelQueryIsNotConstructed = errors.New(
	"ScanLabelQuery must be created via NewScanLabelQuery constructor",
)

// ScanLabelQuery reads a label photo and proposes intake fields. Nothing is stored.
type ScanLabelQuery struct {
	image []byte

	guard guard.ConstructorGuard
}

func NewScanLabelQuery(image []byte) (ScanLabelQuery, error) {
	if len(image) == 0 {
		return ScanLabelQuery{}, errs.NewValueIsRequiredError("image")
	}

	return ScanLabelQuery{
		image: image,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ScanLabelQuery) Validate() error {
	return q.guard.Validate(ErrScanLabelQueryIsNotConstructed)
}

func (q ScanLabelQuery) Image() []byte {
	return q.image
}

// ScanLabelQueryResponse is the candidate label a clerk reviews before intake.
// Recognized is false when the OCR engine failed or returned no text; the label is then empty.
// MissingFields names the required fields the clerk still has to type in.
type ScanLabelQueryResponse struct {
	Label          parcel.Label
	Recognized     bool
	MissingFields  []string
	CustomerID     *kernel.UUID
	CustomerLocked bool
}
