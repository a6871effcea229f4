package parcel

import (
	"fmt"

	"depot/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel held at the depot.
//
//	Pending ──┬──> Signed     (picked up by the recipient)
//	          └──> SentBack   (returned to the courier)
//
// A pending parcel may also be discarded (deleted). Signed and SentBack are final.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Signed
	SentBack
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Signed:   "signed",
		SentBack: "sent_back",
	}
}

// ParseStatus converts the stored text form back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a parcel status", s))
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s != Pending && s != Signed && s != SentBack {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored text form ("pending", "signed", "sent_back").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Signed || s == SentBack
}

// Sign transitions Pending to Signed.
func (s Status) Sign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to sign", s),
		)
	}
	return Signed, nil
}

// SendBack transitions Pending to SentBack.
func (s Status) SendBack() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to send back", s),
		)
	}
	return SentBack, nil
}

// ValidateDiscard allows deleting only pending parcels.
func (s Status) ValidateDiscard() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to discard", s),
		)
	}
	return nil
}
