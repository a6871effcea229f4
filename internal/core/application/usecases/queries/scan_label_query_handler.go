package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"
	"depot/internal/pkg/errs"
)

// Field names reported in ScanLabelQueryResponse.MissingFields.
const (
	FieldName     = "Name"
	FieldTracking = "Tracking"
	FieldPostal   = "Postal"
)

// CustomerFinder looks up registered customers for label auto-fill.
type CustomerFinder interface {
	FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	FindByName(ctx context.Context, name string, phoneless bool) (*customer.Customer, error)
}

type ScanLabelQueryHandler struct {
	recognizer ports.Recognizer
	parser     services.LabelParser
	autofill   services.LabelAutofill
	finder     CustomerFinder
	timeout    time.Duration
	logger     *slog.Logger
}

func NewScanLabelQueryHandler(
	recognizer ports.Recognizer,
	parser services.LabelParser,
	autofill services.LabelAutofill,
	finder CustomerFinder,
	timeout time.Duration,
	logger *slog.Logger,
) ScanLabelQueryHandler {
	return ScanLabelQueryHandler{
		recognizer: recognizer,
		parser:     parser,
		autofill:   autofill,
		finder:     finder,
		timeout:    timeout,
		logger:     logger.With("component", "scan_label_handler"),
	}
}

// Handle recognizes, parses and completes the label. OCR failures are not errors:
// the response comes back unrecognized with every field missing. Only registry
// failures other than not found are returned.
func (h ScanLabelQueryHandler) Handle(ctx context.Context, query ScanLabelQuery) (ScanLabelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ScanLabelQueryResponse{}, err
	}

	text, err := h.recognize(ctx, query.Image())
	if err != nil {
		h.logger.WarnContext(ctx, "label recognition failed", "error", err)
	}
	if strings.TrimSpace(text) == "" {
		return ScanLabelQueryResponse{
			MissingFields: []string{FieldName, FieldTracking, FieldPostal},
		}, nil
	}

	resp := ScanLabelQueryResponse{Recognized: true}
	label := h.parser.Parse(text)

	c, err := h.lookup(ctx, label.Phone, label.RecipientName)
	if err != nil {
		return ScanLabelQueryResponse{}, err
	}
	if c != nil {
		id := c.ID()
		resp.CustomerID = &id
		resp.CustomerLocked = c.Locked()
		label, _ = h.autofill.Fill(label, c)
	}

	// Before normalizing: an empty postal normalizes to the area prefix.
	resp.MissingFields = missingFields(label.RecipientName, label.Tracking, label.Postal)
	resp.Label = h.autofill.Normalize(label)

	return resp, nil
}

func (h ScanLabelQueryHandler) recognize(ctx context.Context, image []byte) (string, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	text, err := h.recognizer.Recognize(ctx, image)
	if err != nil {
		if errors.Is(err, errs.ErrRecognitionFailed) {
			return "", err
		}
		return "", errs.NewRecognitionFailedError(err)
	}
	return text, nil
}

// lookup finds the recipient by phone, then by name. When the label carries a phone
// only phone-less customers qualify for the name match.
func (h ScanLabelQueryHandler) lookup(ctx context.Context, phone, name string) (*customer.Customer, error) {
	if phone != "" {
		c, err := h.finder.FindByPhone(ctx, phone)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	if name == "" {
		return nil, nil
	}

	c, err := h.finder.FindByName(ctx, name, phone != "")
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func missingFields(name, tracking, postal string) []string {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(tracking) == "" {
		missing = append(missing, FieldTracking)
	}
	if strings.TrimSpace(postal) == "" {
		missing = append(missing, FieldPostal)
	}
	return missing
}

