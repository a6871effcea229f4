package http

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/generated/servers"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http_server"),
	}
}

// statusOf maps the errs taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrCollaboratorUnavailable), errors.Is(err, errs.ErrRecognitionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// decodeImage accepts plain base64 or a data URL ("data:image/png;base64,...").
func decodeImage(name, raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "data:") {
		i := strings.Index(raw, ",")
		if i < 0 {
			return nil, errs.NewValueIsInvalidError(name)
		}
		raw = raw[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return data, nil
}

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}

func toKernelIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		kid, err := kernel.UUIDFromGoogle(id)
		if err != nil {
			return nil, err
		}
		out = append(out, kid)
	}
	return out, nil
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toLabel(l parcel.Label) servers.Label {
	return servers.Label{
		Courier:  l.Courier,
		Name:     l.RecipientName,
		Tracking: l.Tracking,
		Phone:    l.Phone,
		Postal:   l.Postal,
		Address:  l.Address,
	}
}

func toParcels(views []queries.ParcelView) []servers.Parcel {
	response := make([]servers.Parcel, len(views))
	for i, v := range views {
		response[i] = servers.Parcel{
			Id:         v.ID.Bytes(),
			Courier:    v.Courier,
			Name:       v.RecipientName,
			Tracking:   v.Tracking,
			Phone:      v.Phone,
			Postal:     v.Postal,
			Address:    v.Address,
			Status:     servers.ParcelStatus(v.Status.String()),
			CreatedAt:  v.CreatedAt,
			SignedAt:   v.SignedAt,
			CreatedBy:  v.CreatedBy,
			CustomerId: optionalID(v.CustomerID),
			PickupId:   optionalID(v.PickupID),
		}
	}
	return response
}

func toCallOutcome(r commands.CallResult) servers.CallOutcome {
	outcome := servers.CallOutcome{
		ParcelId:  r.ParcelID.Bytes(),
		Phone:     r.Phone,
		Delivered: r.Delivered,
	}
	if r.Err != nil {
		msg := r.Err.Error()
		outcome.Error = &msg
	}
	return outcome
}
