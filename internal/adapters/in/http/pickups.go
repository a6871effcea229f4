package http

import (
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/pickup"
	"depot/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// BulkPickup handles POST /api/v1/pickups - signs the selected parcels of one customer at once.
func (s *Server) BulkPickup(ctx echo.Context) error {
	var body servers.BulkPickupJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelID(body.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	parcelIDs, err := toKernelIDs(body.ParcelIds)
	if err != nil {
		return s.fail(ctx, err)
	}
	signature, err := decodeImage("signature", body.Signature)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewBulkPickupCommand(customerID, parcelIDs, pickup.Identification{
		SignerName: deref(body.SignerName),
		IDType:     deref(body.IdType),
		IDNumber:   deref(body.IdNumber),
	}, signature)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.BulkPickup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.IncrementPickups()
	s.metrics.AddParcelsSigned(result.Count)

	return ctx.JSON(http.StatusCreated, servers.PickupResult{
		Id:    result.PickupID.Bytes(),
		Count: result.Count,
	})
}

// GetPickups handles GET /api/v1/pickups - the pickup history.
func (s *Server) GetPickups(ctx echo.Context) error {
	entries, err := s.handlers.PickupHistory.Handle(ctx.Request().Context(), queries.NewGetPickupHistoryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.PickupHistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = servers.PickupHistoryEntry{
			Id:           e.ID.Bytes(),
			CustomerId:   e.CustomerID.Bytes(),
			CustomerName: e.CustomerName,
			SignerName:   e.SignerName,
			IdType:       e.IDType,
			IdNumber:     e.IDNumber,
			Timestamp:    e.Timestamp,
			ParcelCount:  e.ParcelCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
