package http

import (
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ScanLabel handles POST /api/v1/labels/scan - proposes intake fields from a label photo.
func (s *Server) ScanLabel(ctx echo.Context) error {
	var body servers.ScanLabelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	image, err := decodeImage("image", body.Image)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewScanLabelQuery(image)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.ScanLabel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.IncrementLabelScans(resp.Recognized)

	return ctx.JSON(http.StatusOK, servers.ScanLabelResponse{
		Label:          toLabel(resp.Label),
		Recognized:     resp.Recognized,
		MissingFields:  resp.MissingFields,
		CustomerId:     optionalID(resp.CustomerID),
		CustomerLocked: resp.CustomerLocked,
	})
}

// IntakeParcel handles POST /api/v1/parcels - records a received parcel.
func (s *Server) IntakeParcel(ctx echo.Context) error {
	var body servers.IntakeParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	image, err := decodeImage("label image", deref(body.LabelImage))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewIntakeParcelCommand(parcel.Label{
		Courier:       body.Courier,
		RecipientName: body.Name,
		Tracking:      body.Tracking,
		Phone:         deref(body.Phone),
		Postal:        deref(body.Postal),
		Address:       deref(body.Address),
	}, image, deref(body.CreatedBy))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.IntakeParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.IncrementParcelsReceived()

	response := servers.IntakeResult{
		Id:    result.ParcelID.Bytes(),
		Label: toLabel(result.Label),
	}
	if result.CustomerID.Validate() == nil {
		response.CustomerId = optionalID(&result.CustomerID)
	}
	if result.Call != nil {
		s.metrics.ObserveCall(result.Call.Delivered, result.Call.Err)
		outcome := toCallOutcome(*result.Call)
		response.Call = &outcome
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetPendingParcels handles GET /api/v1/parcels/pending.
func (s *Server) GetPendingParcels(ctx echo.Context) error {
	views, err := s.handlers.PendingParcels.Handle(ctx.Request().Context(), queries.NewGetPendingParcelsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcels(views))
}

// GetArchivedParcels handles GET /api/v1/parcels/archived.
func (s *Server) GetArchivedParcels(ctx echo.Context, params servers.GetArchivedParcelsParams) error {
	query := queries.NewGetArchivedParcelsQuery(deref(params.Search))

	views, err := s.handlers.ArchivedParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcels(views))
}

// GetStaleParcels handles GET /api/v1/parcels/stale.
func (s *Server) GetStaleParcels(ctx echo.Context, params servers.GetStaleParcelsParams) error {
	days := queries.DefaultStaleAfterDays
	if params.Days != nil {
		days = *params.Days
	}

	query, err := queries.NewGetStaleParcelsQuery(days)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.StaleParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcels(views))
}

// SignParcel handles POST /api/v1/parcels/{parcelId}/sign.
func (s *Server) SignParcel(ctx echo.Context, parcelID servers.ParcelId) error {
	var body servers.SignParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}
	signature, err := decodeImage("signature", body.Signature)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSignParcelCommand(id, signature)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SignParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.AddParcelsSigned(1)

	return ctx.NoContent(http.StatusNoContent)
}

// DiscardParcel handles DELETE /api/v1/parcels/{parcelId}.
func (s *Server) DiscardParcel(ctx echo.Context, parcelID servers.ParcelId) error {
	id, err := toKernelID(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDiscardParcelCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DiscardParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendBackParcels handles POST /api/v1/parcels/sent-back.
func (s *Server) SendBackParcels(ctx echo.Context) error {
	var body servers.SendBackParcelsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	ids, err := toKernelIDs(body.ParcelIds)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSendBackParcelsCommand(ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	count, err := s.handlers.SendBackParcels.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.AddParcelsSentBack(count)

	return ctx.JSON(http.StatusOK, servers.SentBackResult{Count: count})
}

// NotifyRecipients handles POST /api/v1/parcels/notify. Failed calls are reported per parcel.
func (s *Server) NotifyRecipients(ctx echo.Context) error {
	var body servers.NotifyRecipientsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	ids, err := toKernelIDs(body.ParcelIds)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewNotifyRecipientsCommand(ids)
	if err != nil {
		return s.fail(ctx, err)
	}

	results, err := s.handlers.NotifyRecipients.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.CallOutcome, len(results))
	for i, r := range results {
		s.metrics.ObserveCall(r.Delivered, r.Err)
		response[i] = toCallOutcome(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackParcel handles GET /api/v1/track/{tracking} - the public status lookup.
func (s *Server) TrackParcel(ctx echo.Context, tracking string) error {
	query, err := queries.NewTrackParcelQuery(tracking)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.TrackParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TrackedParcel{
		Tracking:  resp.Tracking,
		Courier:   resp.Courier,
		Status:    servers.ParcelStatus(resp.Status.String()),
		CreatedAt: resp.CreatedAt,
		SignedAt:  resp.SignedAt,
	})
}
