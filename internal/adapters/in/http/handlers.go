package http

import (
	"context"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
)

type ScanLabelHandler interface {
	Handle(ctx context.Context, query queries.ScanLabelQuery) (queries.ScanLabelQueryResponse, error)
}

type IntakeParcelHandler interface {
	Handle(ctx context.Context, cmd commands.IntakeParcelCommand) (commands.IntakeParcelResult, error)
}

type SignParcelHandler interface {
	Handle(ctx context.Context, cmd commands.SignParcelCommand) error
}

type DiscardParcelHandler interface {
	Handle(ctx context.Context, cmd commands.DiscardParcelCommand) error
}

type SendBackParcelsHandler interface {
	Handle(ctx context.Context, cmd commands.SendBackParcelsCommand) (int, error)
}

type NotifyRecipientsHandler interface {
	Handle(ctx context.Context, cmd commands.NotifyRecipientsCommand) ([]commands.CallResult, error)
}

type BulkPickupHandler interface {
	Handle(ctx context.Context, cmd commands.BulkPickupCommand) (commands.BulkPickupResult, error)
}

type RegisterCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterCustomerCommand) error
}

type UpdateCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) error
}

type DeleteCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteCustomerCommand) error
}

type PendingParcelsHandler interface {
	Handle(ctx context.Context, query queries.GetPendingParcelsQuery) ([]queries.ParcelView, error)
}

type ArchivedParcelsHandler interface {
	Handle(ctx context.Context, query queries.GetArchivedParcelsQuery) ([]queries.ParcelView, error)
}

type StaleParcelsHandler interface {
	Handle(ctx context.Context, query queries.GetStaleParcelsQuery) ([]queries.ParcelView, error)
}

type CustomerParcelsHandler interface {
	Handle(ctx context.Context, query queries.GetCustomerParcelsQuery) ([]queries.ParcelView, error)
}

type PickupHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetPickupHistoryQuery) ([]queries.PickupHistoryEntry, error)
}

type TrackParcelHandler interface {
	Handle(ctx context.Context, query queries.TrackParcelQuery) (queries.TrackParcelQueryResponse, error)
}

type CustomersHandler interface {
	Handle(ctx context.Context, query queries.GetCustomersQuery) ([]queries.GetCustomersQueryResponse, error)
}

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Commands
	IntakeParcel     IntakeParcelHandler
	SignParcel       SignParcelHandler
	DiscardParcel    DiscardParcelHandler
	SendBackParcels  SendBackParcelsHandler
	NotifyRecipients NotifyRecipientsHandler
	BulkPickup       BulkPickupHandler
	RegisterCustomer RegisterCustomerHandler
	UpdateCustomer   UpdateCustomerHandler
	DeleteCustomer   DeleteCustomerHandler

	// Queries
	ScanLabel       ScanLabelHandler
	PendingParcels  PendingParcelsHandler
	ArchivedParcels ArchivedParcelsHandler
	StaleParcels    StaleParcelsHandler
	CustomerParcels CustomerParcelsHandler
	PickupHistory   PickupHistoryHandler
	TrackParcel     TrackParcelHandler
	Customers       CustomersHandler
}
