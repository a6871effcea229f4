package cmd

import (
	"log/slog"

	httpin "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/callsystem"
	"depot/internal/adapters/out/ocr/tesseract"
	"depot/internal/adapters/out/postgres"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"
	"depot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	normalizer services.Normalizer
	caller     ports.Caller
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	region, err := configs.Region.Region()
	if err != nil {
		return CompositionRoot{}, err
	}

	var caller ports.Caller = callsystem.NewLogCaller(logger)
	if configs.CallSystem.Enabled() {
		client, err := callsystem.NewClient(configs.CallSystem.Client())
		if err != nil {
			return CompositionRoot{}, err
		}
		caller = client
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		normalizer: services.NewNormalizer(region),
		caller:     caller,
		logger:     logger,
	}, nil
}

// Commands

func (c *CompositionRoot) CreateResolveCustomerCommandHandler() commands.ResolveCustomerCommandHandler {
	return commands.NewResolveCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateIntakeParcelCommandHandler() commands.IntakeParcelCommandHandler {
	resolver := c.CreateResolveCustomerCommandHandler()

	// Arrival calls are opt-in; a nil caller makes intake skip them.
	var caller ports.Caller
	if c.configs.CallSystem.ArrivalCalls {
		caller = c.caller
	}

	return commands.NewIntakeParcelCommandHandler(
		c.sharedUoWFactory(),
		&resolver,
		c.normalizer,
		caller,
		c.configs.CallSystem.Timeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSignParcelCommandHandler() commands.SignParcelCommandHandler {
	return commands.NewSignParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDiscardParcelCommandHandler() commands.DiscardParcelCommandHandler {
	return commands.NewDiscardParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateSendBackParcelsCommandHandler() commands.SendBackParcelsCommandHandler {
	return commands.NewSendBackParcelsCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateNotifyRecipientsCommandHandler() commands.NotifyRecipientsCommandHandler {
	return commands.NewNotifyRecipientsCommandHandler(
		c.parcelUoWFactory(),
		c.caller,
		c.configs.CallSystem.Timeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateBulkPickupCommandHandler() commands.BulkPickupCommandHandler {
	return commands.NewBulkPickupCommandHandler(c.sharedUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

// Queries

func (c *CompositionRoot) CreateScanLabelQueryHandler() queries.ScanLabelQueryHandler {
	return queries.NewScanLabelQueryHandler(
		tesseract.NewRecognizer(c.configs.OCR.Languages...),
		services.NewLabelParser(),
		services.NewLabelAutofill(c.normalizer),
		c.uowFactory.Create().CustomerRepository(),
		c.configs.OCR.Timeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetPendingParcelsQueryHandler() queries.GetPendingParcelsQueryHandler {
	return queries.NewGetPendingParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArchivedParcelsQueryHandler() queries.GetArchivedParcelsQueryHandler {
	return queries.NewGetArchivedParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleParcelsQueryHandler() queries.GetStaleParcelsQueryHandler {
	return queries.NewGetStaleParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerParcelsQueryHandler() queries.GetCustomerParcelsQueryHandler {
	return queries.NewGetCustomerParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupHistoryQueryHandler() queries.GetPickupHistoryQueryHandler {
	return queries.NewGetPickupHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	intake := c.CreateIntakeParcelCommandHandler()
	sign := c.CreateSignParcelCommandHandler()
	discard := c.CreateDiscardParcelCommandHandler()
	sendBack := c.CreateSendBackParcelsCommandHandler()
	notify := c.CreateNotifyRecipientsCommandHandler()
	pickup := c.CreateBulkPickupCommandHandler()
	register := c.CreateRegisterCustomerCommandHandler()
	update := c.CreateUpdateCustomerCommandHandler()
	remove := c.CreateDeleteCustomerCommandHandler()

	return httpin.Handlers{
		IntakeParcel:     &intake,
		SignParcel:       &sign,
		DiscardParcel:    &discard,
		SendBackParcels:  &sendBack,
		NotifyRecipients: &notify,
		BulkPickup:       &pickup,
		RegisterCustomer: &register,
		UpdateCustomer:   &update,
		DeleteCustomer:   &remove,

		ScanLabel:       c.CreateScanLabelQueryHandler(),
		PendingParcels:  c.CreateGetPendingParcelsQueryHandler(),
		ArchivedParcels: c.CreateGetArchivedParcelsQueryHandler(),
		StaleParcels:    c.CreateGetStaleParcelsQueryHandler(),
		CustomerParcels: c.CreateGetCustomerParcelsQueryHandler(),
		PickupHistory:   c.CreateGetPickupHistoryQueryHandler(),
		TrackParcel:     c.CreateTrackParcelQueryHandler(),
		Customers:       c.CreateGetCustomersQueryHandler(),
	}
}

// Jobs

func (c *CompositionRoot) CreateReminderCallJob() *jobs.ReminderCallJob {
	notify := c.CreateNotifyRecipientsCommandHandler()
	return jobs.NewReminderCallJob(
		c.CreateGetStaleParcelsQueryHandler(),
		&notify,
		c.configs.Reminder.Schedule,
		c.configs.Reminder.AfterDays,
		c.logger,
	)
}

// JobManager registers the enabled background jobs.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	jm := jobs.NewJobManager()
	if c.configs.Reminder.Enabled {
		jm.Register("reminder call", c.CreateReminderCallJob())
	}
	return jm
}

func (c *CompositionRoot) sharedUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
