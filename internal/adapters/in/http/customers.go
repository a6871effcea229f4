package http

import (
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func toContact(body servers.CustomerInput) customer.Contact {
	return customer.Contact{
		Name:   body.Name,
		Phone:  deref(body.Phone),
		Email:  deref(body.Email),
		Street: deref(body.Street),
		Postal: deref(body.Postal),
	}
}

func locked(body servers.CustomerInput) bool {
	return body.Locked != nil && *body.Locked
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.handlers.Customers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Customer, len(customers))
	for i, c := range customers {
		response[i] = servers.Customer{
			Id:        c.ID.Bytes(),
			Name:      c.Name,
			Phone:     c.Phone,
			Email:     c.Email,
			Street:    c.Street,
			Postal:    c.Postal,
			Locked:    c.Locked,
			CreatedAt: c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body servers.RegisterCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(toContact(body), locked(body))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedCustomer{Id: cmd.CustomerID().Bytes()})
}

// UpdateCustomer handles PUT /api/v1/customers/{customerId}.
func (s *Server) UpdateCustomer(ctx echo.Context, customerID servers.CustomerId) error {
	var body servers.UpdateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, toContact(body), locked(body))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/{customerId}.
func (s *Server) DeleteCustomer(ctx echo.Context, customerID servers.CustomerId) error {
	id, err := toKernelID(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerParcels handles GET /api/v1/customers/{customerId}/parcels. Status defaults to pending.
func (s *Server) GetCustomerParcels(
	ctx echo.Context,
	customerID servers.CustomerId,
	params servers.GetCustomerParcelsParams,
) error {
	id, err := toKernelID(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	status := parcel.Unknown
	if params.Status != nil {
		if status, err = parcel.ParseStatus(string(*params.Status)); err != nil {
			return s.fail(ctx, err)
		}
	}

	query, err := queries.NewGetCustomerParcelsQuery(id, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.CustomerParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcels(views))
}
