package customer_test

import (
	"testing"
	"time"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should trim fields and start unlocked", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, customer.Contact{
			Name:   "  JOHN SMITH ",
			Phone:  "705-555-1234",
			Street: "12 Main St ",
			Postal: "P5A 2S9",
		})

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "JOHN SMITH", c.Name())
		assert.Equal(t, "705-555-1234", c.Phone())
		assert.Equal(t, "12 Main St", c.Street())
		assert.False(t, c.Locked())
		assert.WithinDuration(t, time.Now().UTC(), c.CreatedAt(), time.Minute)
	})

	t.Run("should require a name", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), customer.Contact{Name: "   "})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should join id and name errors", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, customer.Contact{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
	})
}

func TestRestoreCustomer(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	c, err := customer.RestoreCustomer(kernel.NewUUID(), customer.Contact{Name: "Mary Jones"}, true, created)

	require.NoError(t, err)
	assert.True(t, c.Locked())
	assert.Equal(t, created, c.CreatedAt())
}

func TestCustomer_Validate(t *testing.T) {
	var nilCustomer *customer.Customer
	assert.Equal(t, customer.ErrCustomerIsNotConstructed, nilCustomer.Validate())
	assert.Equal(t, customer.ErrCustomerIsNotConstructed, (&customer.Customer{}).Validate())
}

func TestCustomer_FillBlanks(t *testing.T) {
	t.Run("should only fill empty fields", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), customer.Contact{Name: "Mary Jones", Postal: "P5A 1A1"})

		changed := c.FillBlanks(customer.Contact{
			Phone:  "705-555-0000",
			Street: "3 Oak Ave",
			Postal: "P5A 9Z9",
		})

		assert.True(t, changed)
		assert.Equal(t, "705-555-0000", c.Phone())
		assert.Equal(t, "3 Oak Ave", c.Street())
		assert.Equal(t, "P5A 1A1", c.Postal(), "known postal must not be overwritten")
	})

	t.Run("should report no change when nothing is missing", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), customer.Contact{
			Name: "Mary Jones", Phone: "1", Email: "m@x", Street: "s", Postal: "p",
		})

		assert.False(t, c.FillBlanks(customer.Contact{Phone: "2", Street: "t"}))
		assert.Equal(t, "1", c.Phone())
	})

	t.Run("should not touch a locked customer", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), customer.Contact{Name: "Mary Jones"})
		c.Lock()

		changed := c.FillBlanks(customer.Contact{Phone: "705-555-0000", Street: "3 Oak Ave"})

		assert.False(t, changed)
		assert.Empty(t, c.Phone())
		assert.Empty(t, c.Street())
	})
}

func TestCustomer_UpdateContact(t *testing.T) {
	c, _ := customer.NewCustomer(kernel.NewUUID(), customer.Contact{Name: "Mary Jones", Phone: "1"})
	c.Lock()

	err := c.UpdateContact(customer.Contact{Name: "Mary J. Jones", Phone: "", Street: "9 Elm"})

	require.NoError(t, err)
	assert.Equal(t, "Mary J. Jones", c.Name())
	assert.Empty(t, c.Phone())
	assert.Equal(t, "9 Elm", c.Contact().Street)
	assert.True(t, c.Locked(), "explicit edits keep the lock flag")

	require.ErrorIs(t, c.UpdateContact(customer.Contact{}), errs.ErrValueIsRequired)
	assert.Equal(t, "Mary J. Jones", c.Name(), "failed edit leaves name unchanged")

	c.Unlock()
	assert.False(t, c.Locked())
}
