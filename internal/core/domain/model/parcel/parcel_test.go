package parcel_test

import (
	"testing"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLabel() parcel.Label {
	return parcel.Label{
		Courier:       "Purolator",
		RecipientName: "JOHN SMITH",
		Tracking:      "123456789012",
		Phone:         "705-555-1234",
		Postal:        "P5A 2S9",
		Address:       "12 Main St, Elliot Lake, ON",
	}
}

func TestNewParcel(t *testing.T) {
	t.Run("should start pending and unsigned", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		p, err := parcel.NewParcel(id, validLabel(), []byte("jpeg"), "front-desk", &customerID)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, parcel.Pending, p.Status())
		assert.Nil(t, p.SignedAt())
		assert.Empty(t, p.Signature())
		assert.Nil(t, p.Pickup())
		assert.True(t, p.BelongsTo(customerID))
		assert.Equal(t, "front-desk", p.CreatedBy())
		assert.Equal(t, []byte("jpeg"), p.LabelImage())
	})

	t.Run("should accept an unresolved recipient", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", nil)

		require.NoError(t, err)
		assert.Nil(t, p.Customer())
		assert.False(t, p.BelongsTo(kernel.NewUUID()))
	})

	t.Run("should report every missing required field", func(t *testing.T) {
		label := validLabel()
		label.Courier = " "
		label.RecipientName = ""
		label.Tracking = ""

		p, err := parcel.NewParcel(kernel.NewUUID(), label, nil, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "courier")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "tracking")
	})

	t.Run("should reject a zero customer id", func(t *testing.T) {
		zero := kernel.UUID{}

		_, err := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", &zero)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreParcel(t *testing.T) {
	signedAt := time.Date(2024, 5, 2, 15, 4, 0, 0, time.UTC)
	pickupID := kernel.NewUUID()

	p, err := parcel.RestoreParcel(parcel.Snapshot{
		ID:        kernel.NewUUID(),
		Label:     validLabel(),
		Signature: []byte("sig"),
		Status:    parcel.Signed,
		CreatedAt: signedAt.Add(-48 * time.Hour),
		SignedAt:  &signedAt,
		PickupID:  &pickupID,
	})

	require.NoError(t, err)
	assert.Equal(t, parcel.Signed, p.Status())
	assert.Equal(t, signedAt, *p.SignedAt())
	assert.True(t, p.Pickup().IsEqual(pickupID))

	_, err = parcel.RestoreParcel(parcel.Snapshot{ID: kernel.NewUUID(), Label: validLabel()})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid, "unknown status must not restore")
}

func TestParcel_Sign(t *testing.T) {
	at := time.Date(2024, 5, 2, 10, 0, 0, 0, time.FixedZone("EDT", -4*3600))

	t.Run("should sign a pending parcel", func(t *testing.T) {
		p, _ := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", nil)

		require.NoError(t, p.Sign([]byte("sig"), at))

		assert.Equal(t, parcel.Signed, p.Status())
		assert.Equal(t, []byte("sig"), p.Signature())
		require.NotNil(t, p.SignedAt())
		assert.Equal(t, time.UTC, p.SignedAt().Location())
		assert.True(t, at.Equal(*p.SignedAt()))
	})

	t.Run("should require a signature", func(t *testing.T) {
		p, _ := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", nil)

		require.ErrorIs(t, p.Sign(nil, at), errs.ErrValueIsRequired)
		assert.Equal(t, parcel.Pending, p.Status())
	})

	t.Run("should not sign twice", func(t *testing.T) {
		p, _ := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", nil)
		require.NoError(t, p.Sign([]byte("first"), at))

		err := p.Sign([]byte("second"), at.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, []byte("first"), p.Signature())
	})

	t.Run("should link the pickup", func(t *testing.T) {
		p, _ := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", nil)
		pickupID := kernel.NewUUID()

		require.NoError(t, p.SignForPickup(pickupID, []byte("sig"), at))

		assert.True(t, p.Pickup().IsEqual(pickupID))
	})

	t.Run("should not link a pickup when signing fails", func(t *testing.T) {
		p, _ := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", nil)
		require.NoError(t, p.SendBack())

		require.Error(t, p.SignForPickup(kernel.NewUUID(), []byte("sig"), at))
		assert.Nil(t, p.Pickup())
	})
}

func TestParcel_SendBackAndDiscard(t *testing.T) {
	p, _ := parcel.NewParcel(kernel.NewUUID(), validLabel(), nil, "", nil)
	require.NoError(t, p.ValidateDiscard())

	require.NoError(t, p.SendBack())

	assert.Equal(t, parcel.SentBack, p.Status())
	require.ErrorIs(t, p.SendBack(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, p.ValidateDiscard(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, p.Sign([]byte("sig"), time.Now()), errs.ErrValueIsInvalid)
}
