// Package commands contains the operations that change depot state: resolving recipients,
// receiving parcels, pickups, send-backs and customer registry edits.
// Every handler validates its command, runs inside one unit of work and commits at the end;
// a deferred Rollback discards the transaction on any early return.
package commands

import (
	"context"

	"depot/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	PickupRepoFactory interface {
		PickupRepository() ports.PickupRepository
	}

	// CustomerUoW is used by the resolver and the registry edits.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ParcelUoW is used by commands that only move parcels through their lifecycle.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW spans customers, parcels and pickups. Intake and bulk pickup need it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _ = uow.PickupRepository().Add(ctx, p)
	//   _ = uow.ParcelRepository().Update(ctx, parcel)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		ParcelRepoFactory
		PickupRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
