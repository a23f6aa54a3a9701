package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

type resourceRepos interface {
	DriverRepoFactory
	VehicleRepoFactory
}

// releaseShipmentResources hands the shipment's driver/vehicle pair back to
// the registry after a terminal transition. The shipment tracks whether its
// claim was already released, so retried transitions release at most once.
// mileageKm, when positive, is added to the vehicle's odometer in the same
// update. Caller must hold the driver and vehicle locks and persist the
// shipment.
func releaseShipmentResources(
	ctx context.Context,
	uow resourceRepos,
	registry services.ResourceRegistry,
	shp *shipment.Shipment,
	mileageKm int,
) error {
	first, err := shp.ReleaseClaim()
	if err != nil {
		return err
	}
	if !first {
		return nil
	}

	drv, err := uow.DriverRepository().Get(ctx, shp.DriverID())
	if err != nil {
		return err
	}
	veh, err := uow.VehicleRepository().Get(ctx, shp.VehicleID())
	if err != nil {
		return err
	}

	token, err := services.RestoreClaimToken(shp.DriverID(), shp.VehicleID())
	if err != nil {
		return err
	}
	if err = registry.Release(token, drv, veh); err != nil {
		return err
	}
	if mileageKm > 0 {
		if err = veh.AddMileage(mileageKm); err != nil {
			return err
		}
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return err
	}
	return uow.VehicleRepository().Update(ctx, veh)
}
