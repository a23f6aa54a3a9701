package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
)

// CreatedResponse acknowledges a mutation with the identifier it produced
// and, when the operation fixes an initial state, the resulting status.
type CreatedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// ListResponse carries a page of items together with the total row count.
type ListResponse[T any] struct {
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

// OrderResponse is the JSON shape of a single order.
type OrderResponse struct {
	ID                string    `json:"id"`
	OrderNumber       string    `json:"orderNumber"`
	CustomerID        string    `json:"customerId"`
	WarehouseID       string    `json:"warehouseId"`
	OrderDate         time.Time `json:"orderDate"`
	DeliveryDate      time.Time `json:"deliveryDate"`
	Description       string    `json:"description"`
	TotalWeightKg     float64   `json:"totalWeightKg"`
	TotalVolumeCubicM float64   `json:"totalVolumeCubicM"`
	Notes             string    `json:"notes"`
	Cost              float64   `json:"cost"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
}

func orderResponseFromView(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:                view.ID.String(),
		OrderNumber:       view.OrderNumber,
		CustomerID:        view.CustomerID.String(),
		WarehouseID:       view.WarehouseID.String(),
		OrderDate:         view.OrderDate,
		DeliveryDate:      view.DeliveryDate,
		Description:       view.Description,
		TotalWeightKg:     view.TotalWeightKg,
		TotalVolumeCubicM: view.TotalVolumeCubicM,
		Notes:             view.Notes,
		Cost:              view.Cost,
		Priority:          view.Priority,
		Status:            view.Status,
	}
}

// ShipmentResponse is the JSON shape of a single shipment.
type ShipmentResponse struct {
	ID                  string     `json:"id"`
	ShipmentNumber      string     `json:"shipmentNumber"`
	OrderID             string     `json:"orderId"`
	DriverID            string     `json:"driverId"`
	VehicleID           string     `json:"vehicleId"`
	RouteID             string     `json:"routeId"`
	Status              string     `json:"status"`
	DepartureTime       *time.Time `json:"departureTime"`
	ExpectedArrivalTime *time.Time `json:"expectedArrivalTime"`
	ActualArrivalTime   *time.Time `json:"actualArrivalTime"`
	DistanceTraveledKm  float64    `json:"distanceTraveledKm"`
	FuelConsumedLiters  float64    `json:"fuelConsumedLiters"`
	Cost                float64    `json:"cost"`
}

func shipmentResponseFromView(view queries.ShipmentView) ShipmentResponse {
	return ShipmentResponse{
		ID:                  view.ID.String(),
		ShipmentNumber:      view.ShipmentNumber,
		OrderID:             view.OrderID.String(),
		DriverID:            view.DriverID.String(),
		VehicleID:           view.VehicleID.String(),
		RouteID:             view.RouteID.String(),
		Status:              view.Status,
		DepartureTime:       view.DepartureTime,
		ExpectedArrivalTime: view.ExpectedArrivalTime,
		ActualArrivalTime:   view.ActualArrivalTime,
		DistanceTraveledKm:  view.DistanceTraveledKm,
		FuelConsumedLiters:  view.FuelConsumedLiters,
		Cost:                view.Cost,
	}
}

// DeliveryResponse is the JSON shape of a single delivery record.
type DeliveryResponse struct {
	ID                string     `json:"id"`
	ShipmentID        string     `json:"shipmentId"`
	RecipientName     string     `json:"recipientName"`
	RecipientPhone    string     `json:"recipientPhone"`
	RecipientAddress  string     `json:"recipientAddress"`
	RecipientCity     string     `json:"recipientCity"`
	DeliveryTime      *time.Time `json:"deliveryTime"`
	SignatureRequired bool       `json:"signatureRequired"`
	SignatureObtained bool       `json:"signatureObtained"`
	SignatureDate     *time.Time `json:"signatureDate"`
	Notes             string     `json:"notes"`
	Status            string     `json:"status"`
	Attempts          int        `json:"attempts"`
}

func deliveryResponseFromView(view queries.DeliveryView) DeliveryResponse {
	return DeliveryResponse{
		ID:                view.ID.String(),
		ShipmentID:        view.ShipmentID.String(),
		RecipientName:     view.RecipientName,
		RecipientPhone:    view.RecipientPhone,
		RecipientAddress:  view.RecipientAddress,
		RecipientCity:     view.RecipientCity,
		DeliveryTime:      view.DeliveryTime,
		SignatureRequired: view.SignatureRequired,
		SignatureObtained: view.SignatureObtained,
		SignatureDate:     view.SignatureDate,
		Notes:             view.Notes,
		Status:            view.Status,
		Attempts:          view.Attempts,
	}
}

// DriverResponse is the JSON shape of a single driver.
type DriverResponse struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	LicenseNumber   string    `json:"licenseNumber"`
	LicenseExpiry   time.Time `json:"licenseExpiry"`
	ExperienceYears int       `json:"experienceYears"`
	Rating          float64   `json:"rating"`
	IsAvailable     bool      `json:"isAvailable"`
}

func driverResponseFromView(view queries.DriverView) DriverResponse {
	return DriverResponse{
		ID:              view.ID.String(),
		EmployeeID:      view.EmployeeID.String(),
		LicenseNumber:   view.LicenseNumber,
		LicenseExpiry:   view.LicenseExpiry,
		ExperienceYears: view.ExperienceYears,
		Rating:          view.Rating,
		IsAvailable:     view.IsAvailable,
	}
}

// VehicleResponse is the JSON shape of a single vehicle.
type VehicleResponse struct {
	ID             string  `json:"id"`
	LicensePlate   string  `json:"licensePlate"`
	VehicleType    string  `json:"vehicleType"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Year           int     `json:"year"`
	CapacityKg     float64 `json:"capacityKg"`
	CapacityCubicM float64 `json:"capacityCubicM"`
	MileageKm      int     `json:"mileageKm"`
	IsAvailable    bool    `json:"isAvailable"`
}

func vehicleResponseFromView(view queries.VehicleView) VehicleResponse {
	return VehicleResponse{
		ID:             view.ID.String(),
		LicensePlate:   view.LicensePlate,
		VehicleType:    view.VehicleType,
		Brand:          view.Brand,
		Model:          view.Model,
		Year:           view.Year,
		CapacityKg:     view.CapacityKg,
		CapacityCubicM: view.CapacityCubicM,
		MileageKm:      view.MileageKm,
		IsAvailable:    view.IsAvailable,
	}
}

// RouteResponse is the JSON shape of a single route.
type RouteResponse struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	StartLocation            string  `json:"startLocation"`
	EndLocation              string  `json:"endLocation"`
	DistanceKm               float64 `json:"distanceKm"`
	EstimatedDurationMinutes int     `json:"estimatedDurationMinutes"`
	IsActive                 bool    `json:"isActive"`
}

func routeResponseFromView(view queries.RouteView) RouteResponse {
	return RouteResponse{
		ID:                       view.ID.String(),
		Name:                     view.Name,
		StartLocation:            view.StartLocation,
		EndLocation:              view.EndLocation,
		DistanceKm:               view.DistanceKm,
		EstimatedDurationMinutes: int(view.EstimatedDuration.Minutes()),
		IsActive:                 view.IsActive,
	}
}

// OrdersByStatusResponse is the JSON shape of the status breakdown.
type OrdersByStatusResponse struct {
	Counts map[string]int64 `json:"counts"`
}

// RevenueResponse is the JSON shape of the revenue summary.
type RevenueResponse struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalShipments      int64   `json:"totalShipments"`
	AverageShipmentCost float64 `json:"averageShipmentCost"`
}

// DriverPerformanceResponse is the JSON shape of one driver's totals.
type DriverPerformanceResponse struct {
	DriverID           string  `json:"driverId"`
	LicenseNumber      string  `json:"licenseNumber"`
	Rating             float64 `json:"rating"`
	TotalShipments     int64   `json:"totalShipments"`
	DeliveredShipments int64   `json:"deliveredShipments"`
	TotalDistanceKm    float64 `json:"totalDistanceKm"`
}

func driverPerformanceFromView(view queries.DriverPerformanceView) DriverPerformanceResponse {
	return DriverPerformanceResponse{
		DriverID:           view.DriverID.String(),
		LicenseNumber:      view.LicenseNumber,
		Rating:             view.Rating,
		TotalShipments:     view.TotalShipments,
		DeliveredShipments: view.DeliveredShipments,
		TotalDistanceKm:    view.TotalDistanceKm,
	}
}
