package http

import "time"

// CreateOrderRequest is the payload for registering a new order.
type CreateOrderRequest struct {
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
}

// TransitionOrderRequest names the status an order should move to.
type TransitionOrderRequest struct {
	Status string `json:"status"`
}

// CreateDriverRequest is the payload for registering a new driver.
type CreateDriverRequest struct {
	EmployeeID      string    `json:"employeeId"`
	LicenseNumber   string    `json:"licenseNumber"`
	LicenseExpiry   time.Time `json:"licenseExpiry"`
	ExperienceYears int       `json:"experienceYears"`
}

// CreateVehicleRequest is the payload for registering a new vehicle.
type CreateVehicleRequest struct {
	LicensePlate   string  `json:"licensePlate"`
	VehicleType    string  `json:"vehicleType"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Year           int     `json:"year"`
	CapacityKg     float64 `json:"capacityKg"`
	CapacityCubicM float64 `json:"capacityCubicM"`
}

// CreateRouteRequest is the payload for registering a new route.
// EstimatedDurationMinutes keeps the wire format integer-friendly.
type CreateRouteRequest struct {
	Name                     string  `json:"name"`
	StartLocation            string  `json:"startLocation"`
	EndLocation              string  `json:"endLocation"`
	DistanceKm               float64 `json:"distanceKm"`
	EstimatedDurationMinutes int     `json:"estimatedDurationMinutes"`
}

// DispatchShipmentRequest binds an order to a driver, vehicle and route.
type DispatchShipmentRequest struct {
	ShipmentNumber string  `json:"shipmentNumber"`
	OrderID        string  `json:"orderId"`
	DriverID       string  `json:"driverId"`
	VehicleID      string  `json:"vehicleId"`
	RouteID        string  `json:"routeId"`
	Cost           float64 `json:"cost"`
}

// AdvanceShipmentRequest names the status a shipment should move to.
// DistanceTraveledKm matters only when the target is Delivered.
type AdvanceShipmentRequest struct {
	Status             string  `json:"status"`
	DistanceTraveledKm float64 `json:"distanceTraveledKm"`
}

// RecordDeliveryAttemptRequest starts a delivery attempt for a shipment.
type RecordDeliveryAttemptRequest struct {
	ShipmentID        string `json:"shipmentId"`
	RecipientName     string `json:"recipientName"`
	RecipientPhone    string `json:"recipientPhone"`
	RecipientAddress  string `json:"recipientAddress"`
	RecipientCity     string `json:"recipientCity"`
	SignatureRequired bool   `json:"signatureRequired"`
}

// CompleteDeliveryRequest confirms a delivery handover.
type CompleteDeliveryRequest struct {
	SignatureObtained bool `json:"signatureObtained"`
}

// FailDeliveryRequest records a failed delivery attempt.
type FailDeliveryRequest struct {
	Reason string `json:"reason"`
}
