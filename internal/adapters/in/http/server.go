// Package http exposes the logistics use cases over a REST API.
// It coordinates between HTTP handlers and application use cases; every
// handler parses and validates input, delegates to a command or query
// handler, and maps the outcome onto an HTTP status.
package http

import (
	"net/http"
	"strconv"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write-side use cases the server depends on.
type CommandHandlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	TransitionOrder       commands.TransitionOrderCommandHandler
	CreateDriver          commands.CreateDriverCommandHandler
	CreateVehicle         commands.CreateVehicleCommandHandler
	CreateRoute           commands.CreateRouteCommandHandler
	DispatchShipment      commands.DispatchShipmentCommandHandler
	AdvanceShipment       commands.AdvanceShipmentCommandHandler
	RecordDeliveryAttempt commands.RecordDeliveryAttemptCommandHandler
	CompleteDelivery      commands.CompleteDeliveryCommandHandler
	FailDelivery          commands.FailDeliveryCommandHandler
}

// QueryHandlers groups the read-side use cases the server depends on.
type QueryHandlers struct {
	GetOrders         queries.GetOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetShipments      queries.GetShipmentsQueryHandler
	GetDeliveries     queries.GetDeliveriesQueryHandler
	GetDrivers        queries.GetDriversQueryHandler
	GetVehicles       queries.GetVehiclesQueryHandler
	GetRoutes         queries.GetRoutesQueryHandler
	OrdersByStatus    queries.OrdersByStatusQueryHandler
	Revenue           queries.RevenueQueryHandler
	DriverPerformance queries.DriverPerformanceQueryHandler
}

// Server handles HTTP requests for the logistics API.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes binds every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.TransitionOrder)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.GetVehicles)

	api.POST("/routes", s.CreateRoute)
	api.GET("/routes", s.GetRoutes)

	api.POST("/shipments", s.DispatchShipment)
	api.GET("/shipments", s.GetShipments)
	api.POST("/shipments/:id/status", s.AdvanceShipment)

	api.POST("/deliveries", s.RecordDeliveryAttempt)
	api.GET("/deliveries", s.GetDeliveries)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.POST("/deliveries/:id/fail", s.FailDelivery)

	api.GET("/analytics/orders-by-status", s.OrdersByStatus)
	api.GET("/analytics/revenue", s.Revenue)
	api.GET("/analytics/driver-performance", s.DriverPerformance)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer id")
	}

	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid warehouse id")
	}

	priority := order.PriorityNormal
	if req.Priority != "" {
		if priority, err = order.PriorityFromString(req.Priority); err != nil {
			return respondError(ctx, err)
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.OrderNumber,
		customerID,
		warehouseID,
		req.OrderDate,
		req.DeliveryDate,
		req.Cost,
		priority,
		order.Details{
			Description:       req.Description,
			TotalWeightKg:     req.TotalWeightKg,
			TotalVolumeCubicM: req.TotalVolumeCubicM,
			Notes:             req.Notes,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{
		ID:     orderID.String(),
		Status: order.Pending.String(),
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	statusFilter := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = parsed
	}

	skip, limit, err := pageParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid pagination parameters")
	}

	query, err := queries.NewGetOrdersQuery(statusFilter, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ListResponse[OrderResponse]{
		Total: result.Total,
		Data:  make([]OrderResponse, 0, len(result.Data)),
	}
	for _, view := range result.Data {
		response.Data = append(response.Data, orderResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// TransitionOrder handles POST /api/v1/orders/:id/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid employee id")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID,
		employeeID,
		req.LicenseNumber,
		req.LicenseExpiry,
		req.ExperienceYears,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	result, err := s.queries.GetDrivers.Handle(
		ctx.Request().Context(), queries.NewGetDriversQuery(availableOnly))
	if err != nil {
		return respondError(ctx, err)
	}

	response := ListResponse[DriverResponse]{
		Total: result.Total,
		Data:  make([]DriverResponse, 0, len(result.Data)),
	}
	for _, view := range result.Data {
		response.Data = append(response.Data, driverResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req CreateVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(
		vehicleID,
		req.LicensePlate,
		req.VehicleType,
		req.Brand,
		req.Model,
		req.Year,
		vehicle.Capacity{
			WeightKg:     req.CapacityKg,
			VolumeCubicM: req.CapacityCubicM,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: vehicleID.String()})
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	result, err := s.queries.GetVehicles.Handle(
		ctx.Request().Context(), queries.NewGetVehiclesQuery(availableOnly))
	if err != nil {
		return respondError(ctx, err)
	}

	response := ListResponse[VehicleResponse]{
		Total: result.Total,
		Data:  make([]VehicleResponse, 0, len(result.Data)),
	}
	for _, view := range result.Data {
		response.Data = append(response.Data, vehicleResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req CreateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(
		routeID,
		req.Name,
		req.StartLocation,
		req.EndLocation,
		req.DistanceKm,
		time.Duration(req.EstimatedDurationMinutes)*time.Minute,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: routeID.String()})
}

// GetRoutes handles GET /api/v1/routes.
func (s *Server) GetRoutes(ctx echo.Context) error {
	activeOnly := ctx.QueryParam("active") == "true"

	result, err := s.queries.GetRoutes.Handle(
		ctx.Request().Context(), queries.NewGetRoutesQuery(activeOnly))
	if err != nil {
		return respondError(ctx, err)
	}

	response := ListResponse[RouteResponse]{
		Total: result.Total,
		Data:  make([]RouteResponse, 0, len(result.Data)),
	}
	for _, view := range result.Data {
		response.Data = append(response.Data, routeResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// DispatchShipment handles POST /api/v1/shipments.
func (s *Server) DispatchShipment(ctx echo.Context) error {
	var req DispatchShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid driver id")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid vehicle id")
	}

	routeID, err := kernel.UUIDFromString(req.RouteID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid route id")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewDispatchShipmentCommand(
		shipmentID,
		req.ShipmentNumber,
		orderID,
		driverID,
		vehicleID,
		routeID,
		req.Cost,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DispatchShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{
		ID:     shipmentID.String(),
		Status: shipment.Pending.String(),
	})
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	statusFilter := shipment.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := shipment.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = parsed
	}

	skip, limit, err := pageParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid pagination parameters")
	}

	query, err := queries.NewGetShipmentsQuery(statusFilter, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ListResponse[ShipmentResponse]{
		Total: result.Total,
		Data:  make([]ShipmentResponse, 0, len(result.Data)),
	}
	for _, view := range result.Data {
		response.Data = append(response.Data, shipmentResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceShipment handles POST /api/v1/shipments/:id/status.
func (s *Server) AdvanceShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	var req AdvanceShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	target, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceShipmentCommand(shipmentID, target, req.DistanceTraveledKm)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AdvanceShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDeliveryAttempt handles POST /api/v1/deliveries.
func (s *Server) RecordDeliveryAttempt(ctx echo.Context) error {
	var req RecordDeliveryAttemptRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewRecordDeliveryAttemptCommand(
		kernel.NewUUID(),
		shipmentID,
		delivery.Recipient{
			Name:    req.RecipientName,
			Phone:   req.RecipientPhone,
			Address: req.RecipientAddress,
			City:    req.RecipientCity,
		},
		req.SignatureRequired,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveryID, err := s.commands.RecordDeliveryAttempt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// GetDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	statusFilter := delivery.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := delivery.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = parsed
	}

	skip, limit, err := pageParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid pagination parameters")
	}

	query, err := queries.NewGetDeliveriesQuery(statusFilter, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ListResponse[DeliveryResponse]{
		Total: result.Total,
		Data:  make([]DeliveryResponse, 0, len(result.Data)),
	}
	for _, view := range result.Data {
		response.Data = append(response.Data, deliveryResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	var req CompleteDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, req.SignatureObtained)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailDelivery handles POST /api/v1/deliveries/:id/fail.
func (s *Server) FailDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	var req FailDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFailDeliveryCommand(deliveryID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.FailDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrdersByStatus handles GET /api/v1/analytics/orders-by-status.
func (s *Server) OrdersByStatus(ctx echo.Context) error {
	result, err := s.queries.OrdersByStatus.Handle(
		ctx.Request().Context(), queries.NewOrdersByStatusQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrdersByStatusResponse{Counts: result.Counts})
}

// Revenue handles GET /api/v1/analytics/revenue.
func (s *Server) Revenue(ctx echo.Context) error {
	statusFilter := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = parsed
	}

	query, err := queries.NewRevenueQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.Revenue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RevenueResponse{
		TotalRevenue:        result.TotalRevenue,
		TotalShipments:      result.TotalShipments,
		AverageShipmentCost: result.AverageShipmentCost,
	})
}

// DriverPerformance handles GET /api/v1/analytics/driver-performance.
func (s *Server) DriverPerformance(ctx echo.Context) error {
	result, err := s.queries.DriverPerformance.Handle(
		ctx.Request().Context(), queries.NewDriverPerformanceQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DriverPerformanceResponse, 0, len(result.Data))
	for _, view := range result.Data {
		response = append(response, driverPerformanceFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pageParams(ctx echo.Context) (skip, limit int, err error) {
	if raw := ctx.QueryParam("skip"); raw != "" {
		if skip, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	return skip, limit, nil
}
