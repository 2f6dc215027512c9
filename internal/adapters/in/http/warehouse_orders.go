package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCollectedOrder handles POST /api/v1/warehouse-orders for goods
// collected locally without an announced delivery.
func (s *Server) RegisterCollectedOrder(c echo.Context) error {
	var req RegisterCollectedOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return err
	}
	location, err := parseLocation(req.Location)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCollectedOrderCommand(orderID, clientID, location)
	if err != nil {
		return err
	}

	tracking, err := s.h.RegisterCollectedOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, RegisterCollectedOrderResponse{ID: orderID.String(), TrackingNumber: tracking})
}

// PackOrder handles POST /api/v1/warehouse-orders/{orderId}/pack.
func (s *Server) PackOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	var req PackOrderRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	units, err := req.units()
	if err != nil {
		return err
	}
	cmd, err := commands.NewPackOrderCommand(orderID, units, req.Notes)
	if err != nil {
		return err
	}

	result, err := s.h.PackOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, packOrderResponse(result))
}

// GetClientWarehouseOrders handles GET /api/v1/clients/{clientId}/warehouse-orders.
func (s *Server) GetClientWarehouseOrders(c echo.Context) error {
	clientID, err := pathUUID(c, "clientId")
	if err != nil {
		return err
	}
	includeReleased, err := queryBool(c, "includeReleased")
	if err != nil {
		return err
	}

	query, err := queries.NewGetClientWarehouseOrdersQuery(clientID, includeReleased)
	if err != nil {
		return err
	}

	views, err := s.h.GetClientWarehouseOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]WarehouseOrderResponse, 0, len(views))
	for _, v := range views {
		response = append(response, warehouseOrderResponse(v))
	}
	return c.JSON(http.StatusOK, response)
}
