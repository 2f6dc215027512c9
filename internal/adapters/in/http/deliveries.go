package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateExpectedDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateExpectedDelivery(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return err
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateExpectedDeliveryCommand(deliveryID, clientID, req.SupplierName, req.ExpectedAt)
	if err != nil {
		return err
	}
	if err = s.h.CreateExpectedDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// ReceiveDelivery handles POST /api/v1/deliveries/{deliveryId}/receive. The
// warehouse order created for the goods gets a fresh id.
func (s *Server) ReceiveDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	var req ReceiveDeliveryRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	condition, err := delivery.ParseCondition(req.Condition)
	if err != nil {
		return err
	}
	location, err := parseLocation(req.Location)
	if err != nil {
		return err
	}
	units, err := unitsOf(req.Units)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReceiveDeliveryCommand(deliveryID, kernel.NewUUID(), condition, location, units)
	if err != nil {
		return err
	}

	result, err := s.h.ReceiveDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ReceiveDeliveryResponse{
		WarehouseOrderID: result.WarehouseOrderID.String(),
		TrackingNumber:   result.TrackingNumber,
		DeliveryNumber:   result.DeliveryNumber,
		DeliveryStatus:   result.DeliveryStatus.String(),
	})
}
