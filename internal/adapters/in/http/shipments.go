package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req CreateShipmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return err
	}
	orderIDs, err := parseUUIDs("warehouseOrderIds", req.WarehouseOrderIDs)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), clientID, orderIDs)
	if err != nil {
		return err
	}

	pricing, err := s.h.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, shipmentPricingResponse(pricing))
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}. Clients only see
// their own shipments.
func (s *Server) GetShipment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "shipmentId")
	if err != nil {
		return err
	}
	clientID, err := callerClientID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, clientID)
	if err != nil {
		return err
	}

	view, err := s.h.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shipmentResponse(view))
}

// ConsolidateShipment handles POST /api/v1/shipments/{shipmentId}/consolidate.
// Operators use it to reprice after editing rules; it is idempotent.
func (s *Server) ConsolidateShipment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "shipmentId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewConsolidateShipmentCommand(shipmentID)
	if err != nil {
		return err
	}

	result, err := s.h.ConsolidateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ConsolidateShipmentResponse{
		ShipmentPricingResponse: shipmentPricingResponse(result.ShipmentPricing),
		Ready:                   result.Ready,
	})
}

// ChooseTransport handles POST /api/v1/shipments/{shipmentId}/transport-choice.
func (s *Server) ChooseTransport(c echo.Context) error {
	shipmentID, err := pathUUID(c, "shipmentId")
	if err != nil {
		return err
	}

	var req TransportChoiceRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	choice, err := shipment.ParseChoice(req.TransportChoice)
	if err != nil {
		return err
	}
	method, err := shipment.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return err
	}
	details, err := req.OwnTransport.toDetails()
	if err != nil {
		return err
	}

	cmd, err := commands.NewChooseTransportCommand(shipmentID, choice, method, details)
	if err != nil {
		return err
	}

	result, err := s.h.ChooseTransport.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TransportChoiceResponse{
		ShipmentID:    result.ShipmentID.String(),
		Status:        result.Status.String(),
		Choice:        result.Choice.String(),
		PaymentMethod: result.PaymentMethod.String(),
		InvoiceID:     optionalString(result.InvoiceID),
	})
}

// RecordPayment handles POST /api/v1/shipments/{shipmentId}/payment, called
// when the transport invoice has been paid.
func (s *Server) RecordPayment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "shipmentId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecordPaymentCommand(shipmentID)
	if err != nil {
		return err
	}

	status, err := s.h.RecordPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PaymentResponse{Status: status.String()})
}

// ReleaseShipment handles POST /api/v1/shipments/{shipmentId}/release.
func (s *Server) ReleaseShipment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "shipmentId")
	if err != nil {
		return err
	}

	var req ReleaseShipmentRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReleaseShipmentCommand(shipmentID, req.VehicleRegistration)
	if err != nil {
		return err
	}
	if err = s.h.ReleaseShipment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
