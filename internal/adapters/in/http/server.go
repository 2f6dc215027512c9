// Package http exposes the fulfillment engine over a JSON API built on echo.
// Handlers translate requests into guarded commands and queries, and errors
// into Error bodies through NewErrorHandler.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ClientIDHeader carries the calling client's id. Authentication happens in
// front of this service; the header is trusted as given.
const ClientIDHeader = "X-Client-ID"

type (
	CreateExpectedDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.CreateExpectedDeliveryCommand) error
	}
	ReceiveDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.ReceiveDeliveryCommand) (commands.ReceiveDeliveryResult, error)
	}
	RegisterCollectedOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterCollectedOrderCommand) (string, error)
	}
	PackOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PackOrderCommand) (commands.PackOrderResult, error)
	}
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (commands.ShipmentPricing, error)
	}
	ConsolidateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.ConsolidateShipmentCommand) (commands.ConsolidateShipmentResult, error)
	}
	ChooseTransportHandler interface {
		Handle(ctx context.Context, cmd commands.ChooseTransportCommand) (commands.ChooseTransportResult, error)
	}
	RecordPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.RecordPaymentCommand) (shipment.Status, error)
	}
	ReleaseShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.ReleaseShipmentCommand) error
	}
	PricingRuleHandler interface {
		Create(ctx context.Context, cmd commands.CreatePricingRuleCommand) (*pricing.Rule, error)
		Update(ctx context.Context, cmd commands.UpdatePricingRuleCommand) (*pricing.Rule, error)
		Delete(ctx context.Context, cmd commands.DeletePricingRuleCommand) error
	}
	IssueSubscriptionInvoiceHandler interface {
		Handle(ctx context.Context, cmd commands.IssueSubscriptionInvoiceCommand) (commands.IssueSubscriptionInvoiceResult, error)
	}

	GetShipmentHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentQuery) (queries.GetShipmentQueryResponse, error)
	}
	GetClientWarehouseOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetClientWarehouseOrdersQuery) ([]queries.WarehouseOrderView, error)
	}
	ListPricingRulesHandler interface {
		Handle(ctx context.Context, query queries.ListPricingRulesQuery) ([]queries.PricingRuleView, error)
	}
	QuoteSubscriptionHandler interface {
		Handle(ctx context.Context, query queries.QuoteSubscriptionQuery) (services.SubscriptionQuote, error)
	}
)

// Handlers lists the use cases behind the API.
type Handlers struct {
	CreateExpectedDelivery   CreateExpectedDeliveryHandler
	ReceiveDelivery          ReceiveDeliveryHandler
	RegisterCollectedOrder   RegisterCollectedOrderHandler
	PackOrder                PackOrderHandler
	CreateShipment           CreateShipmentHandler
	ConsolidateShipment      ConsolidateShipmentHandler
	ChooseTransport          ChooseTransportHandler
	RecordPayment            RecordPaymentHandler
	ReleaseShipment          ReleaseShipmentHandler
	PricingRules             PricingRuleHandler
	IssueSubscriptionInvoice IssueSubscriptionInvoiceHandler

	GetShipment              GetShipmentHandler
	GetClientWarehouseOrders GetClientWarehouseOrdersHandler
	ListPricingRules         ListPricingRulesHandler
	QuoteSubscription        QuoteSubscriptionHandler
}

// Server handles HTTP requests by delegating to the application use cases.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// NewEcho builds the echo instance with validation, error rendering and all
// routes mounted.
func NewEcho(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server.RegisterRoutes(e)
	return e
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	registerDocs(e)

	v1 := e.Group("/api/v1")

	v1.POST("/deliveries", s.CreateExpectedDelivery)
	v1.POST("/deliveries/:deliveryId/receive", s.ReceiveDelivery)

	v1.POST("/warehouse-orders", s.RegisterCollectedOrder)
	v1.POST("/warehouse-orders/:orderId/pack", s.PackOrder)
	v1.GET("/clients/:clientId/warehouse-orders", s.GetClientWarehouseOrders)

	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/:shipmentId", s.GetShipment)
	v1.POST("/shipments/:shipmentId/consolidate", s.ConsolidateShipment)
	v1.POST("/shipments/:shipmentId/transport-choice", s.ChooseTransport)
	v1.POST("/shipments/:shipmentId/payment", s.RecordPayment)
	v1.POST("/shipments/:shipmentId/release", s.ReleaseShipment)

	v1.GET("/pricing-rules", s.ListPricingRules)
	v1.POST("/pricing-rules", s.CreatePricingRule)
	v1.PUT("/pricing-rules/:ruleId", s.UpdatePricingRule)
	v1.DELETE("/pricing-rules/:ruleId", s.DeletePricingRule)

	v1.GET("/clients/:clientId/subscription-quote", s.QuoteSubscription)
	v1.POST("/clients/:clientId/subscription-invoices", s.IssueSubscriptionInvoice)
}
