package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	taskworker "fulfillment/internal/adapters/in/tasks"
	"fulfillment/internal/adapters/out/notifications"
	"fulfillment/internal/adapters/out/payments"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/redis/pricingcache"
	taskqueue "fulfillment/internal/adapters/out/tasks"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires the use cases to their adapters. The HTTP API, the
// task worker and the sweep jobs all draw on the same instance.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	dispatcher *taskqueue.Dispatcher
	rules      *pricingcache.Cache
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	taskClient *asynq.Client,
	logger *slog.Logger,
) *CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		dispatcher: taskqueue.NewDispatcher(taskClient),
		rules: pricingcache.New(
			redisClient,
			uowFactory.Create().PricingRuleRepository(),
			config.PricingCacheTTL,
			logger,
		),
		logger: logger,
	}
}

func (c *CompositionRoot) deliveryUoW() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoW() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pricingRuleUoW() commands.PricingRuleUoWFactory {
	return FuncPricingRuleUoWFactory(func() commands.PricingRuleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) capacityUoW() commands.CapacityUoWFactory {
	return FuncCapacityUoWFactory(func() commands.CapacityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoW() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateExpectedDeliveryCommandHandler() commands.CreateExpectedDeliveryCommandHandler {
	return commands.NewCreateExpectedDeliveryCommandHandler(c.deliveryUoW())
}

func (c *CompositionRoot) CreateReceiveDeliveryCommandHandler() commands.ReceiveDeliveryCommandHandler {
	return commands.NewReceiveDeliveryCommandHandler(c.deliveryUoW(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateRegisterCollectedOrderCommandHandler() commands.RegisterCollectedOrderCommandHandler {
	return commands.NewRegisterCollectedOrderCommandHandler(c.deliveryUoW())
}

func (c *CompositionRoot) CreateConsolidateShipmentCommandHandler() commands.ConsolidateShipmentCommandHandler {
	return commands.NewConsolidateShipmentCommandHandler(c.shipmentUoW(), c.rules, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	return commands.NewPackOrderCommandHandler(
		c.shipmentUoW(),
		c.CreateConsolidateShipmentCommandHandler(),
		c.dispatcher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoW(), c.rules, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateChooseTransportCommandHandler() commands.ChooseTransportCommandHandler {
	return commands.NewChooseTransportCommandHandler(c.shipmentUoW(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.shipmentUoW())
}

func (c *CompositionRoot) CreateReleaseShipmentCommandHandler() commands.ReleaseShipmentCommandHandler {
	return commands.NewReleaseShipmentCommandHandler(c.shipmentUoW(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreatePricingRuleCommandHandler() commands.PricingRuleCommandHandler {
	return commands.NewPricingRuleCommandHandler(c.pricingRuleUoW(), c.rules, c.logger)
}

func (c *CompositionRoot) CreateRecalculateCapacityCommandHandler() commands.RecalculateCapacityCommandHandler {
	return commands.NewRecalculateCapacityCommandHandler(c.capacityUoW())
}

func (c *CompositionRoot) CreateIssueSubscriptionInvoiceCommandHandler() commands.IssueSubscriptionInvoiceCommandHandler {
	return commands.NewIssueSubscriptionInvoiceCommandHandler(c.billingUoW())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientWarehouseOrdersQueryHandler() queries.GetClientWarehouseOrdersQueryHandler {
	return queries.NewGetClientWarehouseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPricingRulesQueryHandler() queries.ListPricingRulesQueryHandler {
	return queries.NewListPricingRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteSubscriptionQueryHandler() queries.QuoteSubscriptionQueryHandler {
	return queries.NewQuoteSubscriptionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsAwaitingPricingQueryHandler() queries.GetShipmentsAwaitingPricingQueryHandler {
	return queries.NewGetShipmentsAwaitingPricingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListExpiringVouchersQueryHandler() queries.ListExpiringVouchersQueryHandler {
	return queries.NewListExpiringVouchersQueryHandler(c.gormDB)
}

// Echo builds the HTTP API.
func (c *CompositionRoot) Echo() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		CreateExpectedDelivery:   c.CreateCreateExpectedDeliveryCommandHandler(),
		ReceiveDelivery:          c.CreateReceiveDeliveryCommandHandler(),
		RegisterCollectedOrder:   c.CreateRegisterCollectedOrderCommandHandler(),
		PackOrder:                c.CreatePackOrderCommandHandler(),
		CreateShipment:           c.CreateCreateShipmentCommandHandler(),
		ConsolidateShipment:      c.CreateConsolidateShipmentCommandHandler(),
		ChooseTransport:          c.CreateChooseTransportCommandHandler(),
		RecordPayment:            c.CreateRecordPaymentCommandHandler(),
		ReleaseShipment:          c.CreateReleaseShipmentCommandHandler(),
		PricingRules:             c.CreatePricingRuleCommandHandler(),
		IssueSubscriptionInvoice: c.CreateIssueSubscriptionInvoiceCommandHandler(),
		GetShipment:              c.CreateGetShipmentQueryHandler(),
		GetClientWarehouseOrders: c.CreateGetClientWarehouseOrdersQueryHandler(),
		ListPricingRules:         c.CreateListPricingRulesQueryHandler(),
		QuoteSubscription:        c.CreateQuoteSubscriptionQueryHandler(),
	})
	return httpin.NewEcho(server, c.logger)
}

// TaskHandlers builds the asynq handlers for the side effects the use cases
// enqueue.
func (c *CompositionRoot) TaskHandlers() *taskworker.Handlers {
	return taskworker.NewHandlers(
		c.CreateRecalculateCapacityCommandHandler(),
		notifications.NewLogNotifier(c.logger),
		payments.NewClient(c.config.PaymentEndpoint, c.config.PaymentAPIKey, c.config.PaymentTimeout),
		c.logger,
	)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewPricingSweepJob(
			c.CreateGetShipmentsAwaitingPricingQueryHandler(),
			c.CreateConsolidateShipmentCommandHandler(),
			c.config.PricingSweepSpec,
			c.config.PricingSweepLimit,
			c.logger,
		),
		jobs.NewVoucherExpiryJob(
			c.CreateListExpiringVouchersQueryHandler(),
			c.config.VoucherSweepSpec,
			c.config.VoucherSweepAhead,
			c.logger,
		),
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPricingRuleUoWFactory func() commands.PricingRuleUoW

func (f FuncPricingRuleUoWFactory) Create() commands.PricingRuleUoW {
	return f()
}

type FuncCapacityUoWFactory func() commands.CapacityUoW

func (f FuncCapacityUoWFactory) Create() commands.CapacityUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}
