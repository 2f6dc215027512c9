package commands_test

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/subscription"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) NextDeliveryNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockWarehouseOrderRepository struct{ mock.Mock }

func (m *MockWarehouseOrderRepository) Add(ctx context.Context, o *warehouse.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockWarehouseOrderRepository) Update(ctx context.Context, o *warehouse.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockWarehouseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*warehouse.Order)
	return o, args.Error(1)
}

func (m *MockWarehouseOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*warehouse.Order)
	return o, args.Error(1)
}

func (m *MockWarehouseOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*warehouse.Order, error) {
	args := m.Called(ctx, ids)
	orders, _ := args.Get(0).([]*warehouse.Order)
	return orders, args.Error(1)
}

func (m *MockWarehouseOrderRepository) ListOccupyingByClient(
	ctx context.Context,
	clientID kernel.UUID,
) ([]*warehouse.Order, error) {
	args := m.Called(ctx, clientID)
	orders, _ := args.Get(0).([]*warehouse.Order)
	return orders, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) FindActiveByWarehouseOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Add(ctx context.Context, r *pricing.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPricingRuleRepository) Update(ctx context.Context, r *pricing.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*pricing.Rule)
	return r, args.Error(1)
}

func (m *MockPricingRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPricingRuleRepository) ListActive(
	ctx context.Context,
	transportType kernel.TransportType,
) ([]*pricing.Rule, error) {
	args := m.Called(ctx, transportType)
	rules, _ := args.Get(0).([]*pricing.Rule)
	return rules, args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, i *invoice.Invoice) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(*invoice.Invoice)
	return i, args.Error(1)
}

func (m *MockInvoiceRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, shipmentID)
	i, _ := args.Get(0).(*invoice.Invoice)
	return i, args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) GetVoucherByCode(ctx context.Context, code string) (*subscription.Voucher, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(*subscription.Voucher)
	return v, args.Error(1)
}

func (m *MockSubscriptionRepository) UpdateVoucher(ctx context.Context, v *subscription.Voucher) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockSubscriptionRepository) GetPendingSetupFee(
	ctx context.Context,
	clientID kernel.UUID,
) (*subscription.SetupFee, error) {
	args := m.Called(ctx, clientID)
	f, _ := args.Get(0).(*subscription.SetupFee)
	return f, args.Error(1)
}

func (m *MockSubscriptionRepository) UpdateSetupFee(ctx context.Context, f *subscription.SetupFee) error {
	return m.Called(ctx, f).Error(0)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) DiscountPercent(ctx context.Context, clientID kernel.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockClientRepository) UpdateCapacityUsage(ctx context.Context, clientID kernel.UUID, usedCbm float64) error {
	return m.Called(ctx, clientID, usedCbm).Error(0)
}

// MockUoW implements every unit of work the handlers depend on. Repository
// accessors are wired with Maybe so tests only pin the calls that matter.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) WarehouseOrderRepository() ports.WarehouseOrderRepository {
	return m.Called().Get(0).(ports.WarehouseOrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	return m.Called().Get(0).(ports.PricingRuleRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	return m.Called().Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	return m.Called().Get(0).(ports.SubscriptionRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}

type repos struct {
	deliveries    *MockDeliveryRepository
	orders        *MockWarehouseOrderRepository
	shipments     *MockShipmentRepository
	rules         *MockPricingRuleRepository
	invoices      *MockInvoiceRepository
	subscriptions *MockSubscriptionRepository
	clients       *MockClientRepository
}

func newRepos() repos {
	return repos{
		deliveries:    new(MockDeliveryRepository),
		orders:        new(MockWarehouseOrderRepository),
		shipments:     new(MockShipmentRepository),
		rules:         new(MockPricingRuleRepository),
		invoices:      new(MockInvoiceRepository),
		subscriptions: new(MockSubscriptionRepository),
		clients:       new(MockClientRepository),
	}
}

func newMockUoW(r repos) *MockUoW {
	uow := new(MockUoW)
	uow.On("DeliveryRepository").Return(r.deliveries).Maybe()
	uow.On("WarehouseOrderRepository").Return(r.orders).Maybe()
	uow.On("ShipmentRepository").Return(r.shipments).Maybe()
	uow.On("PricingRuleRepository").Return(r.rules).Maybe()
	uow.On("InvoiceRepository").Return(r.invoices).Maybe()
	uow.On("SubscriptionRepository").Return(r.subscriptions).Maybe()
	uow.On("ClientRepository").Return(r.clients).Maybe()
	return uow
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) uow() *MockUoW {
	return m.MethodCalled("Create").Get(0).(*MockUoW)
}

type MockDeliveryUoWFactory struct{ MockUoWFactory }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW { return m.uow() }

type MockShipmentUoWFactory struct{ MockUoWFactory }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW { return m.uow() }

type MockPricingRuleUoWFactory struct{ MockUoWFactory }

func (m *MockPricingRuleUoWFactory) Create() commands.PricingRuleUoW { return m.uow() }

type MockCapacityUoWFactory struct{ MockUoWFactory }

func (m *MockCapacityUoWFactory) Create() commands.CapacityUoW { return m.uow() }

type MockBillingUoWFactory struct{ MockUoWFactory }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW { return m.uow() }

type MockTaskDispatcher struct{ mock.Mock }

func (m *MockTaskDispatcher) RecalculateCapacity(ctx context.Context, clientID kernel.UUID) error {
	return m.Called(ctx, clientID).Error(0)
}

func (m *MockTaskDispatcher) Notify(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockTaskDispatcher) RequestPaymentLink(ctx context.Context, req ports.PaymentLinkRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockPricingRuleCache struct{ mock.Mock }

func (m *MockPricingRuleCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func notificationOf(kind ports.NotificationKind) any {
	return mock.MatchedBy(func(n ports.Notification) bool { return n.Kind == kind })
}
