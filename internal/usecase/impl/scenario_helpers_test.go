package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"uniform/config"
	"uniform/internal/domain/entity"
	"uniform/internal/domain/service"
	"uniform/internal/infra/persistence/memory"
	"uniform/internal/infra/qrcode"
	mockService "uniform/internal/mocks/service"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testLevel = "Grade 7"

// testClock is a settable time source shared by every service under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)

	return c.now
}

// scenario wires the real services over the in-memory store.
type scenario struct {
	ctx       context.Context
	clock     *testClock
	store     *memory.Store
	variants  *VariantStore
	inventory *inventoryService
	orders    *orderService
	restock   *restockService
	voids     *voidService
	students  *studentService
	publisher *mockService.MockEventPublisher

	eventsMu sync.Mutex
	events   []*service.StudentNotificationEvent
}

func testConfig() *config.Config {
	return &config.Config{
		Inventory: &config.InventoryConfig{DefaultReorderPoint: 2, CriticalThreshold: 10, CycleDays: 365},
		Limits:    &config.LimitsConfig{NewStudentDefault: 8, OldStudentDefault: 2, MonthsPerAcademicYear: 10},
		AutoVoid: &config.AutoVoidConfig{
			Enabled:         true,
			StrikeThreshold: 3,
			BatchSize:       100,
			Long:            config.VoidWindow{Enabled: true, Window: 7 * 24 * time.Hour, Interval: time.Hour},
			Short:           config.VoidWindow{Enabled: true, Window: 10 * time.Second, Interval: 5 * time.Second},
		},
	}
}

func newScenario(t *testing.T) *scenario {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.DiscardHandler)
	clock := &testClock{now: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)}
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	variants := NewVariantStore(cfg)
	engine := NewLimitEngine(cfg)

	sc := &scenario{
		ctx:       context.Background(),
		clock:     clock,
		store:     store,
		variants:  variants,
		publisher: mockService.NewMockEventPublisher(t),
	}
	sc.publisher.EXPECT().
		PublishStudentNotification(mock.Anything, mock.AnythingOfType("*service.StudentNotificationEvent")).
		Run(func(_ context.Context, event *service.StudentNotificationEvent) {
			sc.eventsMu.Lock()
			defer sc.eventsMu.Unlock()
			sc.events = append(sc.events, event)
		}).
		Return(nil).
		Maybe()

	sc.inventory = NewInventoryService(InventoryServiceParams{
		TxManager: txManager, Store: variants, Config: cfg, Logger: logger,
	}).(*inventoryService)
	sc.inventory.now = clock.Now

	sc.orders = NewOrderService(OrderServiceParams{
		TxManager: txManager,
		Store:     variants,
		Engine:    engine,
		Ledger:    NewStrikeLedger(cfg),
		QRCode:    qrcode.NewQRCodeService(128, "L"),
		Config:    cfg,
		Logger:    logger,
	}).(*orderService)
	sc.orders.now = clock.Now

	sc.restock = NewRestockService(RestockServiceParams{
		TxManager: txManager, Converter: sc.orders, Publisher: sc.publisher, Logger: logger,
	}).(*restockService)
	sc.restock.now = clock.Now

	sc.voids = NewVoidService(VoidServiceParams{
		TxManager: txManager, Orders: sc.orders, Restock: sc.restock, Config: cfg, Logger: logger,
	}).(*voidService)

	sc.students = NewStudentService(StudentServiceParams{
		TxManager: txManager, Engine: engine, Logger: logger,
	}).(*studentService)
	sc.students.now = clock.Now

	return sc
}

func (sc *scenario) publishedEvents() []*service.StudentNotificationEvent {
	sc.eventsMu.Lock()
	defer sc.eventsMu.Unlock()

	return append([]*service.StudentNotificationEvent(nil), sc.events...)
}

func (sc *scenario) student(t *testing.T, studentType entity.StudentType, itemLimit *int) *entity.Student {
	t.Helper()

	id := uuid.New()
	student, err := sc.students.RegisterStudent(sc.ctx, &usecase.RegisterStudentInput{
		ID:             id,
		StudentNumber:  "S-" + id.String()[:8],
		Email:          id.String()[:8] + "@school.test",
		Name:           "Student " + id.String()[:4],
		EducationLevel: testLevel,
		Gender:         entity.GenderFemale,
		StudentType:    studentType,
		TotalItemLimit: itemLimit,
	})
	require.NoError(t, err)

	return student
}

// item seeds a catalog item. Sizes and stocks alternate: "S", 5, "M", 3.
func (sc *scenario) item(t *testing.T, name string, sizesAndStock ...any) *entity.Item {
	t.Helper()

	variants := make([]usecase.VariantInput, 0, len(sizesAndStock)/2)
	for i := 0; i+1 < len(sizesAndStock); i += 2 {
		variants = append(variants, usecase.VariantInput{
			Size:  sizesAndStock[i].(string),
			Stock: sizesAndStock[i+1].(int),
		})
	}

	item, err := sc.inventory.CreateItem(sc.ctx, &usecase.CreateItemInput{
		Name:           name,
		EducationLevel: testLevel,
		Price:          decimal.RequireFromString("250"),
		Variants:       variants,
	})
	require.NoError(t, err)

	return item
}

func (sc *scenario) order(t *testing.T, studentID uuid.UUID, orderType entity.OrderType, lines ...usecase.OrderItemInput) *usecase.CreateOrderResult {
	t.Helper()

	result, err := sc.orders.CreateOrder(sc.ctx, &usecase.CreateOrderInput{
		StudentID: studentID,
		OrderType: orderType,
		Items:     lines,
	})
	require.NoError(t, err)

	return result
}

func (sc *scenario) reload(t *testing.T, itemID uuid.UUID) *entity.Item {
	t.Helper()

	item, err := sc.inventory.GetItem(sc.ctx, itemID)
	require.NoError(t, err)

	return item
}

func line(name, size string, quantity int) usecase.OrderItemInput {
	return usecase.OrderItemInput{Name: name, Size: size, Quantity: quantity}
}

func variantStock(item *entity.Item, size string) int {
	for _, v := range item.Variants {
		if v.Size == size {
			return v.Stock
		}
	}

	return -1
}
