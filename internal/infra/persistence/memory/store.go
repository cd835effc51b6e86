// Package memory is an in-process store for development and tests. Transactions are
// serialized by a single mutex and rolled back by restoring a snapshot.
package memory

import (
	"context"
	"sync"

	"uniform/internal/domain/entity"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds every table of the in-memory backend.
type Store struct {
	mu       sync.Mutex
	items    map[uuid.UUID]*entity.Item
	orders   map[uuid.UUID]*entity.Order
	students map[uuid.UUID]*entity.Student

	deviceMu sync.RWMutex
	devices  map[uuid.UUID]*entity.StudentDevice
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		items:    make(map[uuid.UUID]*entity.Item),
		orders:   make(map[uuid.UUID]*entity.Order),
		students: make(map[uuid.UUID]*entity.Student),
		devices:  make(map[uuid.UUID]*entity.StudentDevice),
	}
}

// transactionManager implements repository.TransactionManager over a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a TransactionManager. Execute must not be called from inside fn.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn as the only writer. When fn fails every table is restored.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.snapshot()
	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(snapshot)

		return err
	}

	return nil
}

type tables struct {
	items    map[uuid.UUID]*entity.Item
	orders   map[uuid.UUID]*entity.Order
	students map[uuid.UUID]*entity.Student
}

func (s *Store) snapshot() tables {
	snap := tables{
		items:    make(map[uuid.UUID]*entity.Item, len(s.items)),
		orders:   make(map[uuid.UUID]*entity.Order, len(s.orders)),
		students: make(map[uuid.UUID]*entity.Student, len(s.students)),
	}
	for id, item := range s.items {
		snap.items[id] = cloneItem(item)
	}
	for id, order := range s.orders {
		snap.orders[id] = cloneOrder(order)
	}
	for id, student := range s.students {
		snap.students[id] = cloneStudent(student)
	}

	return snap
}

func (s *Store) restore(snap tables) {
	s.items = snap.items
	s.orders = snap.orders
	s.students = snap.students
}

// repositoryFactory hands out repositories bound to the running transaction.
type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewItemRepository() repository.ItemRepository {
	return &itemRepository{store: f.store}
}

func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{store: f.store}
}

func (f *repositoryFactory) NewStudentRepository() repository.StudentRepository {
	return &studentRepository{store: f.store}
}

func cloneItem(item *entity.Item) *entity.Item {
	c := *item
	c.Variants = append([]entity.SizeVariant(nil), item.Variants...)

	return &c
}

func cloneOrder(order *entity.Order) *entity.Order {
	c := *order
	c.Items = append([]entity.OrderItem(nil), order.Items...)

	return &c
}

func cloneStudent(student *entity.Student) *entity.Student {
	c := *student

	return &c
}

func cloneDevice(device *entity.StudentDevice) *entity.StudentDevice {
	c := *device

	return &c
}
