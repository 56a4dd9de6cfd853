// Package memory implements the domain repositories on an in-process,
// mutex-guarded store. It exists for running without a database and for
// hermetic tests; the postgresql package is the durable counterpart and
// both honor the same repository contracts.
package memory

import (
	"sync"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/role"
	"github.com/facetrack/attendance-backend-go/internal/domain/session"
	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

// collection is a map with stable insertion order for listings.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) put(id string, item T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) remove(id string) bool {
	if _, exists := c.items[id]; !exists {
		return false
	}
	delete(c.items, id)
	for i, key := range c.order {
		if key == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) list() []T {
	result := make([]T, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.items[id])
	}
	return result
}

// Store holds every entity collection behind one lock, so cross-entity
// bookkeeping (the department employee count) is atomic with the employee
// mutation that triggers it. Construct one per process or per test.
type Store struct {
	mu             sync.RWMutex
	users          *collection[user.User]
	departments    *collection[department.Department]
	roles          *collection[role.Role]
	employees      *collection[employee.Employee]
	attendance     *collection[attendance.Attendance]
	sessions       *collection[session.Session]
	systemSettings *settings.SystemSettings
}

func NewStore() *Store {
	defaults := settings.Defaults()
	defaults.ID = uuid.NewString()

	return &Store{
		users:          newCollection[user.User](),
		departments:    newCollection[department.Department](),
		roles:          newCollection[role.Role](),
		employees:      newCollection[employee.Employee](),
		attendance:     newCollection[attendance.Attendance](),
		sessions:       newCollection[session.Session](),
		systemSettings: &defaults,
	}
}
