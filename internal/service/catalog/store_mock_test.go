package catalog

import (
	"context"
	"sync"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// storeMock is a hand-rolled mock of Store[T] in the moq style: one Func
// field per method, calls recorded under a lock.
type storeMock[T any] struct {
	GetFunc    func(ctx context.Context, id int64) (*T, error)
	GetAllFunc func(ctx context.Context) ([]T, error)
	ListFunc   func(ctx context.Context, page domain.PageRequest) ([]T, error)
	SaveFunc   func(ctx context.Context, rec *T) (*T, error)
	ExistsFunc func(ctx context.Context, id int64) (bool, error)
	DeleteFunc func(ctx context.Context, id int64) error
	CountFunc  func(ctx context.Context) (int64, error)

	mu    sync.Mutex
	calls struct {
		Get    []int64
		GetAll int
		List   []domain.PageRequest
		Save   []*T
		Exists []int64
		Delete []int64
		Count  int
	}
}

func (m *storeMock[T]) Get(ctx context.Context, id int64) (*T, error) {
	if m.GetFunc == nil {
		panic("storeMock.GetFunc: method is nil but Store.Get was just called")
	}
	m.mu.Lock()
	m.calls.Get = append(m.calls.Get, id)
	m.mu.Unlock()
	return m.GetFunc(ctx, id)
}

func (m *storeMock[T]) GetAll(ctx context.Context) ([]T, error) {
	if m.GetAllFunc == nil {
		panic("storeMock.GetAllFunc: method is nil but Store.GetAll was just called")
	}
	m.mu.Lock()
	m.calls.GetAll++
	m.mu.Unlock()
	return m.GetAllFunc(ctx)
}

func (m *storeMock[T]) List(ctx context.Context, page domain.PageRequest) ([]T, error) {
	if m.ListFunc == nil {
		panic("storeMock.ListFunc: method is nil but Store.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, page)
	m.mu.Unlock()
	return m.ListFunc(ctx, page)
}

func (m *storeMock[T]) Save(ctx context.Context, rec *T) (*T, error) {
	if m.SaveFunc == nil {
		panic("storeMock.SaveFunc: method is nil but Store.Save was just called")
	}
	m.mu.Lock()
	m.calls.Save = append(m.calls.Save, rec)
	m.mu.Unlock()
	return m.SaveFunc(ctx, rec)
}

func (m *storeMock[T]) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc == nil {
		panic("storeMock.ExistsFunc: method is nil but Store.Exists was just called")
	}
	m.mu.Lock()
	m.calls.Exists = append(m.calls.Exists, id)
	m.mu.Unlock()
	return m.ExistsFunc(ctx, id)
}

func (m *storeMock[T]) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		panic("storeMock.DeleteFunc: method is nil but Store.Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *storeMock[T]) Count(ctx context.Context) (int64, error) {
	if m.CountFunc == nil {
		panic("storeMock.CountFunc: method is nil but Store.Count was just called")
	}
	m.mu.Lock()
	m.calls.Count++
	m.mu.Unlock()
	return m.CountFunc(ctx)
}

func (m *storeMock[T]) SaveCalls() []*T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Save
}

func (m *storeMock[T]) GetAllCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetAll
}

var _ Store[domain.Area] = (*storeMock[domain.Area])(nil)

// cursoStoreMock adds the parent lookup on top of storeMock.
type cursoStoreMock struct {
	storeMock[domain.Curso]
	ByAreaFunc      func(ctx context.Context, areaID int64) ([]domain.Curso, error)
	WithoutAreaFunc func(ctx context.Context) ([]domain.Curso, error)
}

func (m *cursoStoreMock) ByArea(ctx context.Context, areaID int64) ([]domain.Curso, error) {
	if m.ByAreaFunc == nil {
		panic("cursoStoreMock.ByAreaFunc: method is nil but CursoStore.ByArea was just called")
	}
	return m.ByAreaFunc(ctx, areaID)
}

func (m *cursoStoreMock) WithoutArea(ctx context.Context) ([]domain.Curso, error) {
	if m.WithoutAreaFunc == nil {
		panic("cursoStoreMock.WithoutAreaFunc: method is nil but CursoStore.WithoutArea was just called")
	}
	return m.WithoutAreaFunc(ctx)
}

var _ CursoStore = (*cursoStoreMock)(nil)
