package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	clientrepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/client"
	employeerepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/employee"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	CreateFunc func(ctx context.Context, c *domain.Client) error
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	ListFunc   func(ctx context.Context, f clientrepo.ListFilter) ([]*domain.Client, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Client
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   clientrepo.ListFilter
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *clientRepoMock) Create(ctx context.Context, c *domain.Client) error {
	if mock.CreateFunc == nil {
		panic("clientRepoMock.CreateFunc: method is nil but clientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Client
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *clientRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Client
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *clientRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if mock.GetFunc == nil {
		panic("clientRepoMock.GetFunc: method is nil but clientRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *clientRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *clientRepoMock) List(ctx context.Context, f clientrepo.ListFilter) ([]*domain.Client, error) {
	if mock.ListFunc == nil {
		panic("clientRepoMock.ListFunc: method is nil but clientRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   clientrepo.ListFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *clientRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   clientrepo.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.Employee) error
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListFunc   func(ctx context.Context, f employeerepo.ListFilter) ([]*domain.Employee, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Employee
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   employeerepo.ListFilter
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *employeeRepoMock) Create(ctx context.Context, e *domain.Employee) error {
	if mock.CreateFunc == nil {
		panic("employeeRepoMock.CreateFunc: method is nil but employeeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Employee
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *employeeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Employee
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *employeeRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	if mock.GetFunc == nil {
		panic("employeeRepoMock.GetFunc: method is nil but employeeRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *employeeRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *employeeRepoMock) List(ctx context.Context, f employeerepo.ListFilter) ([]*domain.Employee, error) {
	if mock.ListFunc == nil {
		panic("employeeRepoMock.ListFunc: method is nil but employeeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   employeerepo.ListFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *employeeRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   employeerepo.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ auditLog = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc          func(ctx context.Context, record domain.AuditRecord) error
	ListByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	ListByActorFunc  func(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
		ListByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Limit      int
		}
		ListByActor []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			Limit   int
			Offset  int
		}
	}
	lockLog          sync.RWMutex
	lockListByEntity sync.RWMutex
	lockListByActor  sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *auditLoggerMock) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditLoggerMock.ListByEntityFunc: method is nil but auditLog.ListByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Limit      int
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Limit: limit}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, entityType, entityID, limit)
}

func (mock *auditLoggerMock) ListByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
} {
	mock.lockListByEntity.RLock()
	calls := mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}

func (mock *auditLoggerMock) ListByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	if mock.ListByActorFunc == nil {
		panic("auditLoggerMock.ListByActorFunc: method is nil but auditLog.ListByActor was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		Limit   int
		Offset  int
	}{Ctx: ctx, ActorID: actorID, Limit: limit, Offset: offset}
	mock.lockListByActor.Lock()
	mock.calls.ListByActor = append(mock.calls.ListByActor, callInfo)
	mock.lockListByActor.Unlock()
	return mock.ListByActorFunc(ctx, actorID, limit, offset)
}

func (mock *auditLoggerMock) ListByActorCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	Limit   int
	Offset  int
} {
	mock.lockListByActor.RLock()
	calls := mock.calls.ListByActor
	mock.lockListByActor.RUnlock()
	return calls
}
