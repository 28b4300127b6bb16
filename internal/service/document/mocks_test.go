package document

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	GetFunc  func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	SaveFunc func(ctx context.Context, c *domain.Client) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Save []struct {
			Ctx context.Context
			C   *domain.Client
		}
	}
	lockGet  sync.RWMutex
	lockSave sync.RWMutex
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

func (mock *clientRepoMock) Save(ctx context.Context, c *domain.Client) error {
	if mock.SaveFunc == nil {
		panic("clientRepoMock.SaveFunc: method is nil but clientRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Client
	}{Ctx: ctx, C: c}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, c)
}

func (mock *clientRepoMock) SaveCalls() []struct {
	Ctx context.Context
	C   *domain.Client
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockLog sync.RWMutex
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
