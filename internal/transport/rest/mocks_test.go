package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/service/lookup"
)

var _ lookupService = &lookupServiceMock{}

type lookupServiceMock struct {
	SearchFunc func(ctx context.Context, word string) (lookup.State, error)
	StateFunc  func() lookup.State

	calls struct {
		Search []struct{ Word string }
	}
	lockSearch sync.RWMutex
}

func (mock *lookupServiceMock) Search(ctx context.Context, word string) (lookup.State, error) {
	if mock.SearchFunc == nil {
		panic("lookupServiceMock.SearchFunc: method is nil but lookupService.Search was just called")
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, struct{ Word string }{Word: word})
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, word)
}

func (mock *lookupServiceMock) SearchCalls() []struct{ Word string } {
	mock.lockSearch.RLock()
	defer mock.lockSearch.RUnlock()
	return mock.calls.Search
}

func (mock *lookupServiceMock) State() lookup.State {
	if mock.StateFunc == nil {
		panic("lookupServiceMock.StateFunc: method is nil but lookupService.State was just called")
	}
	return mock.StateFunc()
}

var _ historyStore = &historyStoreMock{}

type historyStoreMock struct {
	HistoryFunc      func() []domain.HistoryItem
	ClearHistoryFunc func(ctx context.Context) error
}

func (mock *historyStoreMock) History() []domain.HistoryItem {
	if mock.HistoryFunc == nil {
		panic("historyStoreMock.HistoryFunc: method is nil but historyStore.History was just called")
	}
	return mock.HistoryFunc()
}

func (mock *historyStoreMock) ClearHistory(ctx context.Context) error {
	if mock.ClearHistoryFunc == nil {
		panic("historyStoreMock.ClearHistoryFunc: method is nil but historyStore.ClearHistory was just called")
	}
	return mock.ClearHistoryFunc(ctx)
}
