package lookup

import (
	"context"
	"sync"

	"github.com/heartmarshall/leximind/internal/domain"
)

var (
	_ dictionary      = &dictionaryMock{}
	_ insightSource   = &insightSourceMock{}
	_ historyRecorder = &historyRecorderMock{}
)

type dictionaryMock struct {
	LookupFunc func(ctx context.Context, word string) ([]domain.WordEntry, error)

	calls struct {
		Lookup []struct{ Word string }
	}
	lockLookup sync.RWMutex
}

func (mock *dictionaryMock) Lookup(ctx context.Context, word string) ([]domain.WordEntry, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryMock.LookupFunc: method is nil but dictionary.Lookup was just called")
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, struct{ Word string }{Word: word})
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, word)
}

func (mock *dictionaryMock) LookupCalls() []struct{ Word string } {
	mock.lockLookup.RLock()
	defer mock.lockLookup.RUnlock()
	return mock.calls.Lookup
}

type insightSourceMock struct {
	GetInsightsFunc func(ctx context.Context, word string) domain.AIInsights

	calls struct {
		GetInsights []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockGetInsights sync.RWMutex
}

func (mock *insightSourceMock) GetInsights(ctx context.Context, word string) domain.AIInsights {
	if mock.GetInsightsFunc == nil {
		panic("insightSourceMock.GetInsightsFunc: method is nil but insightSource.GetInsights was just called")
	}
	mock.lockGetInsights.Lock()
	mock.calls.GetInsights = append(mock.calls.GetInsights, struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word})
	mock.lockGetInsights.Unlock()
	return mock.GetInsightsFunc(ctx, word)
}

func (mock *insightSourceMock) GetInsightsCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockGetInsights.RLock()
	defer mock.lockGetInsights.RUnlock()
	return mock.calls.GetInsights
}

type historyRecorderMock struct {
	RecordSearchFunc func(ctx context.Context, word string) ([]domain.HistoryItem, error)

	calls struct {
		RecordSearch []struct{ Word string }
	}
	lockRecordSearch sync.RWMutex
}

func (mock *historyRecorderMock) RecordSearch(ctx context.Context, word string) ([]domain.HistoryItem, error) {
	mock.lockRecordSearch.Lock()
	mock.calls.RecordSearch = append(mock.calls.RecordSearch, struct{ Word string }{Word: word})
	mock.lockRecordSearch.Unlock()
	if mock.RecordSearchFunc == nil {
		return nil, nil
	}
	return mock.RecordSearchFunc(ctx, word)
}

func (mock *historyRecorderMock) RecordSearchCalls() []struct{ Word string } {
	mock.lockRecordSearch.RLock()
	defer mock.lockRecordSearch.RUnlock()
	return mock.calls.RecordSearch
}
