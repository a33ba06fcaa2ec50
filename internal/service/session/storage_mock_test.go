package session

import (
	"context"
	"sync"
)

var _ Storage = &storageMock{}

type storageMock struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc    func(ctx context.Context, key string, value []byte) error
	RemoveFunc func(ctx context.Context, key string) error

	calls struct {
		Get []struct {
			Key string
		}
		Set []struct {
			Key   string
			Value []byte
		}
		Remove []struct {
			Key string
		}
	}
	lockGet    sync.RWMutex
	lockSet    sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *storageMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if mock.GetFunc == nil {
		panic("storageMock.GetFunc: method is nil but Storage.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Key string }{Key: key})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *storageMock) GetCalls() []struct{ Key string } {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *storageMock) Set(ctx context.Context, key string, value []byte) error {
	if mock.SetFunc == nil {
		panic("storageMock.SetFunc: method is nil but Storage.Set was just called")
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, struct {
		Key   string
		Value []byte
	}{Key: key, Value: value})
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, value)
}

func (mock *storageMock) SetCalls() []struct {
	Key   string
	Value []byte
} {
	mock.lockSet.RLock()
	defer mock.lockSet.RUnlock()
	return mock.calls.Set
}

func (mock *storageMock) Remove(ctx context.Context, key string) error {
	if mock.RemoveFunc == nil {
		panic("storageMock.RemoveFunc: method is nil but Storage.Remove was just called")
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, struct{ Key string }{Key: key})
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, key)
}

func (mock *storageMock) RemoveCalls() []struct{ Key string } {
	mock.lockRemove.RLock()
	defer mock.lockRemove.RUnlock()
	return mock.calls.Remove
}
