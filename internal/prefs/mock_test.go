package prefs

import (
	"context"
	"errors"
)

// failingStore returns errors from every operation.
type failingStore struct {
	loadErr error
	saveErr error
}

func (f *failingStore) Load(context.Context, string) (string, bool, error) {
	return "", false, f.loadErr
}

func (f *failingStore) Save(context.Context, string, string) error {
	return f.saveErr
}

func (f *failingStore) Close() error { return nil }

var errBoom = errors.New("boom")
