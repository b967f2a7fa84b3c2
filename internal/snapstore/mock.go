package snapstore

import (
	"context"

	"github.com/codegauge/codegauge/internal/contract"
	"github.com/codegauge/codegauge/schema"
	"github.com/stretchr/testify/mock"
)

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Latest implements the SnapshotStore interface.
func (m *MockSnapshotStore) Latest(ctx context.Context, repo, branch string) (*schema.Snapshot, error) {
	args := m.Called(ctx, repo, branch)
	snap, _ := args.Get(0).(*schema.Snapshot)
	return snap, args.Error(1)
}

// Record implements the SnapshotStore interface.
func (m *MockSnapshotStore) Record(ctx context.Context, snap schema.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

// History implements the SnapshotStore interface.
func (m *MockSnapshotStore) History(ctx context.Context, repo, branch string, limit int) ([]schema.Snapshot, error) {
	args := m.Called(ctx, repo, branch, limit)
	history, _ := args.Get(0).([]schema.Snapshot)
	return history, args.Error(1)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
