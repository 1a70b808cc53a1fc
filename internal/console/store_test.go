package console

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"hrms-lite/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ada   = domain.Employee{ID: 1, EmployeeID: "EMP-001", FullName: "Ada Lovelace", Email: "ada@example.com", Department: "Engineering", DateOfJoining: "2023-01-09"}
	grace = domain.Employee{ID: 2, EmployeeID: "EMP-002", FullName: "Grace Hopper", Email: "grace@example.com", Department: "Engineering", DateOfJoining: "2023-03-01"}
	kat   = domain.Employee{ID: 3, EmployeeID: "EMP-003", FullName: "Katherine Johnson", Email: "kj@example.com", Department: "Finance", DateOfJoining: "2024-06-17"}
)

func TestStoreStartsUnloaded(t *testing.T) {
	store := NewEmployeeStore(newFakeEmployees())
	snap := store.Snapshot()
	assert.Equal(t, StateUnloaded, snap.State)
	assert.Zero(t, snap.Len())
}

func TestStoreRefresh(t *testing.T) {
	remote := newFakeEmployees(ada, grace)
	store := NewEmployeeStore(remote)

	var states []State
	unsubscribe := store.Subscribe(func(s Snapshot[domain.Employee]) {
		states = append(states, s.State)
	})

	snap, err := store.Refresh(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, StateLoaded, snap.State)
	// fetch order is kept
	assert.Equal(t, []domain.Employee{ada, grace}, snap.Records)
	assert.Equal(t, []State{StateLoading, StateLoaded}, states)

	unsubscribe()
	_, err = store.Refresh(context.Background(), Query{})
	require.NoError(t, err)
	assert.Len(t, states, 2, "listener ran after unsubscribe")
}

func TestStoreRefreshEmptyIsLoaded(t *testing.T) {
	store := NewEmployeeStore(newFakeEmployees())
	snap, err := store.Refresh(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, StateLoaded, snap.State)
	assert.NotNil(t, snap.Records)
	assert.Empty(t, snap.Records)
}

func TestStoreRefreshFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport", &TransportError{Err: errors.New("connection refused")}, MsgLoadEmployees},
		{"rejection with detail", &RemoteRejection{Status: http.StatusInternalServerError, Detail: "database offline"}, "database offline"},
		{"rejection without detail", &RemoteRejection{Status: http.StatusBadGateway}, MsgLoadEmployees},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeEmployees(ada)
			remote.listErr = tt.err
			store := NewEmployeeStore(remote)

			snap, err := store.Refresh(context.Background(), Query{})
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, StateFailed, snap.State)
			assert.Empty(t, snap.Records)
			assert.Equal(t, tt.want, snap.Err)
			assert.Equal(t, tt.want, store.ListError())
		})
	}
}

func TestStoreCreateDoesNotTouchSnapshot(t *testing.T) {
	remote := newFakeEmployees(ada)
	store := NewEmployeeStore(remote)
	_, err := store.Refresh(context.Background(), Query{})
	require.NoError(t, err)

	_, err = store.Create(context.Background(), domain.EmployeeCreate{EmployeeID: "EMP-002"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Snapshot().Len(), "snapshot changed before refresh")
}

func TestStoreRemoveMissingID(t *testing.T) {
	remote := newFakeEmployees(ada, grace)
	store := NewEmployeeStore(remote)
	_, err := store.Refresh(context.Background(), Query{})
	require.NoError(t, err)

	err = store.Remove(context.Background(), 42)
	var rejection *RemoteRejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusNotFound, rejection.Status)
	assert.Empty(t, remote.deletes, "remote delete called for an id outside the snapshot")
	assert.Equal(t, 2, store.Snapshot().Len())
	assert.Equal(t, MsgEmployeeNotInList, store.ListError())

	store.DismissError()
	assert.Empty(t, store.ListError())
}

func TestStoreRemove(t *testing.T) {
	remote := newFakeEmployees(ada, grace)
	store := NewEmployeeStore(remote)
	ctx := context.Background()
	_, err := store.Refresh(ctx, Query{})
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, ada.ID))
	assert.Equal(t, []domain.Employee{grace}, store.Snapshot().Records)
	assert.Equal(t, 2, remote.listCount(), "want one refresh after delete")

	// the second delete of the same id is terminal
	require.Error(t, store.Remove(ctx, ada.ID))
	assert.Equal(t, []uint{ada.ID}, remote.deletes)
}

func TestStoreRemoveRemoteFailure(t *testing.T) {
	remote := newFakeEmployees(ada)
	remote.deleteErr = &TransportError{Err: errors.New("timeout")}
	store := NewEmployeeStore(remote)
	ctx := context.Background()
	_, err := store.Refresh(ctx, Query{})
	require.NoError(t, err)

	require.Error(t, store.Remove(ctx, ada.ID))
	assert.Equal(t, MsgDeleteEmployee, store.ListError())
	assert.Equal(t, 1, store.Snapshot().Len(), "row removed before remote confirmation")
	assert.Equal(t, 1, remote.listCount(), "failed delete must not refresh")
}

func TestStoreClear(t *testing.T) {
	store := NewAttendanceStore(newFakeAttendance(domain.Attendance{ID: 1, EmployeeID: 1, Date: testToday, Status: domain.StatusPresent}))
	_, err := store.Refresh(context.Background(), Query{EmployeeID: 1})
	require.NoError(t, err)

	store.Clear()
	snap := store.Snapshot()
	assert.Equal(t, StateUnloaded, snap.State)
	assert.Zero(t, snap.Len())
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewEmployeeStore(newFakeEmployees(ada))
	_, err := store.Refresh(context.Background(), Query{})
	require.NoError(t, err)

	snap := store.Snapshot()
	snap.Records[0].FullName = "changed"
	assert.Equal(t, ada.FullName, store.Snapshot().Records[0].FullName)
}

func TestStoreOverlappingRefreshLastResponseWins(t *testing.T) {
	remote := &gatedAttendance{
		fakeAttendance: newFakeAttendance(
			domain.Attendance{ID: 1, EmployeeID: 1, Date: testToday, Status: domain.StatusPresent},
			domain.Attendance{ID: 2, EmployeeID: 2, Date: testToday, Status: domain.StatusAbsent},
		),
		started: make(chan uint),
		gates:   map[uint]chan struct{}{1: make(chan struct{}), 2: make(chan struct{})},
	}
	store := NewAttendanceStore(remote)
	ctx := context.Background()

	var wg sync.WaitGroup
	first := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(first)
		_, _ = store.Refresh(ctx, Query{EmployeeID: 1})
	}()
	<-remote.started

	second := make(chan struct{})
	go func() {
		defer wg.Done()
		defer close(second)
		_, _ = store.Refresh(ctx, Query{EmployeeID: 2})
	}()
	<-remote.started

	close(remote.gates[2])
	<-second
	require.Equal(t, uint(2), store.Snapshot().Query.EmployeeID)

	close(remote.gates[1])
	<-first
	wg.Wait()

	// the last response to arrive wins, even though it was requested first
	snap := store.Snapshot()
	assert.Equal(t, uint(1), snap.Query.EmployeeID)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, uint(1), snap.Records[0].EmployeeID)
}
