package console

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hrms-lite/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeFixture(t *testing.T, records ...domain.Employee) (*EmployeeForm, *EmployeeStore, *fakeEmployees) {
	t.Helper()
	remote := newFakeEmployees(records...)
	store := NewEmployeeStore(remote)
	_, err := store.Refresh(context.Background(), Query{})
	require.NoError(t, err)
	return NewEmployeeForm(store, WithClock(fixedClock)), store, remote
}

func fillEmployee(t *testing.T, f *EmployeeForm, d EmployeeDraft) {
	t.Helper()
	if !f.Mode().Editing() {
		require.NoError(t, f.SetEmployeeCode(d.EmployeeID))
	}
	require.NoError(t, f.SetFullName(d.FullName))
	require.NoError(t, f.SetEmail(d.Email))
	require.NoError(t, f.SetDepartment(d.Department))
	require.NoError(t, f.SetDateOfJoining(d.DateOfJoining))
}

func TestEmployeeFormDefaults(t *testing.T) {
	f, _, _ := newEmployeeFixture(t)
	assert.False(t, f.Mode().Editing())
	assert.Equal(t, DefaultEmployeeDraft(testToday), f.Draft())
	assert.False(t, f.CanSubmit(), "blank draft should not be submittable")
}

func TestEmployeeFormNoFieldErrorsBeforeAttempt(t *testing.T) {
	f, _, _ := newEmployeeFixture(t)
	assert.Empty(t, f.FieldErrors())

	require.NoError(t, f.SetFullName("   "))
	assert.Empty(t, f.FieldErrors())
}

func TestEmployeeFormRejectsLocally(t *testing.T) {
	f, _, remote := newEmployeeFixture(t)

	err := f.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	want := map[Field]string{
		FieldEmployeeCode: MsgEmployeeCodeRequired,
		FieldFullName:     MsgFullNameRequired,
		FieldEmail:        MsgEmailRequired,
		FieldDepartment:   MsgDepartmentRequired,
	}
	assert.Equal(t, want, verr.Fields)
	assert.Equal(t, want, f.FieldErrors())
	assert.Equal(t, MsgFixFields, f.FormError())
	assert.Empty(t, remote.creates, "remote create called for an invalid draft")

	// revalidates on every change once attempted
	require.NoError(t, f.SetFullName("Ada Lovelace"))
	assert.NotContains(t, f.FieldErrors(), FieldFullName)

	require.NoError(t, f.SetDateOfJoining(""))
	assert.Equal(t, MsgDateOfJoiningRequired, f.FieldErrors()[FieldDateOfJoining])
}

func TestEmployeeFormCreate(t *testing.T) {
	f, store, remote := newEmployeeFixture(t, ada)
	ctx := context.Background()

	fillEmployee(t, f, EmployeeDraft{
		EmployeeID:    "  EMP-002 ",
		FullName:      " Grace Hopper ",
		Email:         "grace@example.com ",
		Department:    "Engineering",
		DateOfJoining: "2023-03-01",
	})
	require.True(t, f.CanSubmit())
	lists := remote.listCount()

	require.NoError(t, f.Submit(ctx))

	assert.Equal(t, []domain.EmployeeCreate{{
		EmployeeID:    "EMP-002",
		FullName:      "Grace Hopper",
		Email:         "grace@example.com",
		Department:    "Engineering",
		DateOfJoining: "2023-03-01",
	}}, remote.creates)
	assert.Equal(t, 1, remote.listCount()-lists, "want exactly one refresh after submit")
	assert.Equal(t, 2, store.Snapshot().Len())
	assert.Equal(t, MsgEmployeeCreated, f.Success())
	assert.Equal(t, DefaultEmployeeDraft(testToday), f.Draft())
	assert.False(t, f.Attempted())
	assert.Equal(t, []Effect{{Focus: FieldEmployeeCode}}, f.Effects())
	assert.Empty(t, f.Effects(), "effects not drained")

	f.DismissSuccess()
	assert.Empty(t, f.Success())
}

func TestEmployeeFormEditScenario(t *testing.T) {
	emp7 := domain.Employee{ID: 7, EmployeeID: "EMP-007", FullName: "A", Email: "a@x.com", Department: "Eng", DateOfJoining: "2023-01-01"}
	f, _, remote := newEmployeeFixture(t, emp7)
	ctx := context.Background()

	require.NoError(t, f.BeginEdit(emp7))
	assert.Equal(t, EditMode(7), f.Mode())
	assert.Equal(t, EmployeeDraft{EmployeeID: "EMP-007", FullName: "A", Email: "a@x.com", Department: "Eng", DateOfJoining: "2023-01-01"}, f.Draft())
	assert.True(t, f.Disabled(FieldEmployeeCode))
	assert.False(t, f.Disabled(FieldFullName))
	assert.ErrorIs(t, f.SetEmployeeCode("EMP-999"), ErrFieldLocked)
	assert.Equal(t, []Effect{{Focus: FieldFullName}}, f.Effects())

	require.NoError(t, f.SetFullName("B"))
	lists := remote.listCount()
	require.NoError(t, f.Submit(ctx))

	assert.Equal(t, []domain.EmployeeUpdate{{FullName: "B", Email: "a@x.com", Department: "Eng", DateOfJoining: "2023-01-01"}}, remote.updates[7])
	assert.Empty(t, remote.creates, "edit submit must not create")
	assert.Equal(t, 1, remote.listCount()-lists)
	assert.False(t, f.Mode().Editing())
	assert.Equal(t, DefaultEmployeeDraft(testToday), f.Draft())
	assert.Equal(t, MsgEmployeeUpdated, f.Success())
}

func TestEmployeeFormEditDoesNotRequireCode(t *testing.T) {
	f, _, remote := newEmployeeFixture(t, ada)
	legacy := ada
	legacy.EmployeeID = ""
	require.NoError(t, f.BeginEdit(legacy))

	require.NoError(t, f.Submit(context.Background()))
	assert.Len(t, remote.updates[ada.ID], 1)
}

func TestEmployeeFormRemoteFailureKeepsDraft(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"duplicate code", &RemoteRejection{Status: http.StatusConflict, Detail: "Employee ID already exists"}, "Employee ID already exists"},
		{"transport", &TransportError{Err: errors.New("connection reset")}, MsgSaveEmployee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _, remote := newEmployeeFixture(t, ada)
			remote.createErr = tt.err
			draft := EmployeeDraft{EmployeeID: "EMP-001", FullName: "Ada", Email: "ada@example.com", Department: "Eng", DateOfJoining: testToday}
			fillEmployee(t, f, draft)
			lists := remote.listCount()

			require.ErrorIs(t, f.Submit(context.Background()), tt.err)
			assert.Equal(t, tt.want, f.FormError())
			assert.Equal(t, draft, f.Draft())
			assert.False(t, f.Mode().Editing())
			assert.Equal(t, lists, remote.listCount(), "failed submit must not refresh")
			assert.Empty(t, f.Success())

			f.DismissError()
			assert.Empty(t, f.FormError())
		})
	}
}

func TestEmployeeFormUpdateFailureStaysInEdit(t *testing.T) {
	f, _, remote := newEmployeeFixture(t, ada)
	remote.updateErr = &RemoteRejection{Status: http.StatusConflict, Detail: "Email already exists"}

	require.NoError(t, f.BeginEdit(ada))
	require.NoError(t, f.SetEmail("grace@example.com"))
	require.Error(t, f.Submit(context.Background()))

	assert.Equal(t, EditMode(ada.ID), f.Mode())
	assert.Equal(t, "grace@example.com", f.Draft().Email)
	assert.Equal(t, "Email already exists", f.FormError())
}

func TestEmployeeFormCancel(t *testing.T) {
	f, _, _ := newEmployeeFixture(t, ada)

	assert.ErrorIs(t, f.Cancel(), ErrNotEditing)

	require.NoError(t, f.BeginEdit(ada))
	f.Effects()
	require.NoError(t, f.Submit(context.Background()))
	require.NoError(t, f.BeginEdit(ada))
	require.NoError(t, f.SetFullName(""))
	require.Error(t, f.Submit(context.Background()))
	f.Effects()

	require.NoError(t, f.Cancel())
	assert.False(t, f.Mode().Editing())
	assert.Equal(t, DefaultEmployeeDraft(testToday), f.Draft())
	assert.False(t, f.Attempted())
	assert.Empty(t, f.FormError())
	assert.Empty(t, f.FieldErrors())
	assert.Equal(t, []Effect{{Focus: FieldEmployeeCode}}, f.Effects())
}

func TestEmployeeFormBeginEditReplacesDraft(t *testing.T) {
	f, _, _ := newEmployeeFixture(t, ada, grace)
	require.NoError(t, f.SetDepartment("Ops"))
	require.NoError(t, f.BeginEdit(ada))
	require.NoError(t, f.BeginEdit(grace))

	got := f.Draft()
	assert.Equal(t, grace.FullName, got.FullName)
	assert.Equal(t, grace.Department, got.Department)
	assert.Equal(t, EditMode(grace.ID), f.Mode())
}

func TestEmployeeFormBeginEditRefusedWhileSaving(t *testing.T) {
	remote := &gatedEmployees{
		fakeEmployees: newFakeEmployees(ada),
		started:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	store := NewEmployeeStore(remote)
	f := NewEmployeeForm(store, WithClock(fixedClock))
	fillEmployee(t, f, EmployeeDraft{EmployeeID: "EMP-002", FullName: "Grace Hopper", Email: "grace@example.com", Department: "Engineering", DateOfJoining: testToday})

	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background())
	}()
	<-remote.started

	assert.True(t, f.Saving())
	assert.ErrorIs(t, f.BeginEdit(ada), ErrSaving)
	assert.ErrorIs(t, f.Cancel(), ErrNotEditing)
	assert.ErrorIs(t, f.SetFullName("x"), ErrFieldLocked)
	assert.True(t, f.Disabled(FieldFullName))
	assert.Equal(t, CreateMode(), f.Mode(), "mode changed during an in-flight save")

	close(remote.release)
	require.NoError(t, <-done)

	assert.Equal(t, CreateMode(), f.Mode())
	assert.Equal(t, DefaultEmployeeDraft(testToday), f.Draft())
	assert.Equal(t, MsgEmployeeCreated, f.Success())

	// the form accepts edits again once the save has landed
	require.NoError(t, f.BeginEdit(ada))
	assert.Equal(t, EditMode(ada.ID), f.Mode())
}
