package console

import (
	"context"
	"strings"
	"time"

	"hrms-lite/internal/core/domain"
)

// EmployeeRemote is the employee collection service
type EmployeeRemote = Remote[domain.Employee, domain.EmployeeCreate, domain.EmployeeUpdate]

// EmployeeStore is the employee Collection Store
type EmployeeStore = Store[domain.Employee, domain.EmployeeCreate, domain.EmployeeUpdate]

// NewEmployeeStore creates the employee store
func NewEmployeeStore(remote EmployeeRemote) *EmployeeStore {
	return NewStore(remote, StoreConfig[domain.Employee]{
		Name:           "employees",
		ID:             func(e domain.Employee) uint { return e.ID },
		LoadFallback:   MsgLoadEmployees,
		DeleteFallback: MsgDeleteEmployee,
		NotFoundDetail: MsgEmployeeNotInList,
	})
}

// EmployeeDraft is the working copy of an employee form
type EmployeeDraft struct {
	EmployeeID    string
	FullName      string
	Email         string
	Department    string
	DateOfJoining string
}

// DefaultEmployeeDraft returns the blank draft joining on today
func DefaultEmployeeDraft(today string) EmployeeDraft {
	return EmployeeDraft{DateOfJoining: today}
}

// EmployeeForm is the Create/Edit controller for employees
type EmployeeForm struct {
	*machine[EmployeeDraft]
	store *EmployeeStore
	clock func() time.Time
}

// NewEmployeeForm creates a form in Create mode
func NewEmployeeForm(store *EmployeeStore, opts ...FormOption) *EmployeeForm {
	o := applyFormOptions(opts)
	f := &EmployeeForm{store: store, clock: o.clock}
	f.machine = newMachine(func(EmployeeDraft) EmployeeDraft {
		return DefaultEmployeeDraft(domain.Today(f.clock()))
	})
	return f
}

// Disabled reports whether field is locked in the current mode
func (f *EmployeeForm) Disabled(field Field) bool {
	if f.Saving() {
		return true
	}
	return field == FieldEmployeeCode && f.Mode().Editing()
}

func codeLocked(m Mode) bool { return m.Editing() }

// SetEmployeeCode sets the employee code. It is locked in Edit mode.
func (f *EmployeeForm) SetEmployeeCode(v string) error {
	return f.set(codeLocked, func(d *EmployeeDraft) { d.EmployeeID = v })
}

// SetFullName sets the full name
func (f *EmployeeForm) SetFullName(v string) error {
	return f.set(nil, func(d *EmployeeDraft) { d.FullName = v })
}

// SetEmail sets the email
func (f *EmployeeForm) SetEmail(v string) error {
	return f.set(nil, func(d *EmployeeDraft) { d.Email = v })
}

// SetDepartment sets the department
func (f *EmployeeForm) SetDepartment(v string) error {
	return f.set(nil, func(d *EmployeeDraft) { d.Department = v })
}

// SetDateOfJoining sets the joining date
func (f *EmployeeForm) SetDateOfJoining(v string) error {
	return f.set(nil, func(d *EmployeeDraft) { d.DateOfJoining = v })
}

// BeginEdit loads e into the draft and enters Edit mode.
// It returns ErrSaving while a submit is in flight.
func (f *EmployeeForm) BeginEdit(e domain.Employee) error {
	return f.edit(e.ID, EmployeeDraft{
		EmployeeID:    e.EmployeeID,
		FullName:      e.FullName,
		Email:         e.Email,
		Department:    e.Department,
		DateOfJoining: e.DateOfJoining,
	}, FieldFullName)
}

// Cancel leaves Edit mode and restores defaults
func (f *EmployeeForm) Cancel() error {
	return f.cancel(FieldEmployeeCode)
}

// CanSubmit reports whether every required field is filled
func (f *EmployeeForm) CanSubmit() bool {
	return len(validateEmployeeDraft(f.Mode(), f.Draft())) == 0 && !f.Saving()
}

// FieldErrors returns the per-field messages once a submit was attempted
func (f *EmployeeForm) FieldErrors() map[Field]string {
	return f.fieldErrors(validateEmployeeDraft)
}

// Submit creates or updates the employee, then refreshes the store once
func (f *EmployeeForm) Submit(ctx context.Context) error {
	_, err := f.submit(ctx, submission[EmployeeDraft]{
		validate: validateEmployeeDraft,
		create: func(ctx context.Context, d EmployeeDraft) error {
			_, err := f.store.Create(ctx, domain.EmployeeCreate{
				EmployeeID:    strings.TrimSpace(d.EmployeeID),
				FullName:      strings.TrimSpace(d.FullName),
				Email:         strings.TrimSpace(d.Email),
				Department:    strings.TrimSpace(d.Department),
				DateOfJoining: d.DateOfJoining,
			})
			return err
		},
		update: func(ctx context.Context, id uint, d EmployeeDraft) error {
			_, err := f.store.Update(ctx, id, domain.EmployeeUpdate{
				FullName:      strings.TrimSpace(d.FullName),
				Email:         strings.TrimSpace(d.Email),
				Department:    strings.TrimSpace(d.Department),
				DateOfJoining: d.DateOfJoining,
			})
			return err
		},
		fallback: MsgSaveEmployee,
		created:  MsgEmployeeCreated,
		updated:  MsgEmployeeUpdated,
		focus:    FieldEmployeeCode,
	})
	if err != nil {
		return err
	}

	// load failures land on the store as a list-level error
	_, _ = f.store.Refresh(ctx, Query{})
	return nil
}

func validateEmployeeDraft(mode Mode, d EmployeeDraft) map[Field]string {
	errs := map[Field]string{}
	if !mode.Editing() && strings.TrimSpace(d.EmployeeID) == "" {
		errs[FieldEmployeeCode] = MsgEmployeeCodeRequired
	}
	if strings.TrimSpace(d.FullName) == "" {
		errs[FieldFullName] = MsgFullNameRequired
	}
	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	}
	if strings.TrimSpace(d.Department) == "" {
		errs[FieldDepartment] = MsgDepartmentRequired
	}
	if d.DateOfJoining == "" {
		errs[FieldDateOfJoining] = MsgDateOfJoiningRequired
	}
	return errs
}
