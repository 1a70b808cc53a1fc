package console

import (
	"context"
	"fmt"
	"time"

	"hrms-lite/internal/core/domain"
)

// AttendanceRemote is the attendance collection service
type AttendanceRemote = Remote[domain.Attendance, domain.AttendanceCreate, domain.AttendanceUpdate]

// AttendanceStore is the attendance Collection Store
type AttendanceStore = Store[domain.Attendance, domain.AttendanceCreate, domain.AttendanceUpdate]

// NewAttendanceStore creates the attendance store
func NewAttendanceStore(remote AttendanceRemote) *AttendanceStore {
	return NewStore(remote, StoreConfig[domain.Attendance]{
		Name:           "attendance",
		ID:             func(a domain.Attendance) uint { return a.ID },
		LoadFallback:   MsgLoadAttendance,
		DeleteFallback: MsgDeleteAttendance,
		NotFoundDetail: MsgAttendanceNotInList,
	})
}

// AttendanceDraft is the working copy of an attendance form
type AttendanceDraft struct {
	EmployeeID uint
	Date       string
	Status     domain.AttendanceStatus
}

// DefaultAttendanceDraft returns a Present mark for today for employeeID
func DefaultAttendanceDraft(employeeID uint, today string) AttendanceDraft {
	return AttendanceDraft{EmployeeID: employeeID, Date: today, Status: domain.StatusPresent}
}

// EmployeeOption is one entry of the employee picker
type EmployeeOption struct {
	ID    uint
	Label string
}

// AttendanceForm is the Create/Edit controller for attendance. The selected
// employee is sticky across resets and scopes the attendance store.
type AttendanceForm struct {
	*machine[AttendanceDraft]
	store     *AttendanceStore
	employees *EmployeeStore
	clock     func() time.Time
}

// NewAttendanceForm creates a form in Create mode with no employee selected
func NewAttendanceForm(store *AttendanceStore, employees *EmployeeStore, opts ...FormOption) *AttendanceForm {
	o := applyFormOptions(opts)
	f := &AttendanceForm{store: store, employees: employees, clock: o.clock}
	f.machine = newMachine(func(prev AttendanceDraft) AttendanceDraft {
		return DefaultAttendanceDraft(prev.EmployeeID, domain.Today(f.clock()))
	})
	return f
}

// Disabled reports whether field is locked in the current mode
func (f *AttendanceForm) Disabled(field Field) bool {
	if f.Saving() {
		return true
	}
	return field == FieldEmployee && f.Mode().Editing()
}

func employeeLocked(m Mode) bool { return m.Editing() }

// SelectEmployee picks the employee and reloads their attendance.
// Selecting 0 clears the list. The employee is locked in Edit mode.
func (f *AttendanceForm) SelectEmployee(ctx context.Context, id uint) error {
	if err := f.set(employeeLocked, func(d *AttendanceDraft) { d.EmployeeID = id }); err != nil {
		return err
	}
	return f.Refresh(ctx)
}

// SetDate sets the attendance date
func (f *AttendanceForm) SetDate(v string) error {
	return f.set(nil, func(d *AttendanceDraft) { d.Date = v })
}

// SetStatus sets the attendance status
func (f *AttendanceForm) SetStatus(v domain.AttendanceStatus) error {
	return f.set(nil, func(d *AttendanceDraft) { d.Status = v })
}

// Refresh reloads the attendance of the selected employee
func (f *AttendanceForm) Refresh(ctx context.Context) error {
	employeeID := f.Draft().EmployeeID
	if employeeID == 0 {
		f.store.Clear()
		return nil
	}
	_, err := f.store.Refresh(ctx, Query{EmployeeID: employeeID})
	return err
}

// BeginEdit loads r into the draft and enters Edit mode.
// It returns ErrSaving while a submit is in flight.
func (f *AttendanceForm) BeginEdit(r domain.Attendance) error {
	return f.edit(r.ID, AttendanceDraft{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Status:     r.Status,
	}, FieldDate)
}

// Cancel leaves Edit mode and restores defaults, keeping the employee
func (f *AttendanceForm) Cancel() error {
	return f.cancel(FieldEmployee)
}

// CanSubmit reports whether every required field is filled
func (f *AttendanceForm) CanSubmit() bool {
	return len(validateAttendanceDraft(f.Mode(), f.Draft())) == 0 && !f.Saving()
}

// FieldErrors returns the per-field messages once a submit was attempted
func (f *AttendanceForm) FieldErrors() map[Field]string {
	return f.fieldErrors(validateAttendanceDraft)
}

// Submit marks or updates attendance, then refreshes the selected
// employee's attendance once
func (f *AttendanceForm) Submit(ctx context.Context) error {
	next, err := f.submit(ctx, submission[AttendanceDraft]{
		validate: validateAttendanceDraft,
		create: func(ctx context.Context, d AttendanceDraft) error {
			_, err := f.store.Create(ctx, domain.AttendanceCreate{
				EmployeeID: d.EmployeeID,
				Date:       d.Date,
				Status:     d.Status,
			})
			return err
		},
		update: func(ctx context.Context, id uint, d AttendanceDraft) error {
			_, err := f.store.Update(ctx, id, domain.AttendanceUpdate{
				Date:   d.Date,
				Status: d.Status,
			})
			return err
		},
		fallback: MsgSaveAttendance,
		created:  MsgAttendanceMarked,
		updated:  MsgAttendanceUpdated,
		focus:    FieldEmployee,
	})
	if err != nil {
		return err
	}

	if next.EmployeeID == 0 {
		f.store.Clear()
		return nil
	}
	_, _ = f.store.Refresh(ctx, Query{EmployeeID: next.EmployeeID})
	return nil
}

// Options lists the employee picker entries from the employee store
func (f *AttendanceForm) Options() []EmployeeOption {
	snap := f.employees.Snapshot()
	out := make([]EmployeeOption, 0, len(snap.Records))
	for _, e := range snap.Records {
		out = append(out, EmployeeOption{ID: e.ID, Label: EmployeeLabel(e)})
	}
	return out
}

// SelectedEmployee resolves the draft's employee against the employee store
func (f *AttendanceForm) SelectedEmployee() (domain.Employee, bool) {
	id := f.Draft().EmployeeID
	if id == 0 {
		return domain.Employee{}, false
	}
	for _, e := range f.employees.Snapshot().Records {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// EmployeeLabel renders an employee as "Full Name (CODE)"
func EmployeeLabel(e domain.Employee) string {
	return fmt.Sprintf("%s (%s)", e.FullName, e.EmployeeID)
}

func validateAttendanceDraft(_ Mode, d AttendanceDraft) map[Field]string {
	errs := map[Field]string{}
	if d.EmployeeID == 0 {
		errs[FieldEmployee] = MsgEmployeeRequired
	}
	if d.Date == "" {
		errs[FieldDate] = MsgDateRequired
	}
	if !d.Status.Valid() {
		errs[FieldStatus] = MsgStatusInvalid
	}
	return errs
}
