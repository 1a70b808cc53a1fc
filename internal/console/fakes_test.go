package console

import (
	"context"
	"net/http"
	"sync"

	"hrms-lite/internal/core/domain"
)

// fakeEmployees is an in-memory employee service that records calls
type fakeEmployees struct {
	mu        sync.Mutex
	records   []domain.Employee
	nextID    uint
	lists     int
	creates   []domain.EmployeeCreate
	updates   map[uint][]domain.EmployeeUpdate
	deletes   []uint
	createErr error
	updateErr error
	listErr   error
	deleteErr error
}

func newFakeEmployees(records ...domain.Employee) *fakeEmployees {
	f := &fakeEmployees{records: records, nextID: 100, updates: map[uint][]domain.EmployeeUpdate{}}
	return f
}

func (f *fakeEmployees) List(_ context.Context, _ Query) ([]domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Employee(nil), f.records...), nil
}

func (f *fakeEmployees) Create(_ context.Context, p domain.EmployeeCreate) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, p)
	if f.createErr != nil {
		return domain.Employee{}, f.createErr
	}
	f.nextID++
	e := domain.Employee{
		ID:            f.nextID,
		EmployeeID:    p.EmployeeID,
		FullName:      p.FullName,
		Email:         p.Email,
		Department:    p.Department,
		DateOfJoining: p.DateOfJoining,
	}
	f.records = append(f.records, e)
	return e, nil
}

func (f *fakeEmployees) Update(_ context.Context, id uint, p domain.EmployeeUpdate) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[id] = append(f.updates[id], p)
	if f.updateErr != nil {
		return domain.Employee{}, f.updateErr
	}
	for i, e := range f.records {
		if e.ID == id {
			e.FullName, e.Email, e.Department, e.DateOfJoining = p.FullName, p.Email, p.Department, p.DateOfJoining
			f.records[i] = e
			return e, nil
		}
	}
	return domain.Employee{}, &RemoteRejection{Status: http.StatusNotFound, Detail: "Employee not found"}
}

func (f *fakeEmployees) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, e := range f.records {
		if e.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return &RemoteRejection{Status: http.StatusNotFound, Detail: "Employee not found"}
}

func (f *fakeEmployees) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

// fakeAttendance is an in-memory attendance service that records calls
type fakeAttendance struct {
	mu        sync.Mutex
	records   []domain.Attendance
	nextID    uint
	queries   []Query
	creates   []domain.AttendanceCreate
	updates   map[uint][]domain.AttendanceUpdate
	createErr error
	listErr   error
}

func newFakeAttendance(records ...domain.Attendance) *fakeAttendance {
	return &fakeAttendance{records: records, nextID: 100, updates: map[uint][]domain.AttendanceUpdate{}}
}

func (f *fakeAttendance) List(_ context.Context, q Query) ([]domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Attendance
	for _, r := range f.records {
		if q.EmployeeID != 0 && r.EmployeeID != q.EmployeeID {
			continue
		}
		if q.Date != "" && r.Date != q.Date {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendance) Create(_ context.Context, p domain.AttendanceCreate) (domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, p)
	if f.createErr != nil {
		return domain.Attendance{}, f.createErr
	}
	f.nextID++
	r := domain.Attendance{ID: f.nextID, EmployeeID: p.EmployeeID, Date: p.Date, Status: p.Status}
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeAttendance) Update(_ context.Context, id uint, p domain.AttendanceUpdate) (domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[id] = append(f.updates[id], p)
	for i, r := range f.records {
		if r.ID == id {
			r.Date, r.Status = p.Date, p.Status
			f.records[i] = r
			return r, nil
		}
	}
	return domain.Attendance{}, &RemoteRejection{Status: http.StatusNotFound, Detail: "Attendance record not found"}
}

func (f *fakeAttendance) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return &RemoteRejection{Status: http.StatusNotFound, Detail: "Attendance record not found"}
}

func (f *fakeAttendance) recordedQueries() []Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Query(nil), f.queries...)
}

// gatedAttendance blocks each List call until its employee's gate is released
type gatedAttendance struct {
	*fakeAttendance
	started chan uint
	gates   map[uint]chan struct{}
}

func (g *gatedAttendance) List(ctx context.Context, q Query) ([]domain.Attendance, error) {
	g.started <- q.EmployeeID
	<-g.gates[q.EmployeeID]
	return g.fakeAttendance.List(ctx, q)
}

// gatedEmployees blocks Create until release is closed
type gatedEmployees struct {
	*fakeEmployees
	started chan struct{}
	release chan struct{}
}

func (g *gatedEmployees) Create(ctx context.Context, p domain.EmployeeCreate) (domain.Employee, error) {
	close(g.started)
	<-g.release
	return g.fakeEmployees.Create(ctx, p)
}
