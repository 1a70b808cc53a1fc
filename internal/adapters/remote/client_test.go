package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hrms-lite/internal/console"
	"hrms-lite/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method    string
	path      string
	query     string
	requestID string
	body      []byte
}

type testServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recorded
}

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *testServer {
	t.Helper()
	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ts.mu.Lock()
		ts.requests = append(ts.requests, recorded{
			method:    r.Method,
			path:      r.URL.Path,
			query:     r.URL.RawQuery,
			requestID: r.Header.Get(RequestIDHeader),
			body:      body,
		})
		ts.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) last(t *testing.T) recorded {
	t.Helper()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	require.NotEmpty(t, ts.requests, "no request recorded")
	return ts.requests[len(ts.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestEmployeesRoundTrip(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, []domain.Employee{{ID: 1, EmployeeID: "EMP-001", FullName: "Ada"}})
		case http.MethodPost:
			writeJSON(w, http.StatusCreated, domain.Employee{ID: 2, EmployeeID: "EMP-002"})
		case http.MethodPut:
			writeJSON(w, http.StatusOK, domain.Employee{ID: 2, EmployeeID: "EMP-002", FullName: "Grace"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	employees := New(Config{BaseURL: ts.URL + "/"}).Employees()
	ctx := context.Background()

	list, err := employees.List(ctx, console.Query{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Employee{{ID: 1, EmployeeID: "EMP-001", FullName: "Ada"}}, list)
	req := ts.last(t)
	assert.Equal(t, "/employees", req.path)
	assert.NotEmpty(t, req.requestID)

	created, err := employees.Create(ctx, domain.EmployeeCreate{EmployeeID: "EMP-002", FullName: "Grace"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), created.ID)
	var sent domain.EmployeeCreate
	require.NoError(t, json.Unmarshal(ts.last(t).body, &sent))
	assert.Equal(t, "EMP-002", sent.EmployeeID)

	updated, err := employees.Update(ctx, 2, domain.EmployeeUpdate{FullName: "Grace"})
	require.NoError(t, err)
	req = ts.last(t)
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/employees/2", req.path)
	assert.Equal(t, "Grace", updated.FullName)

	require.NoError(t, employees.Delete(ctx, 2))
	req = ts.last(t)
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/employees/2", req.path)
}

func TestAttendanceQueryParams(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Attendance{})
	})
	attendance := New(Config{BaseURL: ts.URL}).Attendance()
	ctx := context.Background()

	tests := []struct {
		q    console.Query
		want string
	}{
		{console.Query{}, ""},
		{console.Query{EmployeeID: 4}, "employee_id=4"},
		{console.Query{EmployeeID: 4, Date: "2024-03-04"}, "date=2024-03-04&employee_id=4"},
		{console.Query{Date: "2024-03-04"}, "date=2024-03-04"},
	}
	for _, tt := range tests {
		records, err := attendance.List(ctx, tt.q)
		require.NoError(t, err)
		assert.NotNil(t, records, "an empty array should decode to an empty list")
		assert.Equal(t, tt.want, ts.last(t).query)
	}
}

func TestRejectionCarriesDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		detail string
	}{
		{"string detail", http.StatusConflict, `{"detail":"Employee ID already exists"}`, "Employee ID already exists"},
		{"structured detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","email"]}]}`, ""},
		{"no payload", http.StatusBadGateway, `upstream down`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := New(Config{BaseURL: ts.URL}).Employees().Create(context.Background(), domain.EmployeeCreate{})

			var rejection *console.RemoteRejection
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, tt.status, rejection.Status)
			assert.Equal(t, tt.detail, rejection.Detail)

			want := tt.detail
			if want == "" {
				want = console.MsgSaveEmployee
			}
			assert.Equal(t, want, console.Message(err, console.MsgSaveEmployee))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	_, err := New(Config{BaseURL: base, Timeout: time.Second}).Employees().List(context.Background(), console.Query{})
	var transport *console.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, console.MsgLoadEmployees, console.Message(err, console.MsgLoadEmployees))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(Config{BaseURL: "http://127.0.0.1:1"}).Attendance().Delete(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary(t *testing.T) {
	want := domain.DashboardSummary{
		TotalEmployees:   3,
		PresentToday:     2,
		AbsentToday:      1,
		RecentAttendance: []domain.RecentAttendance{{EmployeeName: "Ada", Date: "2024-03-04", Status: domain.StatusPresent}},
	}
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, want)
	})

	summary, err := New(Config{BaseURL: ts.URL}).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, summary)
	assert.Equal(t, "/dashboard-summary", ts.last(t).path)
}

func TestRequestIDsAreUnique(t *testing.T) {
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []domain.Employee{})
	})
	employees := New(Config{BaseURL: ts.URL}).Employees()
	for i := 0; i < 2; i++ {
		_, err := employees.List(context.Background(), console.Query{})
		require.NoError(t, err)
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()
	require.Len(t, ts.requests, 2)
	assert.NotEqual(t, ts.requests[0].requestID, ts.requests[1].requestID)
}
