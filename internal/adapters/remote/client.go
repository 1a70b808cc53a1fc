package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hrms-lite/internal/console"
	"hrms-lite/internal/core/domain"
	"hrms-lite/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single request
const DefaultTimeout = 10 * time.Second

// RequestIDHeader correlates console calls with server logs
const RequestIDHeader = "X-Request-ID"

// Config holds client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the HRMS API
type Client struct {
	baseURL string
	timeout time.Duration
	newID   func() string
	log     zerolog.Logger
}

// New creates a new API client
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		newID:   uuid.NewString,
		log:     logger.Component("remote"),
	}
}

// Employees returns the employee collection endpoint
func (c *Client) Employees() *Employees {
	return &Employees{client: c}
}

// Attendance returns the attendance collection endpoint
func (c *Client) Attendance() *Attendance {
	return &Attendance{client: c}
}

// Summary fetches the dashboard summary
func (c *Client) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	err := c.do(ctx, http.MethodGet, "/dashboard-summary", nil, nil, &out)
	return out, err
}

var (
	_ console.EmployeeRemote   = (*Employees)(nil)
	_ console.AttendanceRemote = (*Attendance)(nil)
	_ console.SummaryRemote    = (*Client)(nil)
)

// Employees implements the employee collection over HTTP
type Employees struct {
	client *Client
}

// List lists all employees
func (e *Employees) List(ctx context.Context, _ console.Query) ([]domain.Employee, error) {
	var out []domain.Employee
	err := e.client.do(ctx, http.MethodGet, "/employees", nil, nil, &out)
	return out, err
}

// Create creates an employee
func (e *Employees) Create(ctx context.Context, payload domain.EmployeeCreate) (domain.Employee, error) {
	var out domain.Employee
	err := e.client.do(ctx, http.MethodPost, "/employees", nil, payload, &out)
	return out, err
}

// Update updates an employee
func (e *Employees) Update(ctx context.Context, id uint, payload domain.EmployeeUpdate) (domain.Employee, error) {
	var out domain.Employee
	err := e.client.do(ctx, http.MethodPut, "/employees/"+formatID(id), nil, payload, &out)
	return out, err
}

// Delete deletes an employee
func (e *Employees) Delete(ctx context.Context, id uint) error {
	return e.client.do(ctx, http.MethodDelete, "/employees/"+formatID(id), nil, nil, nil)
}

// Attendance implements the attendance collection over HTTP
type Attendance struct {
	client *Client
}

// List lists attendance scoped by q
func (a *Attendance) List(ctx context.Context, q console.Query) ([]domain.Attendance, error) {
	params := url.Values{}
	if q.EmployeeID != 0 {
		params.Set("employee_id", formatID(q.EmployeeID))
	}
	if q.Date != "" {
		params.Set("date", q.Date)
	}
	var out []domain.Attendance
	err := a.client.do(ctx, http.MethodGet, "/attendance", params, nil, &out)
	return out, err
}

// Create marks attendance
func (a *Attendance) Create(ctx context.Context, payload domain.AttendanceCreate) (domain.Attendance, error) {
	var out domain.Attendance
	err := a.client.do(ctx, http.MethodPost, "/attendance", nil, payload, &out)
	return out, err
}

// Update updates an attendance record
func (a *Attendance) Update(ctx context.Context, id uint, payload domain.AttendanceUpdate) (domain.Attendance, error) {
	var out domain.Attendance
	err := a.client.do(ctx, http.MethodPut, "/attendance/"+formatID(id), nil, payload, &out)
	return out, err
}

// Delete deletes an attendance record
func (a *Attendance) Delete(ctx context.Context, id uint) error {
	return a.client.do(ctx, http.MethodDelete, "/attendance/"+formatID(id), nil, nil, nil)
}

// do sends one request and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if err := ctx.Err(); err != nil {
		return &console.TransportError{Err: err}
	}

	agent := newAgent(method, c.baseURL+path)
	if agent == nil {
		return fmt.Errorf("unsupported method %s", method)
	}

	requestID := c.newID()
	agent.Set(RequestIDHeader, requestID)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Timeout(c.timeoutFor(ctx))
	if len(params) > 0 {
		agent.QueryString(params.Encode())
	}
	if body != nil {
		agent.JSON(body)
	}

	if err := agent.Parse(); err != nil {
		return &console.TransportError{Err: err}
	}

	start := time.Now()
	status, raw, errs := agent.Bytes()
	log := c.log.With().Str("request_id", requestID).Str("method", method).Str("path", path).Logger()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		log.Debug().Err(err).Msg("request failed")
		return &console.TransportError{Err: err}
	}
	log.Debug().Int("status", status).Dur("latency", time.Since(start)).Msg("request done")

	if status < 200 || status > 299 {
		return &console.RemoteRejection{Status: status, Detail: parseDetail(raw)}
	}
	if out == nil || status == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &console.TransportError{Err: fmt.Errorf("decode %s %s: %w", method, path, err)}
	}
	return nil
}

// timeoutFor shortens the client timeout to the context deadline
func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		timeout = time.Millisecond
	}
	return timeout
}

func newAgent(method, target string) *fiber.Agent {
	switch method {
	case http.MethodGet:
		return fiber.Get(target)
	case http.MethodPost:
		return fiber.Post(target)
	case http.MethodPut:
		return fiber.Put(target)
	case http.MethodDelete:
		return fiber.Delete(target)
	default:
		return nil
	}
}

// parseDetail extracts a string detail from an error payload
func parseDetail(raw []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
