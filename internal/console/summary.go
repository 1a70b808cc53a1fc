package console

import (
	"context"
	"sync"

	"hrms-lite/internal/core/domain"
)

// SummaryRemote fetches the dashboard summary
type SummaryRemote interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}

// SummaryView is the renderable state of the dashboard
type SummaryView struct {
	State   State
	Summary domain.DashboardSummary
	Err     string
}

// Summary loads the dashboard summary
type Summary struct {
	remote SummaryRemote

	mu   sync.Mutex
	view SummaryView
}

// NewSummary creates an unloaded dashboard loader
func NewSummary(remote SummaryRemote) *Summary {
	return &Summary{remote: remote}
}

// View returns the current state
func (s *Summary) View() SummaryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Load fetches the summary. A failure keeps no partial data.
func (s *Summary) Load(ctx context.Context) (SummaryView, error) {
	s.set(SummaryView{State: StateLoading})

	data, err := s.remote.Summary(ctx)
	if err != nil {
		return s.set(SummaryView{State: StateFailed, Err: Message(err, MsgLoadDashboard)}), err
	}
	if data.RecentAttendance == nil {
		data.RecentAttendance = []domain.RecentAttendance{}
	}
	return s.set(SummaryView{State: StateLoaded, Summary: data}), nil
}

func (s *Summary) set(v SummaryView) SummaryView {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
	return v
}
