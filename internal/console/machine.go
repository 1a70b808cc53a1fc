package console

import (
	"context"
	"maps"
	"sync"
	"time"
)

// machine is the Create/Edit state shared by every form
type machine[D any] struct {
	mu        sync.Mutex
	defaults  func(prev D) D
	mode      Mode
	draft     D
	attempted bool
	saving    bool
	formError string
	success   string
	effects   []Effect
}

func newMachine[D any](defaults func(prev D) D) *machine[D] {
	var zero D
	return &machine[D]{defaults: defaults, draft: defaults(zero)}
}

// Mode returns the current mode
func (m *machine[D]) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Draft returns a copy of the working draft
func (m *machine[D]) Draft() D {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Attempted reports whether a submit has been tried since the last reset
func (m *machine[D]) Attempted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempted
}

// Saving reports whether a submission is in flight
func (m *machine[D]) Saving() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saving
}

// FormError returns the inline form-level error
func (m *machine[D]) FormError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.formError
}

// Success returns the transient confirmation message
func (m *machine[D]) Success() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.success
}

// DismissError clears the form-level error
func (m *machine[D]) DismissError() {
	m.mu.Lock()
	m.formError = ""
	m.mu.Unlock()
}

// DismissSuccess clears the confirmation message
func (m *machine[D]) DismissSuccess() {
	m.mu.Lock()
	m.success = ""
	m.mu.Unlock()
}

// Effects drains the pending post-transition effects in order
func (m *machine[D]) Effects() []Effect {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.effects
	m.effects = nil
	return out
}

// edit replaces the draft wholesale and enters Edit mode. It is refused
// while a submission is in flight.
func (m *machine[D]) edit(id uint, draft D, focus Field) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saving {
		return ErrSaving
	}
	m.mode = EditMode(id)
	m.draft = draft
	m.attempted = false
	m.formError = ""
	m.success = ""
	m.effects = append(m.effects, Effect{Focus: focus})
	return nil
}

func (m *machine[D]) cancel(focus Field) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.mode.Editing() {
		return ErrNotEditing
	}
	if m.saving {
		return ErrSaving
	}
	m.resetLocked(focus)
	return nil
}

// resetLocked restores defaults, keeping whatever the defaults func carries over
func (m *machine[D]) resetLocked(focus Field) {
	m.mode = CreateMode()
	m.draft = m.defaults(m.draft)
	m.attempted = false
	m.formError = ""
	m.effects = append(m.effects, Effect{Focus: focus})
}

// set applies fn to the draft unless the field is locked or a save is in flight
func (m *machine[D]) set(locked func(Mode) bool, fn func(*D)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saving || (locked != nil && locked(m.mode)) {
		return ErrFieldLocked
	}
	fn(&m.draft)
	return nil
}

// fieldErrors is empty until the first attempt, then recomputed from the draft
func (m *machine[D]) fieldErrors(validate func(Mode, D) map[Field]string) map[Field]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.attempted {
		return map[Field]string{}
	}
	return validate(m.mode, m.draft)
}

// submission describes how one form sends its draft
type submission[D any] struct {
	validate func(Mode, D) map[Field]string
	create   func(ctx context.Context, d D) error
	update   func(ctx context.Context, id uint, d D) error
	fallback string
	created  string
	updated  string
	focus    Field
}

// submit validates and sends the draft. On success the form is reset and the
// post-reset draft is returned so the caller can scope its refresh.
func (m *machine[D]) submit(ctx context.Context, sub submission[D]) (D, error) {
	m.mu.Lock()
	if m.saving {
		m.mu.Unlock()
		var zero D
		return zero, ErrSaving
	}
	m.attempted = true
	m.formError = ""
	m.success = ""

	if fields := sub.validate(m.mode, m.draft); len(fields) > 0 {
		m.formError = MsgFixFields
		m.mu.Unlock()
		var zero D
		return zero, &ValidationError{Fields: maps.Clone(fields)}
	}

	mode := m.mode
	draft := m.draft
	m.saving = true
	m.mu.Unlock()

	var err error
	if id, editing := mode.RecordID(); editing {
		err = sub.update(ctx, id, draft)
	} else {
		err = sub.create(ctx, draft)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.saving = false
	if err != nil {
		m.formError = Message(err, sub.fallback)
		var zero D
		return zero, err
	}

	if mode.Editing() {
		m.success = sub.updated
	} else {
		m.success = sub.created
	}
	m.resetLocked(sub.focus)
	return m.draft, nil
}

type formOptions struct {
	clock func() time.Time
}

// FormOption configures a form
type FormOption func(*formOptions)

// WithClock sets the clock used for default dates
func WithClock(clock func() time.Time) FormOption {
	return func(o *formOptions) {
		o.clock = clock
	}
}

func applyFormOptions(opts []FormOption) formOptions {
	o := formOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
