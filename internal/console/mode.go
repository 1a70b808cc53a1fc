package console

import "fmt"

// Field names a form input
type Field string

// Employee form fields
const (
	FieldEmployeeCode  Field = "employee_id"
	FieldFullName      Field = "full_name"
	FieldEmail         Field = "email"
	FieldDepartment    Field = "department"
	FieldDateOfJoining Field = "date_of_joining"
)

// Attendance form fields
const (
	FieldEmployee Field = "employee_id"
	FieldDate     Field = "date"
	FieldStatus   Field = "status"
)

type modeKind int

const (
	modeCreate modeKind = iota
	modeEdit
)

// Mode is the form state: Create, or Edit of one record
type Mode struct {
	kind modeKind
	id   uint
}

// CreateMode returns the initial mode
func CreateMode() Mode {
	return Mode{kind: modeCreate}
}

// EditMode returns the mode editing record id
func EditMode(id uint) Mode {
	return Mode{kind: modeEdit, id: id}
}

// Editing reports whether the mode is Edit
func (m Mode) Editing() bool {
	return m.kind == modeEdit
}

// RecordID returns the edited record id, ok is false in Create mode
func (m Mode) RecordID() (id uint, ok bool) {
	switch m.kind {
	case modeEdit:
		return m.id, true
	default:
		return 0, false
	}
}

func (m Mode) String() string {
	switch m.kind {
	case modeEdit:
		return fmt.Sprintf("edit(%d)", m.id)
	default:
		return "create"
	}
}

// Effect is a side effect declared by a form transition
type Effect struct {
	Focus Field
}
