package org

// Employee is anybody who appears in an org chart.
// The set of implementations is closed: *IndividualContributor and *Manager.
type Employee interface {
	// Name is the display name of the employee. It also sizes the employee's box.
	Name() string

	employee()
}

// IndividualContributor is an employee with nobody reporting to them.
type IndividualContributor struct {
	name string
}

// NewIndividualContributor returns a leaf employee.
func NewIndividualContributor(name string) *IndividualContributor {
	return &IndividualContributor{name: name}
}

func (ic *IndividualContributor) Name() string { return ic.name }

func (*IndividualContributor) employee() {}

// Manager is an employee with an ordered list of direct reports.
type Manager struct {
	name         string
	subordinates []Employee
}

// NewManager returns a manager whose direct reports are subordinates, in display order.
// A manager may have no reports at all.
func NewManager(name string, subordinates ...Employee) *Manager {
	reports := make([]Employee, len(subordinates))
	copy(reports, subordinates)
	return &Manager{name: name, subordinates: reports}
}

func (m *Manager) Name() string { return m.name }

// Subordinates returns the direct reports in display order.
// The returned slice must not be modified.
func (m *Manager) Subordinates() []Employee { return m.subordinates }

func (*Manager) employee() {}
