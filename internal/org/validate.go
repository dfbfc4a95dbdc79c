package org

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilEmployee is returned when a chart contains a nil employee.
	ErrNilEmployee = errors.New("nil employee")
	// ErrCycle is returned when an employee (indirectly) reports to themselves.
	ErrCycle = errors.New("reporting cycle")
	// ErrSharedEmployee is returned when one employee reports to more than one manager.
	ErrSharedEmployee = errors.New("employee reports to more than one manager")
)

// Validate checks that root is a well-formed out-tree: no nil employees,
// no cycles and no employee reachable through two managers.
func Validate(root Employee) error {
	v := &validator{
		visited: make(map[Employee]bool),
		onPath:  make(map[Employee]bool),
	}
	return v.visit(root, nil)
}

type validator struct {
	visited map[Employee]bool
	onPath  map[Employee]bool
}

func (v *validator) visit(e Employee, path []string) error {
	if isNil(e) {
		return fmt.Errorf("%w at %s", ErrNilEmployee, formatPath(path, "<nil>"))
	}
	if v.onPath[e] {
		return fmt.Errorf("%w at %s", ErrCycle, formatPath(path, e.Name()))
	}
	if v.visited[e] {
		return fmt.Errorf("%w at %s", ErrSharedEmployee, formatPath(path, e.Name()))
	}
	v.visited[e] = true

	m, ok := e.(*Manager)
	if !ok {
		return nil
	}

	v.onPath[e] = true
	defer delete(v.onPath, e)

	path = append(path, e.Name())
	for _, sub := range m.Subordinates() {
		if err := v.visit(sub, path); err != nil {
			return err
		}
	}
	return nil
}

func isNil(e Employee) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *Manager:
		return e == nil
	case *IndividualContributor:
		return e == nil
	}
	return false
}

func formatPath(path []string, last string) string {
	return strings.Join(append(append([]string{}, path...), last), " > ")
}

// Count returns the number of employees in the chart rooted at root.
func Count(root Employee) int {
	n := 1
	if m, ok := root.(*Manager); ok {
		for _, sub := range m.Subordinates() {
			n += Count(sub)
		}
	}
	return n
}

// Depth returns the number of levels in the chart rooted at root.
// A lone employee has depth 1.
func Depth(root Employee) int {
	deepest := 0
	if m, ok := root.(*Manager); ok {
		for _, sub := range m.Subordinates() {
			if d := Depth(sub); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}
