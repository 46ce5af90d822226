// Package view renders the directory pages. The *_templ.go files are
// produced by `templ generate` from the .templ sources next to them.
package view

//go:generate templ generate

import (
	"github.com/a-h/templ"

	"empdir/internal/display"
	"empdir/internal/model"
)

// Form field names shared by the pages and the handlers.
const (
	FieldEmpID        = "emp_id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldPrimarySkill = "primary_skill"
	FieldLocation     = "location"
)

type field struct {
	name  string
	label string
}

var employeeFields = []field{
	{FieldEmpID, "Employee ID"},
	{FieldFirstName, "First Name"},
	{FieldLastName, "Last Name"},
	{FieldPrimarySkill, "Primary Skill"},
	{FieldLocation, "Location"},
}

// employeeValues lists emp in employeeFields order.
func employeeValues(emp model.Employee) []string {
	return []string{emp.EmpID, emp.FirstName, emp.LastName, emp.PrimarySkill, emp.Location}
}

// bodyStyle only ever carries a palette hex and the local background path.
func bodyStyle(d display.Config) templ.SafeCSS {
	style := "background-color: " + d.ColorHex() + ";"
	if d.HasBackground() {
		style += " background-image: url(" + d.BackgroundURL + "); background-size: cover;"
	}
	return templ.SafeCSS(style)
}
