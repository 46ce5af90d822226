package model

// Employee is a directory record. EmpID is supplied by the caller and is the
// lookup key.
type Employee struct {
	EmpID        string `json:"emp_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PrimarySkill string `json:"primary_skill"`
	Location     string `json:"location"`
}

// FullName joins the first and last name with a single space.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
