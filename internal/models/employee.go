package models

// Employee is a registered identity that can clock in and out.
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// EmployeePatch lists the fields of a partial employee update.
type EmployeePatch struct {
	Name   *string
	Active *bool
}

// Empty reports whether no field was supplied.
func (p EmployeePatch) Empty() bool {
	return p.Name == nil && p.Active == nil
}
