package access

// GrantForEmployeeRequest grants an employee (bound from the URL) access to
// the application named in the body.
type GrantForEmployeeRequest struct {
	ApplicationUUID string `json:"application_uuid" binding:"required,uuid"`
	Role            string `json:"role" binding:"required,oneof=guest standard administrator super_administrator"`
}

// GrantForApplicationRequest is the mirror orientation: the application comes
// from the URL, the employee from the body.
type GrantForApplicationRequest struct {
	EmployeeUUID string `json:"employee_uuid" binding:"required,uuid"`
	Role         string `json:"role" binding:"required,oneof=guest standard administrator super_administrator"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=guest standard administrator super_administrator"`
}

// GrantResponse echoes the stored edge after a grant or role change.
type GrantResponse struct {
	EmployeeUUID    string `json:"employee_uuid"`
	ApplicationUUID string `json:"application_uuid"`
	Role            string `json:"role"`
}

// EmployeeApplicationResponse is one row of "applications this employee can
// reach", shaped for the employee detail page.
type EmployeeApplicationResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ApplicationEmployeeResponse is one row of "employees on this application",
// shaped for the application detail page.
type ApplicationEmployeeResponse struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Initials  string `json:"initials"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
