package audit

type ListAuditLogsQuery struct {
	Action          string `form:"action"`
	EmployeeUUID    string `form:"employee_uuid" binding:"omitempty,uuid"`
	ApplicationUUID string `form:"application_uuid" binding:"omitempty,uuid"`
	From            string `form:"from"`
	To              string `form:"to"`
	Page            int    `form:"page,default=1"`
	PerPage         int    `form:"per_page,default=15"`
}

type EmployeeRefResponse struct {
	UUID     string `json:"uuid"`
	FullName string `json:"full_name"`
}

type ApplicationRefResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type AuditLogResponse struct {
	ID          int64                   `json:"id"`
	Action      string                  `json:"action"`
	Employee    *EmployeeRefResponse    `json:"employee"`
	Application *ApplicationRefResponse `json:"application"`
	IPAddress   string                  `json:"ip_address"`
	UserAgent   string                  `json:"user_agent"`
	Metadata    map[string]any          `json:"metadata"`
	CreatedAt   string                  `json:"created_at"`
}
