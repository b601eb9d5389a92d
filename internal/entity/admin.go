package entity

// Wildcard matches any subject, module or action in a role permission.
const Wildcard = "*"

// RolePermission is one row of the role to permission mapping.
type RolePermission struct {
	Role    string `db:"role"`
	Subject string `db:"subject"`
	Module  string `db:"module"`
	Action  string `db:"action"`
}

// Dashboard read permission required by every /api/dashboard route.
const (
	SubjectAdmin      = "admin"
	ModuleDashboard   = "dashboard"
	ActionRead        = "read"
	RoleAdmin         = "ADMIN"
	RoleSuperAdmin    = "SUPER_ADMIN"
	RoleRestaurantOps = "RESTAURANT_OPS"
)

// ChangeEvent announces that data feeding the dashboard changed.
type ChangeEvent struct {
	Kind     string `json:"kind"`
	EntityId string `json:"entity_id,omitempty"`
	At       int64  `json:"at"`
}
