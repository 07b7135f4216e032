package models

// AuditLog entries are append-only and never mutated after being written.
type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Role      Role   `json:"role"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
	IPAddress string `json:"ip_address,omitempty"`
}
