package models

// User is an employee record as served by the user administration endpoints.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// AdminDashboardStats is the aggregate block on the admin dashboard.
type AdminDashboardStats struct {
	TotalEmployees      int            `json:"totalEmployees"`
	PendingLeaves       int            `json:"pendingLeaves"`
	ApprovedLeavesToday int            `json:"approvedLeavesToday"`
	RejectedLeaves      int            `json:"rejectedLeaves"`
	LeavesByType        map[string]int `json:"leavesByType"`
	LeavesByStatus      map[string]int `json:"leavesByStatus"`
}
