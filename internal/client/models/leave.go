// Package models defines the backend resource shapes the client consumes.
// JSON tags mirror the REST API payloads field for field.
package models

// Leave request lifecycle states as reported by the backend.
const (
	LeaveStatusPending   = "PENDING"
	LeaveStatusApproved  = "APPROVED"
	LeaveStatusRejected  = "REJECTED"
	LeaveStatusCancelled = "CANCELLED"
)

// LeaveType is an admin-configured category of leave.
type LeaveType struct {
	ID          int64  `json:"id"`
	TypeName    string `json:"typeName"`
	MaxDays     int    `json:"maxDays"`
	Description string `json:"description"`
}

// LeaveBalance is one employee's remaining allowance for a leave type.
// The day math is entirely server-side; the client only renders it.
type LeaveBalance struct {
	ID            int64     `json:"id"`
	LeaveType     LeaveType `json:"leaveType"`
	TotalDays     int       `json:"totalDays"`
	UsedDays      int       `json:"usedDays"`
	RemainingDays int       `json:"remainingDays"`
}

// Requester identifies the employee a leave request belongs to.
type Requester struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// LeaveRequest is a submitted leave application. Dates are calendar days in
// YYYY-MM-DD form, as the backend emits them.
type LeaveRequest struct {
	ID            int64     `json:"id"`
	User          Requester `json:"user"`
	LeaveType     LeaveType `json:"leaveType"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	TotalDays     int       `json:"totalDays"`
	AppliedDate   string    `json:"appliedDate"`
	ProcessedDate string    `json:"processedDate,omitempty"`
	Remarks       string    `json:"remarks,omitempty"`
}
