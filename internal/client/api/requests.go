package api

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// SigninRequest is the body of POST /auth/signin.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateLeaveTypeRequest is the body of POST /leave-types.
type CreateLeaveTypeRequest struct {
	TypeName    string `json:"typeName"`
	MaxDays     int    `json:"maxDays"`
	Description string `json:"description"`
}

// ApplyLeaveRequest is the body of POST /leaves/apply.
type ApplyLeaveRequest struct {
	LeaveTypeID int64  `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason"`
}

// ProcessLeaveRequest is the body of PUT /leaves/{id}/process.
type ProcessLeaveRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// UpdateUserRequest is the body of PUT /users/{id}. Zero-valued fields are
// omitted so the backend treats it as a partial update.
type UpdateUserRequest struct {
	FullName   string `json:"fullName,omitempty"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}
