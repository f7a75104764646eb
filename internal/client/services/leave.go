package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anushishehara/leaveport/internal/client/api"
	"github.com/anushishehara/leaveport/internal/client/models"
)

// ErrInvalidDate marks a date argument that is not a YYYY-MM-DD calendar day.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// dateLayout is the calendar-day format the backend expects on the wire.
const dateLayout = "2006-01-02"

// LeaveService wraps the leave, user, and statistics endpoints for the
// command layer. Apart from checking that user-typed arguments are
// well-formed before they go on the wire, it adds no business rules:
// accrual math, overlap checks, and status transitions stay server-side.
type LeaveService interface {
	LeaveTypes(ctx context.Context) ([]models.LeaveType, error)
	CreateLeaveType(ctx context.Context, typeName string, maxDays int, description string) error
	MyBalances(ctx context.Context) ([]models.LeaveBalance, error)
	Apply(ctx context.Context, leaveTypeID int64, startDate, endDate, reason string) error
	MyLeaves(ctx context.Context) ([]models.LeaveRequest, error)
	Pending(ctx context.Context) ([]models.LeaveRequest, error)
	All(ctx context.Context) ([]models.LeaveRequest, error)
	Process(ctx context.Context, id int64, status, remarks string) error
	Cancel(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.AdminDashboardStats, error)
	Users(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, req api.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

type leaveService struct {
	client api.Client
}

// NewLeaveService constructs a LeaveService over the given API client.
func NewLeaveService(client api.Client) LeaveService {
	return &leaveService{client: client}
}

func (l *leaveService) LeaveTypes(ctx context.Context) ([]models.LeaveType, error) {
	return l.client.ListLeaveTypes(ctx)
}

func (l *leaveService) CreateLeaveType(ctx context.Context, typeName string, maxDays int, description string) error {
	return l.client.CreateLeaveType(ctx, api.CreateLeaveTypeRequest{
		TypeName:    typeName,
		MaxDays:     maxDays,
		Description: description,
	})
}

func (l *leaveService) MyBalances(ctx context.Context) ([]models.LeaveBalance, error) {
	return l.client.MyLeaveBalances(ctx)
}

func (l *leaveService) Apply(ctx context.Context, leaveTypeID int64, startDate, endDate, reason string) error {
	for _, d := range []string{startDate, endDate} {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	return l.client.ApplyLeave(ctx, api.ApplyLeaveRequest{
		LeaveTypeID: leaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      reason,
	})
}

func (l *leaveService) MyLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	return l.client.MyLeaves(ctx)
}

func (l *leaveService) Pending(ctx context.Context) ([]models.LeaveRequest, error) {
	return l.client.PendingLeaves(ctx)
}

func (l *leaveService) All(ctx context.Context) ([]models.LeaveRequest, error) {
	return l.client.AllLeaves(ctx)
}

func (l *leaveService) Process(ctx context.Context, id int64, status, remarks string) error {
	if status != models.LeaveStatusApproved && status != models.LeaveStatusRejected {
		return fmt.Errorf("status must be %s or %s, got %q",
			models.LeaveStatusApproved, models.LeaveStatusRejected, status)
	}
	return l.client.ProcessLeave(ctx, id, api.ProcessLeaveRequest{Status: status, Remarks: remarks})
}

func (l *leaveService) Cancel(ctx context.Context, id int64) error {
	return l.client.CancelLeave(ctx, id)
}

func (l *leaveService) Stats(ctx context.Context) (*models.AdminDashboardStats, error) {
	return l.client.AdminDashboardStats(ctx)
}

func (l *leaveService) Users(ctx context.Context) ([]models.User, error) {
	return l.client.ListUsers(ctx)
}

func (l *leaveService) UpdateUser(ctx context.Context, id int64, req api.UpdateUserRequest) error {
	return l.client.UpdateUser(ctx, id, req)
}

func (l *leaveService) DeleteUser(ctx context.Context, id int64) error {
	return l.client.DeleteUser(ctx, id)
}
