// Package roster implements shift template management, the scheduled
// shift calendar, and assignment staffing.
package roster

import (
	"context"
	"fmt"
	"time"

	"rosterd/internal/domain/roster"
	"rosterd/internal/domain/user"
	"rosterd/internal/shared/biztime"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/optional"
)

type Service struct {
	templateRepo   roster.TemplateRepository
	shiftRepo      roster.ShiftRepository
	assignmentRepo roster.AssignmentRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewService(
	templateRepo roster.TemplateRepository,
	shiftRepo roster.ShiftRepository,
	assignmentRepo roster.AssignmentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		templateRepo:   templateRepo,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

const clockLayout = "15:04"

// deriveDuration computes the template duration from org-local wall
// clock times. An end at or before the start rolls into the next day,
// so "22:00"–"06:00" is 480 minutes and "08:00"–"08:00" a full day.
func deriveDuration(startTime, endTime string) (minutes int, crossesMidnight bool, err error) {
	start, err := time.Parse(clockLayout, startTime)
	if err != nil {
		return 0, false, errors.NewValidationError(fmt.Sprintf("invalid start time %q, expected HH:MM", startTime))
	}
	end, err := time.Parse(clockLayout, endTime)
	if err != nil {
		return 0, false, errors.NewValidationError(fmt.Sprintf("invalid end time %q, expected HH:MM", endTime))
	}

	minutes = int(end.Sub(start).Minutes())
	if minutes <= 0 {
		minutes += 24 * 60
		crossesMidnight = true
	}
	return minutes, crossesMidnight, nil
}

type CreateTemplateCommand struct {
	OrgID     uint
	Name      string
	StartTime string
	EndTime   string
	Color     string
}

func (s *Service) CreateTemplate(ctx context.Context, cmd CreateTemplateCommand) (*roster.ShiftTemplate, error) {
	if cmd.Name == "" {
		return nil, errors.NewValidationError("template name is required")
	}

	minutes, crosses, err := deriveDuration(cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, err
	}

	template := &roster.ShiftTemplate{
		OrgID:           cmd.OrgID,
		Name:            cmd.Name,
		StartTime:       cmd.StartTime,
		EndTime:         cmd.EndTime,
		CrossesMidnight: crosses,
		DurationMinutes: minutes,
		Color:           cmd.Color,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create shift template: %w", err)
	}

	s.logger.Infow("shift template created", "template_id", template.ID, "org_id", cmd.OrgID)
	return template, nil
}

func (s *Service) GetTemplate(ctx context.Context, id, orgID uint) (*roster.ShiftTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}
	if template == nil {
		return nil, errors.NewNotFoundError("shift template not found")
	}
	return template, nil
}

func (s *Service) ListTemplates(ctx context.Context, orgID uint) ([]*roster.ShiftTemplate, error) {
	templates, err := s.templateRepo.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift templates: %w", err)
	}
	return templates, nil
}

type UpdateTemplateCommand struct {
	Name      optional.Field[string]
	StartTime optional.Field[string]
	EndTime   optional.Field[string]
	Color     optional.Field[string]
	IsActive  optional.Field[bool]
}

func (s *Service) UpdateTemplate(ctx context.Context, id, orgID uint, cmd UpdateTemplateCommand) (*roster.ShiftTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}
	if template == nil {
		return nil, errors.NewNotFoundError("shift template not found")
	}

	if cmd.Name.IsNull() || cmd.StartTime.IsNull() || cmd.EndTime.IsNull() || cmd.IsActive.IsNull() {
		return nil, errors.NewValidationError("name, start_time, end_time, and is_active cannot be null")
	}

	cmd.Name.Apply(&template.Name)
	cmd.StartTime.Apply(&template.StartTime)
	cmd.EndTime.Apply(&template.EndTime)
	cmd.Color.Apply(&template.Color)
	cmd.IsActive.Apply(&template.IsActive)

	// Duration follows the stored times whenever either changed.
	if cmd.StartTime.IsSet() || cmd.EndTime.IsSet() {
		minutes, crosses, err := deriveDuration(template.StartTime, template.EndTime)
		if err != nil {
			return nil, err
		}
		template.DurationMinutes = minutes
		template.CrossesMidnight = crosses
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update shift template: %w", err)
	}
	return template, nil
}

type CreateShiftCommand struct {
	OrgID             uint
	ShiftTemplateID   uint
	Date              time.Time
	RequiredHeadcount int
	Notes             *string
}

func (s *Service) CreateShift(ctx context.Context, cmd CreateShiftCommand) (*roster.ScheduledShift, error) {
	template, err := s.templateRepo.GetByID(ctx, cmd.ShiftTemplateID, cmd.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}
	if template == nil {
		return nil, errors.NewNotFoundError("shift template not found")
	}
	if !template.IsActive {
		return nil, errors.NewValidationError("shift template is inactive")
	}

	headcount := cmd.RequiredHeadcount
	if headcount < 1 {
		headcount = 1
	}

	shift := &roster.ScheduledShift{
		OrgID:             cmd.OrgID,
		ShiftTemplateID:   cmd.ShiftTemplateID,
		Date:              biztime.Date(cmd.Date),
		RequiredHeadcount: headcount,
		Notes:             cmd.Notes,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to create scheduled shift: %w", err)
	}

	s.logger.Infow("scheduled shift created",
		"shift_id", shift.ID,
		"org_id", cmd.OrgID,
		"date", biztime.FormatDate(shift.Date),
	)
	return shift, nil
}

func (s *Service) GetShift(ctx context.Context, id, orgID uint) (*roster.ShiftContext, error) {
	shift, err := s.shiftRepo.GetContext(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled shift: %w", err)
	}
	if shift == nil {
		return nil, errors.NewNotFoundError("scheduled shift not found")
	}
	return shift, nil
}

func (s *Service) ListShifts(ctx context.Context, orgID uint, start, end time.Time, limit, offset int) ([]*roster.ScheduledShift, error) {
	if end.Before(start) {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	shifts, err := s.shiftRepo.List(ctx, orgID, biztime.Date(start), biztime.Date(end), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled shifts: %w", err)
	}
	return shifts, nil
}

func (s *Service) DeleteShift(ctx context.Context, id, orgID uint) error {
	ok, err := s.shiftRepo.Delete(ctx, id, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled shift: %w", err)
	}
	if !ok {
		return errors.NewNotFoundError("scheduled shift not found")
	}
	return nil
}

// ShiftStaffing pairs a scheduled shift with its current assignments
// for the schedule view.
type ShiftStaffing struct {
	Shift       *roster.ScheduledShift
	Assignments []*roster.Assignment
}

// Schedule returns the staffing view over an inclusive date range.
func (s *Service) Schedule(ctx context.Context, orgID uint, start, end time.Time, limit, offset int) ([]*ShiftStaffing, error) {
	if end.Before(start) {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	shifts, err := s.shiftRepo.List(ctx, orgID, biztime.Date(start), biztime.Date(end), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled shifts: %w", err)
	}

	assignments, err := s.assignmentRepo.ListByDateRange(ctx, orgID, biztime.Date(start), biztime.Date(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	byShift := make(map[uint][]*roster.Assignment, len(shifts))
	for _, a := range assignments {
		byShift[a.ScheduledShiftID] = append(byShift[a.ScheduledShiftID], a)
	}

	staffing := make([]*ShiftStaffing, 0, len(shifts))
	for _, shift := range shifts {
		staffing = append(staffing, &ShiftStaffing{
			Shift:       shift,
			Assignments: byShift[shift.ID],
		})
	}
	return staffing, nil
}

type CreateAssignmentCommand struct {
	OrgID            uint
	ScheduledShiftID uint
	UserID           uint
	Position         *string
	Notes            *string
	CreatedBy        uint
}

func (s *Service) CreateAssignment(ctx context.Context, cmd CreateAssignmentCommand) (*roster.Assignment, error) {
	shift, err := s.shiftRepo.GetContext(ctx, cmd.ScheduledShiftID, cmd.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled shift: %w", err)
	}
	if shift == nil {
		return nil, errors.NewNotFoundError("scheduled shift not found")
	}

	target, err := s.userRepo.GetActiveByID(ctx, cmd.UserID, cmd.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	assignment := &roster.Assignment{
		ScheduledShiftID: cmd.ScheduledShiftID,
		UserID:           cmd.UserID,
		Position:         cmd.Position,
		Notes:            cmd.Notes,
		CreatedBy:        cmd.CreatedBy,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Infow("assignment created",
		"assignment_id", assignment.ID,
		"shift_id", cmd.ScheduledShiftID,
		"user_id", cmd.UserID,
	)
	return assignment, nil
}

func (s *Service) DeleteAssignment(ctx context.Context, id, orgID uint) error {
	ok, err := s.assignmentRepo.Delete(ctx, id, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if !ok {
		return errors.NewNotFoundError("assignment not found")
	}
	return nil
}
