package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rosterd/internal/domain/callout"
	"rosterd/internal/shared/biztime"
	"rosterd/internal/shared/db"
)

// CandidateReader assembles the ranking engine's input in one query:
// every active employee in the org with their general-ledger OT hours
// for the shift's fiscal year and availability facts against the shift.
type CandidateReader struct {
	db *gorm.DB
}

func NewCandidateReader(database *gorm.DB) callout.CandidateReader {
	return &CandidateReader{db: database}
}

type candidateRow struct {
	UserID             uint
	EmployeeID         *string
	FirstName          string
	LastName           string
	ClassificationAbbr *string
	SeniorityDate      *time.Time
	OTHours            float64
	AlreadyAssigned    bool
	OnApprovedLeave    bool
}

const candidateQuery = `
SELECT
    u.id AS user_id,
    u.employee_id,
    u.first_name,
    u.last_name,
    c.abbreviation AS classification_abbr,
    u.seniority_date,
    COALESCE(oh.hours_worked, 0) AS ot_hours,
    EXISTS (
        SELECT 1 FROM shift_assignments sa
        WHERE sa.user_id = u.id AND sa.scheduled_shift_id = ?
    ) AS already_assigned,
    EXISTS (
        SELECT 1 FROM leave_requests lr
        WHERE lr.user_id = u.id
          AND lr.status = 'approved'
          AND lr.start_date <= ? AND lr.end_date >= ?
    ) AS on_approved_leave
FROM users u
LEFT JOIN classifications c ON c.id = u.classification_id
LEFT JOIN ot_hours oh
    ON oh.user_id = u.id
   AND oh.fiscal_year = ?
   AND oh.classification_id IS NULL
WHERE u.org_id = ?
  AND u.is_active`

func (r *CandidateReader) ListCandidates(ctx context.Context, orgID uint, scheduledShiftID uint, shiftDate time.Time, classificationID *uint) ([]callout.Candidate, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	fiscalYear := biztime.FiscalYear(shiftDate)
	date := biztime.Date(shiftDate)

	query := candidateQuery
	args := []interface{}{scheduledShiftID, date, date, fiscalYear, orgID}
	if classificationID != nil {
		query += " AND u.classification_id = ?"
		args = append(args, *classificationID)
	}

	var rows []candidateRow
	if err := tx.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load callout candidates: %w", err)
	}

	candidates := make([]callout.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, callout.Candidate{
			UserID:             row.UserID,
			EmployeeID:         row.EmployeeID,
			FirstName:          row.FirstName,
			LastName:           row.LastName,
			ClassificationAbbr: row.ClassificationAbbr,
			SeniorityDate:      row.SeniorityDate,
			OTHours:            row.OTHours,
			AlreadyAssigned:    row.AlreadyAssigned,
			OnApprovedLeave:    row.OnApprovedLeave,
		})
	}

	return candidates, nil
}
