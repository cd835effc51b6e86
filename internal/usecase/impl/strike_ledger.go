package impl

import (
	"context"
	"time"

	"uniform/config"
	"uniform/internal/domain/repository"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultStrikeThreshold = 3

// StrikeLedger counts auto-voided orders per student and blocks ordering at the threshold.
type StrikeLedger struct {
	threshold int
}

// NewStrikeLedger creates a StrikeLedger from the auto-void configuration.
func NewStrikeLedger(cfg *config.Config) *StrikeLedger {
	threshold := defaultStrikeThreshold
	if cfg != nil && cfg.AutoVoid != nil && cfg.AutoVoid.StrikeThreshold > 0 {
		threshold = cfg.AutoVoid.StrikeThreshold
	}

	return &StrikeLedger{threshold: threshold}
}

// Threshold is the strike count at which ordering is blocked.
func (l *StrikeLedger) Threshold() int {
	return l.threshold
}

// IncrementStrike records one unclaimed void. Reaching the threshold sets the limit to zero,
// which the limit engine reports as not eligible until an administrator sets a new limit.
func (l *StrikeLedger) IncrementStrike(ctx context.Context, students repository.StudentRepository, studentID uuid.UUID, now time.Time) (*usecase.StrikeResult, error) {
	student, err := students.FindByID(ctx, studentID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load student for strike")
	}

	student.UnclaimedVoidCount++
	blocked := false
	if student.UnclaimedVoidCount >= l.threshold && !student.Blocked() {
		student.SetItemLimit(0, now)
		blocked = true
	}
	student.UpdatedAt = now

	if err := students.Update(ctx, student); err != nil {
		return nil, errors.Wrap(err, "failed to save strike")
	}

	return &usecase.StrikeResult{
		StudentID: student.ID,
		Count:     student.UnclaimedVoidCount,
		Blocked:   blocked,
	}, nil
}
