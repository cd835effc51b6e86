package usecase

import (
	"context"

	"uniform/internal/domain/entity"
	"uniform/internal/domain/limit"

	"github.com/google/uuid"
)

// RegisterStudentInput creates a limit profile for an identity.
type RegisterStudentInput struct {
	ID                 uuid.UUID          `json:"id" validate:"required"`
	StudentNumber      string             `json:"student_number"`
	Email              string             `json:"email" validate:"required,email"`
	Name               string             `json:"name" validate:"required"`
	EducationLevel     string             `json:"education_level" validate:"required"`
	Gender             entity.Gender      `json:"gender" validate:"omitempty,oneof=male female"`
	StudentType        entity.StudentType `json:"student_type" validate:"omitempty,oneof=new old"`
	TotalItemLimit     *int               `json:"total_item_limit,omitempty" validate:"omitempty,gte=0"`
	OrderLockoutPeriod int                `json:"order_lockout_period" validate:"gte=0"`
	OrderLockoutUnit   entity.LockoutUnit `json:"order_lockout_unit" validate:"omitempty,oneof=months academic_years"`
}

// UpdateStudentInput changes cohort attributes. Nil fields are left as they are.
type UpdateStudentInput struct {
	EducationLevel     *string             `json:"education_level,omitempty"`
	Gender             *entity.Gender      `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	StudentType        *entity.StudentType `json:"student_type,omitempty" validate:"omitempty,oneof=new old"`
	OrderLockoutPeriod *int                `json:"order_lockout_period,omitempty" validate:"omitempty,gte=0"`
	OrderLockoutUnit   *entity.LockoutUnit `json:"order_lockout_unit,omitempty" validate:"omitempty,oneof=months academic_years"`
}

// StudentUsecase manages limit profiles.
type StudentUsecase interface {
	// RegisterStudent creates a profile.
	RegisterStudent(ctx context.Context, input *RegisterStudentInput) (*entity.Student, error)

	// GetStudent retrieves a profile.
	GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	// UpdateStudent changes cohort attributes.
	UpdateStudent(ctx context.Context, id uuid.UUID, input *UpdateStudentInput) (*entity.Student, error)

	// SetItemLimit sets an explicit limit and restarts the counting window.
	SetItemLimit(ctx context.Context, id uuid.UUID, limit int) (*entity.Student, error)

	// ResetStrikes clears the unclaimed void counter.
	ResetStrikes(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	// GetLimits previews the student's remaining allowance.
	GetLimits(ctx context.Context, id uuid.UUID) (*limit.Decision, error)
}
