package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "uniform/internal/delivery/context"
	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/limit"
	"uniform/internal/domain/repository"
	"uniform/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// studentService implements the StudentUsecase interface.
type studentService struct {
	txManager repository.TransactionManager
	engine    *limit.Engine
	logger    *slog.Logger
	now       func() time.Time
}

// StudentServiceParams holds dependencies for StudentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Engine    *limit.Engine
	Logger    *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		txManager: params.TxManager,
		engine:    params.Engine,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterStudent creates a limit profile keyed by the identity subject.
func (srv *studentService) RegisterStudent(ctx context.Context, input *usecase.RegisterStudentInput) (*entity.Student, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := srv.now()
	student := &entity.Student{
		ID:                 input.ID,
		StudentNumber:      input.StudentNumber,
		Email:              input.Email,
		Name:               input.Name,
		EducationLevel:     input.EducationLevel,
		Gender:             input.Gender,
		StudentType:        input.StudentType,
		OrderLockoutPeriod: input.OrderLockoutPeriod,
		OrderLockoutUnit:   input.OrderLockoutUnit,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if student.OrderLockoutUnit == "" {
		student.OrderLockoutUnit = entity.LockoutUnitMonths
	}
	if input.TotalItemLimit != nil {
		student.SetItemLimit(*input.TotalItemLimit, now)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.NewStudentRepository()

		_, err := studentRepo.FindByID(ctx, input.ID, false)
		if err == nil {
			return domainerrors.ErrStudentAlreadyExists
		}
		if !errors.Is(err, domainerrors.ErrStudentNotFound) {
			return err
		}

		return studentRepo.Create(ctx, student)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register student")
	}

	srv.log(ctx).Info("Student registered", slog.String("studentID", student.ID.String()), slog.String("educationLevel", student.EducationLevel))

	return student, nil
}

// GetStudent retrieves a profile.
func (srv *studentService) GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var student *entity.Student
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		student, err = repoFactory.NewStudentRepository().FindByID(ctx, id, false)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get student")
	}

	return student, nil
}

// UpdateStudent changes cohort attributes.
func (srv *studentService) UpdateStudent(ctx context.Context, id uuid.UUID, input *usecase.UpdateStudentInput) (*entity.Student, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, id, "failed to update student", func(student *entity.Student, _ time.Time) {
		if input.EducationLevel != nil {
			student.EducationLevel = *input.EducationLevel
		}
		if input.Gender != nil {
			student.Gender = *input.Gender
		}
		if input.StudentType != nil {
			student.StudentType = *input.StudentType
		}
		if input.OrderLockoutPeriod != nil {
			student.OrderLockoutPeriod = *input.OrderLockoutPeriod
		}
		if input.OrderLockoutUnit != nil {
			student.OrderLockoutUnit = *input.OrderLockoutUnit
		}
	})
}

// SetItemLimit sets an explicit limit. Orders placed before now stop counting against it.
func (srv *studentService) SetItemLimit(ctx context.Context, id uuid.UUID, itemLimit int) (*entity.Student, error) {
	if itemLimit < 0 {
		return nil, domainerrors.NewValidationError(map[string]string{"TotalItemLimit": "gte"})
	}

	student, err := srv.mutate(ctx, id, "failed to set item limit", func(student *entity.Student, now time.Time) {
		student.SetItemLimit(itemLimit, now)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Item limit set", slog.String("studentID", id.String()), slog.Int("limit", itemLimit))

	return student, nil
}

// ResetStrikes clears the unclaimed void counter. The limit itself is left for SetItemLimit.
func (srv *studentService) ResetStrikes(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return srv.mutate(ctx, id, "failed to reset strikes", func(student *entity.Student, _ time.Time) {
		student.UnclaimedVoidCount = 0
	})
}

// GetLimits previews the remaining allowance from the student's placed orders.
func (srv *studentService) GetLimits(ctx context.Context, id uuid.UUID) (*limit.Decision, error) {
	var decision *limit.Decision
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		student, err := repoFactory.NewStudentRepository().FindByID(ctx, id, false)
		if err != nil {
			return err
		}

		placed, err := repoFactory.NewOrderRepository().List(ctx, entity.OrderFilter{
			StudentID:  &id,
			Statuses:   entity.PlacedStatuses,
			ActiveOnly: true,
		})
		if err != nil {
			return err
		}

		decision, err = srv.engine.Preview(student, placed, srv.now())

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to preview limits")
	}

	return decision, nil
}

func (srv *studentService) mutate(ctx context.Context, id uuid.UUID, failure string, apply func(*entity.Student, time.Time)) (*entity.Student, error) {
	var student *entity.Student
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.NewStudentRepository()

		found, err := studentRepo.FindByID(ctx, id, true)
		if err != nil {
			return err
		}

		now := srv.now()
		apply(found, now)
		found.UpdatedAt = now
		if err := studentRepo.Update(ctx, found); err != nil {
			return err
		}
		student = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, failure)
	}

	return student, nil
}
