package postgres

import (
	"context"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"
	"uniform/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the repository.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{
		db: db,
	}
}

// Create persists a new student profile.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrStudentAlreadyExists, "failed to create student")
	}

	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// FindByID retrieves a profile, optionally holding a row lock until the transaction ends.
func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := lockFor(repo.db.WithContext(ctx), forUpdate).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by ID")
	}

	return toStudentDomain(&studentM), nil
}

// FindByEmail retrieves a profile by email.
func (repo *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND deleted_at IS NULL", email).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	return toStudentDomain(&studentM), nil
}

// Update saves the profile.
func (repo *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ? AND deleted_at IS NULL", student.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(studentM)
	if result.Error != nil {
		return translateWriteError(result.Error, domainerrors.ErrStudentAlreadyExists, "failed to update student")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStudentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStudentDomain converts a StudentModel to a domain Student.
func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:                  data.ID,
		StudentNumber:       data.StudentNumber,
		Email:               data.Email,
		Name:                data.Name,
		EducationLevel:      data.EducationLevel,
		Gender:              entity.Gender(data.Gender),
		StudentType:         entity.StudentType(data.StudentType),
		TotalItemLimit:      data.TotalItemLimit,
		TotalItemLimitSetAt: data.TotalItemLimitSetAt,
		OrderLockoutPeriod:  data.OrderLockoutPeriod,
		OrderLockoutUnit:    entity.LockoutUnit(data.OrderLockoutUnit),
		UnclaimedVoidCount:  data.UnclaimedVoidCount,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromStudentDomain converts a domain Student to a StudentModel.
func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:                  data.ID,
		StudentNumber:       data.StudentNumber,
		Email:               data.Email,
		Name:                data.Name,
		EducationLevel:      data.EducationLevel,
		Gender:              string(data.Gender),
		StudentType:         string(data.StudentType),
		TotalItemLimit:      data.TotalItemLimit,
		TotalItemLimitSetAt: data.TotalItemLimitSetAt,
		OrderLockoutPeriod:  data.OrderLockoutPeriod,
		OrderLockoutUnit:    string(data.OrderLockoutUnit),
		UnclaimedVoidCount:  data.UnclaimedVoidCount,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
