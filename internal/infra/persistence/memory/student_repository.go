package memory

import (
	"context"
	"strings"

	"uniform/internal/domain/entity"
	domainerrors "uniform/internal/domain/errors"
	"uniform/internal/domain/repository"

	"github.com/google/uuid"
)

type studentRepository struct {
	store *Store
}

// Verify interface compliance
var _ repository.StudentRepository = (*studentRepository)(nil)

func (r *studentRepository) Create(_ context.Context, student *entity.Student) error {
	if _, exists := r.store.students[student.ID]; exists {
		return domainerrors.ErrStudentAlreadyExists
	}
	for _, existing := range r.store.students {
		if strings.EqualFold(existing.Email, student.Email) {
			return domainerrors.ErrStudentAlreadyExists.WrapMessage(student.Email)
		}
	}
	r.store.students[student.ID] = cloneStudent(student)

	return nil
}

func (r *studentRepository) FindByID(_ context.Context, id uuid.UUID, _ bool) (*entity.Student, error) {
	student, ok := r.store.students[id]
	if !ok {
		return nil, domainerrors.ErrStudentNotFound
	}

	return cloneStudent(student), nil
}

func (r *studentRepository) FindByEmail(_ context.Context, email string) (*entity.Student, error) {
	for _, student := range r.store.students {
		if strings.EqualFold(student.Email, email) {
			return cloneStudent(student), nil
		}
	}

	return nil, domainerrors.ErrStudentNotFound
}

func (r *studentRepository) Update(_ context.Context, student *entity.Student) error {
	if _, ok := r.store.students[student.ID]; !ok {
		return domainerrors.ErrStudentNotFound
	}
	r.store.students[student.ID] = cloneStudent(student)

	return nil
}
