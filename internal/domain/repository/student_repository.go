package repository

import (
	"context"

	"uniform/internal/domain/entity"

	"github.com/google/uuid"
)

// StudentRepository defines the persistence operations for student limit profiles.
type StudentRepository interface {
	// Create persists a new student profile.
	Create(ctx context.Context, student *entity.Student) error

	// FindByID retrieves a profile. forUpdate locks the row until the transaction ends.
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Student, error)

	// FindByEmail retrieves a profile by email.
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)

	// Update saves the profile.
	Update(ctx context.Context, student *entity.Student) error
}
