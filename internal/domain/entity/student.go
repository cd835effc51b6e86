// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AllEducationLevels scopes an item to every cohort.
const AllEducationLevels = "All Education Levels"

// Gender of a student. An empty value means the profile is incomplete.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnset  Gender = ""
)

// Genders lists the values a complete profile can hold.
var Genders = []Gender{GenderMale, GenderFemale}

// IsValid reports whether g is a known gender or unset.
func (g Gender) IsValid() bool {
	return g == GenderUnset || g == GenderMale || g == GenderFemale
}

// StudentType separates incoming students from returning ones.
type StudentType string

const (
	StudentTypeNew StudentType = "new"
	StudentTypeOld StudentType = "old"
)

// IsValid checks if the StudentType is a known value.
func (t StudentType) IsValid() bool {
	return t == StudentTypeNew || t == StudentTypeOld
}

// LockoutUnit is the unit of Student.OrderLockoutPeriod.
type LockoutUnit string

const (
	LockoutUnitMonths        LockoutUnit = "months"
	LockoutUnitAcademicYears LockoutUnit = "academic_years"
)

// Student is the limit profile of an ordering student.
type Student struct {
	ID                  uuid.UUID   `json:"id"`                      // Identity subject of the student.
	StudentNumber       string      `json:"student_number"`          // School-issued student number.
	Email               string      `json:"email"`                   // Contact email.
	Name                string      `json:"name"`                    // Display name.
	EducationLevel      string      `json:"education_level"`         // Cohort education level.
	Gender              Gender      `json:"gender"`                  // Empty when the profile is incomplete.
	StudentType         StudentType `json:"student_type"`            // new or old.
	TotalItemLimit      *int        `json:"total_item_limit"`        // Explicit slot allowance; nil falls back to the cohort default.
	TotalItemLimitSetAt *time.Time  `json:"total_item_limit_set_at"` // Orders before this instant do not count against the limit.
	OrderLockoutPeriod  int         `json:"order_lockout_period"`    // Cooldown after a full-allowance order; 0 disables it.
	OrderLockoutUnit    LockoutUnit `json:"order_lockout_unit"`      // Unit of OrderLockoutPeriod.
	UnclaimedVoidCount  int         `json:"unclaimed_void_count"`    // Strikes from auto-voided orders.
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// Blocked reports whether an administrator (or the strike ledger) set the limit to zero.
func (s *Student) Blocked() bool {
	return s.TotalItemLimit != nil && *s.TotalItemLimit == 0
}

// SetItemLimit stores an explicit limit and restarts the counting window.
func (s *Student) SetItemLimit(limit int, at time.Time) {
	s.TotalItemLimit = &limit
	s.TotalItemLimitSetAt = &at
}
