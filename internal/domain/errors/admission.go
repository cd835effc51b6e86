package errors

import (
	"fmt"
	"net/http"
	"time"
)

// DetailedError is an AppError that carries structured data for the client.
type DetailedError interface {
	AppError
	Data() any
}

// NotEligibleError rejects a student whose item limit is not configured, or is zero.
type NotEligibleError struct {
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason"`
}

// NewNotEligibleError creates a NotEligibleError.
func NewNotEligibleError(blocked bool, reason string) *NotEligibleError {
	return &NotEligibleError{Blocked: blocked, Reason: reason}
}

func (e *NotEligibleError) Error() string {
	return "student not eligible: " + e.Reason
}

func (e *NotEligibleError) HTTPCode() int     { return http.StatusForbidden }
func (e *NotEligibleError) ErrorCode() string { return "NOT_ELIGIBLE" }
func (e *NotEligibleError) Details() string   { return e.Reason }
func (e *NotEligibleError) Data() any         { return e }

func (e *NotEligibleError) Message() string {
	if e.Blocked {
		return "您的訂購資格已被暫停，請洽管理員"
	}

	return "尚未設定您的訂購上限，請洽管理員"
}

// SlotLimitExceededError rejects an order that asks for more distinct items than the student has left.
type SlotLimitExceededError struct {
	Limit     int `json:"limit"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
	Requested int `json:"requested"`
}

func (e *SlotLimitExceededError) Error() string {
	return fmt.Sprintf("slot limit exceeded: requested %d, remaining %d of %d", e.Requested, e.Remaining, e.Limit)
}

func (e *SlotLimitExceededError) HTTPCode() int     { return http.StatusConflict }
func (e *SlotLimitExceededError) ErrorCode() string { return "SLOT_LIMIT_EXCEEDED" }
func (e *SlotLimitExceededError) Message() string   { return "訂購品項數超過剩餘額度" }
func (e *SlotLimitExceededError) Details() string   { return e.Error() }
func (e *SlotLimitExceededError) Data() any         { return e }

// LockedOutError rejects an order placed during the cooldown after a full-allowance order.
type LockedOutError struct {
	UnlockAt        time.Time `json:"unlock_at"`
	LockoutMonths   int       `json:"lockout_months"`
	LastOrderNumber string    `json:"last_order_number"`
}

func (e *LockedOutError) Error() string {
	return "ordering locked until " + e.UnlockAt.Format(time.RFC3339)
}

func (e *LockedOutError) HTTPCode() int     { return http.StatusConflict }
func (e *LockedOutError) ErrorCode() string { return "LOCKED_OUT" }
func (e *LockedOutError) Message() string   { return "您已用完本期訂購額度，冷卻期間內無法下單" }
func (e *LockedOutError) Details() string   { return e.Error() }
func (e *LockedOutError) Data() any         { return e }

// PerItemLimitExceededError rejects an order that would take a student past an item's cohort maximum.
type PerItemLimitExceededError struct {
	Item      string `json:"item"`
	Current   int    `json:"current"`
	Requested int    `json:"requested"`
	Max       int    `json:"max"`
}

func (e *PerItemLimitExceededError) Error() string {
	return fmt.Sprintf("item %q limit exceeded: %d already ordered, %d requested, max %d", e.Item, e.Current, e.Requested, e.Max)
}

func (e *PerItemLimitExceededError) HTTPCode() int     { return http.StatusConflict }
func (e *PerItemLimitExceededError) ErrorCode() string { return "PER_ITEM_LIMIT_EXCEEDED" }
func (e *PerItemLimitExceededError) Message() string   { return "此品項訂購數量超過上限" }
func (e *PerItemLimitExceededError) Details() string   { return e.Error() }
func (e *PerItemLimitExceededError) Data() any         { return e }

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

// NewValidationError creates a ValidationError from field -> rule pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func (e *ValidationError) HTTPCode() int     { return ErrValidationFailed.HTTPCode() }
func (e *ValidationError) ErrorCode() string { return ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return ErrValidationFailed.Message() }
func (e *ValidationError) Details() string   { return e.Error() }
func (e *ValidationError) Data() any         { return e.Fields }
