package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for expected conditions. Services return these instead of
// raw driver errors so the shell can give precise user-facing messages.
var (
	ErrNotFound         = errors.New("record not found")
	ErrAccountExists    = errors.New("account already exists")
	ErrDuplicateReceipt = errors.New("receipt already exists")
	ErrValidation       = errors.New("validation failed")
)

// CascadeError reports which stage of a cascade delete failed, so a partial
// cascade is never swallowed as a generic failure.
type CascadeError struct {
	Stage string // "grades", "receipts" or "account"
	Err   error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade delete failed at %s stage: %v", e.Stage, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }

// RecordStore is the single access path to persisted records.
//
// Reads return nil or empty results for absent rows, never an error. Every
// write is a single parameterized statement; rows-affected is deliberately
// not checked, so an UPDATE matching zero rows still reports success.
// Ordering of ListAccounts, GetGrades and GetReceipts is store-native and
// must not be relied on.
type RecordStore interface {
	Login(ctx context.Context, role Role, id, secret string) (bool, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	GetGrades(ctx context.Context, accountID string) ([]GradeEntry, error)
	GetReceipts(ctx context.Context, accountID string) ([]Receipt, error)

	InsertAccount(ctx context.Context, acc *Account) error
	UpdateAccount(ctx context.Context, acc *Account) error
	DeleteAccount(ctx context.Context, id string) error
	DeleteGrades(ctx context.Context, accountID string) error
	DeleteReceipts(ctx context.Context, accountID string) error
	InsertGrade(ctx context.Context, entry *GradeEntry) error
	UpdateGrade(ctx context.Context, entry *GradeEntry) error
	InsertReceipt(ctx context.Context, rec *Receipt) error
	SetPaymentStatus(ctx context.Context, accountID string, status PaymentStatus) error
	InsertAdmin(ctx context.Context, admin *AdminAccount) error
}
