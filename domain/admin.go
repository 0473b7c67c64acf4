package domain

import "context"

// AccountUpdate carries the optional fields of an account update. Zero
// values mean "keep the current value". The identifier is immutable and
// therefore absent.
type AccountUpdate struct {
	Name           string
	Department     string
	Year           int
	Contact        string
	AcademicRecord string
	PaymentStatus  string
}

// AdminUseCase is the admin-only operation surface. Role gating is the
// caller's responsibility; these operations trust the session handed to the
// shell.
type AdminUseCase interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	Search(ctx context.Context, key, value string) ([]Account, error)
	CreateAccount(ctx context.Context, acc *Account) error
	UpdateAccount(ctx context.Context, id string, patch AccountUpdate) (*Account, error)
	DeleteAccount(ctx context.Context, id string) error
	UpsertGrade(ctx context.Context, accountID, subject string, score int) (*GradeEntry, error)
	AddReceipt(ctx context.Context, accountID string, rec *Receipt) error
}
