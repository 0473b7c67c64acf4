package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"studentoffice/domain"
	"studentoffice/utils"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type adminService struct {
	store    domain.RecordStore
	validate *validator.Validate
}

func NewAdminService(store domain.RecordStore) domain.AdminUseCase {
	return &adminService{
		store:    store,
		validate: validator.New(),
	}
}

func (s *adminService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.store.ListAccounts(ctx)
}

// Search is a linear scan over the full roster: department and year match
// exactly, name matches as a substring. No match is an empty result, not an
// error.
func (s *adminService) Search(ctx context.Context, key, value string) ([]domain.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Account
	for _, acc := range accounts {
		switch key {
		case "department":
			if acc.Department == value {
				matched = append(matched, acc)
			}
		case "year":
			if strconv.Itoa(acc.Year) == value {
				matched = append(matched, acc)
			}
		case "name":
			if strings.Contains(acc.Name, value) {
				matched = append(matched, acc)
			}
		default:
			return nil, fmt.Errorf("%w: unknown search key %q", domain.ErrValidation, key)
		}
	}
	return matched, nil
}

func (s *adminService) CreateAccount(ctx context.Context, acc *domain.Account) error {
	if err := s.validate.Struct(acc); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, utils.TranslateValidationError(err))
	}

	existing, err := s.store.GetAccount(ctx, acc.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrAccountExists
	}

	if err := s.store.InsertAccount(ctx, acc); err != nil {
		if utils.IsDuplicateKey(err) {
			return domain.ErrAccountExists
		}
		return err
	}
	log.Info().Str("id", acc.ID).Msg("account created")
	return nil
}

// UpdateAccount merges the provided fields over the current record. Blank
// fields keep their current value; the identifier is never touched.
func (s *adminService) UpdateAccount(ctx context.Context, id string, patch domain.AccountUpdate) (*domain.Account, error) {
	acc, err := s.store.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}

	if patch.Name != "" {
		acc.Name = patch.Name
	}
	if patch.Department != "" {
		acc.Department = patch.Department
	}
	if patch.Year != 0 {
		if patch.Year < 1 || patch.Year > 4 {
			return nil, fmt.Errorf("%w: year must be between 1 and 4", domain.ErrValidation)
		}
		acc.Year = patch.Year
	}
	if patch.Contact != "" {
		acc.Contact = patch.Contact
	}
	if patch.AcademicRecord != "" {
		acc.AcademicRecord = patch.AcademicRecord
	}
	if patch.PaymentStatus != "" {
		status := domain.PaymentStatus(patch.PaymentStatus)
		if status != domain.PaymentPaid && status != domain.PaymentPending && status != domain.PaymentOverdue {
			return nil, fmt.Errorf("%w: payment status must be Paid, Pending or Overdue", domain.ErrValidation)
		}
		acc.PaymentStatus = status
	}

	if err := s.store.UpdateAccount(ctx, acc); err != nil {
		return nil, err
	}
	log.Info().Str("id", id).Msg("account updated")
	return acc, nil
}

// DeleteAccount removes the account's grade entries, then its receipts, then
// the account row. The delete is best-effort sequential; a failure reports
// the stage it happened in instead of a bare failure.
func (s *adminService) DeleteAccount(ctx context.Context, id string) error {
	acc, err := s.store.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}

	if err := s.store.DeleteGrades(ctx, id); err != nil {
		return &domain.CascadeError{Stage: "grades", Err: err}
	}
	if err := s.store.DeleteReceipts(ctx, id); err != nil {
		return &domain.CascadeError{Stage: "receipts", Err: err}
	}
	if err := s.store.DeleteAccount(ctx, id); err != nil {
		return &domain.CascadeError{Stage: "account", Err: err}
	}
	log.Info().Str("id", id).Msg("account deleted with grades and receipts")
	return nil
}

// UpsertGrade derives the letter grade from the score and updates the
// existing (account, subject) entry or inserts a new one.
func (s *adminService) UpsertGrade(ctx context.Context, accountID, subject string, score int) (*domain.GradeEntry, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: score must be between 0 and 100", domain.ErrValidation)
	}

	acc, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}

	entry := &domain.GradeEntry{
		AccountID: accountID,
		Subject:   subject,
		Score:     score,
		Letter:    domain.LetterGrade(score),
	}

	grades, err := s.store.GetGrades(ctx, accountID)
	if err != nil {
		return nil, err
	}
	exists := false
	for _, g := range grades {
		if g.Subject == subject {
			exists = true
			break
		}
	}

	if exists {
		err = s.store.UpdateGrade(ctx, entry)
	} else {
		err = s.store.InsertGrade(ctx, entry)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("id", accountID).Str("subject", subject).Str("grade", entry.Letter).Msg("marksheet updated")
	return entry, nil
}

// AddReceipt inserts a payment receipt. A receipt with status Paid also
// flips the account's payment status to Paid as a side effect.
func (s *adminService) AddReceipt(ctx context.Context, accountID string, rec *domain.Receipt) error {
	rec.AccountID = accountID
	if err := s.validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, utils.TranslateValidationError(err))
	}

	acc, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}

	for _, r := range acc.Receipts {
		if r.ID == rec.ID {
			return domain.ErrDuplicateReceipt
		}
	}

	if err := s.store.InsertReceipt(ctx, rec); err != nil {
		if utils.IsDuplicateKey(err) {
			return domain.ErrDuplicateReceipt
		}
		return err
	}

	if rec.Status == domain.PaymentPaid {
		if err := s.store.SetPaymentStatus(ctx, accountID, domain.PaymentPaid); err != nil {
			return err
		}
		log.Info().Str("id", accountID).Msg("payment status set to Paid")
	}
	log.Info().Str("id", accountID).Str("receipt", rec.ID).Msg("receipt added")
	return nil
}
