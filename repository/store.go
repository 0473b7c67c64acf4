package repository

import (
	"context"
	"errors"

	"studentoffice/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore wraps a live Postgres connection in the RecordStore contract.
func NewSQLStore(db *gorm.DB) domain.RecordStore {
	return &sqlStore{db: db}
}

// execute funnels every mutating statement through one place. Query failures
// are logged here; rows-affected is not inspected, so an UPDATE matching zero
// rows still reports success.
func (s *sqlStore) execute(op string, tx *gorm.DB) error {
	if err := tx.Error; err != nil {
		log.Error().Err(err).Str("op", op).Msg("query failed")
		return err
	}
	return nil
}

func (s *sqlStore) Login(ctx context.Context, role domain.Role, id, secret string) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&domain.Account{})
	if role == domain.RoleAdmin {
		q = s.db.WithContext(ctx).Model(&domain.AdminAccount{})
	}
	if err := q.Where("id = ? AND secret = ?", id, secret).Count(&count).Error; err != nil {
		log.Error().Err(err).Str("role", string(role)).Msg("login query failed")
		return false, err
	}
	return count > 0, nil
}

func (s *sqlStore) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	var acc domain.Account
	err := s.db.WithContext(ctx).
		Preload("Grades").
		Preload("Receipts").
		First(&acc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("account fetch failed")
		return nil, err
	}
	return &acc, nil
}

func (s *sqlStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.db.WithContext(ctx).
		Preload("Grades").
		Preload("Receipts").
		Find(&accounts).Error
	if err != nil {
		log.Error().Err(err).Msg("account list failed")
		return nil, err
	}
	return accounts, nil
}

func (s *sqlStore) GetGrades(ctx context.Context, accountID string) ([]domain.GradeEntry, error) {
	var grades []domain.GradeEntry
	err := s.db.WithContext(ctx).Find(&grades, "account_id = ?", accountID).Error
	if err != nil {
		log.Error().Err(err).Str("id", accountID).Msg("marksheet fetch failed")
		return nil, err
	}
	return grades, nil
}

func (s *sqlStore) GetReceipts(ctx context.Context, accountID string) ([]domain.Receipt, error) {
	var receipts []domain.Receipt
	err := s.db.WithContext(ctx).Find(&receipts, "account_id = ?", accountID).Error
	if err != nil {
		log.Error().Err(err).Str("id", accountID).Msg("receipt fetch failed")
		return nil, err
	}
	return receipts, nil
}

func (s *sqlStore) InsertAccount(ctx context.Context, acc *domain.Account) error {
	return s.execute("insert account",
		s.db.WithContext(ctx).Omit("Grades", "Receipts").Create(acc))
}

func (s *sqlStore) UpdateAccount(ctx context.Context, acc *domain.Account) error {
	return s.execute("update account",
		s.db.WithContext(ctx).Omit("Grades", "Receipts").Save(acc))
}

func (s *sqlStore) DeleteAccount(ctx context.Context, id string) error {
	return s.execute("delete account",
		s.db.WithContext(ctx).Delete(&domain.Account{}, "id = ?", id))
}

func (s *sqlStore) DeleteGrades(ctx context.Context, accountID string) error {
	return s.execute("delete grades",
		s.db.WithContext(ctx).Delete(&domain.GradeEntry{}, "account_id = ?", accountID))
}

func (s *sqlStore) DeleteReceipts(ctx context.Context, accountID string) error {
	return s.execute("delete receipts",
		s.db.WithContext(ctx).Delete(&domain.Receipt{}, "account_id = ?", accountID))
}

func (s *sqlStore) InsertGrade(ctx context.Context, entry *domain.GradeEntry) error {
	return s.execute("insert grade",
		s.db.WithContext(ctx).Create(entry))
}

func (s *sqlStore) UpdateGrade(ctx context.Context, entry *domain.GradeEntry) error {
	return s.execute("update grade",
		s.db.WithContext(ctx).
			Model(&domain.GradeEntry{}).
			Where("account_id = ? AND subject = ?", entry.AccountID, entry.Subject).
			Updates(map[string]interface{}{"score": entry.Score, "grade": entry.Letter}))
}

func (s *sqlStore) InsertReceipt(ctx context.Context, rec *domain.Receipt) error {
	return s.execute("insert receipt",
		s.db.WithContext(ctx).Create(rec))
}

func (s *sqlStore) SetPaymentStatus(ctx context.Context, accountID string, status domain.PaymentStatus) error {
	return s.execute("set payment status",
		s.db.WithContext(ctx).
			Model(&domain.Account{}).
			Where("id = ?", accountID).
			Update("payment_status", status))
}

func (s *sqlStore) InsertAdmin(ctx context.Context, admin *domain.AdminAccount) error {
	return s.execute("insert admin",
		s.db.WithContext(ctx).Create(admin))
}
