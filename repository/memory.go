package repository

import (
	"context"
	"sync"

	"studentoffice/domain"

	"gorm.io/gorm"
)

// memoryStore is the in-memory rendition of the RecordStore contract,
// replacing the legacy compile-time mock mode. It returns the same gorm
// sentinel errors as the SQL store so callers cannot tell the two apart.
type memoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	admins   map[string]string
}

func NewMemoryStore() domain.RecordStore {
	return &memoryStore{
		accounts: make(map[string]*domain.Account),
		admins:   make(map[string]string),
	}
}

func copyAccount(acc *domain.Account) *domain.Account {
	out := *acc
	out.Grades = append([]domain.GradeEntry(nil), acc.Grades...)
	out.Receipts = append([]domain.Receipt(nil), acc.Receipts...)
	return &out
}

func (m *memoryStore) Login(ctx context.Context, role domain.Role, id, secret string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if role == domain.RoleAdmin {
		stored, ok := m.admins[id]
		return ok && stored == secret, nil
	}
	acc, ok := m.accounts[id]
	return ok && acc.Secret == secret, nil
}

func (m *memoryStore) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	return copyAccount(acc), nil
}

func (m *memoryStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, *copyAccount(acc))
	}
	return accounts, nil
}

func (m *memoryStore) GetGrades(ctx context.Context, accountID string) ([]domain.GradeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return append([]domain.GradeEntry(nil), acc.Grades...), nil
}

func (m *memoryStore) GetReceipts(ctx context.Context, accountID string) ([]domain.Receipt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return append([]domain.Receipt(nil), acc.Receipts...), nil
}

func (m *memoryStore) InsertAccount(ctx context.Context, acc *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.accounts[acc.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	m.accounts[acc.ID] = copyAccount(acc)
	return nil
}

func (m *memoryStore) UpdateAccount(ctx context.Context, acc *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, exists := m.accounts[acc.ID]
	if !exists {
		// zero rows matched still reports success
		return nil
	}
	updated := copyAccount(acc)
	updated.Grades = current.Grades
	updated.Receipts = current.Receipts
	m.accounts[acc.ID] = updated
	return nil
}

func (m *memoryStore) DeleteAccount(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

func (m *memoryStore) DeleteGrades(ctx context.Context, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[accountID]; ok {
		acc.Grades = nil
	}
	return nil
}

func (m *memoryStore) DeleteReceipts(ctx context.Context, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[accountID]; ok {
		acc.Receipts = nil
	}
	return nil
}

func (m *memoryStore) InsertGrade(ctx context.Context, entry *domain.GradeEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[entry.AccountID]
	if !ok {
		return gorm.ErrForeignKeyViolated
	}
	for _, g := range acc.Grades {
		if g.Subject == entry.Subject {
			return gorm.ErrDuplicatedKey
		}
	}
	acc.Grades = append(acc.Grades, *entry)
	return nil
}

func (m *memoryStore) UpdateGrade(ctx context.Context, entry *domain.GradeEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[entry.AccountID]
	if !ok {
		return nil
	}
	for i := range acc.Grades {
		if acc.Grades[i].Subject == entry.Subject {
			acc.Grades[i].Score = entry.Score
			acc.Grades[i].Letter = entry.Letter
			break
		}
	}
	return nil
}

func (m *memoryStore) InsertReceipt(ctx context.Context, rec *domain.Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[rec.AccountID]
	if !ok {
		return gorm.ErrForeignKeyViolated
	}
	// receipt IDs are globally unique, not just per account
	for _, other := range m.accounts {
		for _, r := range other.Receipts {
			if r.ID == rec.ID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	acc.Receipts = append(acc.Receipts, *rec)
	return nil
}

func (m *memoryStore) SetPaymentStatus(ctx context.Context, accountID string, status domain.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[accountID]; ok {
		acc.PaymentStatus = status
	}
	return nil
}

func (m *memoryStore) InsertAdmin(ctx context.Context, admin *domain.AdminAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.admins[admin.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	m.admins[admin.ID] = admin.Secret
	return nil
}
