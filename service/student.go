package service

import (
	"context"

	"studentoffice/domain"
)

type studentService struct {
	store domain.RecordStore
}

func NewStudentService(store domain.RecordStore) domain.StudentUseCase {
	return &studentService{store: store}
}

func (s *studentService) Profile(ctx context.Context, id string) (*domain.Account, error) {
	acc, err := s.store.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return acc, nil
}

// Grades refetches from the store rather than reusing the session's loaded
// account, so an admin's edits show up mid-session.
func (s *studentService) Grades(ctx context.Context, id string) ([]domain.GradeEntry, error) {
	return s.store.GetGrades(ctx, id)
}

func (s *studentService) Receipts(ctx context.Context, id string) ([]domain.Receipt, error) {
	return s.store.GetReceipts(ctx, id)
}
