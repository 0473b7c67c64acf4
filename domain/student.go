package domain

import "context"

type StudentUseCase interface {
	Profile(ctx context.Context, id string) (*Account, error)
	Grades(ctx context.Context, id string) ([]GradeEntry, error)
	Receipts(ctx context.Context, id string) ([]Receipt, error)
}
