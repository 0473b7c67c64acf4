package repository

import (
	"context"

	"studentoffice/domain"

	"github.com/rs/zerolog/log"
)

// Seed loads the sample data set through the store contract. Existing rows
// are left alone; duplicate inserts are skipped, not treated as failures.
func Seed(ctx context.Context, store domain.RecordStore) error {
	samples := []domain.Account{
		{
			ID:             "STU001",
			Name:           "John Doe",
			Department:     "Computer Science",
			Year:           2,
			Contact:        "john.doe@email.com",
			AcademicRecord: "Excellent academic performance, no disciplinary issues.",
			PaymentStatus:  domain.PaymentPaid,
			Secret:         "studpass",
			Grades: []domain.GradeEntry{
				{AccountID: "STU001", Subject: "Mathematics", Score: 85, Letter: "B"},
				{AccountID: "STU001", Subject: "Physics", Score: 92, Letter: "A"},
				{AccountID: "STU001", Subject: "Programming", Score: 78, Letter: "C"},
			},
			Receipts: []domain.Receipt{
				{
					ID:        "REC001",
					AccountID: "STU001",
					Amount:    5000.00,
					PaidOn:    "2023-09-01",
					Details:   "Annual Tuition Fee Payment via Online Banking",
					Status:    domain.PaymentPaid,
				},
			},
		},
		{
			ID:             "STU002",
			Name:           "Jane Smith",
			Department:     "Electronics Engineering",
			Year:           3,
			Contact:        "jane.smith@email.com",
			AcademicRecord: "Good standing, participated in tech fests.",
			PaymentStatus:  domain.PaymentPending,
			Secret:         "studpass2",
			Grades: []domain.GradeEntry{
				{AccountID: "STU002", Subject: "Mathematics", Score: 90, Letter: "A"},
				{AccountID: "STU002", Subject: "Physics", Score: 92, Letter: "A"},
				{AccountID: "STU002", Subject: "Programming", Score: 98, Letter: "A"},
			},
		},
	}

	for i := range samples {
		acc := samples[i]
		existing, err := store.GetAccount(ctx, acc.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Debug().Str("id", acc.ID).Msg("sample account already present, skipping")
			continue
		}
		grades, receipts := acc.Grades, acc.Receipts
		acc.Grades, acc.Receipts = nil, nil
		if err := store.InsertAccount(ctx, &acc); err != nil {
			return err
		}
		for j := range grades {
			if err := store.InsertGrade(ctx, &grades[j]); err != nil {
				return err
			}
		}
		for j := range receipts {
			if err := store.InsertReceipt(ctx, &receipts[j]); err != nil {
				return err
			}
		}
		log.Info().Str("id", acc.ID).Msg("seeded sample account")
	}
	return nil
}
