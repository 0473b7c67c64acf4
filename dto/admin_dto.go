package dto

import (
	"strconv"

	"studentoffice/domain"
)

type CreateAccountRequest struct {
	ID             string `validate:"required"`
	Name           string `validate:"required"`
	Department     string `validate:"required"`
	Year           int    `validate:"required,min=1,max=4"`
	Contact        string `validate:"required"`
	AcademicRecord string
	PaymentStatus  string `validate:"required,oneof=Paid Pending Overdue"`
	Secret         string `validate:"required"`
}

func MakeAccount(req *CreateAccountRequest) *domain.Account {
	return &domain.Account{
		ID:             req.ID,
		Name:           req.Name,
		Department:     req.Department,
		Year:           req.Year,
		Contact:        req.Contact,
		AcademicRecord: req.AcademicRecord,
		PaymentStatus:  domain.PaymentStatus(req.PaymentStatus),
		Secret:         req.Secret,
	}
}

// UpdateAccountRequest fields are all optional; blank keeps the current
// value. Year arrives as text from the prompt so "blank" and "0" stay
// distinguishable.
type UpdateAccountRequest struct {
	Name           string
	Department     string
	Year           string `validate:"omitempty,numeric"`
	Contact        string
	AcademicRecord string
	PaymentStatus  string `validate:"omitempty,oneof=Paid Pending Overdue"`
}

func MakeAccountUpdate(req *UpdateAccountRequest) domain.AccountUpdate {
	year := 0
	if req.Year != "" {
		year, _ = strconv.Atoi(req.Year)
	}
	return domain.AccountUpdate{
		Name:           req.Name,
		Department:     req.Department,
		Year:           year,
		Contact:        req.Contact,
		AcademicRecord: req.AcademicRecord,
		PaymentStatus:  req.PaymentStatus,
	}
}

type ReceiptRequest struct {
	ID      string  `validate:"required"`
	Amount  float64 `validate:"required,gt=0"`
	PaidOn  string  `validate:"required"`
	Details string
	Status  string `validate:"required,oneof=Paid Pending"`
}

func MakeReceipt(req *ReceiptRequest) *domain.Receipt {
	return &domain.Receipt{
		ID:      req.ID,
		Amount:  req.Amount,
		PaidOn:  req.PaidOn,
		Details: req.Details,
		Status:  domain.PaymentStatus(req.Status),
	}
}
