package domain

// Role partitions the identity space. Students and admins live in separate
// tables and never share identifiers.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

// Account is one student identity with its owned marksheet and receipt rows.
// The ID is immutable once created.
type Account struct {
	ID             string        `gorm:"primaryKey;size:16" json:"id" validate:"required"`
	Name           string        `gorm:"not null" json:"name" validate:"required"`
	Department     string        `gorm:"not null" json:"department" validate:"required"`
	Year           int           `gorm:"not null" json:"year" validate:"required,min=1,max=4"`
	Contact        string        `gorm:"not null" json:"contact" validate:"required"`
	AcademicRecord string        `json:"academic_record"`
	PaymentStatus  PaymentStatus `gorm:"not null;default:'Pending'" json:"payment_status" validate:"required,oneof=Paid Pending Overdue"`
	Secret         string        `gorm:"not null" json:"-" validate:"required"`

	Grades   []GradeEntry `gorm:"foreignKey:AccountID;references:ID" json:"grades,omitempty"`
	Receipts []Receipt    `gorm:"foreignKey:AccountID;references:ID" json:"receipts,omitempty"`
}

func (Account) TableName() string { return "students" }

// AdminAccount is the admin identity space: identifier and secret only.
type AdminAccount struct {
	ID     string `gorm:"primaryKey;size:16" json:"id"`
	Secret string `gorm:"not null" json:"-"`
}

func (AdminAccount) TableName() string { return "admins" }

// GradeEntry holds one subject's score for an account. At most one entry per
// (account, subject) pair.
type GradeEntry struct {
	AccountID string `gorm:"primaryKey;size:16" json:"account_id"`
	Subject   string `gorm:"primaryKey;size:64" json:"subject" validate:"required"`
	Score     int    `gorm:"not null" json:"score" validate:"min=0,max=100"`
	Letter    string `gorm:"column:grade;not null;size:2" json:"grade"`
}

func (GradeEntry) TableName() string { return "marksheets" }

// Receipt is one payment record. Receipt IDs are globally unique.
type Receipt struct {
	ID        string        `gorm:"primaryKey;size:32" json:"id" validate:"required"`
	AccountID string        `gorm:"not null;index;size:16" json:"account_id"`
	Amount    float64       `gorm:"not null;type:decimal(10,2)" json:"amount" validate:"required,gt=0"`
	PaidOn    string        `gorm:"size:10" json:"paid_on" validate:"required"`
	Details   string        `json:"details"`
	Status    PaymentStatus `gorm:"not null" json:"status" validate:"required,oneof=Paid Pending"`
}

func (Receipt) TableName() string { return "fee_receipts" }

// LetterGrade maps a numeric score onto the marksheet letter scale.
func LetterGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
