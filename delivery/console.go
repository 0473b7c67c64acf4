// Package delivery is the interactive console shell. It only collects
// input, renders results and invokes the use cases; every rule lives in the
// service layer.
package delivery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"studentoffice/domain"
	"studentoffice/dto"

	"github.com/go-playground/validator/v10"
)

type Shell struct {
	auth     domain.AuthUseCase
	student  domain.StudentUseCase
	admin    domain.AdminUseCase
	validate *validator.Validate
	in       *bufio.Reader
	out      io.Writer
}

func NewShell(auth domain.AuthUseCase, student domain.StudentUseCase, admin domain.AdminUseCase) *Shell {
	return &Shell{
		auth:     auth,
		student:  student,
		admin:    admin,
		validate: validator.New(),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) prompt(label string) string {
	s.printf("%s: ", label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (s *Shell) promptInt(label string, min, max int) int {
	for {
		raw := s.prompt(label)
		n, err := strconv.Atoi(raw)
		if err == nil && n >= min && n <= max {
			return n
		}
		s.printf("Invalid value. Enter %d-%d.\n", min, max)
	}
}

// Run drives one login session: choose a role, authenticate, then loop over
// the role menu until logout.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("=== College Student Office DBMS ===\n")
	s.printf("1. Student Login\n2. Admin Login\n3. Exit\n")
	switch s.promptInt("Choice", 1, 3) {
	case 3:
		return nil
	case 1:
		return s.loginAndRun(ctx, "student")
	default:
		return s.loginAndRun(ctx, "admin")
	}
}

func (s *Shell) loginAndRun(ctx context.Context, role string) error {
	req := &dto.LoginRequest{
		Role:   role,
		ID:     s.prompt("Enter " + role + " ID"),
		Secret: s.prompt("Enter Password"),
	}
	if err := s.validate.Struct(req); err != nil {
		s.printf("Login failed. Invalid credentials.\n")
		return nil
	}

	session, err := s.auth.Login(ctx, req.DomainRole(), req.ID, req.Secret)
	if err != nil {
		s.printf("Login failed. Invalid credentials.\n")
		return nil
	}

	if session.IsAdmin() {
		s.printf("Admin login successful!\n")
		s.adminLoop(ctx)
	} else {
		s.printf("Student login successful!\n")
		s.studentLoop(ctx, session)
	}
	return nil
}

func (s *Shell) studentLoop(ctx context.Context, session *domain.Session) {
	for {
		s.printf("\n=== Student Menu ===\n")
		s.printf("1. View Profile\n2. View Marksheet\n3. View Fee Receipts\n4. Logout\n")
		switch s.promptInt("Choice", 1, 4) {
		case 1:
			acc, err := s.student.Profile(ctx, session.ID)
			if err != nil {
				s.printf("Error: %v\n", err)
				continue
			}
			s.renderProfile(acc)
		case 2:
			grades, err := s.student.Grades(ctx, session.ID)
			if err != nil {
				s.printf("Error: %v\n", err)
				continue
			}
			s.renderGrades(grades)
		case 3:
			receipts, err := s.student.Receipts(ctx, session.ID)
			if err != nil {
				s.printf("Error: %v\n", err)
				continue
			}
			s.renderReceipts(receipts)
		case 4:
			s.printf("Logged out.\n")
			return
		}
	}
}

func (s *Shell) adminLoop(ctx context.Context) {
	for {
		s.printf("\n=== Admin Menu ===\n")
		s.printf("1. View All Students\n2. Search Students\n3. Add Student\n4. Update Student\n")
		s.printf("5. Delete Student\n6. Update Marks\n7. Add Fee Receipt\n8. Logout\n")
		switch s.promptInt("Choice", 1, 8) {
		case 1:
			s.listAccounts(ctx)
		case 2:
			s.search(ctx)
		case 3:
			s.createAccount(ctx)
		case 4:
			s.updateAccount(ctx)
		case 5:
			s.deleteAccount(ctx)
		case 6:
			s.upsertGrade(ctx)
		case 7:
			s.addReceipt(ctx)
		case 8:
			s.printf("Logged out.\n")
			return
		}
	}
}

func (s *Shell) listAccounts(ctx context.Context) {
	accounts, err := s.admin.ListAccounts(ctx)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if len(accounts) == 0 {
		s.printf("No students found.\n")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "StudentID\tName\tDepartment\tYear\tContact\tFeeStatus")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			acc.ID, acc.Name, acc.Department, acc.Year, acc.Contact, acc.PaymentStatus)
	}
	w.Flush()
}

func (s *Shell) search(ctx context.Context) {
	key := s.prompt("Search by (department/year/name)")
	value := s.prompt("Value")
	results, err := s.admin.Search(ctx, key, value)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if len(results) == 0 {
		s.printf("No matches found.\n")
		return
	}
	for _, acc := range results {
		s.printf("%s - %s (%s, Year %d)\n", acc.ID, acc.Name, acc.Department, acc.Year)
	}
}

func (s *Shell) createAccount(ctx context.Context) {
	req := &dto.CreateAccountRequest{
		ID:             s.prompt("StudentID"),
		Name:           s.prompt("Name"),
		Department:     s.prompt("Department"),
		Year:           s.promptInt("Year (1-4)", 1, 4),
		Contact:        s.prompt("Contact"),
		AcademicRecord: s.prompt("Academic Record"),
		PaymentStatus:  s.prompt("Fee Status (Paid/Pending/Overdue)"),
		Secret:         s.prompt("Password"),
	}
	if err := s.validate.Struct(req); err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	if err := s.admin.CreateAccount(ctx, dto.MakeAccount(req)); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			s.printf("Failed to add student (ID already exists).\n")
			return
		}
		s.printf("Failed to add student: %v\n", err)
		return
	}
	s.printf("Student added successfully!\n")
}

func (s *Shell) updateAccount(ctx context.Context) {
	id := s.prompt("Enter Student ID")
	s.printf("Leave blank to keep current value.\n")
	req := &dto.UpdateAccountRequest{
		Name:           s.prompt("Name"),
		Department:     s.prompt("Department"),
		Year:           s.prompt("Year (1-4)"),
		Contact:        s.prompt("Contact"),
		AcademicRecord: s.prompt("Academic Record"),
		PaymentStatus:  s.prompt("Fee Status"),
	}
	if err := s.validate.Struct(req); err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	if _, err := s.admin.UpdateAccount(ctx, id, dto.MakeAccountUpdate(req)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.printf("Student not found.\n")
			return
		}
		s.printf("Failed to update student: %v\n", err)
		return
	}
	s.printf("Student updated successfully!\n")
}

func (s *Shell) deleteAccount(ctx context.Context) {
	id := s.prompt("Enter Student ID")
	confirm := s.prompt("Are you sure you want to delete " + id + "? (y/n)")
	if !strings.EqualFold(confirm, "y") {
		s.printf("Deletion cancelled.\n")
		return
	}
	if err := s.admin.DeleteAccount(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.printf("Student not found.\n")
			return
		}
		s.printf("Failed to delete student: %v\n", err)
		return
	}
	s.printf("Student deleted successfully!\n")
}

func (s *Shell) upsertGrade(ctx context.Context) {
	id := s.prompt("Enter Student ID")
	subject := s.prompt("Subject")
	score := s.promptInt("Marks (0-100)", 0, 100)
	entry, err := s.admin.UpsertGrade(ctx, id, subject, score)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.printf("Student not found.\n")
			return
		}
		s.printf("Failed to update marks: %v\n", err)
		return
	}
	s.printf("Operation successful! Grade: %s\n", entry.Letter)
}

func (s *Shell) addReceipt(ctx context.Context) {
	id := s.prompt("Enter Student ID")
	req := &dto.ReceiptRequest{
		ID:      s.prompt("Receipt ID"),
		PaidOn:  s.prompt("Paid On (YYYY-MM-DD)"),
		Details: s.prompt("Transaction Details"),
		Status:  s.prompt("Status (Paid/Pending)"),
	}
	for {
		amount, err := strconv.ParseFloat(s.prompt("Amount"), 64)
		if err == nil && amount > 0 {
			req.Amount = amount
			break
		}
		s.printf("Invalid amount. Enter a positive number.\n")
	}
	if err := s.validate.Struct(req); err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	if err := s.admin.AddReceipt(ctx, id, dto.MakeReceipt(req)); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.printf("Student not found.\n")
		case errors.Is(err, domain.ErrDuplicateReceipt):
			s.printf("Failed to add fee receipt (ID already exists).\n")
		default:
			s.printf("Failed to add fee receipt: %v\n", err)
		}
		return
	}
	s.printf("Fee receipt added successfully!\n")
}

func (s *Shell) renderProfile(acc *domain.Account) {
	s.printf("\n=== Student Profile ===\n")
	s.printf("StudentID: %s\nName: %s\nDepartment: %s\nYear: %d\nContact: %s\n",
		acc.ID, acc.Name, acc.Department, acc.Year, acc.Contact)
	s.printf("Academic Record: %s\nFee Status: %s\n", acc.AcademicRecord, acc.PaymentStatus)
}

func (s *Shell) renderGrades(grades []domain.GradeEntry) {
	s.printf("\n=== Marksheet ===\n")
	if len(grades) == 0 {
		s.printf("No marks recorded.\n")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Subject\tMarks\tGrade")
	for _, g := range grades {
		fmt.Fprintf(w, "%s\t%d\t%s\n", g.Subject, g.Score, g.Letter)
	}
	w.Flush()
}

func (s *Shell) renderReceipts(receipts []domain.Receipt) {
	s.printf("\n=== Fee Receipts ===\n")
	if len(receipts) == 0 {
		s.printf("No receipts found.\n")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ReceiptID\tAmount\tPaidOn\tDetails\tStatus")
	for _, r := range receipts {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%s\n", r.ID, r.Amount, r.PaidOn, r.Details, r.Status)
	}
	w.Flush()
}
