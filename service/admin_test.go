package service

import (
	"context"
	"errors"
	"testing"

	"studentoffice/domain"
)

func mustCreate(t *testing.T, admin domain.AdminUseCase, id, name, dept string, year int) {
	t.Helper()
	acc := &domain.Account{
		ID:            id,
		Name:          name,
		Department:    dept,
		Year:          year,
		Contact:       name + "@email.com",
		PaymentStatus: domain.PaymentPending,
		Secret:        "pw-" + id,
	}
	if err := admin.CreateAccount(context.Background(), acc); err != nil {
		t.Fatalf("creating %s failed: %v", id, err)
	}
}

func TestCreateAccountDuplicateID(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	acc := &domain.Account{
		ID:            "STU001",
		Name:          "Impostor",
		Department:    "ECE",
		Year:          1,
		Contact:       "x@email.com",
		PaymentStatus: domain.PaymentPending,
		Secret:        "pw",
	}
	if err := admin.CreateAccount(context.Background(), acc); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	ctx := context.Background()

	bad := []*domain.Account{
		{ID: "STU001", Name: "No Year", Department: "CS", Contact: "x", PaymentStatus: domain.PaymentPending, Secret: "pw"},
		{ID: "STU001", Name: "Year Five", Department: "CS", Year: 5, Contact: "x", PaymentStatus: domain.PaymentPending, Secret: "pw"},
		{ID: "STU001", Name: "Bad Status", Department: "CS", Year: 2, Contact: "x", PaymentStatus: "Unknown", Secret: "pw"},
		{ID: "", Name: "No ID", Department: "CS", Year: 2, Contact: "x", PaymentStatus: domain.PaymentPending, Secret: "pw"},
	}
	for _, acc := range bad {
		if err := admin.CreateAccount(ctx, acc); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("account %q: expected ErrValidation, got %v", acc.Name, err)
		}
	}

	// nothing reached the store
	accounts, err := admin.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("invalid input reached the store: %d accounts", len(accounts))
	}
}

func TestUpdateAccountMergesFields(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	updated, err := admin.UpdateAccount(ctx, "STU001", domain.AccountUpdate{
		Department: "ECE",
		Year:       3,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Department != "ECE" || updated.Year != 3 {
		t.Fatalf("fields not applied: %+v", updated)
	}
	// blank fields keep current values
	if updated.Name != "John Doe" || updated.Contact != "John Doe@email.com" {
		t.Fatalf("blank fields overwrote values: %+v", updated)
	}
	if updated.Secret != "pw-STU001" {
		t.Fatalf("secret must survive an update, got %q", updated.Secret)
	}
}

func TestUpdateAccountInvalidYear(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	if _, err := admin.UpdateAccount(context.Background(), "STU001", domain.AccountUpdate{Year: 7}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateAccountNotFound(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	if _, err := admin.UpdateAccount(context.Background(), "GHOST", domain.AccountUpdate{Name: "X"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	store := newTestStore(t)
	admin := NewAdminService(store)
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	if _, err := admin.UpsertGrade(ctx, "STU001", "Mathematics", 85); err != nil {
		t.Fatalf("grade failed: %v", err)
	}
	rec := &domain.Receipt{ID: "R1", Amount: 100, PaidOn: "2024-01-01", Status: domain.PaymentPending}
	if err := admin.AddReceipt(ctx, "STU001", rec); err != nil {
		t.Fatalf("receipt failed: %v", err)
	}

	if err := admin.DeleteAccount(ctx, "STU001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	acc, err := store.GetAccount(ctx, "STU001")
	if err != nil || acc != nil {
		t.Fatalf("account must be gone, got %+v err %v", acc, err)
	}
	grades, _ := store.GetGrades(ctx, "STU001")
	if len(grades) != 0 {
		t.Fatalf("grades must be gone, got %d", len(grades))
	}
	receipts, _ := store.GetReceipts(ctx, "STU001")
	if len(receipts) != 0 {
		t.Fatalf("receipts must be gone, got %d", len(receipts))
	}
}

func TestDeleteAccountNotFound(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	if err := admin.DeleteAccount(context.Background(), "GHOST"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertGradeIdempotent(t *testing.T) {
	store := newTestStore(t)
	admin := NewAdminService(store)
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	for i := 0; i < 2; i++ {
		entry, err := admin.UpsertGrade(ctx, "STU001", "Physics", 92)
		if err != nil {
			t.Fatalf("upsert %d failed: %v", i, err)
		}
		if entry.Letter != "A" {
			t.Fatalf("expected letter A, got %q", entry.Letter)
		}
	}

	grades, err := store.GetGrades(ctx, "STU001")
	if err != nil {
		t.Fatalf("grades fetch failed: %v", err)
	}
	if len(grades) != 1 {
		t.Fatalf("expected exactly one Physics entry, got %d", len(grades))
	}
	if grades[0].Score != 92 || grades[0].Letter != "A" {
		t.Fatalf("unexpected entry: %+v", grades[0])
	}
}

func TestUpsertGradeReplacesScore(t *testing.T) {
	store := newTestStore(t)
	admin := NewAdminService(store)
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	if _, err := admin.UpsertGrade(ctx, "STU001", "Math", 55); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	entry, err := admin.UpsertGrade(ctx, "STU001", "Math", 90)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if entry.Letter != "A" {
		t.Fatalf("expected A after update, got %q", entry.Letter)
	}

	grades, _ := store.GetGrades(ctx, "STU001")
	if len(grades) != 1 || grades[0].Score != 90 {
		t.Fatalf("expected single updated entry, got %+v", grades)
	}
}

func TestUpsertGradeValidation(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	if _, err := admin.UpsertGrade(ctx, "STU001", "  ", 50); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("blank subject: expected ErrValidation, got %v", err)
	}
	if _, err := admin.UpsertGrade(ctx, "STU001", "Math", 101); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("score 101: expected ErrValidation, got %v", err)
	}
	if _, err := admin.UpsertGrade(ctx, "GHOST", "Math", 50); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing account: expected ErrNotFound, got %v", err)
	}
}

func TestAddReceiptScenario(t *testing.T) {
	store := newTestStore(t)
	admin := NewAdminService(store)
	ctx := context.Background()
	mustCreate(t, admin, "STU010", "Scenario Student", "CS", 3)

	// pending receipt leaves the account status alone
	r1 := &domain.Receipt{ID: "R1", Amount: 100, PaidOn: "2024-01-01", Details: "first installment", Status: domain.PaymentPending}
	if err := admin.AddReceipt(ctx, "STU010", r1); err != nil {
		t.Fatalf("R1 failed: %v", err)
	}
	acc, _ := store.GetAccount(ctx, "STU010")
	if acc.PaymentStatus != domain.PaymentPending {
		t.Fatalf("pending receipt changed account status to %q", acc.PaymentStatus)
	}

	// duplicate id fails and leaves the receipt set unchanged
	dup := &domain.Receipt{ID: "R1", Amount: 50, PaidOn: "2024-02-01", Status: domain.PaymentPending}
	if err := admin.AddReceipt(ctx, "STU010", dup); !errors.Is(err, domain.ErrDuplicateReceipt) {
		t.Fatalf("expected ErrDuplicateReceipt, got %v", err)
	}
	receipts, _ := store.GetReceipts(ctx, "STU010")
	if len(receipts) != 1 || receipts[0].Amount != 100 {
		t.Fatalf("duplicate insert disturbed the receipt set: %+v", receipts)
	}

	// paid receipt flips the account status
	r2 := &domain.Receipt{ID: "R2", Amount: 400, PaidOn: "2024-03-01", Details: "balance", Status: domain.PaymentPaid}
	if err := admin.AddReceipt(ctx, "STU010", r2); err != nil {
		t.Fatalf("R2 failed: %v", err)
	}
	acc, _ = store.GetAccount(ctx, "STU010")
	if acc.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("paid receipt did not update account status, got %q", acc.PaymentStatus)
	}
}

func TestAddReceiptValidation(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "John Doe", "CS", 2)

	zero := &domain.Receipt{ID: "R1", Amount: 0, PaidOn: "2024-01-01", Status: domain.PaymentPending}
	if err := admin.AddReceipt(ctx, "STU001", zero); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero amount: expected ErrValidation, got %v", err)
	}
	ok := &domain.Receipt{ID: "R1", Amount: 10, PaidOn: "2024-01-01", Status: domain.PaymentPending}
	if err := admin.AddReceipt(ctx, "GHOST", ok); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing account: expected ErrNotFound, got %v", err)
	}
}

func TestSearchByDepartment(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "Alice", "CS", 1)
	mustCreate(t, admin, "STU002", "Bob", "ECE", 2)
	mustCreate(t, admin, "STU003", "Carol", "CS", 3)

	results, err := admin.Search(ctx, "department", "CS")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	got := map[string]bool{}
	for _, acc := range results {
		got[acc.ID] = true
	}
	want := map[string]bool{"STU001": true, "STU003": true}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for id := range want {
		if !got[id] {
			t.Errorf("missing %s in results", id)
		}
	}
}

func TestSearchByYearAndName(t *testing.T) {
	admin := NewAdminService(newTestStore(t))
	ctx := context.Background()
	mustCreate(t, admin, "STU001", "Alice Johnson", "CS", 1)
	mustCreate(t, admin, "STU002", "Bob Johnson", "ECE", 2)

	byYear, err := admin.Search(ctx, "year", "2")
	if err != nil {
		t.Fatalf("year search failed: %v", err)
	}
	if len(byYear) != 1 || byYear[0].ID != "STU002" {
		t.Fatalf("year search: expected STU002 only, got %+v", byYear)
	}

	// name matches as substring
	byName, err := admin.Search(ctx, "name", "Johnson")
	if err != nil {
		t.Fatalf("name search failed: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("name search: expected 2 matches, got %d", len(byName))
	}

	empty, err := admin.Search(ctx, "department", "Physics")
	if err != nil {
		t.Fatalf("empty search must not error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no matches, got %d", len(empty))
	}

	if _, err := admin.Search(ctx, "shoe-size", "42"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown key: expected ErrValidation, got %v", err)
	}
}
