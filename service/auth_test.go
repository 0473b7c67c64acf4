package service

import (
	"context"
	"errors"
	"testing"

	"studentoffice/domain"
	"studentoffice/repository"
)

func newTestStore(t *testing.T) domain.RecordStore {
	t.Helper()
	store := repository.NewMemoryStore()
	if err := store.InsertAdmin(context.Background(), &domain.AdminAccount{ID: "ADMIN001", Secret: "adminpass"}); err != nil {
		t.Fatalf("seeding admin failed: %v", err)
	}
	return store
}

func TestLoginAfterCreateAccount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	auth := NewAuthService(store)
	admin := NewAdminService(store)

	acc := &domain.Account{
		ID:            "STU001",
		Name:          "John Doe",
		Department:    "CS",
		Year:          2,
		Contact:       "john@email.com",
		PaymentStatus: domain.PaymentPending,
		Secret:        "studpass",
	}
	if err := admin.CreateAccount(ctx, acc); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	session, err := auth.Login(ctx, domain.RoleStudent, "STU001", "studpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Role != domain.RoleStudent || session.ID != "STU001" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.IsAdmin() {
		t.Fatal("student session must not be admin")
	}
}

func TestLoginSingleFieldMismatchFails(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	auth := NewAuthService(store)
	admin := NewAdminService(store)

	acc := &domain.Account{
		ID:            "STU001",
		Name:          "John Doe",
		Department:    "CS",
		Year:          2,
		Contact:       "john@email.com",
		PaymentStatus: domain.PaymentPending,
		Secret:        "studpass",
	}
	if err := admin.CreateAccount(ctx, acc); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	cases := []struct {
		name   string
		role   domain.Role
		id     string
		secret string
	}{
		{"wrong id", domain.RoleStudent, "STU002", "studpass"},
		{"wrong secret", domain.RoleStudent, "STU001", "wrong"},
		{"wrong case", domain.RoleStudent, "STU001", "Studpass"},
		{"wrong role", domain.RoleAdmin, "STU001", "studpass"},
	}
	for _, tc := range cases {
		if _, err := auth.Login(ctx, tc.role, tc.id, tc.secret); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthService(newTestStore(t))

	session, err := auth.Login(ctx, domain.RoleAdmin, "ADMIN001", "adminpass")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if !session.IsAdmin() {
		t.Fatal("expected admin session")
	}
}
