package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// A malformed identifier must be indistinguishable from an absent one: the
// repository resolves it before any query runs, so a nil collection proves
// the store is never touched.

func TestFindByID_MalformedIDIsNotFound(t *testing.T) {
	r := &ClientRepository{col: nil}

	for _, id := range []string{"", "zzz", "not-a-hex-objectid", "64f0"} {
		_, err := r.FindByID(context.Background(), id)
		if !errors.Is(err, domain.ErrClientNotFound) {
			t.Fatalf("FindByID(%q): expected ErrClientNotFound, got %v", id, err)
		}
	}
}

func TestUpdateByID_MalformedIDIsNotFound(t *testing.T) {
	r := &ClientRepository{col: nil}

	_, err := r.UpdateByID(context.Background(), "not-a-hex-objectid", domain.ClientUpdate{Name: strPtr("B")})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	// The empty-update shortcut goes through FindByID and must behave the same.
	_, err = r.UpdateByID(context.Background(), "not-a-hex-objectid", domain.ClientUpdate{})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("empty update: expected ErrClientNotFound, got %v", err)
	}
}

func TestDeleteByID_MalformedIDIsNotFound(t *testing.T) {
	r := &ClientRepository{col: nil}

	deleted, err := r.DeleteByID(context.Background(), "not-a-hex-objectid")
	if err != nil {
		t.Fatalf("malformed id must not be a query error, got %v", err)
	}
	if deleted {
		t.Fatalf("malformed id must report nothing deleted")
	}
}

func TestSetFields_OnlyNonNilFields(t *testing.T) {
	set := setFields(domain.ClientUpdate{
		Name:     strPtr("B"),
		IsActive: boolPtr(false),
	})

	if len(set) != 2 {
		t.Fatalf("expected 2 fields in $set, got %d: %v", len(set), set)
	}
	if set["name"] != "B" {
		t.Fatalf("name not set: %v", set)
	}
	if set["is_active"] != false {
		t.Fatalf("is_active not set: %v", set)
	}
	if _, ok := set["email"]; ok {
		t.Fatalf("omitted email must not appear in $set")
	}
}

func TestSetFields_ExplicitEmptyStringIsWritten(t *testing.T) {
	// Supplying an empty string clears the field; omitting it keeps it.
	set := setFields(domain.ClientUpdate{Company: strPtr("")})

	if v, ok := set["company"]; !ok || v != "" {
		t.Fatalf("explicit empty company must be written: %v", set)
	}
}

func TestClientUpdate_IsEmpty(t *testing.T) {
	if !(domain.ClientUpdate{}).IsEmpty() {
		t.Fatalf("zero update must be empty")
	}
	if (domain.ClientUpdate{Phone: strPtr("123")}).IsEmpty() {
		t.Fatalf("update with a field must not be empty")
	}
}
