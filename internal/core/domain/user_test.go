package domain

import (
	"errors"
	"testing"
)

func TestAuthorize(t *testing.T) {
	admin := &User{ID: "u1", Role: RoleAdmin}
	regular := &User{ID: "u2", Role: RoleUser}

	if err := Authorize(admin, RoleAdmin); err != nil {
		t.Fatalf("admin should pass admin check: %v", err)
	}
	err := Authorize(regular, RoleAdmin)
	if err == nil {
		t.Fatalf("regular user passed admin check")
	}
	if KindOf(err) != KindForbidden {
		t.Fatalf("expected forbidden kind, got %v", KindOf(err))
	}
	if err := Authorize(regular, RoleEmployee, RoleAdmin); err == nil {
		t.Fatalf("regular user passed employee/admin check")
	}
}

func TestAuthorizeOwnerOrRole(t *testing.T) {
	owner := &User{ID: "u1", Role: RoleUser}
	admin := &User{ID: "u2", Role: RoleAdmin}
	other := &User{ID: "u3", Role: RoleUser}

	if err := AuthorizeOwnerOrRole(owner, "u1", RoleAdmin); err != nil {
		t.Fatalf("owner should pass despite regular role: %v", err)
	}
	if err := AuthorizeOwnerOrRole(admin, "u1", RoleAdmin); err != nil {
		t.Fatalf("admin should pass despite not owning: %v", err)
	}
	if err := AuthorizeOwnerOrRole(other, "u1", RoleAdmin); KindOf(err) != KindForbidden {
		t.Fatalf("non-owner non-admin should be forbidden, got %v", err)
	}
	// An empty owner reference must never match an empty principal ID.
	if err := AuthorizeOwnerOrRole(&User{Role: RoleUser}, "", RoleAdmin); err == nil {
		t.Fatalf("empty owner id should not grant access")
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("admin") != RoleAdmin || ParseRole("employee") != RoleEmployee {
		t.Fatalf("known roles misparsed")
	}
	if ParseRole("superuser") != RoleUser {
		t.Fatalf("unknown role should fall back to user")
	}
}

func TestBlogVisibleTo(t *testing.T) {
	author := &User{ID: "a1", Role: RoleEmployee}
	admin := &User{ID: "adm", Role: RoleAdmin}
	other := &User{ID: "x", Role: RoleEmployee}

	draft := &Blog{Status: BlogDraft, Author: AuthorRef{ID: "a1"}}
	published := &Blog{Status: BlogPublished, Author: AuthorRef{ID: "a1"}}

	if !published.VisibleTo(nil) {
		t.Fatalf("published post should be publicly visible")
	}
	if draft.VisibleTo(nil) || draft.VisibleTo(other) {
		t.Fatalf("draft should be hidden from anonymous and non-author")
	}
	if !draft.VisibleTo(author) || !draft.VisibleTo(admin) {
		t.Fatalf("draft should be visible to author and admin")
	}
}

func TestDomainErrorIs(t *testing.T) {
	err := NotFound("no blog post found with that slug")
	if !errors.Is(err, NotFound("")) {
		t.Fatalf("same-kind domain errors should match under errors.Is")
	}
	if errors.Is(err, Forbidden("")) {
		t.Fatalf("different kinds must not match")
	}
}
