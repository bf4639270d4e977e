package domain

import (
	"errors"
	"testing"
)

func TestRoleID(t *testing.T) {
	tests := map[string]string{
		"Moderatore":    "moderatore",
		"Event Team":    "event_team",
		"Build  Crew":   "build__crew",
		"already_snake": "already_snake",
	}
	for name, want := range tests {
		if got := RoleID(name); got != want {
			t.Fatalf("RoleID(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestEffectivePermissions(t *testing.T) {
	set := EffectivePermissions([]Role{
		{ID: "a", Permissions: []string{PermManagePosts}},
		{ID: "b", Permissions: []string{PermManagePosts, PermViewAdmin}},
	})
	if len(set) != 2 || !set.Has(PermManagePosts) || !set.Has(PermViewAdmin) || set.Has(PermManageRoles) {
		t.Fatalf("unexpected set: %v", set)
	}
	if EffectivePermissions(nil).Has(PermViewAdmin) {
		t.Fatalf("empty role list must grant nothing")
	}
}

func TestDefaultRoles_OnlyOwnerIsSystem(t *testing.T) {
	for _, r := range DefaultRoles() {
		if r.ID != RoleID(r.Name) && r.ID != "moderator" {
			t.Fatalf("role %q id does not derive from name %q", r.ID, r.Name)
		}
		if r.System != (r.ID == RoleOwner) {
			t.Fatalf("role %q has system=%v", r.ID, r.System)
		}
	}
}

func TestPrincipal_IsStaff(t *testing.T) {
	if (&Member{ID: "m"}).Principal().IsStaff() {
		t.Fatalf("member must not pass the staff gate")
	}
	if (&Staff{ID: "s"}).Principal().IsStaff() {
		t.Fatalf("staff without roles must not pass the staff gate")
	}
	if !(&Staff{ID: "s", Roles: []string{"helper"}}).Principal().IsStaff() {
		t.Fatalf("staff with a role must pass the staff gate")
	}
	var nilPrincipal *Principal
	if nilPrincipal.IsStaff() {
		t.Fatalf("nil principal must not pass the staff gate")
	}
}

func TestErrRoleInUse(t *testing.T) {
	err := ErrRoleInUse(3)
	var derr *Error
	if !errors.As(err, &derr) || derr.Count != 3 || !errors.Is(err, ErrInvariant) {
		t.Fatalf("unexpected error: %#v", err)
	}
	if errors.Is(ErrPostNotFound, ErrForbidden) || !errors.Is(ErrPostNotFound, ErrNotFound) {
		t.Fatalf("category unwrapping is wrong")
	}
}
