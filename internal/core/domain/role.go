package domain

import "strings"

// Permission tags. Membership is flat set containment, there is no hierarchy.
const (
	PermManagePosts    = "manage_posts"
	PermManageStaff    = "manage_staff"
	PermManageProducts = "manage_products"
	PermManageRoles    = "manage_roles"
	PermManageUsers    = "manage_users"
	PermViewAdmin      = "view_admin"
	PermEditAnyPost    = "edit_any_post"
	PermDeleteAnyPost  = "delete_any_post"
)

// RoleOwner is the id of the role assigned to the bootstrap owner.
const RoleOwner = "owner"

// Role groups a set of permission tags under a display name.
type Role struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Color       string   `json:"color" bson:"color"`
	Permissions []string `json:"permissions" bson:"permissions"`
	System      bool     `json:"system" bson:"system"`
}

// RoleID derives a role id from its display name: lowercase, spaces become
// underscores.
func RoleID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// PermissionSet is the union of the permissions granted by a set of roles.
type PermissionSet map[string]struct{}

// EffectivePermissions unions the permission sets of roles.
func EffectivePermissions(roles []Role) PermissionSet {
	set := make(PermissionSet)
	for _, r := range roles {
		for _, p := range r.Permissions {
			set[p] = struct{}{}
		}
	}
	return set
}

// Has reports whether perm is in the set.
func (s PermissionSet) Has(perm string) bool {
	_, ok := s[perm]
	return ok
}

// DefaultRoles is the role catalog seeded on an empty store.
func DefaultRoles() []Role {
	return []Role{
		{
			ID:    RoleOwner,
			Name:  "Owner",
			Color: "owner",
			Permissions: []string{
				PermManagePosts, PermManageStaff, PermManageProducts, PermManageRoles,
				PermViewAdmin, PermDeleteAnyPost, PermEditAnyPost, PermManageUsers,
			},
			System: true,
		},
		{
			ID:    "admin",
			Name:  "Admin",
			Color: "admin",
			Permissions: []string{
				PermManagePosts, PermManageStaff, PermViewAdmin,
				PermDeleteAnyPost, PermEditAnyPost, PermManageUsers,
			},
		},
		{
			ID:          "moderator",
			Name:        "Moderatore",
			Color:       "moderator",
			Permissions: []string{PermManagePosts, PermViewAdmin, PermDeleteAnyPost},
		},
		{
			ID:          "helper",
			Name:        "Helper",
			Color:       "helper",
			Permissions: []string{PermViewAdmin},
		},
	}
}
