package domain

import "time"

// PrincipalKind distinguishes the two account namespaces.
type PrincipalKind string

const (
	KindMember PrincipalKind = "user"
	KindStaff  PrincipalKind = "admin"
)

// Member is a forum user. Members never carry roles.
type Member struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created"`
}

// Staff is an administrative account. Roles is an ordered list of role ids.
type Staff struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created"`
	// BootstrapOwner marks the account seeded at first startup.
	BootstrapOwner bool `json:"-"`
}

// Principal is an authenticated actor, either a member or a staff account.
type Principal struct {
	Kind         PrincipalKind
	ID           string
	Username     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// Principal returns the member as an authenticated actor.
func (m *Member) Principal() *Principal {
	return &Principal{
		Kind:         KindMember,
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// Principal returns the staff account as an authenticated actor.
func (s *Staff) Principal() *Principal {
	return &Principal{
		Kind:         KindStaff,
		ID:           s.ID,
		Username:     s.Username,
		PasswordHash: s.PasswordHash,
		Roles:        append([]string(nil), s.Roles...),
		CreatedAt:    s.CreatedAt,
	}
}

// IsStaff reports whether the principal passes the staff-only gate: it must
// be a staff account holding at least one role.
func (p *Principal) IsStaff() bool {
	return p != nil && p.Kind == KindStaff && len(p.Roles) > 0
}

// Public returns the password-free view rendered by get-self.
func (p *Principal) Public() any {
	if p.Kind == KindStaff {
		roles := p.Roles
		if roles == nil {
			roles = []string{}
		}
		return &Staff{ID: p.ID, Username: p.Username, Roles: roles, CreatedAt: p.CreatedAt}
	}
	return &Member{ID: p.ID, Username: p.Username, CreatedAt: p.CreatedAt}
}
