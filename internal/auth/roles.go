package auth

import "strings"

// Role is the canonical permission tier.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleTester    Role = "TESTER"
	RoleDeveloper Role = "DEVELOPER"
)

// NormalizeRole maps any raw role representation to a canonical Role.
// Matching is case-insensitive; anything outside the three canonical
// names falls back to TESTER. This is the only role classification in
// the codebase; every consumer goes through it.
func NormalizeRole(raw string) Role {
	switch strings.ToUpper(raw) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleTester):
		return RoleTester
	case string(RoleDeveloper):
		return RoleDeveloper
	default:
		return RoleTester
	}
}

// Valid reports whether the role is one of the three canonical values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTester, RoleDeveloper:
		return true
	default:
		return false
	}
}
