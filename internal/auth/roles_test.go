package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{"AdMiN", RoleAdmin},
		{"TESTER", RoleTester},
		{"tester", RoleTester},
		{"DEVELOPER", RoleDeveloper},
		{"developer", RoleDeveloper},
		{"", RoleTester},
		{"SUPERUSER", RoleTester},
		{"admin ", RoleTester},
		{"role_admin", RoleTester},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeRole(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNormalizeRole_CanonicalPassthrough(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleTester, RoleDeveloper} {
		assert.Equal(t, role, NormalizeRole(string(role)))
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleTester.Valid())
	assert.True(t, RoleDeveloper.Valid())
	assert.False(t, Role("GUEST").Valid())
	assert.False(t, Role("").Valid())
}
