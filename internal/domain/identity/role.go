package identity

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
)

// Role represents the capability level of a user
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleSupervisor  Role = "supervisor"
	RoleSalesperson Role = "salesperson"
)

// ParseRole normalizes a role string. Role comparison is case-insensitive
// throughout the system.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleSupervisor):
		return RoleSupervisor, nil
	case string(RoleSalesperson):
		return RoleSalesperson, nil
	}
	return "", shared.NewDomainError("INVALID_ROLE", "Unknown role: "+s)
}

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleSalesperson:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// RoleSet is the set of roles allowed to perform an operation
type RoleSet []Role

// Per-operation required-role sets. Every mutating entry point declares one
// of these and the authorization guard checks it at a single chokepoint
// before dispatch.
var (
	RolesOrderWrite   = RoleSet{RoleAdmin, RoleSupervisor, RoleSalesperson}
	RolesOrderUpdate  = RoleSet{RoleAdmin, RoleSupervisor}
	RolesPaymentWrite = RoleSet{RoleAdmin, RoleSupervisor, RoleSalesperson}
	RolesReturnWrite  = RoleSet{RoleAdmin, RoleSupervisor}
	RolesAuditRead    = RoleSet{RoleAdmin}
)

// Allows reports whether the caller role is in the set, comparing
// case-insensitively
func (s RoleSet) Allows(caller string) bool {
	for _, r := range s {
		if strings.EqualFold(string(r), strings.TrimSpace(caller)) {
			return true
		}
	}
	return false
}

// Strings returns the set as plain strings, for logging and error messages
func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
