package entity

// Role represents an access level within the storefront.
type Role string

const (
	// RoleCustomer is the default role for registered accounts.
	RoleCustomer Role = "customer"

	// RoleAdmin grants access to moderation endpoints such as review deletion.
	RoleAdmin Role = "admin"
)

// Strings converts a role slice to plain strings for token claims.
func Strings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}

	return out
}
