package domain

import "strings"

// LoginPath is where unauthenticated visitors are sent. The originally
// requested path travels along as the callbackUrl query parameter.
const LoginPath = "/login"

// pageRule maps a URL path prefix to the roles allowed to view pages under it.
type pageRule struct {
	prefix string
	roles  []string
}

// pageRules is the single source of truth for page access. Both the edge
// guard middleware and the client-facing access check evaluate this same
// table, so the two enforcement layers cannot drift apart.
var pageRules = []pageRule{
	{prefix: "/dashboard", roles: []string{RoleOwner}},
	{prefix: "/reports", roles: []string{RoleOwner, RoleManager}},
	{prefix: "/pos", roles: []string{RoleOwner, RoleTherapist, RoleManager}},
	{prefix: "/customers", roles: []string{RoleOwner, RoleTherapist, RoleManager}},
	{prefix: "/appointments", roles: []string{RoleOwner, RoleTherapist, RoleManager}},
	{prefix: "/consultations", roles: []string{RoleOwner, RoleTherapist, RoleManager}},
	{prefix: "/users", roles: []string{RoleOwner, RoleAdmin}},
	{prefix: "/settings", roles: []string{RoleOwner, RoleAdmin}},
}

// IsProtected reports whether path falls under a role-gated prefix.
func IsProtected(path string) bool {
	return matchRule(path) != nil
}

// IsAllowed reports whether role may view path. Paths outside every gated
// prefix are public.
func IsAllowed(path, role string) bool {
	rule := matchRule(path)
	if rule == nil {
		return true
	}
	for _, r := range rule.roles {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultLanding returns the page a role is sent to when denied elsewhere.
func DefaultLanding(role string) string {
	if role == RoleOwner {
		return "/dashboard"
	}
	return "/pos"
}

func matchRule(path string) *pageRule {
	for i := range pageRules {
		p := pageRules[i].prefix
		if path == p || strings.HasPrefix(path, p+"/") {
			return &pageRules[i]
		}
	}
	return nil
}
