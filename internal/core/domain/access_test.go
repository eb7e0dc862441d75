package domain

import "testing"

func TestIsProtected(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/dashboard", true},
		{"/dashboard/revenue", true},
		{"/reports", true},
		{"/pos", true},
		{"/users", true},
		{"/settings", true},
		{"/login", false},
		{"/", false},
		{"/dashboards", false}, // prefix match is segment-aware
	}
	for _, tc := range cases {
		if got := IsProtected(tc.path); got != tc.want {
			t.Errorf("IsProtected(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestIsAllowed(t *testing.T) {
	cases := []struct {
		path string
		role string
		want bool
	}{
		{"/dashboard", RoleOwner, true},
		{"/dashboard", RoleTherapist, false},
		{"/dashboard", RoleManager, false},
		{"/reports", RoleManager, true},
		{"/reports", RoleTherapist, false},
		{"/pos", RoleTherapist, true},
		{"/pos", RoleAdmin, false},
		{"/customers/42", RoleManager, true},
		{"/users", RoleAdmin, true},
		{"/users", RoleTherapist, false},
		{"/settings", RoleOwner, true},
		{"/login", "", true}, // public paths are open to everyone
	}
	for _, tc := range cases {
		if got := IsAllowed(tc.path, tc.role); got != tc.want {
			t.Errorf("IsAllowed(%q, %q) = %v, want %v", tc.path, tc.role, got, tc.want)
		}
	}
}

func TestDefaultLanding(t *testing.T) {
	if got := DefaultLanding(RoleOwner); got != "/dashboard" {
		t.Errorf("owner landing: want /dashboard, got %q", got)
	}
	for _, role := range []string{RoleTherapist, RoleManager, RoleAdmin, RoleUser} {
		if got := DefaultLanding(role); got != "/pos" {
			t.Errorf("%s landing: want /pos, got %q", role, got)
		}
	}
}
