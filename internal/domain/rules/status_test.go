package rules

import (
	"testing"

	"github.com/casarancha/adminpanel/internal/domain/enums"
)

func TestDeriveUserStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current enums.UserStatus
		action  string
		want    enums.UserStatus
	}{
		{"ban suspends", enums.UserStatusActive, "ban", enums.UserStatusSuspended},
		{"suspend suspends", enums.UserStatusActive, "suspend", enums.UserStatusSuspended},
		{"restrict deactivates", enums.UserStatusActive, "restrict", enums.UserStatusInactive},
		{"unban restores", enums.UserStatusSuspended, "unban", enums.UserStatusActive},
		{"unsuspend restores", enums.UserStatusSuspended, "unsuspend", enums.UserStatusActive},
		{"unrestrict restores", enums.UserStatusInactive, "unrestrict", enums.UserStatusActive},
		{"verify keeps status", enums.UserStatusSuspended, "verify", enums.UserStatusSuspended},
		{"unknown keeps status", enums.UserStatusActive, "promote", enums.UserStatusActive},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DeriveUserStatus(tc.current, tc.action); got != tc.want {
				t.Fatalf("DeriveUserStatus(%q, %q) = %q, want %q", tc.current, tc.action, got, tc.want)
			}
		})
	}
}

func TestDeriveVerified(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current bool
		action  string
		want    bool
	}{
		{"verify sets", false, "verify", true},
		{"unverify clears", true, "unverify", false},
		{"ban keeps verified", true, "ban", true},
		{"unknown keeps unverified", false, "promote", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DeriveVerified(tc.current, tc.action); got != tc.want {
				t.Fatalf("DeriveVerified(%v, %q) = %v, want %v", tc.current, tc.action, got, tc.want)
			}
		})
	}
}
