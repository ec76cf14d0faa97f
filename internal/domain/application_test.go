package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in     string
		want   ApplicationStatus
		wantOK bool
	}{
		{"Pending", StatusPending, true},
		{"pending", StatusPending, true},
		{"  PENDING ", StatusPending, true},
		{"Approved", StatusApproved, true},
		{"approved", StatusApproved, true},
		{"Rejected", StatusRejected, true},
		{"rejected", StatusRejected, true},
		{"", "", false},
		{"withdrawn", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeStatus(tc.in)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"borrower", "manager", "admin"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok)
		assert.Equal(t, Role(valid), role)
	}

	_, ok := ParseRole("superuser")
	assert.False(t, ok)

	// Role values are case-sensitive on the wire.
	_, ok = ParseRole("Admin")
	assert.False(t, ok)
}
