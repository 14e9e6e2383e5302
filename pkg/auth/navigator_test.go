package auth

import (
	"testing"

	"github.com/gescar/dealership-system/pkg/session"
)

func TestLandingPath(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{"dealer", "/dashboard"},
		{"client", "/catalogo"},
		{"", "/catalogo"},
		{"admin", "/catalogo"},
	}

	for _, tc := range cases {
		if got := LandingPath(tc.role); got != tc.want {
			t.Errorf("LandingPath(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestLandingPathIsDeterministic(t *testing.T) {
	first := LandingPath("unmapped-role")
	for i := 0; i < 10; i++ {
		if got := LandingPath("unmapped-role"); got != first {
			t.Fatalf("unmapped role resolved differently on call %d: %q vs %q", i, got, first)
		}
	}
}

func TestLandingPathFor(t *testing.T) {
	if got := LandingPathFor(nil); got != LoginPath {
		t.Errorf("nil user should land on login, got %q", got)
	}
	if got := LandingPathFor(&session.User{Role: "dealer"}); got != DealerLanding {
		t.Errorf("dealer should land on dashboard, got %q", got)
	}
}
