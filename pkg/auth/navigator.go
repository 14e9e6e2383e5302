package auth

import "github.com/gescar/dealership-system/pkg/session"

// Canonical landing paths per role.
const (
	DealerLanding = "/dashboard"
	ClientLanding = "/catalogo"

	// LoginPath is where a rejected session gets sent.
	LoginPath = "/login"
)

// LandingPath returns the canonical post-login destination for a
// role. Unmapped roles deterministically land on the client catalog.
func LandingPath(role string) string {
	switch role {
	case "dealer":
		return DealerLanding
	case "client":
		return ClientLanding
	default:
		return ClientLanding
	}
}

// LandingPathFor resolves the landing path for a user; a nil user is
// routed to the login entry point.
func LandingPathFor(user *session.User) string {
	if user == nil {
		return LoginPath
	}
	return LandingPath(user.Role)
}
