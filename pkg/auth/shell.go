package auth

import (
	"context"
	"strings"
)

// NavItem is one entry in a shell's navigation set.
type NavItem struct {
	Label string
	Path  string
}

// Shell is a role-scoped layout: it owns a branch of the route tree,
// exposes the navigation set for its role, and carries the
// logout-then-landing action. Route ownership here is a navigation
// concern only; the server enforces access independently.
type Shell struct {
	role    string
	landing string
	nav     []NavItem
	authCtx *Context
}

// DealerShell composes the dealership-side pages.
func DealerShell(authCtx *Context) *Shell {
	return &Shell{
		role:    "dealer",
		landing: "/",
		authCtx: authCtx,
		nav: []NavItem{
			{Label: "Dashboard", Path: "/dashboard"},
			{Label: "Estoque", Path: "/estoque"},
			{Label: "Vendas", Path: "/vendas"},
			{Label: "Reparos", Path: "/reparos"},
		},
	}
}

// ClientShell composes the client-side pages.
func ClientShell(authCtx *Context) *Shell {
	return &Shell{
		role:    "client",
		landing: "/",
		authCtx: authCtx,
		nav: []NavItem{
			{Label: "Catálogo", Path: "/catalogo"},
			{Label: "Propostas", Path: "/propostas"},
			{Label: "Agendamentos", Path: "/agendamentos"},
			{Label: "Perfil", Path: "/perfil"},
		},
	}
}

// Role returns the role this shell serves.
func (s *Shell) Role() string { return s.role }

// NavItems returns the navigation set for the shell's role.
func (s *Shell) NavItems() []NavItem {
	items := make([]NavItem, len(s.nav))
	copy(items, s.nav)
	return items
}

// Owns reports whether path belongs to this shell's branch of the
// route tree.
func (s *Shell) Owns(path string) bool {
	for _, item := range s.nav {
		if path == item.Path || strings.HasPrefix(path, item.Path+"/") {
			return true
		}
	}
	return false
}

// Logout ends the session and returns the landing path to navigate
// to.
func (s *Shell) Logout(ctx context.Context) string {
	s.authCtx.Logout(ctx)
	return s.landing
}
