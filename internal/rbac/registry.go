package rbac

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type sessionEntry struct {
	role      string
	expiresAt time.Time
	pc        *PermissionContext
}

func (e *sessionEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// SessionRegistry tracks the live permission context of every signed-in
// session and re-resolves all of them when the refresh signal fires.
// Entries are bounded by their token lifetime: expired sessions resolve
// to nil and are swept out on the next refresh.
type SessionRegistry struct {
	resolver *Resolver

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

func NewSessionRegistry(resolver *Resolver) *SessionRegistry {
	return &SessionRegistry{
		resolver: resolver,
		sessions: make(map[string]*sessionEntry),
	}
}

// Establish publishes a context for the session until expiresAt (zero
// means no expiry). The default policy is applied synchronously so the
// session is usable immediately; the authoritative store result
// overwrites it as soon as resolution lands.
func (r *SessionRegistry) Establish(ctx context.Context, sessionID, role string, expiresAt time.Time) *PermissionContext {
	pc := NewPermissionContext()
	pc.Replace(r.resolver.ResolveDefault(role))

	r.mu.Lock()
	r.sessions[sessionID] = &sessionEntry{role: role, expiresAt: expiresAt, pc: pc}
	r.mu.Unlock()

	pc.Replace(r.resolver.ResolveEffective(ctx, role))
	return pc
}

// Lookup returns the session's context, or nil when none is established
// or the token behind it has expired.
func (r *SessionRegistry) Lookup(sessionID string) *PermissionContext {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sessionID]; ok && !e.expired(time.Now()) {
		return e.pc
	}
	return nil
}

// Drop resets and forgets the session's context on sign-out.
func (r *SessionRegistry) Drop(sessionID string) {
	r.mu.Lock()
	e, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	if ok {
		e.pc.Reset()
	}
}

// RefreshAll sweeps expired sessions, then re-resolves every live one.
// Called when the refresh signal arrives after an administrative save.
func (r *SessionRegistry) RefreshAll(ctx context.Context) {
	now := time.Now()

	r.mu.Lock()
	var expired []*sessionEntry
	live := make([]*sessionEntry, 0, len(r.sessions))
	for id, e := range r.sessions {
		if e.expired(now) {
			expired = append(expired, e)
			delete(r.sessions, id)
			continue
		}
		live = append(live, e)
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.pc.Reset()
	}
	for _, e := range live {
		e.pc.Replace(r.resolver.ResolveEffective(ctx, e.role))
	}
	slog.DebugContext(ctx, "refreshed live permission contexts",
		"sessions", len(live), "swept", len(expired))
}

// Size reports the number of live sessions, mainly for tests and health.
func (r *SessionRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
