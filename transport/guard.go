package transport

import (
	"strings"

	"github.com/anindyaputri/dress-shop/constant"
)

// GuardAction is the outcome of evaluating a route's access rules.
type GuardAction int

const (
	GuardAllow GuardAction = iota
	GuardWait
	GuardRedirectLogin
	GuardRedirectHome
)

// GuardRequirement captures a route's access rules: whether a session is
// needed and whether the admin role is needed on top of it.
type GuardRequirement struct {
	RequireAuth  bool
	RequireAdmin bool
}

// GuardDecision is a pure function of the session state and the route's
// requirements. Rules are evaluated in order:
//  1. session state still loading -> wait
//  2. auth required, no session -> login
//  3. admin required, role not admin -> home
//  4. public-only page (login/register) with a session -> home
//  5. otherwise allow
func GuardDecision(loading, hasSession bool, role string, req GuardRequirement, path string) GuardAction {
	if loading {
		return GuardWait
	}
	if req.RequireAuth && !hasSession {
		return GuardRedirectLogin
	}
	if req.RequireAdmin && role != constant.RoleAdmin {
		return GuardRedirectHome
	}
	if !req.RequireAuth && hasSession && (path == "/login" || path == "/register") {
		return GuardRedirectHome
	}
	return GuardAllow
}

// RequirementsForRoute derives the guard requirements from the request
// method and path.
func RequirementsForRoute(method, path string) GuardRequirement {
	if strings.HasPrefix(path, "/admin") {
		return GuardRequirement{RequireAuth: true, RequireAdmin: true}
	}
	if isPublicPath(method, path) {
		return GuardRequirement{}
	}
	return GuardRequirement{RequireAuth: true}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" || path == "/health" {
		return true
	}
	// Catalog reads are public; the like endpoints are user-specific.
	if method == "GET" && strings.HasPrefix(path, "/dresses") && !strings.HasSuffix(path, "/like") {
		return true
	}

	return false
}
