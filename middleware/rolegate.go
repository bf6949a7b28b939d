package middleware

import "github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"

// SessionUser is the resolved identity behind a request. A nil
// *SessionUser means nobody is signed in.
type SessionUser struct {
	ID   uint
	Role models.Role
}

type DecisionKind int

const (
	// DecisionRender lets the request through.
	DecisionRender DecisionKind = iota
	// DecisionRedirectLogin sends an anonymous visitor to the login page.
	DecisionRedirectLogin
	// DecisionRedirectDashboard sends a signed-in user to their own
	// dashboard when the target is not meant for their role.
	DecisionRedirectDashboard
)

// Decision is the outcome of the role gate. Exactly one of the three
// kinds applies for any (user, allowed-roles) pair.
type Decision struct {
	Kind   DecisionKind
	Target string // redirect path, empty for DecisionRender
}

const LoginPath = "/login"

// DashboardPath returns the home dashboard for a role.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleCustomer:
		return "/customer/dashboard"
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleDelivery:
		return "/delivery/dashboard"
	default:
		return LoginPath
	}
}

// Decide gates a protected surface. No user redirects to login; a user
// whose role is outside the allowed set is sent to their own dashboard;
// an empty allowed set admits any signed-in user.
func Decide(user *SessionUser, allowed []models.Role) Decision {
	if user == nil {
		return Decision{Kind: DecisionRedirectLogin, Target: LoginPath}
	}
	if len(allowed) == 0 {
		return Decision{Kind: DecisionRender}
	}
	for _, role := range allowed {
		if role == user.Role {
			return Decision{Kind: DecisionRender}
		}
	}
	return Decision{Kind: DecisionRedirectDashboard, Target: DashboardPath(user.Role)}
}

// DecidePublic gates guest-only surfaces (login, register): an already
// authenticated user is sent back to their dashboard.
func DecidePublic(user *SessionUser) Decision {
	if user == nil {
		return Decision{Kind: DecisionRender}
	}
	return Decision{Kind: DecisionRedirectDashboard, Target: DashboardPath(user.Role)}
}
