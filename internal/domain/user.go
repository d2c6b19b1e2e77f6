package domain

// Role is the authorship role stored with each comment.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ValidRoles contains all valid comment author roles.
var ValidRoles = []Role{RoleUser, RoleAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CallerKind tags who is making a request.
type CallerKind int

const (
	CallerAnonymous CallerKind = iota
	CallerUser
	CallerAdmin
)

func (k CallerKind) String() string {
	switch k {
	case CallerUser:
		return "user"
	case CallerAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Caller is the resolved identity of the requester.
// UserID and Profile are only meaningful when Kind is not CallerAnonymous.
type Caller struct {
	Kind    CallerKind
	UserID  string
	Profile AuthorProfile
}

// Anonymous returns the unauthenticated caller.
func Anonymous() Caller {
	return Caller{Kind: CallerAnonymous}
}

// NewCaller builds an authenticated caller from a role claim.
// Any role other than "admin" is treated as a regular user.
func NewCaller(userID string, role Role, profile AuthorProfile) Caller {
	kind := CallerUser
	if role == RoleAdmin {
		kind = CallerAdmin
	}
	return Caller{Kind: kind, UserID: userID, Profile: profile}
}

// Authenticated reports whether the caller has a resolved identity.
func (c Caller) Authenticated() bool {
	return c.Kind != CallerAnonymous
}

// Role returns the authorship role a comment posted by this caller carries.
func (c Caller) Role() Role {
	if c.Kind == CallerAdmin {
		return RoleAdmin
	}
	return RoleUser
}
