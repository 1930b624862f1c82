package types

// Credentials are the admin's sign-in values. They are never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Phase is the admin session state.
type Phase int

const (
	// Anonymous means no token is held.
	Anonymous Phase = iota
	// Authenticating covers the in-flight window of a sign-in request.
	Authenticating
	// Authenticated means a token is held.
	Authenticated
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// MutationResult is the outcome of an accept or delete call. Reported is false
// when the backend omitted the count.
type MutationResult struct {
	Count    int
	Reported bool
}
