package domain

// User is the account object returned by the auth backend
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle             UserState = "idle"
	StateWaitingEmail     UserState = "waiting_email"
	StateWaitingPassword  UserState = "waiting_password"
	StateWaitingMagicword UserState = "waiting_magicword"
)

// AuthAction is the credential flow a user is going through
type AuthAction string

const (
	ActionLogin  AuthAction = "login"
	ActionSignup AuthAction = "signup"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State  UserState
	Action AuthAction
	Email  string
}
