package models

// AuthState is the session of a caller: the authenticated user or nobody.
// It is built per request and handed to services explicitly.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// LoggedOut returns the unauthenticated default state.
func LoggedOut() AuthState {
	return AuthState{}
}

// LoggedIn returns an authenticated state for user.
func LoggedIn(user User) AuthState {
	return AuthState{User: &user, IsAuthenticated: true}
}

// IsUser is true whenever the state is authenticated.
func (s AuthState) IsUser() bool {
	return s.IsAuthenticated && s.User != nil
}

// IsAdmin is true only for an authenticated admin.
func (s AuthState) IsAdmin() bool {
	return s.IsUser() && s.User.Role == RoleAdmin
}

// UserID returns the authenticated user's id or an empty string.
func (s AuthState) UserID() string {
	if !s.IsUser() {
		return ""
	}
	return s.User.ID
}
