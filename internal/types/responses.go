package types

// UserResponse is the public identity shape returned by the auth routes.
// The password hash never leaves the persistence layer.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
