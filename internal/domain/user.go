package domain

// User is the profile stored for an authenticated portal session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RoleClient is the role assigned to portal demo accounts.
const RoleClient = "client"
