package user

// User is an admin account. Password holds the bcrypt hash and is blanked by
// sanitizeUser before a user ever leaves the API.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
