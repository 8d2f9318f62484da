package dto

// AuthResp is returned by signup and login: the user identity plus a
// freshly issued credential token.
type AuthResp struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// UserItem is a single user in the /users/all listing. The password hash
// is deliberately absent.
type UserItem struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// UsersResp wraps the /users/all listing.
type UsersResp struct {
	Users []UserItem `json:"users"`
}
