package model

import "fmt"

type User struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) String() string {
	return fmt.Sprintf("%s <%s>", u.Username, u.Email)
}

// TokenPair is the bearer access/refresh pair issued by POST /token. The
// refresh endpoint returns only a new access token; Refresh is left empty
// in that case.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
