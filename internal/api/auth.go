package api

import (
	"context"
	"net/http"
)

// Session is what the backend hands back on a successful login: a
// bearer token plus the role it resolved for the user.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Forename string `json:"forename"`
	Surname  string `json:"surname"`
}

// Login exchanges credentials for a backend session. Bad credentials
// come back as ErrUnauthorized.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var sess Session
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "",
		credentials{Email: email, Password: password}, &sess)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Register creates an applicant account. An already-taken email comes
// back as ErrConflict.
func (c *Client) Register(ctx context.Context, email, password, forename, surname string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", "",
		registration{Email: email, Password: password, Forename: forename, Surname: surname}, nil)
}
