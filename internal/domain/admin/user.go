package admin

import "errors"

var ErrNotFound = errors.New("admin: user not found")

// User is an admin account record. The credential is opaque to this core;
// no authentication logic lives here.
type User struct {
	Username string
	Password string
}
