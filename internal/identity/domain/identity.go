package domain

import (
	userdomain "opsboard/backend/internal/user/domain"
)

// Account is a user together with its stored password hash. It only travels
// between the credential store and the auth service; handlers see userdomain.User.
type Account struct {
	User         userdomain.User
	PasswordHash string
}
