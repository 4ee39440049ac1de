package users

import (
	"context"
)

// Repository is the account store. Usernames passed in are already
// normalized by the service; uniqueness of the username column is the
// store's responsibility, including under concurrent registration.
//
// Implementations return common.ErrorNotFound from FindByUsername for an
// unknown username, common.ErrorUsernameTaken from Create on a uniqueness
// conflict, and wrap infrastructure failures in
// common.ErrorStorageUnavailable.
type Repository interface {
	Exists(ctx context.Context, userName string) (bool, error)
	Create(ctx context.Context, user *User) (*User, error)
	FindByUsername(ctx context.Context, userName string) (*User, error)
}
