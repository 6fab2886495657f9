package ports

import "context"

// AccountPort updates account profiles.
type AccountPort interface {
	// UpdateProfile sets the username and display name of the given account.
	UpdateProfile(ctx context.Context, userID, username, displayName string) error
}
