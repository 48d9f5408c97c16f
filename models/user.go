package models

// User is the authenticated account the client syncs for.
type User struct {
	// ID is the server-side identifier of the account. It is the "sub" claim
	// of every access token issued for the user.
	ID string `json:"id"`

	// Email is the login of the account.
	Email string `json:"email"`

	// IsEmailConfirmed is true once the user confirmed the account email.
	// The server refuses to sync unconfirmed accounts.
	IsEmailConfirmed bool `json:"isEmailConfirmed"`
}

// DeviceIdentity is the per-installation identifier that scopes server-side
// fetch and push state.
type DeviceIdentity struct {
	// DeviceID is a UUIDv7 generated on first registration.
	DeviceID string `json:"deviceId"`
}
