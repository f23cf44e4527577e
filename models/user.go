package models

// TimeNever is the sentinel value stored in LastLogin and LastLogout for
// accounts that have never logged in or out. The Session Manager relies on
// it to detect a first-ever login and start a brand-new chat session.
const TimeNever = "00:00:00 0000-00-00"

// TimeLayout is the wall-clock format used for LastLogin/LastLogout values.
// Timestamps are kept as strings so the sentinel above remains representable.
const TimeLayout = "15:04:05 2006-01-02"

// User represents a registered account of the support service.
// Besides identity it carries the contact details of a trusted relative,
// collected at signup so a caretaker can be reached if needed.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique identifier of the account across the whole system.
	// Chats are keyed by it as well.
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext is never persisted and the hash never leaves the server.
	PasswordHash string `json:"-"`

	// RelativeName through RelativeEmail describe the user's emergency
	// contact person.
	RelativeName   string `json:"relative"`
	RelativeNumber string `json:"relativeNum"`
	Telephone      string `json:"telephone"`
	RelativeEmail  string `json:"relativeEmail"`

	// ProfilePicture is an optional data-URI encoded image. May be empty.
	ProfilePicture string `json:"profilePicture,omitempty"`

	// LastLogin and LastLogout hold the time of the most recent login and
	// logout in TimeLayout format, or TimeNever if the event has not
	// happened yet. Both only move forward; no operation sets them back.
	LastLogin  string `json:"lastLogin"`
	LastLogout string `json:"lastLogout"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasLoggedOutBefore reports whether the account has at least one recorded
// logout, i.e. LastLogout holds a real timestamp instead of the sentinel.
func (u User) HasLoggedOutBefore() bool {
	return u.LastLogout != "" && u.LastLogout != TimeNever
}
