package models

// The envelopes below mirror the public wire contract of the REST API.
// Handlers reply with exactly one of {"message": ...} / {"error": ...},
// matching what the original web client expects.

// MessageResponse is the body of a successful mutating request.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a short human-readable failure description.
// No internal error detail crosses the API boundary beyond this string.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by POST /login on success: a status message
// plus the authenticated user's profile.
type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ChatListResponse is returned by GET /get-previous-chats: every saved
// transcript of the user, most recently saved first.
type ChatListResponse struct {
	Chats []Chat `json:"chats"`
}
