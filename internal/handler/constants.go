package handler

// Query parameters read by the comment endpoints.
const (
	ExpandedQueryParam = "expanded"
	FormatQueryParam   = "format"
)

// LoginAction tells clients to prompt for sign-in.
const LoginAction = "login"
