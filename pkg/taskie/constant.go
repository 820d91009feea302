package taskie

import "time"

const (
	DefaultBaseURL = "https://taskie-rw.herokuapp.com"
	DefaultTimeout = 10 * time.Second

	PathRegister     = "/api/register"
	PathLogin        = "/api/login"
	PathNote         = "/api/note"
	PathNoteComplete = "/api/note/complete"
	PathUserProfile  = "/api/user/profile"

	HeaderAuthorization = "Authorization"
	QueryID             = "id"
)
