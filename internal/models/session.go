package models

const (
	SessionUserAdmin = "admin"
	SessionUserDemo  = "demo"
)

// Session is the single login slot. A nil CurrentUser means logged out.
type Session struct {
	CurrentUser *string
}

func (s Session) LoggedIn() bool {
	return s.CurrentUser != nil
}

func (s Session) User() string {
	if s.CurrentUser == nil {
		return ""
	}
	return *s.CurrentUser
}
