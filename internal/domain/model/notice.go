package model

// Notice is a short-lived message shown to the user after a command.
type Notice struct {
	Message string
	Kind    NoticeKind
}

// IsZero reports whether no notice is currently showing.
func (n Notice) IsZero() bool {
	return n.Message == ""
}
