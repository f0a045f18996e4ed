package model

// Push is a single push notification addressed to one device token.
type Push struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}
