package webutil

const (
	// Header Keys
	HeaderContentType     = "Content-Type"
	HeaderWWWAuthenticate = "WWW-Authenticate"

	// Content Types
	ContentTypeJSONUTF8 = "application/json; charset=utf-8"
)
