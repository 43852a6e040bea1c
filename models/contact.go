package models

// ContactMessage is the public contact-form payload, forwarded verbatim to the
// backend's contact endpoint.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
