package models

// ContactMessage is a landing-page contact form submission.
// Stored in the "contactmessage" collection.
type ContactMessage struct {
	Name    string  `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Email   string  `json:"email" bson:"email" validate:"required,email"`
	Message string  `json:"message" bson:"message" validate:"required,min=10,max=5000"`
	Source  *string `json:"source" bson:"source"` // page or section the message came from
}
