package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KindContactMessage is the document store collection for contact messages.
const KindContactMessage = "contactmessage"

// ContactMessage is a message submitted through the public contact form.
// Write-only from the client's perspective; there is no read API.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
