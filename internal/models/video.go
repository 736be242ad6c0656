package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KindVideo is the document store collection for video metadata.
const KindVideo = "video"

// Video is the metadata record for an uploaded video. The file itself lives
// in the local upload directory under Filename; URL is the public path it is
// served from. Records are written once and never mutated.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Filename    string             `bson:"filename" json:"filename"`
	URL         string             `bson:"url" json:"url"`
	MimeType    string             `bson:"mime_type,omitempty" json:"mime_type,omitempty"`
	SizeBytes   int64              `bson:"size_bytes" json:"size_bytes"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
