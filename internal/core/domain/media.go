package domain

import "time"

// MediaType distinguishes photos from videos. Media are links only.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is a photo or video link shared with a client.
type Media struct {
	ID         string    `json:"id" bson:"_id"`
	ClientID   string    `json:"clientId" bson:"client_id"`
	Type       MediaType `json:"type" bson:"type"`
	URL        string    `json:"url" bson:"url"`
	Title      string    `json:"title" bson:"title"`
	UploadDate time.Time `json:"uploadDate" bson:"upload_date"`
}
