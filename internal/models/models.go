package models

import (
	"time"

	"github.com/lib/pq"
)

// AnonymousAuthor is stored when a comment is submitted without a name.
const AnonymousAuthor = "Anonyme"

type Aphorism struct {
	AphorismID      string         `json:"aphorismId" db:"aphorism_id"`
	Text            string         `json:"text" db:"text"`
	Title           *string        `json:"title" db:"title"`
	Tags            pq.StringArray `json:"tags" db:"tags"`
	PrimaryImageURL *string        `json:"primaryImageUrl" db:"primary_image_url"`
	Featured        bool           `json:"featured" db:"featured"`
	Likes           int            `json:"likes" db:"likes"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
	Images          []SavedImage   `json:"images" db:"-"`
}

// SavedImage is one entry of an aphorism's generated-image library.
// The exact prompt and the generation parameters are kept so a card
// can be regenerated or audited later.
type SavedImage struct {
	ImageID     string    `json:"imageId" db:"image_id"`
	AphorismID  string    `json:"aphorismId" db:"aphorism_id"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	Prompt      string    `json:"prompt" db:"prompt"`
	AspectRatio string    `json:"aspectRatio" db:"aspect_ratio"`
	StyleFamily string    `json:"styleFamily" db:"style_family"`
	Typography  string    `json:"typography" db:"typography"`
	Scene       *string   `json:"scene" db:"scene"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Reflection struct {
	ReflectionID string         `json:"reflectionId" db:"reflection_id"`
	Title        string         `json:"title" db:"title"`
	Body         string         `json:"body" db:"body"`
	Slug         string         `json:"slug" db:"slug"`
	Published    bool           `json:"published" db:"published"`
	Tags         pq.StringArray `json:"tags" db:"tags"`
	ImageURLs    pq.StringArray `json:"imageUrls" db:"image_urls"`
	Likes        int            `json:"likes" db:"likes"`
	Dislikes     int            `json:"dislikes" db:"dislikes"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
	Comments     []Comment      `json:"comments" db:"-"`
}

// Tag is a registry entry only. Content items reference labels by string
// value, so deleting a Tag never rewrites aphorism or reflection tag lists.
type Tag struct {
	TagID     string    `json:"tagId" db:"tag_id"`
	Label     string    `json:"label" db:"label"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID    string    `json:"commentId" db:"comment_id"`
	ReflectionID string    `json:"reflectionId" db:"reflection_id"`
	Author       string    `json:"author" db:"author"`
	Body         string    `json:"body" db:"body"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"passwordHash" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"refreshToken" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"refreshTokenExpiryTime" db:"refresh_token_expiry_time"`
}
