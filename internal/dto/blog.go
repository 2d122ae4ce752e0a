package dto

import (
	"time"

	dom "github.com/charliemarlow/APIProjects/internal/domain"
)

// CreateUserRequest is the JSON body for POST /users. An optional
// socialMedia array seeds the user's entries in one call.
type CreateUserRequest struct {
	Name         string               `json:"name" binding:"required"`
	About        string               `json:"about" binding:"required"`
	ProfileImage string               `json:"profileImage" binding:"required"`
	SocialMedia  []SocialMediaPayload `json:"socialMedia"`
}

// SocialMediaPayload is one socialMedia entry inside a user payload.
type SocialMediaPayload struct {
	Network string `json:"network"`
	URL     string `json:"url"`
	Icon    string `json:"icon"`
}

// UpdateUserRequest is the PATCH body for a user. nil = leave unchanged;
// a present empty string is applied as-is.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	About        *string `json:"about"`
	ProfileImage *string `json:"profileImage"`
}

// CreateSocialRequest is the JSON body for POST /users/:userID/socials.
type CreateSocialRequest struct {
	Network string `json:"network" binding:"required"`
	URL     string `json:"url" binding:"required"`
	Icon    string `json:"icon" binding:"required"`
}

// UpdateSocialRequest is the PATCH body for a social media entry.
type UpdateSocialRequest struct {
	Network *string `json:"network"`
	URL     *string `json:"url"`
	Icon    *string `json:"icon"`
}

// CreatePostRequest is the JSON body for POST /users/:userID/posts.
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdatePostRequest is the PATCH body for a post.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// CreateCommentRequest is the JSON body for POST .../comments. UserID is a
// pointer because user ids start at 0 and "required" rejects zero values.
type CreateCommentRequest struct {
	UserID  *int64 `json:"userID" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest is the PATCH body for a comment.
type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

// LikeRequest is the JSON body for POST .../likes.
type LikeRequest struct {
	UserID *int64 `json:"userID" binding:"required"`
}

// UserResponse is the full user projection: profileImage and socialMedia
// included. Used when the user is the subject of the request.
type UserResponse struct {
	Name         string                `json:"name"`
	About        string                `json:"about"`
	ProfileImage string                `json:"profileImage"`
	SocialMedia  []SocialMediaResponse `json:"socialMedia"`
	ID           int64                 `json:"id"`
}

// UserSummary is the simple user projection embedded inside posts, comments
// and likes. Deliberately omits profileImage and socialMedia so nested
// shapes stay flat.
type UserSummary struct {
	Name  string `json:"name"`
	About string `json:"about"`
	ID    int64  `json:"id"`
}

// SocialMediaResponse is the projection of one social media entry.
type SocialMediaResponse struct {
	Network string `json:"network"`
	URL     string `json:"url"`
	Icon    string `json:"icon"`
	ID      int64  `json:"id"`
}

// PostResponse reports like and comment counts only; the full collections
// have their own endpoints.
type PostResponse struct {
	User        UserSummary `json:"user"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	DatePosted  float64     `json:"datePosted"`
	NumLikes    int         `json:"numLikes"`
	NumComments int         `json:"numComments"`
	PostID      int64       `json:"postID"`
}

// CommentResponse reports the like count only.
type CommentResponse struct {
	User       UserSummary `json:"user"`
	Content    string      `json:"content"`
	DatePosted float64     `json:"datePosted"`
	NumLikes   int         `json:"numLikes"`
	CommentID  int64       `json:"commentID"`
}

// LikeResponse is the projection of a single like.
type LikeResponse struct {
	User       UserSummary `json:"user"`
	DatePosted float64     `json:"datePosted"`
}

// Timestamp renders a time as Unix seconds with fractional part, the wire
// format clients already parse for datePosted.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// NewUserResponse builds the full projection of u.
func NewUserResponse(u *dom.User) UserResponse {
	socials := make([]SocialMediaResponse, len(u.Socials))
	for i, s := range u.Socials {
		socials[i] = NewSocialMediaResponse(s)
	}
	return UserResponse{
		Name:         u.Name,
		About:        u.About,
		ProfileImage: u.ProfileImage,
		SocialMedia:  socials,
		ID:           u.ID,
	}
}

// NewUserSummary builds the simple projection of u.
func NewUserSummary(u *dom.User) UserSummary {
	return UserSummary{Name: u.Name, About: u.About, ID: u.ID}
}

// NewSocialMediaResponse builds the projection of s.
func NewSocialMediaResponse(s *dom.SocialMedia) SocialMediaResponse {
	return SocialMediaResponse{Network: s.Network, URL: s.URL, Icon: s.Icon, ID: s.ID}
}

// NewPostResponse builds the projection of p.
func NewPostResponse(p *dom.Post) PostResponse {
	return PostResponse{
		User:        NewUserSummary(p.Author),
		Title:       p.Title,
		Content:     p.Content,
		DatePosted:  Timestamp(p.DatePosted),
		NumLikes:    p.NumLikes(),
		NumComments: p.NumComments(),
		PostID:      p.ID,
	}
}

// NewCommentResponse builds the projection of c.
func NewCommentResponse(c *dom.Comment) CommentResponse {
	return CommentResponse{
		User:       NewUserSummary(c.Author),
		Content:    c.Content,
		DatePosted: Timestamp(c.DatePosted),
		NumLikes:   c.NumLikes(),
		CommentID:  c.ID,
	}
}

// NewLikeResponse builds the projection of l.
func NewLikeResponse(l *dom.Like) LikeResponse {
	return LikeResponse{
		User:       NewUserSummary(l.User),
		DatePosted: Timestamp(l.DatePosted),
	}
}
