// Package snapshot seeds the in-memory registries from JSON documents by
// replaying add-operations in file order. Ids come from the registry
// counters, never from ids embedded in the files; nested entities resolve
// their associations through the userID fields.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charliemarlow/APIProjects/internal/repo"
)

// UserDoc is one entry of the users document.
type UserDoc struct {
	Name         string      `json:"name"`
	About        string      `json:"about"`
	ProfileImage string      `json:"profileImage"`
	SocialMedia  []SocialDoc `json:"socialMedia"`
}

// SocialDoc is one socialMedia entry. The file may carry an id but it is
// ignored; insertion order decides.
type SocialDoc struct {
	Network string `json:"network"`
	URL     string `json:"url"`
	Icon    string `json:"icon"`
}

// PostDoc is one entry of the posts document.
type PostDoc struct {
	UserID   int64        `json:"userID"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Likes    []LikeDoc    `json:"likes"`
	Comments []CommentDoc `json:"comments"`
}

// LikeDoc references the liking user.
type LikeDoc struct {
	UserID int64 `json:"userID"`
}

// CommentDoc is one comment nested under a post.
type CommentDoc struct {
	UserID  int64     `json:"userID"`
	Content string    `json:"content"`
	Likes   []LikeDoc `json:"likes"`
}

// LoadBlog replays users (with their socials) first, so every post can
// resolve its userID, then posts with their nested likes and comments.
// An unresolvable userID aborts the load; a duplicate like in the file is
// skipped.
func LoadBlog(r repo.BlogRepo, users []UserDoc, posts []PostDoc) error {
	for _, doc := range users {
		u := r.AddUser(doc.Name, doc.About, doc.ProfileImage)
		for _, media := range doc.SocialMedia {
			if _, err := r.AddSocial(u.ID, media.Network, media.URL, media.Icon); err != nil {
				return fmt.Errorf("social for user %d: %w", u.ID, err)
			}
		}
	}

	for _, doc := range posts {
		post, err := r.AddPost(doc.UserID, doc.Title, doc.Content)
		if err != nil {
			return fmt.Errorf("post %q: unknown user %d: %w", doc.Title, doc.UserID, err)
		}

		for _, like := range doc.Likes {
			_, err := r.AddPostLike(doc.UserID, post.PostID, like.UserID)
			if err != nil && !errors.Is(err, repo.ErrDuplicateLike) {
				return fmt.Errorf("like on post %d: unknown user %d: %w", post.PostID, like.UserID, err)
			}
		}

		for _, cd := range doc.Comments {
			comment, err := r.AddComment(doc.UserID, post.PostID, cd.UserID, cd.Content)
			if err != nil {
				return fmt.Errorf("comment on post %d: unknown user %d: %w", post.PostID, cd.UserID, err)
			}
			for _, like := range cd.Likes {
				_, err := r.AddCommentLike(doc.UserID, post.PostID, comment.CommentID, like.UserID)
				if err != nil && !errors.Is(err, repo.ErrDuplicateLike) {
					return fmt.Errorf("like on comment %d: unknown user %d: %w", comment.CommentID, like.UserID, err)
				}
			}
		}
	}
	return nil
}

// LoadBlogFromFiles reads the two documents and replays them into r.
func LoadBlogFromFiles(r repo.BlogRepo, usersPath, postsPath string) error {
	var users []UserDoc
	if err := readJSON(usersPath, &users); err != nil {
		return fmt.Errorf("users snapshot: %w", err)
	}
	var posts []PostDoc
	if err := readJSON(postsPath, &posts); err != nil {
		return fmt.Errorf("posts snapshot: %w", err)
	}
	return LoadBlog(r, users, posts)
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
