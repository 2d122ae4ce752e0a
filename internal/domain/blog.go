package domain

import "time"

// User is the root entity of the blog graph. It owns its social media
// entries and its posts; both collections carry their own id counters.
// Not safe for concurrent use; the repo layer serializes access.
type User struct {
	ID           int64
	Name         string
	About        string
	ProfileImage string
	Socials      []*SocialMedia
	Posts        []*Post

	nextSocialID int64
	nextPostID   int64
}

// SocialMedia is a flat child record of a User.
type SocialMedia struct {
	ID      int64
	Network string
	URL     string
	Icon    string
}

// Post is owned by its author. Comments and likes are owned collections;
// Author points back at the owning user and is set once at creation.
type Post struct {
	ID         int64
	Title      string
	Content    string
	Author     *User
	DatePosted time.Time
	Comments   []*Comment
	LikeList

	nextCommentID int64
}

// Comment belongs to exactly one post. Author references the commenting
// user, which may not be the post's owner.
type Comment struct {
	ID         int64
	Content    string
	Author     *User
	DatePosted time.Time
	LikeList
}

// Like has no id of its own; it is keyed by the liking user's id within
// its owning post or comment.
type Like struct {
	User       *User
	DatePosted time.Time
}

// Likeable is the shared capability of posts and comments: a collection
// of likes holding at most one entry per user.
type Likeable interface {
	AddLike(u *User, at time.Time) *Like
	FindLike(userID int64) *Like
	DeleteLike(userID int64) bool
	Likes() []*Like
}

// LikeList implements Likeable. Embedded by Post and Comment.
type LikeList struct {
	likes []*Like
}

// AddLike appends a like for u, or returns nil if u already liked this
// entity. The duplicate check runs before anything is allocated.
func (l *LikeList) AddLike(u *User, at time.Time) *Like {
	if l.FindLike(u.ID) != nil {
		return nil
	}
	like := &Like{User: u, DatePosted: at}
	l.likes = append(l.likes, like)
	return like
}

// FindLike returns the like placed by userID, or nil.
func (l *LikeList) FindLike(userID int64) *Like {
	for _, like := range l.likes {
		if like.User.ID == userID {
			return like
		}
	}
	return nil
}

// DeleteLike removes the like placed by userID. Returns false if absent.
func (l *LikeList) DeleteLike(userID int64) bool {
	for i, like := range l.likes {
		if like.User.ID == userID {
			l.likes = append(l.likes[:i], l.likes[i+1:]...)
			return true
		}
	}
	return false
}

// Likes returns the ordered like collection.
func (l *LikeList) Likes() []*Like {
	return l.likes
}

// NumLikes returns the like count.
func (l *LikeList) NumLikes() int {
	return len(l.likes)
}

// NewUser constructs a root user. Ids are handed out by the repo counter.
func NewUser(id int64, name, about, profileImage string) *User {
	return &User{
		ID:           id,
		Name:         name,
		About:        about,
		ProfileImage: profileImage,
	}
}

// AddSocial appends a social media entry, allocating the next per-user id.
func (u *User) AddSocial(network, url, icon string) *SocialMedia {
	s := &SocialMedia{
		ID:      u.nextSocialID,
		Network: network,
		URL:     url,
		Icon:    icon,
	}
	u.nextSocialID++
	u.Socials = append(u.Socials, s)
	return s
}

// FindSocial returns the social media entry with the given id, or nil.
func (u *User) FindSocial(id int64) *SocialMedia {
	for _, s := range u.Socials {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// DeleteSocial removes the entry with the given id. The id is never reused.
func (u *User) DeleteSocial(id int64) bool {
	for i, s := range u.Socials {
		if s.ID == id {
			u.Socials = append(u.Socials[:i], u.Socials[i+1:]...)
			return true
		}
	}
	return false
}

// AddPost appends a post authored by u, allocating the next per-user post id.
func (u *User) AddPost(title, content string, at time.Time) *Post {
	p := &Post{
		ID:         u.nextPostID,
		Title:      title,
		Content:    content,
		Author:     u,
		DatePosted: at,
	}
	u.nextPostID++
	u.Posts = append(u.Posts, p)
	return p
}

// FindPost returns the post with the given id, or nil.
func (u *User) FindPost(id int64) *Post {
	for _, p := range u.Posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// DeletePost removes the post with the given id. Returns false if absent.
func (u *User) DeletePost(id int64) bool {
	for i, p := range u.Posts {
		if p.ID == id {
			u.Posts = append(u.Posts[:i], u.Posts[i+1:]...)
			return true
		}
	}
	return false
}

// AddComment appends a comment by author, allocating the next per-post id.
func (p *Post) AddComment(author *User, content string, at time.Time) *Comment {
	c := &Comment{
		ID:         p.nextCommentID,
		Content:    content,
		Author:     author,
		DatePosted: at,
	}
	p.nextCommentID++
	p.Comments = append(p.Comments, c)
	return c
}

// FindComment returns the comment with the given id, or nil.
func (p *Post) FindComment(id int64) *Comment {
	for _, c := range p.Comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// DeleteComment removes the comment with the given id. Returns false if absent.
func (p *Post) DeleteComment(id int64) bool {
	for i, c := range p.Comments {
		if c.ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}

// NumComments returns the comment count.
func (p *Post) NumComments() int {
	return len(p.Comments)
}
