package repo

import (
	"sync"
	"time"

	dom "github.com/charliemarlow/APIProjects/internal/domain"
	"github.com/charliemarlow/APIProjects/internal/dto"
)

// BlogRepo is the root registry of the blog graph. Every operation returns
// projections, never live entities, so callers cannot touch the graph
// outside the registry's lock.
type BlogRepo interface {
	Users() []dto.UserResponse
	AddUser(name, about, profileImage string) dto.UserResponse
	FindUser(id int64) (dto.UserResponse, error)
	UpdateUser(id int64, name, about, profileImage *string) (dto.UserResponse, error)
	DeleteUser(id int64) error

	Socials(userID int64) ([]dto.SocialMediaResponse, error)
	AddSocial(userID int64, network, url, icon string) (dto.SocialMediaResponse, error)
	FindSocial(userID, socialID int64) (dto.SocialMediaResponse, error)
	UpdateSocial(userID, socialID int64, network, url, icon *string) (dto.SocialMediaResponse, error)
	DeleteSocial(userID, socialID int64) error

	Posts(userID int64) ([]dto.PostResponse, error)
	AddPost(userID int64, title, content string) (dto.PostResponse, error)
	FindPost(userID, postID int64) (dto.PostResponse, error)
	UpdatePost(userID, postID int64, title, content *string) (dto.PostResponse, error)
	DeletePost(userID, postID int64) error

	Comments(userID, postID int64) ([]dto.CommentResponse, error)
	AddComment(userID, postID, authorID int64, content string) (dto.CommentResponse, error)
	FindComment(userID, postID, commentID int64) (dto.CommentResponse, error)
	UpdateComment(userID, postID, commentID int64, content *string) (dto.CommentResponse, error)
	DeleteComment(userID, postID, commentID int64) error

	PostLikes(userID, postID int64) ([]dto.LikeResponse, error)
	AddPostLike(userID, postID, likerID int64) (dto.LikeResponse, error)
	FindPostLike(userID, postID, likerID int64) (dto.LikeResponse, error)
	DeletePostLike(userID, postID, likerID int64) error

	CommentLikes(userID, postID, commentID int64) ([]dto.LikeResponse, error)
	AddCommentLike(userID, postID, commentID, likerID int64) (dto.LikeResponse, error)
	FindCommentLike(userID, postID, commentID, likerID int64) (dto.LikeResponse, error)
	DeleteCommentLike(userID, postID, commentID, likerID int64) error
}

// MemBlogRepo keeps the whole graph in memory. A single mutex guards every
// operation: the scan-then-mutate sequences below are not atomic on their
// own, and gin serves requests concurrently.
type MemBlogRepo struct {
	mu         sync.Mutex
	users      []*dom.User
	nextUserID int64

	now func() time.Time
}

// NewMemBlogRepo returns an empty registry.
func NewMemBlogRepo() *MemBlogRepo {
	return &MemBlogRepo{now: func() time.Time { return time.Now().UTC() }}
}

// Users returns the full projection of every user in insertion order.
func (r *MemBlogRepo) Users() []dto.UserResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dto.UserResponse, len(r.users))
	for i, u := range r.users {
		out[i] = dto.NewUserResponse(u)
	}
	return out
}

// AddUser creates a user with the next global id. The counter moves only
// on creation, so ids stay monotonic and are never reused after deletes.
func (r *MemBlogRepo) AddUser(name, about, profileImage string) dto.UserResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := dom.NewUser(r.nextUserID, name, about, profileImage)
	r.nextUserID++
	r.users = append(r.users, u)
	return dto.NewUserResponse(u)
}

// FindUser returns the full projection of the user with the given id.
func (r *MemBlogRepo) FindUser(id int64) (dto.UserResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(id)
	if u == nil {
		return dto.UserResponse{}, ErrNotFound
	}
	return dto.NewUserResponse(u), nil
}

// UpdateUser applies the non-nil fields. A present empty string is applied
// as-is; nil means leave unchanged.
func (r *MemBlogRepo) UpdateUser(id int64, name, about, profileImage *string) (dto.UserResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(id)
	if u == nil {
		return dto.UserResponse{}, ErrNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if about != nil {
		u.About = *about
	}
	if profileImage != nil {
		u.ProfileImage = *profileImage
	}
	return dto.NewUserResponse(u), nil
}

// DeleteUser removes the user and its owned posts and socials from
// traversal. Likes and comments this user placed elsewhere keep their
// author reference and continue to project it.
func (r *MemBlogRepo) DeleteUser(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Socials returns the projections of a user's social media entries.
func (r *MemBlogRepo) Socials(userID int64) ([]dto.SocialMediaResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return nil, ErrNotFound
	}
	out := make([]dto.SocialMediaResponse, len(u.Socials))
	for i, s := range u.Socials {
		out[i] = dto.NewSocialMediaResponse(s)
	}
	return out, nil
}

// AddSocial appends a social media entry to the user.
func (r *MemBlogRepo) AddSocial(userID int64, network, url, icon string) (dto.SocialMediaResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return dto.SocialMediaResponse{}, ErrNotFound
	}
	return dto.NewSocialMediaResponse(u.AddSocial(network, url, icon)), nil
}

// FindSocial returns one social media entry of the user.
func (r *MemBlogRepo) FindSocial(userID, socialID int64) (dto.SocialMediaResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return dto.SocialMediaResponse{}, ErrNotFound
	}
	s := u.FindSocial(socialID)
	if s == nil {
		return dto.SocialMediaResponse{}, ErrNotFound
	}
	return dto.NewSocialMediaResponse(s), nil
}

// UpdateSocial applies the non-nil fields to one entry.
func (r *MemBlogRepo) UpdateSocial(userID, socialID int64, network, url, icon *string) (dto.SocialMediaResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return dto.SocialMediaResponse{}, ErrNotFound
	}
	s := u.FindSocial(socialID)
	if s == nil {
		return dto.SocialMediaResponse{}, ErrNotFound
	}
	if network != nil {
		s.Network = *network
	}
	if url != nil {
		s.URL = *url
	}
	if icon != nil {
		s.Icon = *icon
	}
	return dto.NewSocialMediaResponse(s), nil
}

// DeleteSocial removes one entry from the user.
func (r *MemBlogRepo) DeleteSocial(userID, socialID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return ErrNotFound
	}
	if !u.DeleteSocial(socialID) {
		return ErrNotFound
	}
	return nil
}

// Posts returns the projections of a user's posts in insertion order.
func (r *MemBlogRepo) Posts(userID int64) ([]dto.PostResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return nil, ErrNotFound
	}
	out := make([]dto.PostResponse, len(u.Posts))
	for i, p := range u.Posts {
		out[i] = dto.NewPostResponse(p)
	}
	return out, nil
}

// AddPost appends a post authored by the user.
func (r *MemBlogRepo) AddPost(userID int64, title, content string) (dto.PostResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return dto.PostResponse{}, ErrNotFound
	}
	return dto.NewPostResponse(u.AddPost(title, content, r.now())), nil
}

// FindPost resolves the user then the post within it.
func (r *MemBlogRepo) FindPost(userID, postID int64) (dto.PostResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return dto.PostResponse{}, ErrNotFound
	}
	return dto.NewPostResponse(p), nil
}

// UpdatePost applies the non-nil fields. Author and datePosted stay put.
func (r *MemBlogRepo) UpdatePost(userID, postID int64, title, content *string) (dto.PostResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return dto.PostResponse{}, ErrNotFound
	}
	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = *content
	}
	return dto.NewPostResponse(p), nil
}

// DeletePost removes the post and its owned comments and likes.
func (r *MemBlogRepo) DeletePost(userID, postID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.findUser(userID)
	if u == nil {
		return ErrNotFound
	}
	if !u.DeletePost(postID) {
		return ErrNotFound
	}
	return nil
}

// Comments returns the projections of a post's comments.
func (r *MemBlogRepo) Comments(userID, postID int64) ([]dto.CommentResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return nil, ErrNotFound
	}
	out := make([]dto.CommentResponse, len(p.Comments))
	for i, c := range p.Comments {
		out[i] = dto.NewCommentResponse(c)
	}
	return out, nil
}

// AddComment appends a comment authored by authorID to the post.
func (r *MemBlogRepo) AddComment(userID, postID, authorID int64, content string) (dto.CommentResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return dto.CommentResponse{}, ErrNotFound
	}
	author := r.findUser(authorID)
	if author == nil {
		return dto.CommentResponse{}, ErrNotFound
	}
	return dto.NewCommentResponse(p.AddComment(author, content, r.now())), nil
}

// FindComment resolves user, then post, then comment.
func (r *MemBlogRepo) FindComment(userID, postID, commentID int64) (dto.CommentResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.findComment(userID, postID, commentID)
	if c == nil {
		return dto.CommentResponse{}, ErrNotFound
	}
	return dto.NewCommentResponse(c), nil
}

// UpdateComment applies a non-nil content. Author and datePosted stay put.
func (r *MemBlogRepo) UpdateComment(userID, postID, commentID int64, content *string) (dto.CommentResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.findComment(userID, postID, commentID)
	if c == nil {
		return dto.CommentResponse{}, ErrNotFound
	}
	if content != nil {
		c.Content = *content
	}
	return dto.NewCommentResponse(c), nil
}

// DeleteComment removes the comment and its owned likes.
func (r *MemBlogRepo) DeleteComment(userID, postID, commentID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return ErrNotFound
	}
	if !p.DeleteComment(commentID) {
		return ErrNotFound
	}
	return nil
}

// PostLikes returns the projections of a post's likes.
func (r *MemBlogRepo) PostLikes(userID, postID int64) ([]dto.LikeResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return nil, ErrNotFound
	}
	return likeResponses(p), nil
}

// AddPostLike records a like by likerID on the post.
func (r *MemBlogRepo) AddPostLike(userID, postID, likerID int64) (dto.LikeResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return dto.LikeResponse{}, ErrNotFound
	}
	return r.addLike(p, likerID)
}

// FindPostLike returns likerID's like on the post.
func (r *MemBlogRepo) FindPostLike(userID, postID, likerID int64) (dto.LikeResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return dto.LikeResponse{}, ErrNotFound
	}
	return findLike(p, likerID)
}

// DeletePostLike removes likerID's like from the post.
func (r *MemBlogRepo) DeletePostLike(userID, postID, likerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findPost(userID, postID)
	if p == nil {
		return ErrNotFound
	}
	return deleteLike(p, likerID)
}

// CommentLikes returns the projections of a comment's likes.
func (r *MemBlogRepo) CommentLikes(userID, postID, commentID int64) ([]dto.LikeResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.findComment(userID, postID, commentID)
	if c == nil {
		return nil, ErrNotFound
	}
	return likeResponses(c), nil
}

// AddCommentLike records a like by likerID on the comment.
func (r *MemBlogRepo) AddCommentLike(userID, postID, commentID, likerID int64) (dto.LikeResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.findComment(userID, postID, commentID)
	if c == nil {
		return dto.LikeResponse{}, ErrNotFound
	}
	return r.addLike(c, likerID)
}

// FindCommentLike returns likerID's like on the comment.
func (r *MemBlogRepo) FindCommentLike(userID, postID, commentID, likerID int64) (dto.LikeResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.findComment(userID, postID, commentID)
	if c == nil {
		return dto.LikeResponse{}, ErrNotFound
	}
	return findLike(c, likerID)
}

// DeleteCommentLike removes likerID's like from the comment.
func (r *MemBlogRepo) DeleteCommentLike(userID, postID, commentID, likerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.findComment(userID, postID, commentID)
	if c == nil {
		return ErrNotFound
	}
	return deleteLike(c, likerID)
}

// Callers hold r.mu for everything below.

func (r *MemBlogRepo) findUser(id int64) *dom.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (r *MemBlogRepo) findPost(userID, postID int64) *dom.Post {
	u := r.findUser(userID)
	if u == nil {
		return nil
	}
	return u.FindPost(postID)
}

func (r *MemBlogRepo) findComment(userID, postID, commentID int64) *dom.Comment {
	p := r.findPost(userID, postID)
	if p == nil {
		return nil
	}
	return p.FindComment(commentID)
}

// addLike resolves the liking user and records the like on any likeable
// target, rejecting duplicates per (target, user) pair.
func (r *MemBlogRepo) addLike(target dom.Likeable, likerID int64) (dto.LikeResponse, error) {
	liker := r.findUser(likerID)
	if liker == nil {
		return dto.LikeResponse{}, ErrNotFound
	}
	like := target.AddLike(liker, r.now())
	if like == nil {
		return dto.LikeResponse{}, ErrDuplicateLike
	}
	return dto.NewLikeResponse(like), nil
}

func findLike(target dom.Likeable, likerID int64) (dto.LikeResponse, error) {
	like := target.FindLike(likerID)
	if like == nil {
		return dto.LikeResponse{}, ErrNotFound
	}
	return dto.NewLikeResponse(like), nil
}

func deleteLike(target dom.Likeable, likerID int64) error {
	if !target.DeleteLike(likerID) {
		return ErrNotFound
	}
	return nil
}

func likeResponses(target dom.Likeable) []dto.LikeResponse {
	likes := target.Likes()
	out := make([]dto.LikeResponse, len(likes))
	for i, like := range likes {
		out[i] = dto.NewLikeResponse(like)
	}
	return out
}
