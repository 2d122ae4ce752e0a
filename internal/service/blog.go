// Package service enforces payload rules and translates registry results
// into the sentinel errors the handlers map onto status codes.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charliemarlow/APIProjects/internal/dto"
	"github.com/charliemarlow/APIProjects/internal/repo"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateLike = errors.New("already liked")
	ErrEmptyField    = errors.New("required field is empty")
)

// BlogService owns validation for the blog API. The registry assumes its
// callers validated, so every create path runs through here first.
type BlogService struct {
	repo repo.BlogRepo
}

// NewBlogService returns a new BlogService.
func NewBlogService(r repo.BlogRepo) *BlogService {
	return &BlogService{repo: r}
}

// Users returns every user's full projection.
func (s *BlogService) Users() []dto.UserResponse {
	return s.repo.Users()
}

// AddUser verifies the payload, creates the user, then seeds any social
// media entries carried in the same request.
func (s *BlogService) AddUser(req dto.CreateUserRequest) (dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	about := strings.TrimSpace(req.About)
	image := strings.TrimSpace(req.ProfileImage)
	if name == "" || about == "" || image == "" {
		return dto.UserResponse{}, fmt.Errorf("name, about and profileImage: %w", ErrEmptyField)
	}
	for _, media := range req.SocialMedia {
		if strings.TrimSpace(media.Network) == "" ||
			strings.TrimSpace(media.URL) == "" ||
			strings.TrimSpace(media.Icon) == "" {
			return dto.UserResponse{}, fmt.Errorf("socialMedia entry: %w", ErrEmptyField)
		}
	}

	u := s.repo.AddUser(name, about, image)
	for _, media := range req.SocialMedia {
		if _, err := s.repo.AddSocial(u.ID, strings.TrimSpace(media.Network),
			strings.TrimSpace(media.URL), strings.TrimSpace(media.Icon)); err != nil {
			return dto.UserResponse{}, mapErr(err)
		}
	}
	return s.repo.FindUser(u.ID)
}

// FindUser returns one user's full projection.
func (s *BlogService) FindUser(id int64) (dto.UserResponse, error) {
	u, err := s.repo.FindUser(id)
	if err != nil {
		return dto.UserResponse{}, mapErr(err)
	}
	return u, nil
}

// UpdateUser applies the present fields. No field is mandatory on update.
func (s *BlogService) UpdateUser(id int64, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	u, err := s.repo.UpdateUser(id, trimPtr(req.Name), trimPtr(req.About), trimPtr(req.ProfileImage))
	if err != nil {
		return dto.UserResponse{}, mapErr(err)
	}
	return u, nil
}

// DeleteUser removes the user.
func (s *BlogService) DeleteUser(id int64) error {
	return mapErr(s.repo.DeleteUser(id))
}

// Socials lists a user's social media entries.
func (s *BlogService) Socials(userID int64) ([]dto.SocialMediaResponse, error) {
	out, err := s.repo.Socials(userID)
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// AddSocial verifies the payload and appends the entry.
func (s *BlogService) AddSocial(userID int64, req dto.CreateSocialRequest) (dto.SocialMediaResponse, error) {
	network := strings.TrimSpace(req.Network)
	url := strings.TrimSpace(req.URL)
	icon := strings.TrimSpace(req.Icon)
	if network == "" || url == "" || icon == "" {
		return dto.SocialMediaResponse{}, fmt.Errorf("network, url and icon: %w", ErrEmptyField)
	}
	out, err := s.repo.AddSocial(userID, network, url, icon)
	if err != nil {
		return dto.SocialMediaResponse{}, mapErr(err)
	}
	return out, nil
}

// FindSocial returns one entry.
func (s *BlogService) FindSocial(userID, socialID int64) (dto.SocialMediaResponse, error) {
	out, err := s.repo.FindSocial(userID, socialID)
	if err != nil {
		return dto.SocialMediaResponse{}, mapErr(err)
	}
	return out, nil
}

// UpdateSocial applies the present fields.
func (s *BlogService) UpdateSocial(userID, socialID int64, req dto.UpdateSocialRequest) (dto.SocialMediaResponse, error) {
	out, err := s.repo.UpdateSocial(userID, socialID, trimPtr(req.Network), trimPtr(req.URL), trimPtr(req.Icon))
	if err != nil {
		return dto.SocialMediaResponse{}, mapErr(err)
	}
	return out, nil
}

// DeleteSocial removes one entry.
func (s *BlogService) DeleteSocial(userID, socialID int64) error {
	return mapErr(s.repo.DeleteSocial(userID, socialID))
}

// Posts lists a user's posts.
func (s *BlogService) Posts(userID int64) ([]dto.PostResponse, error) {
	out, err := s.repo.Posts(userID)
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// AddPost verifies title and content and appends the post.
func (s *BlogService) AddPost(userID int64, req dto.CreatePostRequest) (dto.PostResponse, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return dto.PostResponse{}, fmt.Errorf("title and content: %w", ErrEmptyField)
	}
	out, err := s.repo.AddPost(userID, title, content)
	if err != nil {
		return dto.PostResponse{}, mapErr(err)
	}
	return out, nil
}

// FindPost returns one post's projection.
func (s *BlogService) FindPost(userID, postID int64) (dto.PostResponse, error) {
	out, err := s.repo.FindPost(userID, postID)
	if err != nil {
		return dto.PostResponse{}, mapErr(err)
	}
	return out, nil
}

// UpdatePost applies the present fields.
func (s *BlogService) UpdatePost(userID, postID int64, req dto.UpdatePostRequest) (dto.PostResponse, error) {
	out, err := s.repo.UpdatePost(userID, postID, trimPtr(req.Title), trimPtr(req.Content))
	if err != nil {
		return dto.PostResponse{}, mapErr(err)
	}
	return out, nil
}

// DeletePost removes the post.
func (s *BlogService) DeletePost(userID, postID int64) error {
	return mapErr(s.repo.DeletePost(userID, postID))
}

// Comments lists a post's comments.
func (s *BlogService) Comments(userID, postID int64) ([]dto.CommentResponse, error) {
	out, err := s.repo.Comments(userID, postID)
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// AddComment verifies the payload and appends the comment.
func (s *BlogService) AddComment(userID, postID int64, req dto.CreateCommentRequest) (dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return dto.CommentResponse{}, fmt.Errorf("content: %w", ErrEmptyField)
	}
	out, err := s.repo.AddComment(userID, postID, *req.UserID, content)
	if err != nil {
		return dto.CommentResponse{}, mapErr(err)
	}
	return out, nil
}

// FindComment returns one comment's projection.
func (s *BlogService) FindComment(userID, postID, commentID int64) (dto.CommentResponse, error) {
	out, err := s.repo.FindComment(userID, postID, commentID)
	if err != nil {
		return dto.CommentResponse{}, mapErr(err)
	}
	return out, nil
}

// UpdateComment applies a present content.
func (s *BlogService) UpdateComment(userID, postID, commentID int64, req dto.UpdateCommentRequest) (dto.CommentResponse, error) {
	out, err := s.repo.UpdateComment(userID, postID, commentID, trimPtr(req.Content))
	if err != nil {
		return dto.CommentResponse{}, mapErr(err)
	}
	return out, nil
}

// DeleteComment removes the comment.
func (s *BlogService) DeleteComment(userID, postID, commentID int64) error {
	return mapErr(s.repo.DeleteComment(userID, postID, commentID))
}

// PostLikes lists a post's likes.
func (s *BlogService) PostLikes(userID, postID int64) ([]dto.LikeResponse, error) {
	out, err := s.repo.PostLikes(userID, postID)
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// AddPostLike records a like; liking twice fails with ErrDuplicateLike.
func (s *BlogService) AddPostLike(userID, postID, likerID int64) (dto.LikeResponse, error) {
	out, err := s.repo.AddPostLike(userID, postID, likerID)
	if err != nil {
		return dto.LikeResponse{}, mapErr(err)
	}
	return out, nil
}

// FindPostLike returns one like on the post.
func (s *BlogService) FindPostLike(userID, postID, likerID int64) (dto.LikeResponse, error) {
	out, err := s.repo.FindPostLike(userID, postID, likerID)
	if err != nil {
		return dto.LikeResponse{}, mapErr(err)
	}
	return out, nil
}

// DeletePostLike removes one like from the post.
func (s *BlogService) DeletePostLike(userID, postID, likerID int64) error {
	return mapErr(s.repo.DeletePostLike(userID, postID, likerID))
}

// CommentLikes lists a comment's likes.
func (s *BlogService) CommentLikes(userID, postID, commentID int64) ([]dto.LikeResponse, error) {
	out, err := s.repo.CommentLikes(userID, postID, commentID)
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// AddCommentLike records a like on a comment.
func (s *BlogService) AddCommentLike(userID, postID, commentID, likerID int64) (dto.LikeResponse, error) {
	out, err := s.repo.AddCommentLike(userID, postID, commentID, likerID)
	if err != nil {
		return dto.LikeResponse{}, mapErr(err)
	}
	return out, nil
}

// FindCommentLike returns one like on the comment.
func (s *BlogService) FindCommentLike(userID, postID, commentID, likerID int64) (dto.LikeResponse, error) {
	out, err := s.repo.FindCommentLike(userID, postID, commentID, likerID)
	if err != nil {
		return dto.LikeResponse{}, mapErr(err)
	}
	return out, nil
}

// DeleteCommentLike removes one like from the comment.
func (s *BlogService) DeleteCommentLike(userID, postID, commentID, likerID int64) error {
	return mapErr(s.repo.DeleteCommentLike(userID, postID, commentID, likerID))
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrDuplicateLike):
		return ErrDuplicateLike
	default:
		return err
	}
}

// trimPtr trims a present value and leaves nil alone, preserving the
// present-vs-absent distinction partial updates rely on.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
