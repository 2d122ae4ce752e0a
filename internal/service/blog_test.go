package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliemarlow/APIProjects/internal/dto"
	"github.com/charliemarlow/APIProjects/internal/repo"
)

func newBlogService() *BlogService {
	return NewBlogService(repo.NewMemBlogRepo())
}

func TestBlogServiceAddUserSeedsSocials(t *testing.T) {
	s := newBlogService()

	u, err := s.AddUser(dto.CreateUserRequest{
		Name:         "  Ada  ",
		About:        "writes",
		ProfileImage: "ada.png",
		SocialMedia: []dto.SocialMediaPayload{
			{Network: "Twitter", URL: "https://t.test/ada", Icon: "tw.svg"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	require.Len(t, u.SocialMedia, 1)
	assert.Equal(t, int64(0), u.SocialMedia[0].ID)
}

func TestBlogServiceAddUserRejectsBlankFields(t *testing.T) {
	s := newBlogService()

	_, err := s.AddUser(dto.CreateUserRequest{Name: "   ", About: "a", ProfileImage: "b"})
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = s.AddUser(dto.CreateUserRequest{
		Name: "Ada", About: "a", ProfileImage: "b",
		SocialMedia: []dto.SocialMediaPayload{{Network: "", URL: "u", Icon: "i"}},
	})
	assert.ErrorIs(t, err, ErrEmptyField)

	// Nothing was created on the invalid-social path.
	assert.Empty(t, s.Users())
}

func TestBlogServiceUpdateUserAllowsEmptyStrings(t *testing.T) {
	s := newBlogService()
	u, err := s.AddUser(dto.CreateUserRequest{Name: "Ada", About: "writes", ProfileImage: "ada.png"})
	require.NoError(t, err)

	empty := ""
	updated, err := s.UpdateUser(u.ID, dto.UpdateUserRequest{About: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "", updated.About)
}

func TestBlogServiceNotFoundMapping(t *testing.T) {
	s := newBlogService()

	_, err := s.FindUser(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindPost(0, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteSocial(0, 0), ErrNotFound)
	assert.ErrorIs(t, s.DeleteCommentLike(0, 0, 0, 0), ErrNotFound)
}

func TestBlogServicePostValidation(t *testing.T) {
	s := newBlogService()
	u, err := s.AddUser(dto.CreateUserRequest{Name: "Ada", About: "writes", ProfileImage: "ada.png"})
	require.NoError(t, err)

	_, err = s.AddPost(u.ID, dto.CreatePostRequest{Title: " ", Content: "body"})
	assert.ErrorIs(t, err, ErrEmptyField)

	post, err := s.AddPost(u.ID, dto.CreatePostRequest{Title: " Hello ", Content: " World "})
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
}

func TestBlogServiceDuplicateLikeMapping(t *testing.T) {
	s := newBlogService()
	u, err := s.AddUser(dto.CreateUserRequest{Name: "Ada", About: "writes", ProfileImage: "ada.png"})
	require.NoError(t, err)
	post, err := s.AddPost(u.ID, dto.CreatePostRequest{Title: "Hello", Content: "World"})
	require.NoError(t, err)

	_, err = s.AddPostLike(u.ID, post.PostID, u.ID)
	require.NoError(t, err)
	_, err = s.AddPostLike(u.ID, post.PostID, u.ID)
	assert.ErrorIs(t, err, ErrDuplicateLike)
}

func TestBlogServiceAddComment(t *testing.T) {
	s := newBlogService()
	author, err := s.AddUser(dto.CreateUserRequest{Name: "Ada", About: "writes", ProfileImage: "ada.png"})
	require.NoError(t, err)
	post, err := s.AddPost(author.ID, dto.CreatePostRequest{Title: "Hello", Content: "World"})
	require.NoError(t, err)

	_, err = s.AddComment(author.ID, post.PostID, dto.CreateCommentRequest{UserID: &author.ID, Content: "  "})
	assert.ErrorIs(t, err, ErrEmptyField)

	comment, err := s.AddComment(author.ID, post.PostID, dto.CreateCommentRequest{UserID: &author.ID, Content: " hi "})
	require.NoError(t, err)
	assert.Equal(t, "hi", comment.Content)
	assert.Equal(t, author.ID, comment.User.ID)
}
