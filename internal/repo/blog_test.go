package repo

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, r *MemBlogRepo) int64 {
	t.Helper()
	u := r.AddUser(randomdata.FullName(randomdata.RandomGender), randomdata.Paragraph(), "https://img.test/p.png")
	return u.ID
}

func TestBlogRepoUserIDsMonotonic(t *testing.T) {
	r := NewMemBlogRepo()

	first := r.AddUser("a", "about", "img")
	second := r.AddUser("b", "about", "img")
	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)

	require.NoError(t, r.DeleteUser(0))
	_, err := r.FindUser(0)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting never frees an id for reuse.
	third := r.AddUser("c", "about", "img")
	assert.Equal(t, int64(2), third.ID)
	assert.Len(t, r.Users(), 2)
}

func TestBlogRepoUpdateUserPartial(t *testing.T) {
	r := NewMemBlogRepo()
	id := seedUser(t, r)

	before, err := r.FindUser(id)
	require.NoError(t, err)

	// All-nil update is a no-op.
	after, err := r.UpdateUser(id, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// A present empty string is applied, not skipped.
	empty := ""
	after, err = r.UpdateUser(id, nil, &empty, nil)
	require.NoError(t, err)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, "", after.About)
	assert.Equal(t, before.ProfileImage, after.ProfileImage)

	name := "renamed"
	after, err = r.UpdateUser(id, &name, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed", after.Name)
	assert.Equal(t, "", after.About)
}

func TestBlogRepoSocialsScopedToUser(t *testing.T) {
	r := NewMemBlogRepo()
	a := seedUser(t, r)
	b := seedUser(t, r)

	s, err := r.AddSocial(a, "Twitter", "https://t.test/a", "tw.svg")
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.ID)

	// Same child id under another parent resolves independently.
	s2, err := r.AddSocial(b, "GitHub", "https://g.test/b", "gh.svg")
	require.NoError(t, err)
	assert.Equal(t, int64(0), s2.ID)

	got, err := r.FindSocial(a, 0)
	require.NoError(t, err)
	assert.Equal(t, "Twitter", got.Network)

	got, err = r.FindSocial(b, 0)
	require.NoError(t, err)
	assert.Equal(t, "GitHub", got.Network)

	_, err = r.FindSocial(a, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogRepoPostLifecycle(t *testing.T) {
	r := NewMemBlogRepo()
	author := seedUser(t, r)
	fan := seedUser(t, r)

	post, err := r.AddPost(author, "Title", "Body")
	require.NoError(t, err)
	assert.Equal(t, int64(0), post.PostID)
	assert.Equal(t, author, post.User.ID)
	assert.Equal(t, 0, post.NumLikes)
	assert.Equal(t, 0, post.NumComments)
	assert.Greater(t, post.DatePosted, float64(0))

	// Parent scoping: the post is invisible under the wrong user.
	_, err = r.FindPost(fan, post.PostID)
	assert.ErrorIs(t, err, ErrNotFound)

	title := "Edited"
	updated, err := r.UpdatePost(author, post.PostID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "Body", updated.Content)
	assert.Equal(t, post.DatePosted, updated.DatePosted)

	require.NoError(t, r.DeletePost(author, post.PostID))
	assert.ErrorIs(t, r.DeletePost(author, post.PostID), ErrNotFound)

	next, err := r.AddPost(author, "Another", "Body")
	require.NoError(t, err)
	assert.Equal(t, int64(1), next.PostID)
}

func TestBlogRepoCommentsAndCounts(t *testing.T) {
	r := NewMemBlogRepo()
	author := seedUser(t, r)
	commenter := seedUser(t, r)

	post, err := r.AddPost(author, "Title", "Body")
	require.NoError(t, err)

	comment, err := r.AddComment(author, post.PostID, commenter, "first!")
	require.NoError(t, err)
	assert.Equal(t, int64(0), comment.CommentID)
	assert.Equal(t, commenter, comment.User.ID)
	assert.Equal(t, 0, comment.NumLikes)

	// Unknown comment author is rejected before anything mutates.
	_, err = r.AddComment(author, post.PostID, 99, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	refreshed, err := r.FindPost(author, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.NumComments)

	content := "edited"
	updated, err := r.UpdateComment(author, post.PostID, comment.CommentID, &content)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, r.DeleteComment(author, post.PostID, comment.CommentID))
	refreshed, err = r.FindPost(author, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, 0, refreshed.NumComments)
}

func TestBlogRepoLikeFlow(t *testing.T) {
	r := NewMemBlogRepo()
	author := seedUser(t, r)
	fan := seedUser(t, r)

	post, err := r.AddPost(author, "Title", "Body")
	require.NoError(t, err)

	like, err := r.AddPostLike(author, post.PostID, fan)
	require.NoError(t, err)
	assert.Equal(t, fan, like.User.ID)

	// Second like by the same user bounces and the count stays put.
	_, err = r.AddPostLike(author, post.PostID, fan)
	assert.ErrorIs(t, err, ErrDuplicateLike)

	refreshed, err := r.FindPost(author, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.NumLikes)

	found, err := r.FindPostLike(author, post.PostID, fan)
	require.NoError(t, err)
	assert.Equal(t, like, found)

	likes, err := r.PostLikes(author, post.PostID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	require.NoError(t, r.DeletePostLike(author, post.PostID, fan))
	assert.ErrorIs(t, r.DeletePostLike(author, post.PostID, fan), ErrNotFound)

	// Relike after removal succeeds.
	_, err = r.AddPostLike(author, post.PostID, fan)
	require.NoError(t, err)
}

func TestBlogRepoCommentLikes(t *testing.T) {
	r := NewMemBlogRepo()
	author := seedUser(t, r)
	fan := seedUser(t, r)

	post, err := r.AddPost(author, "Title", "Body")
	require.NoError(t, err)
	comment, err := r.AddComment(author, post.PostID, fan, "hello")
	require.NoError(t, err)

	_, err = r.AddCommentLike(author, post.PostID, comment.CommentID, author)
	require.NoError(t, err)
	_, err = r.AddCommentLike(author, post.PostID, comment.CommentID, author)
	assert.ErrorIs(t, err, ErrDuplicateLike)

	likes, err := r.CommentLikes(author, post.PostID, comment.CommentID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	// Likes on the comment do not leak onto the post.
	postLikes, err := r.PostLikes(author, post.PostID)
	require.NoError(t, err)
	assert.Empty(t, postLikes)

	require.NoError(t, r.DeleteCommentLike(author, post.PostID, comment.CommentID, author))
	_, err = r.FindCommentLike(author, post.PostID, comment.CommentID, author)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogRepoDeleteUserKeepsForeignReferences(t *testing.T) {
	r := NewMemBlogRepo()
	author := seedUser(t, r)
	fan := r.AddUser("fan", "about", "img")

	post, err := r.AddPost(author, "Title", "Body")
	require.NoError(t, err)
	_, err = r.AddComment(author, post.PostID, fan.ID, "still here")
	require.NoError(t, err)
	_, err = r.AddPostLike(author, post.PostID, fan.ID)
	require.NoError(t, err)

	// Removing the fan from the registry leaves their comment and like
	// projecting the old author data.
	require.NoError(t, r.DeleteUser(fan.ID))

	comments, err := r.Comments(author, post.PostID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "fan", comments[0].User.Name)

	likes, err := r.PostLikes(author, post.PostID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, fan.ID, likes[0].User.ID)
}

// Walks the whole graph the way a client session would.
func TestBlogRepoEndToEnd(t *testing.T) {
	r := NewMemBlogRepo()

	ada := r.AddUser("Ada", "writes", "ada.png")
	marcus := r.AddUser("Marcus", "reads", "marcus.png")
	require.Equal(t, int64(0), ada.ID)
	require.Equal(t, int64(1), marcus.ID)

	post, err := r.AddPost(ada.ID, "Hello", "World")
	require.NoError(t, err)
	require.Equal(t, int64(0), post.PostID)

	_, err = r.AddPostLike(ada.ID, post.PostID, marcus.ID)
	require.NoError(t, err)
	_, err = r.AddPostLike(ada.ID, post.PostID, marcus.ID)
	require.ErrorIs(t, err, ErrDuplicateLike)

	comment, err := r.AddComment(ada.ID, post.PostID, marcus.ID, "great post")
	require.NoError(t, err)
	_, err = r.AddCommentLike(ada.ID, post.PostID, comment.CommentID, ada.ID)
	require.NoError(t, err)

	got, err := r.FindPost(ada.ID, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.NumLikes)
	assert.Equal(t, 1, got.NumComments)

	gotComment, err := r.FindComment(ada.ID, post.PostID, comment.CommentID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotComment.NumLikes)
	assert.Equal(t, "Marcus", gotComment.User.Name)
}
