package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliemarlow/APIProjects/internal/repo"
)

func TestLoadBlogAssignsIDsInFileOrder(t *testing.T) {
	r := repo.NewMemBlogRepo()
	users := []UserDoc{
		{Name: "Ada", About: "writes", ProfileImage: "ada.png", SocialMedia: []SocialDoc{
			{Network: "Twitter", URL: "https://t.test/ada", Icon: "tw.svg"},
			{Network: "GitHub", URL: "https://g.test/ada", Icon: "gh.svg"},
		}},
		{Name: "Marcus", About: "reads", ProfileImage: "marcus.png"},
	}
	posts := []PostDoc{
		{UserID: 0, Title: "First", Content: "Body",
			Likes: []LikeDoc{{UserID: 1}},
			Comments: []CommentDoc{
				{UserID: 1, Content: "nice", Likes: []LikeDoc{{UserID: 0}}},
			}},
		{UserID: 1, Title: "Second", Content: "Body"},
	}

	require.NoError(t, LoadBlog(r, users, posts))

	all := r.Users()
	require.Len(t, all, 2)
	assert.Equal(t, int64(0), all[0].ID)
	assert.Equal(t, "Ada", all[0].Name)
	assert.Len(t, all[0].SocialMedia, 2)
	assert.Equal(t, int64(1), all[0].SocialMedia[1].ID)

	post, err := r.FindPost(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, post.NumLikes)
	assert.Equal(t, 1, post.NumComments)

	comment, err := r.FindComment(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Marcus", comment.User.Name)
	assert.Equal(t, 1, comment.NumLikes)

	other, err := r.FindPost(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "Second", other.Title)
}

func TestLoadBlogUnknownPostAuthor(t *testing.T) {
	r := repo.NewMemBlogRepo()
	users := []UserDoc{{Name: "Ada", About: "writes", ProfileImage: "ada.png"}}
	posts := []PostDoc{{UserID: 7, Title: "Orphan", Content: "Body"}}

	err := LoadBlog(r, users, posts)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestLoadBlogUnknownLiker(t *testing.T) {
	r := repo.NewMemBlogRepo()
	users := []UserDoc{{Name: "Ada", About: "writes", ProfileImage: "ada.png"}}
	posts := []PostDoc{{UserID: 0, Title: "First", Content: "Body",
		Likes: []LikeDoc{{UserID: 9}}}}

	assert.ErrorIs(t, LoadBlog(r, users, posts), repo.ErrNotFound)
}

func TestLoadBlogSkipsDuplicateLikes(t *testing.T) {
	r := repo.NewMemBlogRepo()
	users := []UserDoc{{Name: "Ada", About: "writes", ProfileImage: "ada.png"}}
	posts := []PostDoc{{UserID: 0, Title: "First", Content: "Body",
		Likes: []LikeDoc{{UserID: 0}, {UserID: 0}}}}

	require.NoError(t, LoadBlog(r, users, posts))
	post, err := r.FindPost(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, post.NumLikes)
}
