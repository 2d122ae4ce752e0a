package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSocialCounter(t *testing.T) {
	u := NewUser(0, "ada", "writer", "img.png")

	first := u.AddSocial("Twitter", "https://twitter.com/ada", "tw.svg")
	second := u.AddSocial("GitHub", "https://github.com/ada", "gh.svg")
	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)

	require.True(t, u.DeleteSocial(0))
	assert.Nil(t, u.FindSocial(0))

	// Counter does not rewind after a delete.
	third := u.AddSocial("Mastodon", "https://hachyderm.io/@ada", "ma.svg")
	assert.Equal(t, int64(2), third.ID)
	assert.Len(t, u.Socials, 2)
}

func TestUserPostCounterIndependentPerUser(t *testing.T) {
	now := time.Now()
	a := NewUser(0, "a", "about", "img")
	b := NewUser(1, "b", "about", "img")

	p0 := a.AddPost("first", "body", now)
	p1 := a.AddPost("second", "body", now)
	q0 := b.AddPost("other", "body", now)

	assert.Equal(t, int64(0), p0.ID)
	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(0), q0.ID)
	assert.Same(t, a, p0.Author)
	assert.Same(t, b, q0.Author)
}

func TestPostCommentCounter(t *testing.T) {
	now := time.Now()
	author := NewUser(0, "author", "about", "img")
	commenter := NewUser(1, "commenter", "about", "img")
	p := author.AddPost("title", "body", now)

	c0 := p.AddComment(commenter, "nice", now)
	c1 := p.AddComment(author, "thanks", now)
	assert.Equal(t, int64(0), c0.ID)
	assert.Equal(t, int64(1), c1.ID)
	assert.Equal(t, 2, p.NumComments())

	require.True(t, p.DeleteComment(0))
	c2 := p.AddComment(commenter, "again", now)
	assert.Equal(t, int64(2), c2.ID)
}

func TestLikeListRejectsDuplicates(t *testing.T) {
	now := time.Now()
	author := NewUser(0, "author", "about", "img")
	fan := NewUser(1, "fan", "about", "img")
	p := author.AddPost("title", "body", now)

	like := p.AddLike(fan, now)
	require.NotNil(t, like)
	assert.Equal(t, 1, p.NumLikes())

	assert.Nil(t, p.AddLike(fan, now))
	assert.Equal(t, 1, p.NumLikes())

	// A different user still gets through.
	require.NotNil(t, p.AddLike(author, now))
	assert.Equal(t, 2, p.NumLikes())
}

func TestLikeListDeleteThenRelike(t *testing.T) {
	now := time.Now()
	author := NewUser(0, "author", "about", "img")
	fan := NewUser(1, "fan", "about", "img")
	p := author.AddPost("title", "body", now)

	require.NotNil(t, p.AddLike(fan, now))
	require.True(t, p.DeleteLike(fan.ID))
	assert.False(t, p.DeleteLike(fan.ID))
	assert.Nil(t, p.FindLike(fan.ID))

	require.NotNil(t, p.AddLike(fan, now))
	assert.Equal(t, 1, p.NumLikes())
}

func TestCommentLikesAreIndependentOfPostLikes(t *testing.T) {
	now := time.Now()
	author := NewUser(0, "author", "about", "img")
	fan := NewUser(1, "fan", "about", "img")
	p := author.AddPost("title", "body", now)
	c := p.AddComment(fan, "hello", now)

	require.NotNil(t, p.AddLike(fan, now))
	require.NotNil(t, c.AddLike(fan, now))

	assert.Equal(t, 1, p.NumLikes())
	assert.Equal(t, 1, c.NumLikes())

	require.True(t, c.DeleteLike(fan.ID))
	assert.Equal(t, 1, p.NumLikes())
	assert.Equal(t, 0, c.NumLikes())
}
