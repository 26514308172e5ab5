package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frebud/internal/models/domain_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

func newTestPostService() PostServiceInterface {
	posts := []domain_models.Post{
		{ID: "po1", Caption: "Sunset in Bali", Likes: 120},
		{ID: "po2", Caption: "Kyoto mornings", Likes: 89},
	}
	stories := []domain_models.Story{
		{ID: "s1"},
		{ID: "s2"},
	}
	repo := repositories.NewPostRepository(posts, stories)
	return NewPostService(repo, testActingUser, NewNoDelayer())
}

func TestFetchPosts(t *testing.T) {
	svc := newTestPostService()

	posts, err := svc.FetchPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestFetchPostByID(t *testing.T) {
	svc := newTestPostService()

	post, err := svc.FetchPostByID("po2", context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kyoto mornings", post.Caption)

	_, err = svc.FetchPostByID("po9", context.Background())
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}

func TestLikePost_Ack(t *testing.T) {
	svc := newTestPostService()

	ack, err := svc.LikePost("po1", context.Background())
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, "po1", ack.PostID)
}

func TestAddComment_AuthoredByActingUser(t *testing.T) {
	svc := newTestPostService()

	comment, err := svc.AddComment("po1", "Stunning view!", context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "demo_user", comment.User.Username)
	assert.Equal(t, "Stunning view!", comment.Text)
	assert.Zero(t, comment.Likes)
}

func TestStories(t *testing.T) {
	svc := newTestPostService()

	stories, err := svc.FetchStories(context.Background())
	require.NoError(t, err)
	assert.Len(t, stories, 2)

	ack, err := svc.MarkStoryViewed("s1", context.Background())
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, "s1", ack.StoryID)

	_, err = svc.MarkStoryViewed("s99", context.Background())
	assert.ErrorIs(t, err, utils.ErrStoryNotFound)
}
