package services

import (
	"context"
	"time"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/response_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

const (
	postListDelay    = 800 * time.Millisecond
	postLookupDelay  = 300 * time.Millisecond
	postLikeDelay    = 200 * time.Millisecond
	postCommentDelay = 400 * time.Millisecond
	storyListDelay   = 500 * time.Millisecond
	storyViewedDelay = 100 * time.Millisecond
)

type PostServiceInterface interface {
	FetchPosts(ctx context.Context) ([]domain_models.Post, error)
	FetchPostByID(id string, ctx context.Context) (domain_models.Post, error)
	LikePost(id string, ctx context.Context) (response_models.LikePostAck, error)
	AddComment(postID string, text string, ctx context.Context) (domain_models.Comment, error)
	FetchStories(ctx context.Context) ([]domain_models.Story, error)
	MarkStoryViewed(id string, ctx context.Context) (response_models.StoryViewedAck, error)
}

type PostService struct {
	postRepo    repositories.PostRepository
	currentUser CurrentUserFunc
	delayer     Delayer
}

func NewPostService(postRepo repositories.PostRepository, currentUser CurrentUserFunc, delayer Delayer) PostServiceInterface {
	return &PostService{
		postRepo:    postRepo,
		currentUser: currentUser,
		delayer:     delayer,
	}
}

func (s *PostService) FetchPosts(ctx context.Context) ([]domain_models.Post, error) {
	if err := s.delayer.Wait(ctx, postListDelay); err != nil {
		return nil, err
	}
	return s.postRepo.ListPosts(), nil
}

func (s *PostService) FetchPostByID(id string, ctx context.Context) (domain_models.Post, error) {
	if err := s.delayer.Wait(ctx, postLookupDelay); err != nil {
		return domain_models.Post{}, err
	}

	post := s.postRepo.GetPostByID(id)
	if post == nil {
		return domain_models.Post{}, utils.ErrPostNotFound
	}
	return *post, nil
}

// LikePost acknowledges without touching any counter; like totals are
// session-local optimistic state owned by the views.
func (s *PostService) LikePost(id string, ctx context.Context) (response_models.LikePostAck, error) {
	if err := s.delayer.Wait(ctx, postLikeDelay); err != nil {
		return response_models.LikePostAck{}, err
	}

	return response_models.LikePostAck{Success: true, PostID: id}, nil
}

func (s *PostService) AddComment(postID string, text string, ctx context.Context) (domain_models.Comment, error) {
	if err := s.delayer.Wait(ctx, postCommentDelay); err != nil {
		return domain_models.Comment{}, err
	}

	user := s.currentUser()
	return domain_models.Comment{
		ID: utils.NewTimeID(),
		User: domain_models.UserLite{
			Username: user.Username,
			Avatar:   user.Avatar,
		},
		Text:      text,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *PostService) FetchStories(ctx context.Context) ([]domain_models.Story, error) {
	if err := s.delayer.Wait(ctx, storyListDelay); err != nil {
		return nil, err
	}
	return s.postRepo.ListStories(), nil
}

func (s *PostService) MarkStoryViewed(id string, ctx context.Context) (response_models.StoryViewedAck, error) {
	if err := s.delayer.Wait(ctx, storyViewedDelay); err != nil {
		return response_models.StoryViewedAck{}, err
	}

	if s.postRepo.GetStoryByID(id) == nil {
		return response_models.StoryViewedAck{}, utils.ErrStoryNotFound
	}
	return response_models.StoryViewedAck{Success: true, StoryID: id}, nil
}
