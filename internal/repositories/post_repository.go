package repositories

import (
	"slices"

	"frebud/internal/models/domain_models"
)

type PostRepository interface {
	ListPosts() []domain_models.Post
	GetPostByID(id string) *domain_models.Post
	ListStories() []domain_models.Story
	GetStoryByID(id string) *domain_models.Story
}

type postRepository struct {
	posts   []domain_models.Post
	stories []domain_models.Story
}

func NewPostRepository(posts []domain_models.Post, stories []domain_models.Story) PostRepository {
	return &postRepository{posts: posts, stories: stories}
}

func (r *postRepository) ListPosts() []domain_models.Post {
	return slices.Clone(r.posts)
}

func (r *postRepository) GetPostByID(id string) *domain_models.Post {
	for _, p := range r.posts {
		if p.ID == id {
			post := p
			return &post
		}
	}
	return nil
}

func (r *postRepository) ListStories() []domain_models.Story {
	return slices.Clone(r.stories)
}

func (r *postRepository) GetStoryByID(id string) *domain_models.Story {
	for _, s := range r.stories {
		if s.ID == id {
			story := s
			return &story
		}
	}
	return nil
}
