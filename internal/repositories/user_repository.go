package repositories

import (
	"slices"

	"frebud/internal/models/domain_models"
)

type UserRepository interface {
	List() []domain_models.User
	GetByUsername(username string) *domain_models.User
	// DemoUser is the fixture account every simulated session starts
	// from. The first fixture entry plays that role.
	DemoUser() domain_models.User
}

type userRepository struct {
	users []domain_models.User
}

func NewUserRepository(users []domain_models.User) UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) List() []domain_models.User {
	return slices.Clone(r.users)
}

func (r *userRepository) GetByUsername(username string) *domain_models.User {
	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user
		}
	}
	return nil
}

func (r *userRepository) DemoUser() domain_models.User {
	if len(r.users) == 0 {
		return domain_models.User{}
	}
	demo := r.users[0]
	demo.Interests = slices.Clone(demo.Interests)
	demo.Languages = slices.Clone(demo.Languages)
	return demo
}
