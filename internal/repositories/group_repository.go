package repositories

import (
	"slices"

	"frebud/internal/models/domain_models"
)

type GroupRepository interface {
	List() []domain_models.Group
	GetByID(id string) *domain_models.Group
}

type groupRepository struct {
	groups []domain_models.Group
}

func NewGroupRepository(groups []domain_models.Group) GroupRepository {
	return &groupRepository{groups: groups}
}

// List returns deep copies: rosters and polls are mutated freely by the
// travel store after hydration and must not write through to fixtures.
func (r *groupRepository) List() []domain_models.Group {
	out := make([]domain_models.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, cloneGroup(g))
	}
	return out
}

func (r *groupRepository) GetByID(id string) *domain_models.Group {
	for _, g := range r.groups {
		if g.ID == id {
			group := cloneGroup(g)
			return &group
		}
	}
	return nil
}

func cloneGroup(g domain_models.Group) domain_models.Group {
	g.Activities = slices.Clone(g.Activities)
	g.Members = slices.Clone(g.Members)
	polls := make([]domain_models.Poll, 0, len(g.Polls))
	for _, p := range g.Polls {
		p.Options = slices.Clone(p.Options)
		polls = append(polls, p)
	}
	g.Polls = polls
	return g
}
