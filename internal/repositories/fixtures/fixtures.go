// Package fixtures holds the embedded demo collections the simulated
// services read from. The data is immutable reference material; callers
// receive fresh decoded copies on every load.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"frebud/internal/models/domain_models"
)

//go:embed *.json
var files embed.FS

func load(name string, out interface{}) {
	blob, err := files.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("fixtures: missing %s: %v", name, err))
	}
	if err := json.Unmarshal(blob, out); err != nil {
		panic(fmt.Sprintf("fixtures: malformed %s: %v", name, err))
	}
}

func Users() []domain_models.User {
	var users []domain_models.User
	load("users.json", &users)
	return users
}

func Companions() []domain_models.Companion {
	var companions []domain_models.Companion
	load("companions.json", &companions)
	return companions
}

func Destinations() []domain_models.Destination {
	var destinations []domain_models.Destination
	load("destinations.json", &destinations)
	return destinations
}

func Groups() []domain_models.Group {
	var groups []domain_models.Group
	load("groups.json", &groups)
	return groups
}

func Posts() []domain_models.Post {
	var posts []domain_models.Post
	load("posts.json", &posts)
	return posts
}

func Stories() []domain_models.Story {
	var stories []domain_models.Story
	load("stories.json", &stories)
	return stories
}
