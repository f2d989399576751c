// Package world implements lookups over the static location graph.
package world

import (
	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/action"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
)

// Graph answers pure queries over the location graph. It holds no mutable
// state and is safe for concurrent use.
type Graph struct {
	locations map[string]*entities.Location
}

// Config holds the dependencies for the world graph
type Config struct {
	Content *content.Content
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	return vb.Build()
}

// New creates a world graph over the given content
func New(cfg *Config) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Graph{locations: cfg.Content.Locations}, nil
}

// Location looks up a location by id. An unknown id is a content defect:
// player records only ever point at locations this graph vouched for.
func (g *Graph) Location(id string) (*entities.Location, error) {
	location, ok := g.locations[id]
	if !ok {
		return nil, errors.ContentDefectf("location %q does not exist", id)
	}
	return location, nil
}

// ResolveDestination strips the movement verb from token and resolves the
// remainder to a location id.
func (g *Graph) ResolveDestination(token string) (string, error) {
	destination, ok := action.Destination(token)
	if !ok {
		return "", errors.ContentDefectf("%q is not a movement action", token)
	}
	if _, exists := g.locations[destination]; !exists {
		return "", errors.ContentDefectf("movement action %q targets unknown location %q", token, destination)
	}
	return destination, nil
}

// TravelOption pairs a movement token with its resolved destination
type TravelOption struct {
	Token       string
	Destination *entities.Location
}

// TravelOptions lists the movement actions available at a location,
// filtered to those whose destination resolves.
func (g *Graph) TravelOptions(locationID string) ([]TravelOption, error) {
	location, err := g.Location(locationID)
	if err != nil {
		return nil, err
	}

	var options []TravelOption
	for _, token := range location.AvailableActions {
		destination, ok := action.Destination(token)
		if !ok {
			continue
		}
		target, exists := g.locations[destination]
		if !exists {
			continue
		}
		options = append(options, TravelOption{Token: token, Destination: target})
	}
	return options, nil
}
