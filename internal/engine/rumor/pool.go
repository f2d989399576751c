// Package rumor distributes flavor-text rumors to players without
// repetition.
package rumor

import (
	"math/rand"
	"sync"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
)

// Pool samples rumors the player has not heard yet. Selection does not
// mutate anything; the caller appends the result to the journal before
// persisting.
type Pool struct {
	rumors []string

	mu  sync.Mutex
	rng *rand.Rand
}

// Config holds the dependencies for the rumor pool
type Config struct {
	Content *content.Content
	// Rand is the randomness source; tests inject a seeded one.
	// Defaults to a time-seeded source.
	Rand *rand.Rand
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	return vb.Build()
}

// New creates a rumor pool
func New(cfg *Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63())) // #nosec G404 // not security sensitive
	}

	return &Pool{rumors: cfg.Content.Rumors, rng: rng}, nil
}

// Next picks an unheard rumor uniformly at random. Returns a
// ResourceExhausted error once the player has heard everything.
func (p *Pool) Next(journal entities.Journal) (string, error) {
	heard := make(map[string]bool, len(journal.Rumors))
	for _, rumor := range journal.Rumors {
		heard[rumor] = true
	}

	unheard := make([]string, 0, len(p.rumors))
	for _, rumor := range p.rumors {
		if !heard[rumor] {
			unheard = append(unheard, rumor)
		}
	}

	if len(unheard) == 0 {
		return "", errors.ResourceExhausted("all rumors have been heard")
	}

	p.mu.Lock()
	idx := p.rng.Intn(len(unheard))
	p.mu.Unlock()

	return unheard[idx], nil
}
