package narrative_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/dialogue"
	"github.com/hearthfire/story-api/internal/engine/quest"
	"github.com/hearthfire/story-api/internal/engine/rumor"
	"github.com/hearthfire/story-api/internal/engine/world"
	narrativeorch "github.com/hearthfire/story-api/internal/orchestrators/narrative"
	"github.com/hearthfire/story-api/internal/pkg/clock"
	playerrepo "github.com/hearthfire/story-api/internal/repositories/player"
	narrativesvc "github.com/hearthfire/story-api/internal/services/narrative"
)

// newTestService wires a narrative orchestrator over the given repository
// with seeded randomness and a fixed clock.
func newTestService(t *testing.T, repo playerrepo.Repository, cnt *content.Content) narrativesvc.Service {
	t.Helper()

	graph, err := world.New(&world.Config{Content: cnt})
	require.NoError(t, err)

	ledger, err := quest.New(&quest.Config{
		Content: cnt,
		Clock:   &clock.Fixed{T: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err)

	resolver, err := dialogue.New(&dialogue.Config{Content: cnt, Ledger: ledger})
	require.NoError(t, err)

	pool, err := rumor.New(&rumor.Config{
		Content: cnt,
		Rand:    rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)

	orch, err := narrativeorch.New(&narrativeorch.Config{
		PlayerRepo: repo,
		World:      graph,
		Dialogue:   resolver,
		Quests:     ledger,
		Rumors:     pool,
		Content:    cnt,
	})
	require.NoError(t, err)
	return orch
}
