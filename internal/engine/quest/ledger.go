// Package quest implements the per-player quest state machine and the
// quest journal summary.
package quest

import (
	"fmt"
	"sort"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	"github.com/hearthfire/story-api/internal/pkg/clock"
)

// Ledger runs quest transitions against static quest definitions. All
// methods are pure with respect to storage: they take a progress snapshot
// and return a new one, never persisting anything themselves.
//
// Status is monotonic per quest: unstarted, then accepted, then completed.
// No transition ever regresses a status, and transitions out of completed
// are no-ops.
type Ledger struct {
	quests map[string]*entities.QuestDefinition
	clock  clock.Clock
}

// Config holds the dependencies for the quest ledger
type Config struct {
	Content *content.Content
	Clock   clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	return vb.Build()
}

// New creates a quest ledger
func New(cfg *Config) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Ledger{quests: cfg.Content.Quests, clock: c}, nil
}

// Definition returns the static definition for a quest id
func (l *Ledger) Definition(questID string) (*entities.QuestDefinition, error) {
	quest, ok := l.quests[questID]
	if !ok {
		return nil, errors.ContentDefectf("quest %q does not exist", questID)
	}
	return quest, nil
}

// Accept transitions a quest from unstarted to accepted. Accepting a quest
// the player already started is a no-op.
func (l *Ledger) Accept(
	progress map[string]entities.QuestProgress,
	questID, objective string,
) (map[string]entities.QuestProgress, error) {
	if _, err := l.Definition(questID); err != nil {
		return nil, err
	}

	updated := cloneProgress(progress)
	if _, started := updated[questID]; started {
		return updated, nil
	}

	updated[questID] = entities.QuestProgress{
		Status:           entities.QuestStatusAccepted,
		CurrentObjective: objective,
		ObjectiveCounts:  make(map[string]int),
		UpdatedAt:        l.clock.Now().Unix(),
	}
	return updated, nil
}

// AdvanceObjective records an absolute progress snapshot for one objective
// and completes the quest when every objective has reached its required
// count. Advancing a completed quest is a no-op; advancing an unstarted
// quest is a precondition failure. The second return reports whether this
// call completed the quest.
//
// The count is a set, not an increment: callers send progress snapshots,
// and a lower count than previously stored is recorded as sent.
func (l *Ledger) AdvanceObjective(
	progress map[string]entities.QuestProgress,
	questID, objectiveID string,
	count int,
) (map[string]entities.QuestProgress, bool, error) {
	quest, err := l.Definition(questID)
	if err != nil {
		return nil, false, err
	}

	updated := cloneProgress(progress)
	entry, started := updated[questID]
	if !started {
		return nil, false, errors.FailedPreconditionf("quest %q has not been accepted", questID)
	}
	if entry.Status == entities.QuestStatusCompleted {
		return updated, false, nil
	}

	if entry.ObjectiveCounts == nil {
		entry.ObjectiveCounts = make(map[string]int)
	}
	entry.ObjectiveCounts[objectiveID] = count
	entry.UpdatedAt = l.clock.Now().Unix()

	completed := true
	for _, objective := range quest.Objectives {
		if entry.ObjectiveCounts[objective.ID] < objective.Required {
			completed = false
			break
		}
	}
	if completed {
		entry.Status = entities.QuestStatusCompleted
	}

	updated[questID] = entry
	return updated, completed, nil
}

// Apply folds a choice's quest update into the progress snapshot,
// dispatching on the authored target status.
func (l *Ledger) Apply(
	progress map[string]entities.QuestProgress,
	update *entities.QuestUpdate,
) (map[string]entities.QuestProgress, error) {
	switch update.Status {
	case entities.QuestStatusAccepted:
		return l.Accept(progress, update.QuestID, update.Objective)
	case entities.QuestStatusCompleted:
		return l.complete(progress, update.QuestID)
	default:
		return nil, errors.ContentDefectf(
			"quest update for %q has unknown status %q", update.QuestID, update.Status)
	}
}

func (l *Ledger) complete(
	progress map[string]entities.QuestProgress,
	questID string,
) (map[string]entities.QuestProgress, error) {
	if _, err := l.Definition(questID); err != nil {
		return nil, err
	}

	updated := cloneProgress(progress)
	entry := updated[questID]
	if entry.Status == entities.QuestStatusCompleted {
		return updated, nil
	}

	entry.Status = entities.QuestStatusCompleted
	entry.UpdatedAt = l.clock.Now().Unix()
	updated[questID] = entry
	return updated, nil
}

// ObjectiveProgress is one objective line in the quest journal
type ObjectiveProgress struct {
	Description string
	// Progress is formatted count/required, e.g. "1/3"
	Progress string
}

// ActiveQuest is an accepted quest in the journal summary
type ActiveQuest struct {
	Name        string
	Description string
	Objectives  []ObjectiveProgress
	Rewards     entities.QuestRewards
}

// AvailableQuest is an unstarted quest in the journal summary
type AvailableQuest struct {
	Name        string
	Description string
	Giver       string
}

// CompletedQuest is a finished quest in the journal summary
type CompletedQuest struct {
	Name    string
	Rewards entities.QuestRewards
}

// Summary partitions every defined quest by the player's status for it
type Summary struct {
	Active    []ActiveQuest
	Available []AvailableQuest
	Completed []CompletedQuest
}

// Summarize builds the quest journal summary for a player. Pure function
// of the static definitions and the player's progress; used for display
// only.
func (l *Ledger) Summarize(player *entities.Player) *Summary {
	summary := &Summary{}

	for _, quest := range sortedQuests(l.quests) {
		entry, started := player.QuestProgressFor(quest.ID)

		switch {
		case !started:
			summary.Available = append(summary.Available, AvailableQuest{
				Name:        quest.Name,
				Description: quest.Description,
				Giver:       quest.Giver,
			})

		case entry.Status == entities.QuestStatusCompleted:
			summary.Completed = append(summary.Completed, CompletedQuest{
				Name:    quest.Name,
				Rewards: quest.Rewards,
			})

		default:
			objectives := make([]ObjectiveProgress, 0, len(quest.Objectives))
			for _, objective := range quest.Objectives {
				objectives = append(objectives, ObjectiveProgress{
					Description: objective.Description,
					Progress:    fmt.Sprintf("%d/%d", entry.ObjectiveCounts[objective.ID], objective.Required),
				})
			}
			summary.Active = append(summary.Active, ActiveQuest{
				Name:        quest.Name,
				Description: quest.Description,
				Objectives:  objectives,
				Rewards:     quest.Rewards,
			})
		}
	}

	return summary
}

func sortedQuests(quests map[string]*entities.QuestDefinition) []*entities.QuestDefinition {
	ids := make([]string, 0, len(quests))
	for id := range quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*entities.QuestDefinition, 0, len(ids))
	for _, id := range ids {
		out = append(out, quests[id])
	}
	return out
}

func cloneProgress(progress map[string]entities.QuestProgress) map[string]entities.QuestProgress {
	cloned := make(map[string]entities.QuestProgress, len(progress))
	for questID, entry := range progress {
		counts := make(map[string]int, len(entry.ObjectiveCounts))
		for objectiveID, count := range entry.ObjectiveCounts {
			counts[objectiveID] = count
		}
		entry.ObjectiveCounts = counts
		cloned[questID] = entry
	}
	return cloned
}
