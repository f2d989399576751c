package entities

// QuestStatus is the per-player lifecycle state of a quest. Absence of a
// QuestProgress entry means the quest is unstarted. Status only ever moves
// forward: unstarted, then accepted, then completed.
type QuestStatus string

// Quest statuses
const (
	QuestStatusAccepted  QuestStatus = "accepted"
	QuestStatusCompleted QuestStatus = "completed"
)

// QuestProgress tracks a player's progress through a single quest
type QuestProgress struct {
	Status           QuestStatus
	CurrentObjective string
	// ObjectiveCounts holds absolute progress snapshots per objective id.
	// Counts above an objective's required total are tolerated.
	ObjectiveCounts map[string]int
	UpdatedAt       int64
}

// Journal holds the player's written record. Rumors only ever contains
// strings drawn from the global rumor pool, each at most once.
type Journal struct {
	Entries []string
	Rumors  []string
}

// Player is the persisted per-player record. The engine treats it as a
// value object: it reads a loaded snapshot and proposes patches, never
// mutating storage directly.
type Player struct {
	ID               string
	Name             string
	Class            string
	Level            int32
	ExperiencePoints int32
	Strength         int32
	Dexterity        int32
	Intelligence     int32
	Charisma         int32
	CurrentLocation  string
	QuestProgress    map[string]QuestProgress
	Inventory        []string
	Journal          Journal
	CurrentHealth    int32
	MaxHealth        int32
	CreatedAt        int64
	UpdatedAt        int64
}

// QuestProgressFor returns the player's progress for a quest and whether
// the quest has been started at all.
func (p *Player) QuestProgressFor(questID string) (QuestProgress, bool) {
	if p.QuestProgress == nil {
		return QuestProgress{}, false
	}
	progress, ok := p.QuestProgress[questID]
	return progress, ok
}
