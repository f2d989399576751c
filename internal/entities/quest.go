package entities

// QuestObjective is one step of a quest definition
type QuestObjective struct {
	ID          string
	Description string
	// Required is the count at which the objective is done
	Required int
}

// QuestRewards lists what a completed quest pays out
type QuestRewards struct {
	Gold       int32
	Experience int32
	Items      []string
}

// QuestDefinition is the static definition of a quest. Per-player progress
// lives in Player.QuestProgress, keyed by ID.
type QuestDefinition struct {
	ID          string
	Name        string
	Description string
	Giver       string
	Objectives  []QuestObjective
	Rewards     QuestRewards
}
