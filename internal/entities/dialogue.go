package entities

// ConditionKind selects how a conversation condition is evaluated.
// Conditions are plain data interpreted by the dialogue resolver.
type ConditionKind string

// Condition kinds
const (
	// ConditionQuestMissing is true when the player has not started the quest
	ConditionQuestMissing ConditionKind = "quest_missing"
	// ConditionQuestStatus is true when the player's quest status equals Status
	ConditionQuestStatus ConditionKind = "quest_status"
)

// Condition is a pure predicate over player state gating a conversation.
// It is safe to evaluate any number of times.
type Condition struct {
	Kind    ConditionKind
	QuestID string
	Status  QuestStatus
}

// Dialogue is an NPC's full dialogue tree, keyed by the talk action that
// opens it (for example "talk_to_elder").
type Dialogue struct {
	ID  string
	NPC string
	// Conversations are evaluated in declared order; the first whose
	// condition holds is selected, falling back to the first unconditional
	// one.
	Conversations []Conversation
}

// Conversation is one state of a dialogue tree
type Conversation struct {
	// ID is optional; set only when the conversation is a chain target
	ID        string
	Condition *Condition
	Text      string
	Choices   []Choice
	// QuestInfo optionally names a quest whose progress is shown alongside
	// the conversation. Display only.
	QuestInfo string
}

// Choice is a selectable response within a conversation. Action is unique
// within its conversation.
type Choice struct {
	Label       string
	Action      string
	Response    string
	QuestUpdate *QuestUpdate
	ItemReward  string
	// NextConversationID chains to another conversation in the same
	// dialogue, surfaced as an immediate follow-up prompt.
	NextConversationID string
}

// QuestUpdate is the quest effect attached to a choice
type QuestUpdate struct {
	QuestID   string
	Status    QuestStatus
	Objective string
}

// ConversationByID finds a chain target within the dialogue
func (d *Dialogue) ConversationByID(id string) *Conversation {
	if id == "" {
		return nil
	}
	for i := range d.Conversations {
		if d.Conversations[i].ID == id {
			return &d.Conversations[i]
		}
	}
	return nil
}
