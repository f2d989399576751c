// Package narrative defines the interface for story interactions
package narrative

//go:generate mockgen -destination=mock/mock_service.go -package=narrativemock github.com/hearthfire/story-api/internal/services/narrative Service

import (
	"context"

	"github.com/hearthfire/story-api/internal/engine/quest"
	"github.com/hearthfire/story-api/internal/engine/world"
	"github.com/hearthfire/story-api/internal/entities"
)

// Service defines the interface for story interactions. Route is the
// single entry point for raw action tokens; the menu and journal methods
// are read-only views for the presentation layer.
type Service interface {
	// Action dispatch
	Route(ctx context.Context, input *RouteInput) (*RouteOutput, error)

	// Read-only views
	Look(ctx context.Context, input *LookInput) (*LookOutput, error)
	TravelMenu(ctx context.Context, input *TravelMenuInput) (*TravelMenuOutput, error)
	TalkMenu(ctx context.Context, input *TalkMenuInput) (*TalkMenuOutput, error)
	QuestJournal(ctx context.Context, input *QuestJournalInput) (*QuestJournalOutput, error)
	Journal(ctx context.Context, input *JournalInput) (*JournalOutput, error)
}

// ResultKind discriminates routing results
type ResultKind string

// Routing result kinds
const (
	// ResultRest is a completed or refused rest attempt
	ResultRest ResultKind = "rest"
	// ResultDialogue is an opened NPC conversation
	ResultDialogue ResultKind = "dialogue"
	// ResultRumor is an overheard rumor
	ResultRumor ResultKind = "rumor"
	// ResultMoved is a completed location change
	ResultMoved ResultKind = "moved"
	// ResultChoice is the outcome of a dialogue choice
	ResultChoice ResultKind = "choice"
	// ResultNarration is plain narrative text: examine results, soft
	// refusals, and the generic fallback for unmapped tokens
	ResultNarration ResultKind = "narration"
)

// Result is the tagged outcome of routing one action token. Kind selects
// which of the optional fields are set; Narrative is always set.
type Result struct {
	Kind      ResultKind
	Narrative string

	// NPC and NPCName are set for ResultDialogue and ResultChoice;
	// Conversation is set for ResultDialogue, and for ResultChoice when
	// the choice chains to a follow-up conversation
	NPC          string
	NPCName      string
	Conversation *entities.Conversation

	// Location is set for ResultMoved
	Location *entities.Location

	// UpdatedQuestID is set for ResultChoice when the choice carried a
	// quest update
	UpdatedQuestID string
}

// RouteInput defines the request for routing an action token
type RouteInput struct {
	PlayerID string
	Token    string
}

// RouteOutput defines the response for routing an action token
type RouteOutput struct {
	Result *Result
	// Player is the post-mutation snapshot
	Player *entities.Player
}

// LookInput defines the request for describing the current location
type LookInput struct {
	PlayerID string
}

// LookOutput defines the response for describing the current location
type LookOutput struct {
	Player   *entities.Player
	Location *entities.Location
}

// TravelMenuInput defines the request for listing travel options
type TravelMenuInput struct {
	PlayerID string
}

// TravelMenuOutput defines the response for listing travel options
type TravelMenuOutput struct {
	Location *entities.Location
	Options  []world.TravelOption
}

// TalkOption is one NPC the player can talk to from their location
type TalkOption struct {
	// Token is the full talk action token
	Token string
	// NPC is the NPC id, the token minus its verb prefix
	NPC string
}

// TalkMenuInput defines the request for listing conversation partners
type TalkMenuInput struct {
	PlayerID string
}

// TalkMenuOutput defines the response for listing conversation partners
type TalkMenuOutput struct {
	Location *entities.Location
	Options  []TalkOption
}

// QuestJournalInput defines the request for the quest journal
type QuestJournalInput struct {
	PlayerID string
}

// QuestJournalOutput defines the response for the quest journal
type QuestJournalOutput struct {
	Summary *quest.Summary
}

// JournalInput defines the request for the player's journal
type JournalInput struct {
	PlayerID string
}

// JournalOutput defines the response for the player's journal
type JournalOutput struct {
	Journal entities.Journal
}
