package narrative

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthfire/story-api/internal/engine/action"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	playerrepo "github.com/hearthfire/story-api/internal/repositories/player"
	"github.com/hearthfire/story-api/internal/services/narrative"
)

// User-facing messages. Content defects and storage failures degrade to
// these; neither ever fails the invocation.
const (
	msgFullHealth       = "You are already at full health."
	msgRestElsewhere    = "You can only rest at home."
	msgNoRumorsHere     = "There are no rumors to listen to here."
	msgRumorsExhausted  = "You have already heard all the rumors."
	msgExamineFallback  = "You perform the action, but nothing notable happens."
	msgStaleChoice      = "That option is no longer available."
	msgContentDefect    = "You cannot do that right now."
	msgStorageExhausted = "Something went wrong while saving your progress. Please try again."
)

// Route classifies one action token, applies its rules, and persists any
// resulting patch. Calls for the same player are serialized; the returned
// snapshot reflects the persisted state.
func (o *Orchestrator) Route(ctx context.Context, input *narrative.RouteInput) (*narrative.RouteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PlayerID == "" {
		vb.RequiredField("playerID")
	}
	if input.Token == "" {
		vb.RequiredField("token")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	release := o.locks.acquire(input.PlayerID)
	defer release()

	player, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	var (
		result *narrative.Result
		patch  entities.PlayerPatch
	)

	act := action.Parse(input.Token)
	switch act.Kind {
	case action.KindRest:
		result, patch = o.rest(player)
	case action.KindTalk:
		result, err = o.talk(act.NPC, player)
	case action.KindListen:
		result, patch, err = o.listen(player)
	case action.KindMove:
		result, patch, err = o.move(act, player)
	case action.KindChoice:
		result, patch, err = o.choose(act, player)
	default:
		result, err = o.examine(ctx, act.Key, player)
	}

	if err != nil {
		if !errors.IsContentDefect(err) {
			return nil, err
		}
		// Authoring defects are a developer problem, not the player's
		slog.WarnContext(ctx, "content defect while routing action",
			"player_id", input.PlayerID,
			"token", input.Token,
			"error", err)
		return &narrative.RouteOutput{
			Result: &narrative.Result{Kind: narrative.ResultNarration, Narrative: msgContentDefect},
			Player: player,
		}, nil
	}

	if !patch.IsZero() {
		updated, persistErr := o.persist(ctx, input.PlayerID, patch)
		if persistErr != nil {
			slog.ErrorContext(ctx, "failed to persist action patch",
				"player_id", input.PlayerID,
				"token", input.Token,
				"error", persistErr)
			return &narrative.RouteOutput{
				Result: &narrative.Result{Kind: narrative.ResultNarration, Narrative: msgStorageExhausted},
				Player: player,
			}, nil
		}
		player = updated
	}

	return &narrative.RouteOutput{Result: result, Player: player}, nil
}

// persist applies a patch, retrying once when storage is unavailable
func (o *Orchestrator) persist(ctx context.Context, playerID string, patch entities.PlayerPatch) (*entities.Player, error) {
	output, err := o.playerRepo.ApplyPatch(ctx, playerrepo.ApplyPatchInput{ID: playerID, Patch: patch})
	if err != nil && errors.IsUnavailable(err) {
		slog.WarnContext(ctx, "patch write failed, retrying",
			"player_id", playerID,
			"error", err)
		output, err = o.playerRepo.ApplyPatch(ctx, playerrepo.ApplyPatchInput{ID: playerID, Patch: patch})
	}
	if err != nil {
		return nil, err
	}
	return output.Player, nil
}

func (o *Orchestrator) rest(player *entities.Player) (*narrative.Result, entities.PlayerPatch) {
	if player.CurrentLocation != o.content.RestLocationID {
		return &narrative.Result{Kind: narrative.ResultNarration, Narrative: msgRestElsewhere}, entities.PlayerPatch{}
	}
	if player.CurrentHealth >= player.MaxHealth {
		return &narrative.Result{Kind: narrative.ResultRest, Narrative: msgFullHealth}, entities.PlayerPatch{}
	}

	restoration := player.CurrentHealth / 2
	newHealth := player.CurrentHealth + restoration
	if newHealth > player.MaxHealth {
		newHealth = player.MaxHealth
	}
	restored := newHealth - player.CurrentHealth

	return &narrative.Result{
		Kind:      narrative.ResultRest,
		Narrative: fmt.Sprintf("You have rested and restored %d health points.", restored),
	}, entities.PlayerPatch{CurrentHealth: &newHealth}
}

func (o *Orchestrator) talk(npcID string, player *entities.Player) (*narrative.Result, error) {
	dlg, err := o.dialogue.ForNPC(npcID)
	if err != nil {
		return nil, err
	}

	conversation, err := o.dialogue.SelectConversation(dlg, player)
	if err != nil {
		return nil, err
	}

	return &narrative.Result{
		Kind:         narrative.ResultDialogue,
		Narrative:    conversation.Text,
		NPC:          npcID,
		NPCName:      dlg.NPC,
		Conversation: conversation,
	}, nil
}

func (o *Orchestrator) listen(player *entities.Player) (*narrative.Result, entities.PlayerPatch, error) {
	if player.CurrentLocation != o.content.RumorLocationID {
		return &narrative.Result{Kind: narrative.ResultNarration, Narrative: msgNoRumorsHere},
			entities.PlayerPatch{}, nil
	}

	heard, err := o.rumors.Next(player.Journal)
	if err != nil {
		if errors.IsResourceExhausted(err) {
			return &narrative.Result{Kind: narrative.ResultRumor, Narrative: msgRumorsExhausted},
				entities.PlayerPatch{}, nil
		}
		return nil, entities.PlayerPatch{}, err
	}

	return &narrative.Result{
			Kind:      narrative.ResultRumor,
			Narrative: fmt.Sprintf("You managed to overhear: %s", heard),
		}, entities.PlayerPatch{JournalRumorsAppend: []string{heard}},
		nil
}

func (o *Orchestrator) move(act action.Action, player *entities.Player) (*narrative.Result, entities.PlayerPatch, error) {
	destination, err := o.world.ResolveDestination(act.Token)
	if err != nil {
		return nil, entities.PlayerPatch{}, err
	}

	location, err := o.world.Location(destination)
	if err != nil {
		return nil, entities.PlayerPatch{}, err
	}

	// Same snapshot the player would get from looking around on arrival
	return &narrative.Result{
		Kind:      narrative.ResultMoved,
		Narrative: location.Description,
		Location:  location,
	}, entities.PlayerPatch{CurrentLocation: &destination}, nil
}

func (o *Orchestrator) choose(act action.Action, player *entities.Player) (*narrative.Result, entities.PlayerPatch, error) {
	dlg, err := o.dialogue.ForNPC(act.NPC)
	if err != nil {
		return nil, entities.PlayerPatch{}, err
	}

	conversation, err := o.dialogue.SelectConversation(dlg, player)
	if err != nil {
		return nil, entities.PlayerPatch{}, err
	}

	choice, err := o.dialogue.ResolveChoice(conversation, act.Choice)
	if err != nil {
		if errors.IsNotFound(err) {
			// The button came from a conversation the player's state no
			// longer selects, e.g. after accepting the quest it offered
			return &narrative.Result{Kind: narrative.ResultNarration, Narrative: msgStaleChoice},
				entities.PlayerPatch{}, nil
		}
		return nil, entities.PlayerPatch{}, err
	}

	outcome, err := o.dialogue.ApplyChoiceEffects(dlg, choice, player)
	if err != nil {
		return nil, entities.PlayerPatch{}, err
	}

	return &narrative.Result{
		Kind:           narrative.ResultChoice,
		Narrative:      outcome.Narrative,
		NPC:            act.NPC,
		NPCName:        dlg.NPC,
		Conversation:   outcome.FollowUp,
		UpdatedQuestID: outcome.UpdatedQuestID,
	}, outcome.Patch, nil
}

func (o *Orchestrator) examine(ctx context.Context, key string, player *entities.Player) (*narrative.Result, error) {
	location, err := o.world.Location(player.CurrentLocation)
	if err != nil {
		return nil, err
	}

	text, ok := location.ExamineText[key]
	if !ok {
		// Soft fail: an unmapped examine token is a content gap, not a
		// player mistake
		slog.WarnContext(ctx, "no examine text for action",
			"location_id", location.ID,
			"token", key)
		text = msgExamineFallback
	}

	return &narrative.Result{Kind: narrative.ResultNarration, Narrative: text}, nil
}
