// Package action parses raw action tokens into structured actions.
// Parsing happens once at the system boundary; downstream code works
// with the Action struct, never the raw token.
package action

import "strings"

// Token prefixes making up the action vocabulary. The three movement verbs
// are interchangeable; the distinction is UI labeling only.
const (
	TokenRest    = "rest"
	TalkPrefix   = "talk_to_"
	ListenPrefix = "listen_to_"
	ChoicePrefix = "choice_"
	MenuGoPrefix = "go_"
)

var movementPrefixes = []string{"enter_", "visit_", "return_"}

// Kind discriminates parsed actions
type Kind string

// Action kinds
const (
	KindRest    Kind = "rest"
	KindTalk    Kind = "talk"
	KindListen  Kind = "listen"
	KindMove    Kind = "move"
	KindChoice  Kind = "choice"
	KindExamine Kind = "examine"
)

// Action is a raw token parsed into a structured request
type Action struct {
	Kind  Kind
	Token string
	// Destination is set for KindMove
	Destination string
	// NPC is set for KindTalk and KindChoice
	NPC string
	// Choice is set for KindChoice
	Choice string
	// Key is set for KindExamine and KindListen
	Key string
}

// IsMovement reports whether token starts with a movement verb
func IsMovement(token string) bool {
	for _, prefix := range movementPrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

// Destination strips the movement verb and returns the target location id.
// The second return is false when token is not a movement token.
func Destination(token string) (string, bool) {
	for _, prefix := range movementPrefixes {
		if strings.HasPrefix(token, prefix) {
			return strings.TrimPrefix(token, prefix), true
		}
	}
	return "", false
}

// Parse classifies a raw action token. Classification order matters: verb
// prefixes are checked before the generic examine fallback, and menu
// namespaces (choice_, go_) re-enter the shared movement and dialogue
// semantics rather than forming separate code paths.
func Parse(token string) Action {
	switch {
	case token == TokenRest:
		return Action{Kind: KindRest, Token: token}

	case strings.HasPrefix(token, TalkPrefix):
		return Action{
			Kind:  KindTalk,
			Token: token,
			NPC:   strings.TrimPrefix(token, TalkPrefix),
		}

	case strings.HasPrefix(token, ListenPrefix):
		return Action{
			Kind:  KindListen,
			Token: token,
			Key:   strings.TrimPrefix(token, ListenPrefix),
		}

	case IsMovement(token):
		destination, _ := Destination(token)
		return Action{Kind: KindMove, Token: token, Destination: destination}

	case strings.HasPrefix(token, ChoicePrefix):
		// choice_<npc>_<action>; the npc id is a single segment
		rest := strings.TrimPrefix(token, ChoicePrefix)
		npc, choice, found := strings.Cut(rest, "_")
		if !found || choice == "" {
			return Action{Kind: KindExamine, Token: token, Key: token}
		}
		return Action{Kind: KindChoice, Token: token, NPC: npc, Choice: choice}

	case strings.HasPrefix(token, MenuGoPrefix):
		inner := Parse(strings.TrimPrefix(token, MenuGoPrefix))
		if inner.Kind == KindMove {
			return inner
		}
		return Action{Kind: KindExamine, Token: token, Key: token}

	default:
		return Action{Kind: KindExamine, Token: token, Key: token}
	}
}
