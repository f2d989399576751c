package content

import (
	"github.com/hearthfire/story-api/internal/entities"
)

// Well-known location ids in the default content set
const (
	LocationHome      = "home"
	LocationSquare    = "village_square"
	LocationTavern    = "village_tavern"
	LocationForest    = "forest_path"
	QuestMain         = "main_quest"
	QuestCollectHerbs = "collect_herbs"
)

// Default returns the built-in Whiterun story content.
func Default() *Content {
	return &Content{
		Locations:       defaultLocations(),
		Dialogues:       defaultDialogues(),
		Quests:          defaultQuests(),
		Rumors:          defaultRumors(),
		RestLocationID:  LocationHome,
		RumorLocationID: LocationTavern,
	}
}

func defaultLocations() map[string]*entities.Location {
	return map[string]*entities.Location{
		LocationHome: {
			ID:          LocationHome,
			Name:        "Hearthfire",
			Description: "Your humble abode sits at the edge of Whiterun. A small cottage with a warm hearth and familiar comforts. Through the window, you can see the bustling village square in the distance.",
			AvailableActions: []string{
				"rest", "enter_village_square", "look_in_mirror", "read_journal",
			},
			ExamineText: map[string]string{
				"enter_village_square": "You gather yourself and step outside, happily greeted by the townspeople of Whiterun.",
				"rest":                 "You rest by the warm hearth, restoring your health and vigor.",
				"look_in_mirror":       "You see your reflection - a promising adventurer ready to make their mark on the world.",
				"read_journal":         "Your journal contains your thoughts and quest notes. Perhaps it's time to add new tales to its pages.",
			},
		},
		LocationSquare: {
			ID:          LocationSquare,
			Name:        "Whiterun, Home of the Nords",
			Description: "The heart of Whiterun bustles with life. Merchants hawk their wares from wooden stalls, while guards patrol with watchful eyes. The legendary Bannered Mare tavern stands proudly to the north, its sign creaking in the wind. To the east, a path disappears into the mysterious Whispering Woods.",
			AvailableActions: []string{
				"talk_to_elder", "enter_village_tavern", "enter_forest_path",
				"return_home", "observe_guards", "browse_merchant",
			},
			ExamineText: map[string]string{
				"observe_guards":    "The guards stand vigilant, their steel armor gleaming in the sunlight. One of them catches your eye and nods respectfully.",
				"browse_merchant":   "The merchant's stall is filled with curiosities from distant lands - herbs, trinkets, and mysterious scrolls.",
				"talk_to_elder":     "You approach Elder Olava, she seems to be lost in her thoughts about something...",
				"enter_forest_path": "You are drawn into the allure of the dense trees, your stomach tenses in anticipation as your boot strikes the firm earth.",
			},
		},
		LocationTavern: {
			ID:          LocationTavern,
			Name:        "The Bannered Mare",
			Description: "The steady-beating heart of Whiterun. A place for adventurers, sorcerers, thieves, and warriors alike. Laughter and clashing cups fill the air, and it appears the innkeeper, Lillith, is ecstatic to see you. A bard plays a familiar tune in the corner.",
			AvailableActions: []string{
				"talk_to_innkeeper", "listen_to_rumors", "enjoy_a_mead",
				"return_village_square", "talk_to_bard", "watch_bar_fight",
			},
			ExamineText: map[string]string{
				"enjoy_a_mead":     "The sweet taste of Nordic mead warms your belly. The innkeeper gives you a knowing wink.",
				"listen_to_rumors": "You lean in closer to hear the whispered conversations around you...",
				"watch_bar_fight":  "Two patrons are engaged in a heated argument over the last bottle of Black-Briar Reserve.",
			},
		},
		LocationForest: {
			ID:          LocationForest,
			Name:        "The Whispering Woods",
			Description: "Ancient trees loom overhead, their branches weaving a dark canopy that filters the sunlight into eerie patterns. The wind carries whispers that seem almost intelligible, speaking of secrets buried in time. Mysterious mushrooms glow faintly along the path.",
			AvailableActions: []string{
				"investigate_sounds", "return_village_square", "follow_lights", "inspect_mushrooms",
			},
			ExamineText: map[string]string{
				"investigate_sounds": "The whispers grow stronger as you focus... they seem to be calling your name.",
				"inspect_mushrooms":  "The mushrooms pulse with an otherworldly blue light. They seem to respond to your presence.",
				"follow_lights":      "Strange wisps of light dance between the trees, beckoning you deeper into the woods.",
			},
		},
	}
}

func defaultDialogues() map[string]*entities.Dialogue {
	return map[string]*entities.Dialogue{
		"talk_to_elder": {
			ID:  "talk_to_elder",
			NPC: "Olava the Feeble",
			Conversations: []entities.Conversation{
				{
					Condition: &entities.Condition{
						Kind:    entities.ConditionQuestMissing,
						QuestID: QuestMain,
					},
					Text: "Ah, child... I've been expecting you. The whispers in the woods grow stronger each day. They speak of an ancient evil stirring beneath the earth. Will you help us uncover the truth?",
					Choices: []entities.Choice{
						{
							Label:    "I'll help you, Elder Olava",
							Action:   "accept_main_quest",
							Response: "The fates smile upon us. Begin by investigating the Whispering Woods - but beware, not all whispers lead to wisdom.",
							QuestUpdate: &entities.QuestUpdate{
								QuestID:   QuestMain,
								Status:    entities.QuestStatusAccepted,
								Objective: "Investigate the source of the whispers in the Whispering Woods",
							},
						},
						{
							Label:    "What evil do you speak of?",
							Action:   "ask_more",
							Response: "The ancient texts speak of a sealed evil, bound by the first settlers of Whiterun. The whispers... they are its attempts to break free.",
						},
						{
							Label:    "I'm not ready for this task",
							Action:   "decline_quest",
							Response: "The paths of destiny are many, but all must be walked in their own time. Return when you feel ready.",
						},
					},
				},
				{
					Condition: &entities.Condition{
						Kind:    entities.ConditionQuestStatus,
						QuestID: QuestMain,
						Status:  entities.QuestStatusAccepted,
					},
					Text:      "The whispers grow stronger with each passing day. Have you discovered anything in the woods?",
					QuestInfo: QuestMain,
					Choices: []entities.Choice{
						{
							Label:    "I'm still investigating",
							Action:   "quest_progress",
							Response: "Time grows short. Listen carefully in the woods - the whispers speak of ancient runes and hidden pathways.",
						},
						{
							Label:    "I found strange mushrooms",
							Action:   "report_mushrooms",
							Response: "Ah! The Luminous Caps! They grow strongest where ancient magic lingers. Follow their glow, they may lead you to what we seek.",
						},
					},
				},
				{
					Text: "The woods are quiet at last. Whiterun owes you a debt it can never repay, child.",
					Choices: []entities.Choice{
						{
							Label:    "It was my honor",
							Action:   "farewell",
							Response: "May the fates keep smiling on you.",
						},
					},
				},
			},
		},
		"talk_to_innkeeper": {
			ID:  "talk_to_innkeeper",
			NPC: "Lillith the Innkeeper",
			Conversations: []entities.Conversation{
				{
					Text: "Welcome to the Bannered Mare! What can I get for you, friend?",
					Choices: []entities.Choice{
						{
							Label:    "What's the latest news?",
							Action:   "ask_news",
							Response: "Well, strange lights have been seen in the Whispering Woods lately. And Old Olava's been more restless than usual, muttering about ancient evils.",
						},
						{
							Label:      "I'll have a mead",
							Action:     "order_drink",
							Response:   "Here's our finest Black-Briar Reserve. Watch yourself though - it's got quite the kick!",
							ItemReward: "Black-Briar Mead",
						},
						{
							Label:    "Tell me about Whiterun",
							Action:   "ask_about_town",
							Response: "Ah, Whiterun! Been here all my life. We're the heart of Skyrim, you know. Trade, warriors, mages - all sorts pass through here. Though lately...",
						},
						{
							Label:              "Anything I can help with?",
							Action:             "offer_help",
							Response:           "As a matter of fact, there is. Come closer...",
							NextConversationID: "herb_request",
						},
					},
				},
				{
					ID:        "herb_request",
					Text:      "I've been working on a new drink, but I'm short on fresh herbs. The good ones only grow out in the Whispering Woods. Would you gather some for me?",
					QuestInfo: QuestCollectHerbs,
					Choices: []entities.Choice{
						{
							Label:    "I'll fetch your herbs",
							Action:   "accept_herb_quest",
							Response: "You're a dear! Mind the whispers out there, and bring them back fresh.",
							QuestUpdate: &entities.QuestUpdate{
								QuestID:   QuestCollectHerbs,
								Status:    entities.QuestStatusAccepted,
								Objective: "Gather an herb from the Whispering Woods",
							},
						},
						{
							Label:    "Maybe another time",
							Action:   "decline_herb_quest",
							Response: "Suit yourself. The offer stands if you change your mind.",
						},
					},
				},
			},
		},
		"talk_to_bard": {
			ID:  "talk_to_bard",
			NPC: "Mikael the Bard",
			Conversations: []entities.Conversation{
				{
					Text: "Ah, a new face! Care to hear a tale of heroes and legends?",
					Choices: []entities.Choice{
						{
							Label:    "Sing me a song",
							Action:   "request_song",
							Response: "In the time of ancient gods, warriors and kings, a tale was whispered of a power untold...",
						},
						{
							Label:    "Tell me about the woods",
							Action:   "ask_about_woods",
							Response: "The Whispering Woods? Many songs speak of its mysteries. Some say the whispers are the voices of those who wandered too deep...",
						},
					},
				},
			},
		},
	}
}

func defaultQuests() map[string]*entities.QuestDefinition {
	return map[string]*entities.QuestDefinition{
		QuestMain: {
			ID:          QuestMain,
			Name:        "Whispers Beneath Whiterun",
			Description: "Elder Olava believes an ancient evil stirs beneath the town. Find the source of the whispers in the Whispering Woods.",
			Giver:       "Olava the Feeble",
			Objectives: []entities.QuestObjective{
				{
					ID:          "investigate_woods",
					Description: "Investigate the source of the whispers in the Whispering Woods",
					Required:    1,
				},
			},
			Rewards: entities.QuestRewards{
				Gold:       100,
				Experience: 250,
				Items:      []string{"Ancient Rune Fragment"},
			},
		},
		QuestCollectHerbs: {
			ID:          QuestCollectHerbs,
			Name:        "Collect Herbs",
			Description: "The innkeeper would like some fresh herbs for her newest drinks.",
			Giver:       "Lillith the Innkeeper",
			Objectives: []entities.QuestObjective{
				{
					ID:          "collect_herbs",
					Description: "Gather an herb from the Whispering Woods",
					Required:    1,
				},
			},
			Rewards: entities.QuestRewards{
				Gold:       10,
				Experience: 50,
			},
		},
	}
}

func defaultRumors() []string {
	return []string{
		"They say the glowing mushrooms in the Whispering Woods only appear to those marked by destiny...",
		"I heard Old Olava hasn't slept in days, constantly muttering about 'the seals weakening'...",
		"Strange lights were seen dancing in the woods last night. Some say they formed ancient runes...",
		"The guards found another adventurer wandering out of the woods, speaking in tongues...",
		"They say there's an ancient chamber beneath Whiterun, sealed since the time of the first settlers...",
	}
}
