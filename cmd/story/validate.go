package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthfire/story-api/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the static story content",
	Long:  `Check the built-in story content for authoring defects: dangling travel targets, dialogues without a fallback conversation, duplicate choice actions, unknown quest references, and broken conversation chains.`,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cnt := content.Default()
	if err := cnt.Validate(); err != nil {
		return err
	}

	fmt.Printf("content ok: %d locations, %d dialogues, %d quests, %d rumors\n",
		len(cnt.Locations), len(cnt.Dialogues), len(cnt.Quests), len(cnt.Rumors))
	return nil
}
