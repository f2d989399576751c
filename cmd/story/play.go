package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthfire/story-api/internal/config"
	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/dialogue"
	"github.com/hearthfire/story-api/internal/engine/quest"
	"github.com/hearthfire/story-api/internal/engine/rumor"
	"github.com/hearthfire/story-api/internal/engine/world"
	"github.com/hearthfire/story-api/internal/errors"
	"github.com/hearthfire/story-api/internal/handlers/chat"
	narrativeorch "github.com/hearthfire/story-api/internal/orchestrators/narrative"
	playerorch "github.com/hearthfire/story-api/internal/orchestrators/player"
	"github.com/hearthfire/story-api/internal/pkg/idgen"
	redisclient "github.com/hearthfire/story-api/internal/redis"
	playerrepo "github.com/hearthfire/story-api/internal/repositories/player"
	narrativesvc "github.com/hearthfire/story-api/internal/services/narrative"
	playersvc "github.com/hearthfire/story-api/internal/services/player"
)

var (
	playPlayerID string
	playName     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the story in the terminal",
	Long:  `Start an interactive session. Type an action token to act, or one of the commands: look, go, talk, quests, journal, stats, whereami, quit.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playPlayerID, "player", "", "player id (generated when empty)")
	playCmd.Flags().StringVar(&playName, "name", "Adventurer", "character name for registration")
}

// session bundles everything the interactive loop needs
type session struct {
	playerID  string
	narrative narrativesvc.Service
	players   playersvc.Service
	renderer  *chat.Renderer
	out       *bufio.Writer
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		PoolSize:        cfg.RedisPoolSize,
		MinIdleConns:    cfg.RedisMinIdleConns,
		ConnMaxIdleTime: cfg.RedisConnMaxIdleTime,
		MaxRetries:      cfg.RedisMaxRetries,
		UseTLS:          cfg.RedisUseTLS,
	})
	if err != nil {
		return err
	}

	repo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	cnt := content.Default()
	if err := cnt.Validate(); err != nil {
		return errors.Wrap(err, "story content is broken")
	}

	graph, err := world.New(&world.Config{Content: cnt})
	if err != nil {
		return err
	}
	ledger, err := quest.New(&quest.Config{Content: cnt})
	if err != nil {
		return err
	}
	resolver, err := dialogue.New(&dialogue.Config{Content: cnt, Ledger: ledger})
	if err != nil {
		return err
	}
	pool, err := rumor.New(&rumor.Config{Content: cnt})
	if err != nil {
		return err
	}

	narrativeService, err := narrativeorch.New(&narrativeorch.Config{
		PlayerRepo: repo,
		World:      graph,
		Dialogue:   resolver,
		Quests:     ledger,
		Rumors:     pool,
		Content:    cnt,
	})
	if err != nil {
		return err
	}

	playerService, err := playerorch.New(&playerorch.Config{
		PlayerRepo: repo,
		World:      graph,
		Content:    cnt,
	})
	if err != nil {
		return err
	}

	renderer, err := chat.New(&chat.Config{Quests: ledger})
	if err != nil {
		return err
	}

	playerID := playPlayerID
	if playerID == "" {
		playerID = idgen.NewUUID("player").Generate()
		fmt.Printf("playing as %s\n", playerID)
	}

	s := &session{
		playerID:  playerID,
		narrative: narrativeService,
		players:   playerService,
		renderer:  renderer,
		out:       bufio.NewWriter(os.Stdout),
	}
	return s.run(cmd.Context(), bufio.NewScanner(os.Stdin))
}

func (s *session) run(ctx context.Context, in *bufio.Scanner) error {
	if err := s.ensureRegistered(ctx, in); err != nil {
		return err
	}

	s.showLook(ctx)

	for {
		fmt.Fprint(s.out, "> ")
		s.out.Flush()
		if !in.Scan() {
			return in.Err()
		}

		token := strings.TrimSpace(in.Text())
		switch token {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "look":
			s.showLook(ctx)
		case "go":
			s.showTravelMenu(ctx)
		case "talk":
			s.showTalkMenu(ctx)
		case "quests":
			s.showQuestJournal(ctx)
		case "journal":
			s.showJournal(ctx)
		case "stats":
			s.showStats(ctx)
		case "whereami":
			s.showWhereAmI(ctx)
		default:
			s.routeToken(ctx, token)
		}
	}
}

func (s *session) ensureRegistered(ctx context.Context, in *bufio.Scanner) error {
	output, err := s.players.Register(ctx, &playersvc.RegisterInput{
		PlayerID: s.playerID,
		Name:     playName,
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return nil
		}
		return err
	}

	s.print(s.renderer.Welcome(output))

	for {
		fmt.Fprint(s.out, "class> ")
		s.out.Flush()
		if !in.Scan() {
			return in.Err()
		}

		_, err := s.players.ChooseClass(ctx, &playersvc.ChooseClassInput{
			PlayerID: s.playerID,
			Class:    strings.TrimSpace(in.Text()),
		})
		if err == nil {
			return nil
		}
		if !errors.IsInvalidArgument(err) {
			return err
		}
		fmt.Fprintln(s.out, "Pick one of the listed classes.")
	}
}

func (s *session) routeToken(ctx context.Context, token string) {
	output, err := s.narrative.Route(ctx, &narrativesvc.RouteInput{
		PlayerID: s.playerID,
		Token:    token,
	})
	if err != nil {
		s.printError(err)
		return
	}
	for _, msg := range s.renderer.Result(output.Result) {
		s.print(msg)
	}
}

func (s *session) showLook(ctx context.Context) {
	output, err := s.narrative.Look(ctx, &narrativesvc.LookInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	s.print(s.renderer.Look(output))
}

func (s *session) showTravelMenu(ctx context.Context) {
	output, err := s.narrative.TravelMenu(ctx, &narrativesvc.TravelMenuInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	s.print(s.renderer.TravelMenu(output))
}

func (s *session) showTalkMenu(ctx context.Context) {
	output, err := s.narrative.TalkMenu(ctx, &narrativesvc.TalkMenuInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	s.print(s.renderer.TalkMenu(output))
}

func (s *session) showQuestJournal(ctx context.Context) {
	output, err := s.narrative.QuestJournal(ctx, &narrativesvc.QuestJournalInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	s.print(s.renderer.QuestJournal(output))
}

func (s *session) showJournal(ctx context.Context) {
	stats, err := s.players.Stats(ctx, &playersvc.StatsInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	output, err := s.narrative.Journal(ctx, &narrativesvc.JournalInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	s.print(s.renderer.Journal(stats.Player.Name, output))
}

func (s *session) showStats(ctx context.Context) {
	output, err := s.players.Stats(ctx, &playersvc.StatsInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	s.print(s.renderer.Stats(output))
}

func (s *session) showWhereAmI(ctx context.Context) {
	output, err := s.players.WhereAmI(ctx, &playersvc.WhereAmIInput{PlayerID: s.playerID})
	if err != nil {
		s.printError(err)
		return
	}
	s.print(s.renderer.WhereAmI(output))
}

func (s *session) print(msg *chat.Message) {
	if msg.Title != "" {
		fmt.Fprintf(s.out, "\n== %s ==\n", msg.Title)
	} else {
		fmt.Fprintln(s.out)
	}
	if msg.Description != "" {
		fmt.Fprintln(s.out, msg.Description)
	}
	for _, field := range msg.Fields {
		fmt.Fprintf(s.out, "\n%s\n%s\n", field.Name, field.Value)
	}
	if len(msg.Buttons) > 0 {
		fmt.Fprintln(s.out)
		for _, button := range msg.Buttons {
			fmt.Fprintf(s.out, "  [%s] %s\n", button.Token, button.Label)
		}
	}
	s.out.Flush()
}

func (s *session) printError(err error) {
	if errors.IsNotFound(err) {
		fmt.Fprintln(s.out, "You need to register first. Restart with a fresh player id.")
	} else {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	s.out.Flush()
}
