package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/delivops/release-notes-generator/internal/config"
	"github.com/delivops/release-notes-generator/internal/i18n"
	"github.com/delivops/release-notes-generator/internal/infrastructure/ai"
	slackchat "github.com/delivops/release-notes-generator/internal/infrastructure/chat/slack"
	"github.com/delivops/release-notes-generator/internal/infrastructure/vcs/github"
	"github.com/delivops/release-notes-generator/internal/logger"
	"github.com/delivops/release-notes-generator/internal/services"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "release-notes-generator",
		Usage: "Generate AI release notes from merged GitHub pull requests and post them to Slack",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "repos",
				Usage:    "comma-separated list of owner/repo identifiers",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "days-back",
				Usage: "number of days to look back for merged pull requests",
				Value: 7,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging with source positions",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

	repos := splitRepos(cmd.String("repos"))
	if len(repos) == 0 {
		return fmt.Errorf("no valid repositories provided in --repos")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	trans, err := i18n.NewTranslations("en")
	if err != nil {
		return err
	}

	provider, err := ai.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}

	vcsClient := github.NewClient(cfg.GithubToken)
	notifier := slackchat.NewNotifier(cfg.SlackBotToken, cfg.SlackChannel, trans)

	// Startup connectivity checks: fail before touching any repository.
	login, err := vcsClient.CheckAuth(ctx)
	if err != nil {
		return fmt.Errorf("github connection failed: %w", err)
	}
	logger.Info(ctx, "github connection successful", "login", login)

	if err := notifier.CheckAuth(ctx); err != nil {
		return fmt.Errorf("slack connection failed: %w", err)
	}
	logger.Info(ctx, "slack connection successful")

	if err := provider.TestConnection(ctx); err != nil {
		return fmt.Errorf("AI provider connection failed: %w", err)
	}
	logger.Info(ctx, "AI provider connection successful", "provider", provider.Name())

	generator := services.NewGenerator(vcsClient, services.NewSummarizer(provider, trans), notifier, trans, cfg.OutputFile)
	return generator.Generate(ctx, repos, int(cmd.Int("days-back")))
}

func splitRepos(value string) []string {
	var repos []string
	for _, repo := range strings.Split(value, ",") {
		if repo = strings.TrimSpace(repo); repo != "" {
			repos = append(repos, repo)
		}
	}
	return repos
}
