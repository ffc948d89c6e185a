package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/akyairhashvil/mutedesk/internal/api"
	"github.com/akyairhashvil/mutedesk/internal/cache"
	"github.com/akyairhashvil/mutedesk/internal/config"
	"github.com/akyairhashvil/mutedesk/internal/database"
	"github.com/akyairhashvil/mutedesk/internal/mute"
	"github.com/akyairhashvil/mutedesk/internal/tui"
	"github.com/akyairhashvil/mutedesk/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

type options struct {
	configPath string
	headless   bool
	draft      mute.Draft
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*pflag.FlagSet, options, error) {
	fs := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	config.RegisterFlags(fs)
	var opts options
	fs.StringVar(&opts.configPath, "config", os.Getenv(config.ConfigEnvVar), "config file path")
	fs.BoolVar(&opts.headless, "headless", false, "submit one mute from the flags below and exit")
	fs.StringVar(&opts.draft.PlayerSteamID, "player", "", "player Steam64 / SteamID / profile URL (headless)")
	fs.StringVar(&opts.draft.Reason, "reason", "", "mute reason (headless)")
	fs.StringVar(&opts.draft.Duration, "duration", "", "duration in minutes, 0 for permanent (headless)")
	fs.StringVar(&opts.draft.Comment, "comment", "", "optional comment (headless)")
	fs.StringVar(&opts.draft.Type, "type", config.DefaultMuteType, "mute type (headless)")
	err := fs.Parse(args)
	return fs, opts, err
}

func run(args []string) error {
	fs, opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	dataDir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	v, cfg, err := config.Load(opts.configPath, util.ConfigDir(config.AppName), dataDir, fs)
	if err != nil {
		return err
	}
	logCloser, err := util.SetupLogging(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	log := util.Component("main")

	if cfg.API.Token == "" && !opts.headless && term.IsTerminal(int(os.Stdin.Fd())) {
		token, err := promptForToken("API token (leave empty to skip): ")
		if err != nil {
			return err
		}
		cfg.API.Token = token
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	log.WithField("path", db.Path()).Debug("Opened mute cache")

	client := api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
		Log:     util.Component("api"),
	})
	refresher := cache.NewRefresher(client, db, util.Component("cache"))

	if opts.headless {
		return submitHeadless(ctx, os.Stdout, client, refresher.AfterChange(), opts.draft)
	}

	if theme := resolveTheme(ctx, db, cfg.UI.Theme, log); !tui.SetTheme(theme) {
		log.WithField("theme", theme).Warn("Unknown theme, using default")
	}
	notifier := tui.NewToastNotifier(util.Component("notifier"))
	submitter := mute.NewSubmitter(client, refresher.AfterChange(), notifier, util.Component("submit"))
	model := tui.NewDashboardModel(ctx, tui.Deps{
		DB:        db,
		Submitter: submitter,
		Refresher: refresher,
		ReportDir: util.ReportsDir(config.AppName),
		Log:       util.Component("tui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	notifier.Attach(p)
	config.Watch(v, func(next *config.Config) {
		util.SetLevel(next.Log.Level)
		if next.UI.Theme != "" {
			p.Send(tui.ThemeMsg(next.UI.Theme))
		}
		log.WithField("config", v.ConfigFileUsed()).Info("Config reloaded")
	}, func(err error) {
		log.WithError(err).Warn("Ignoring invalid config change")
	})

	log.WithField("api", cfg.API.BaseURL).Info("Starting dashboard")
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// resolveTheme picks the configured theme and remembers it, or falls back to
// the one saved by the last session.
func resolveTheme(ctx context.Context, settings database.SettingsRepository, configured string, log *logrus.Entry) string {
	if configured == "" {
		if saved, ok := settings.GetSetting(ctx, config.ThemeSetting); ok {
			return saved
		}
		return "default"
	}
	if err := settings.SetSetting(ctx, config.ThemeSetting, configured); err != nil {
		log.WithError(err).Warn("Failed to save theme")
	}
	return configured
}

// submitHeadless posts a single draft without the dashboard. Outcomes go
// to the log and a one-line summary to out.
func submitHeadless(ctx context.Context, out io.Writer, creator mute.Creator, refresher mute.Refresher, d mute.Draft) error {
	s := mute.NewSubmitter(creator, refresher, mute.LogNotifier{Log: util.Component("notifier")}, util.Component("submit"))
	err := s.Submit(ctx, d)
	if err == nil {
		fmt.Fprintln(out, mute.SuccessMessage)
		return nil
	}
	var validation *mute.ValidationFailure
	if errors.As(err, &validation) {
		fields := make([]string, 0, len(validation.Fields))
		for field := range validation.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(out, "%s: %s\n", field, validation.Fields[field])
		}
		return err
	}
	var failure mute.Failure
	if errors.As(err, &failure) {
		fmt.Fprintln(out, mute.FailureMessage(failure))
	}
	return err
}

func promptForToken(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	token, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(token)), err
}
