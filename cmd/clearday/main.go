package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"clearday.dev/clearday/internal/assist"
	"clearday.dev/clearday/internal/cli"
	"clearday.dev/clearday/internal/constants"
	apperrors "clearday.dev/clearday/internal/errors"
	"clearday.dev/clearday/internal/interaction"
	"clearday.dev/clearday/internal/journal"
	"clearday.dev/clearday/internal/keyring"
	"clearday.dev/clearday/internal/logger"
	"clearday.dev/clearday/internal/notify"
	"clearday.dev/clearday/internal/profile"
	"clearday.dev/clearday/internal/storage"
	"clearday.dev/clearday/internal/triggers"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	Store   string `help:"Store path. A .db suffix selects the sqlite backend." type:"path" default:"~/.config/clearday/store"`
	Proxy   string `help:"Assist proxy base URL. When unset the upstream API is called directly." env:"CLEARDAY_PROXY"`

	Init      cli.InitCmd      `cmd:"" help:"Set up your profile."`
	Status    cli.StatusCmd    `cmd:"" help:"Show your progress dashboard." default:"1"`
	Checkin   cli.CheckinCmd   `cmd:"" help:"Check in for today."`
	Journal   cli.JournalCmd   `cmd:"" help:"Keep a recovery journal."`
	Trigger   cli.TriggerCmd   `cmd:"" help:"Track what sets off urges."`
	Why       cli.WhyCmd       `cmd:"" help:"Revisit your reasons for sobriety."`
	Benefits  cli.BenefitsCmd  `cmd:"" help:"See what your body and mind regain over time."`
	Coping    cli.CopingCmd    `cmd:"" help:"Browse urge-management techniques."`
	Community cli.CommunityCmd `cmd:"" help:"Find support communities."`
	Emergency cli.EmergencyCmd `cmd:"" help:"Show 24/7 crisis lines."`
	Assist    cli.AssistCmd    `cmd:"" help:"AI-powered support."`
	Settings  cli.SettingsCmd  `cmd:"" help:"View or change settings."`
	Serve     cli.ServeCmd     `cmd:"" help:"Run the assist proxy server."`
	Notify    cli.NotifyCmd    `cmd:"" hidden:"" help:"Send a test notification."`
	Dump      cli.DebugCmd     `cmd:"" hidden:"" help:"List raw store keys."`
}

// commandChecksIn reports whether running this command counts as opening the
// app: those activations evaluate the daily streak before the command runs.
func commandChecksIn(command string) bool {
	root := strings.SplitN(command, " ", 2)[0]
	switch root {
	case "init", "serve", "notify", "dump":
		return false
	}
	return true
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("clearday"),
		kong.Description("Sobriety support companion"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Store),
	}); err != nil {
		apperrors.Fatal(err)
	}

	var backend storage.Backend
	var err error
	if strings.HasSuffix(CLI.Store, ".db") {
		backend, err = storage.NewSQLiteBackend(CLI.Store)
	} else {
		backend, err = storage.NewDiskvBackend(CLI.Store)
	}
	if err != nil {
		apperrors.Fatal(err)
	}

	store := storage.NewStore(backend)
	defer store.Close()

	if err := store.StartWatch(context.Background()); err != nil {
		logger.Warn("store watcher unavailable", "error", err)
	}

	keyring.MigrateFromStore(store)

	journalStore := journal.NewStore(store)
	triggerStore := triggers.NewStore(store)
	store.Subscribe(func(key string) {
		switch key {
		case constants.KeyJournalEntries:
			journalStore.Reload()
		case constants.KeyTriggers:
			triggerStore.Reload()
		}
	})

	var client assist.Client
	if CLI.Proxy != "" {
		client = assist.NewProxyClient(CLI.Proxy)
	} else if key, err := keyring.GetAPIKey(); err == nil {
		client = assist.NewAnthropicClient(key)
	} else {
		client = assist.NewAnthropicClient("")
	}

	notifier := notify.NewDesktop(store)
	tracker := interaction.NewTracker(notifier)
	defer tracker.Close()

	facade := assist.New(store, client)
	defer facade.Close()

	appCtx := &cli.Context{
		Store:    store,
		Profile:  profile.NewManager(store),
		Journal:  journalStore,
		Triggers: triggerStore,
		Assist:   facade,
		Notifier: notifier,
		Tracker:  tracker,
	}

	if commandChecksIn(ctx.Command()) {
		tracker.Touch(time.Now())
		appCtx.Milestone = appCtx.Profile.Checkin()
		if appCtx.Milestone != nil {
			if err := notifier.Notify("Milestone unlocked", fmt.Sprintf("%s %s", appCtx.Milestone.Badge, appCtx.Milestone.Message)); err != nil {
				logger.Debug("milestone notification not delivered", "error", err)
			}
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		store.Close()
		os.Exit(1)
	}
}
