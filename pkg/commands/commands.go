package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/logging"
	"tableflip.dev/workout/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "workout",
		Short: base.Wrap80("Plan and log calisthenics training days on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDay(topLevel)
	addWatch(topLevel)
	addAdd(topLevel)
	addLadder(topLevel)
	addEdit(topLevel)
	addComplete(topLevel)
	addStrike(topLevel)
	addSwap(topLevel)
	addLog(topLevel)
	addReport(topLevel)
	addMigrate(topLevel)
	addPreset(topLevel)
	addGoal(topLevel)
	addRecord(topLevel)
	addKey(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// loadService opens the store named by the config with a logger at the
// configured level.
func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel())
	p, err := store.Load(cfg, store.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p, Log: log}, nil
}
