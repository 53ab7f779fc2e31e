package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(workout completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(workout completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// presetArgs completes preset ids, described by preset name.
func presetArgs(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return presetCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func presetCompletions(toComplete string) []string {
	svc, err := loadService()
	if err != nil {
		return nil
	}
	ps, err := svc.Presets(context.Background())
	if err != nil {
		return nil
	}
	cs := make([]string, 0, len(ps))
	for _, p := range ps {
		id := fmt.Sprint(p.ID)
		if strings.HasPrefix(id, toComplete) {
			cs = append(cs, id+"\t"+p.Name)
		}
	}
	return cs
}
