package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/timescale/intrinsic-names/internal/intrinsics/config"
	"github.com/timescale/intrinsic-names/internal/intrinsics/filter"
)

// filterCompletionsByPrefix narrows shell completion suggestions to the
// items starting with what the user has typed so far.
func filterCompletionsByPrefix(items []string, prefix string) []string {
	return slices.Collect(filter.ByPrefix(slices.Values(items), prefix))
}

func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterCompletionsByPrefix(config.OutputFormats(), toComplete), cobra.ShellCompDirectiveNoFileComp
}
