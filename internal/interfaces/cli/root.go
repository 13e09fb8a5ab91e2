package cli

import "github.com/spf13/cobra"

// NewRootCmd builds the asphalt command tree.
func NewRootCmd(version string) *cobra.Command {
	o := DefaultGlobalOptions()

	cmd := &cobra.Command{
		Use:          "asphalt",
		Short:        "Estimate asphalt tonnage and cost for a paved area",
		Version:      version,
		SilenceUsage: true,
	}
	o.Bind(cmd.PersistentFlags())

	cmd.AddCommand(NewCmdEstimate(o))
	cmd.AddCommand(NewCmdInteractive(o))
	cmd.AddCommand(NewCmdSections(o))
	cmd.AddCommand(NewCmdCurve(o))

	return cmd
}
