package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// Root - builds the tictactoe command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe against a computer that never loses",
		Long: heredoc.Doc(`
			Tic-tac-toe against a computer that never loses.

			The computer searches the whole game tree before every move, so the
			best a human can do is a draw.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringP("config", "c", "./config.yml", "Path to the config file")

	root.AddCommand(Serve())
	root.AddCommand(Play())

	return root
}
