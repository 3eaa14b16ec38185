package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wallgen",
	Short: "Minimalist wallpaper generator",
	Long: `wallgen renders a minimalist wallpaper: a solid background color with the
color's name and its display formats drawn in a contrasting highlight color.

Colors accept #hex, R,G,B triples and CSS names. The background defaults to
"random" and the highlight to "inverted", in which case both are chosen to
satisfy the requested contrast thresholds.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
