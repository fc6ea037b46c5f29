package cli

import (
	"github.com/spf13/cobra"

	"github.com/anchor-tui/anchor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "anchor",
	Short:         "Read documents with an anchored call-to-action",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Anchor is a terminal document viewer for content that ends in a
call-to-action: release notes with an "Update now" button, a license
with "Accept", an onboarding page with "Continue".

The action renders inline at its natural place at the end of the
document. When the document is taller than the window, a pinned copy is
anchored to the bottom of the screen until you scroll the real one into
view; exactly one of the two is ever visible and interactive.

Getting started:
- View a document: anchor view notes.md (or just: anchor notes.md)
- Check whether a document overflows the terminal: anchor check notes.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// A bare file argument opens the viewer.
		if len(args) == 1 {
			return runView(cmd, args)
		}
		return cmd.Help()
	},
}

// GlobalOptions holds global configuration flags for testing and path overrides
type GlobalOptions struct {
	ConfigHome string // Override for ~/.anchor directory
	AnchorDir  string // Override for .anchor directory name
}

// GlobalOpts holds the parsed global flags (exported for testing)
var GlobalOpts GlobalOptions

// GetConfigOptions returns config options based on global flags
func GetConfigOptions() config.Options {
	opts := config.DefaultOptions()
	if GlobalOpts.ConfigHome != "" {
		opts.ConfigHome = GlobalOpts.ConfigHome
	}
	if GlobalOpts.AnchorDir != "" {
		opts.AnchorDirName = GlobalOpts.AnchorDir
	}
	return opts
}

// LoadConfigForCommand loads Config with options from global flags
func LoadConfigForCommand() (*config.Config, error) {
	return config.LoadWithOptions(GetConfigOptions())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.ConfigHome, "config-home", "", "Override ~/.anchor directory (for testing)")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.AnchorDir, "anchor-dir", ".anchor", "Override .anchor directory name")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(checkCmd)
}
