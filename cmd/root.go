package cmd

import (
	"fmt"
	"github.com/ncmink/biebie-cli/config"
	"github.com/ncmink/biebie-cli/constants/lipgloss"
	"github.com/ncmink/biebie-cli/file_scanner"
	"github.com/ncmink/biebie-cli/file_scanner/contracts"
	"github.com/ncmink/biebie-cli/stats_tracker"
	contracts2 "github.com/ncmink/biebie-cli/stats_tracker/contracts"
	"github.com/ncmink/biebie-cli/uploader"
	contracts3 "github.com/ncmink/biebie-cli/uploader/contracts"
	"github.com/spf13/cobra"
	"os"
)

// RootDependencies holds the dependencies for the root command
type RootDependencies struct {
	Config       *config.Config
	Cwd          string
	Scanner      contracts.IFileScanner
	StatsTracker contracts2.IStatsTracker
	Uploader     contracts3.IInventoryUploader
}

// rootCmd: biebie
var rootCmd = &cobra.Command{
	Use:   "biebie",
	Short: "biebie CLI for scanning folders and collecting file metadata.",
	Long: `biebie walks a folder tree, fingerprints every eligible file, drops the
duplicates and reports the resulting inventory. The inventory can be printed,
saved to disk or uploaded to a metadata API.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			rootDependencies := handleRootCommand(cmd)
			if rootDependencies == nil {
				return
			}
			fmt.Println(lipgloss.BlueSky.Render(fmt.Sprintf("biebie version %s", rootDependencies.Config.Version)))
			return
		}
		_ = cmd.Help()
	},
}

// handleRootCommand initializes the shared dependencies for all subcommands.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {

	rootDependencies := &RootDependencies{}

	var err error
	rootDependencies.Cwd, err = os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	rootDependencies.Config = config.LoadConfigs(cmd, rootDependencies.Cwd)

	rootDependencies.StatsTracker = stats_tracker.NewStatsTracker()

	rootDependencies.Scanner = file_scanner.NewFileScanner(rootDependencies.StatsTracker)

	rootDependencies.Uploader = uploader.NewInventoryUploader(rootDependencies.Config.APIConfig)

	return rootDependencies
}

// Execute runs the root command and exits on failure.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}
