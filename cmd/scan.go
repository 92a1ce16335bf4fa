package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/ncmink/biebie-cli/constants/lipgloss"
	"github.com/ncmink/biebie-cli/file_scanner/models"
	"github.com/ncmink/biebie-cli/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"
)

// scanCmd: biebie scan
var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "Scan a folder tree and build a deduplicated file inventory.",
	Long: `The 'scan' subcommand walks the given folder (or the current directory when
none is given), fingerprints every eligible file in parallel, drops duplicate
contents and prints the resulting inventory. The inventory can also be saved
to a JSON file or uploaded to the configured metadata API.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleScanCommand(rootDependencies, cmd, args)
	},
}

func init() {
	// Define command-specific flags
	scanCmd.Flags().StringP("output", "o", "table", "Output format for the inventory ('table' or 'json')")
	scanCmd.Flags().String("save", "", "Write the inventory as JSON to the given file")
	scanCmd.Flags().BoolP("upload", "u", false, "Upload the inventory to the configured metadata API")
	scanCmd.Flags().BoolP("force", "f", false, "Upload without confirmation")

	// Add the scan command to the root command
	rootCmd.AddCommand(scanCmd)
}

func handleScanCommand(rootDependencies *RootDependencies, cmd *cobra.Command, args []string) {

	output, _ := cmd.Flags().GetString("output")
	savePath, _ := cmd.Flags().GetString("save")
	upload, _ := cmd.Flags().GetBool("upload")
	force, _ := cmd.Flags().GetBool("force")

	rootDir := rootDependencies.Cwd
	if len(args) > 0 {
		rootDir = args[0]
	}

	if _, err := os.Stat(rootDir); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading folder: %v", err)))
		os.Exit(1)
	}

	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Scanning %s with %d workers", rootDir, rootDependencies.Scanner.Workers())))

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerScan, _ := spinner.Start("Scanning files...")

	inventory, err := rootDependencies.Scanner.Scan(rootDir)
	if err != nil {
		spinnerScan.Stop()
		fmt.Print("\r")
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	spinnerScan.Stop()
	fmt.Print("\r")

	if err := renderInventory(inventory, output, rootDependencies.Config.Theme); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	rootDependencies.StatsTracker.DisplayStats()

	if savePath != "" {
		if err := saveInventory(inventory, savePath); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error saving inventory: %v", err)))
			os.Exit(1)
		}
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Inventory saved to %s", savePath)))
	}

	if upload {
		if len(inventory.Records) == 0 {
			fmt.Println(lipgloss.Yellow.Render("No files to upload."))
			return
		}

		if !force {
			reader := bufio.NewReader(os.Stdin)
			accepted, err := utils.ConfirmPrompt(fmt.Sprintf("Upload %d files to %s?", inventory.TotalFiles, rootDependencies.Config.APIConfig.BaseURL), reader)
			if err != nil {
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting user prompt: %v", err)))
				os.Exit(1)
			}
			if !accepted {
				fmt.Println(lipgloss.Yellow.Render("Upload cancelled."))
				return
			}
		}

		uploadInventory(rootDependencies, inventory)
	}
}

// renderInventory prints the inventory in the requested output format.
func renderInventory(inventory *models.ScanInventory, output string, theme string) error {
	switch output {
	case "json":
		data, err := json.MarshalIndent(inventory, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling inventory: %v", err)
		}
		return utils.RenderAndPrintJSON(string(data), theme)
	case "table":
		tableData := pterm.TableData{{"Path", "Size", "Type", "Category", "Fingerprint"}}
		for _, record := range inventory.Records {
			tableData = append(tableData, []string{
				record.Path,
				humanize.IBytes(uint64(record.SizeBytes)),
				record.ContentType,
				string(record.Category),
				record.Fingerprint,
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

// saveInventory writes the inventory as indented JSON.
func saveInventory(inventory *models.ScanInventory, path string) error {
	data, err := json.MarshalIndent(inventory, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

// uploadInventory sends the inventory to the metadata API.
func uploadInventory(rootDependencies *RootDependencies, inventory *models.ScanInventory) {

	// Create a context with cancel function
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true)

	spinnerUpload, _ := spinner.Start("Uploading metadata...")

	err := rootDependencies.Uploader.UploadInventory(ctx, inventory)
	if err != nil {
		spinnerUpload.Stop()
		fmt.Print("\r")
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	spinnerUpload.Stop()
	fmt.Print("\r")
	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Uploaded %d files (%s) to the metadata API!", inventory.TotalFiles, humanize.IBytes(uint64(inventory.TotalSize)))))
}
