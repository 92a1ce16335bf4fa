package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/ncmink/biebie-cli/constants/lipgloss"
	"github.com/ncmink/biebie-cli/file_scanner/models"
	"github.com/spf13/cobra"
)

// uploadCmd: biebie upload
var uploadCmd = &cobra.Command{
	Use:   "upload [inventory]",
	Short: "Upload a previously saved inventory to the metadata API",
	Long: `Upload a previously saved inventory to the metadata API.
Reads a JSON inventory produced by 'scan --save' and posts it to the configured endpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	rootDependencies := handleRootCommand(cmd)
	if rootDependencies == nil {
		return fmt.Errorf("could not initialize dependencies")
	}

	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading inventory file: %v", err)
	}

	var inventory models.ScanInventory
	if err := json.Unmarshal(data, &inventory); err != nil {
		return fmt.Errorf("error parsing inventory file: %v", err)
	}

	// Recompute the totals when the file carries none
	if inventory.TotalFiles == 0 {
		inventory.TotalFiles = len(inventory.Records)
	}
	if inventory.TotalSize == 0 {
		for _, record := range inventory.Records {
			inventory.TotalSize += record.SizeBytes
		}
	}

	if len(inventory.Records) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No files to upload."))
		return nil
	}

	// Create a context with cancel function
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootDependencies.Uploader.UploadInventory(ctx, &inventory); err != nil {
		return err
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Uploaded %d files (%s) to the metadata API!", inventory.TotalFiles, humanize.IBytes(uint64(inventory.TotalSize)))))
	return nil
}
