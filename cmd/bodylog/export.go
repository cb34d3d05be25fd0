// ABOUTME: CLI command for exporting the entry log.
// ABOUTME: Supports JSON and YAML; round-trips every stored key.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOutput string

// exportEnvelope wraps the collection for backup files.
type exportEnvelope struct {
	Version    string      `json:"version" yaml:"version"`
	ExportedAt time.Time   `json:"exported_at" yaml:"exported_at"`
	Tool       string      `json:"tool" yaml:"tool"`
	Entries    interface{} `json:"entries" yaml:"entries"`
}

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the entry log",
	Long: `Export the entry log for backup or sharing.

FORMATS:

  json   Full JSON export (suitable for backup)
  yaml   YAML export (human-readable)

Every stored key is exported, including ones this tool does not
understand, so foreign data survives a backup round-trip.

EXAMPLES:

  bodylog export json                 # Export to stdout
  bodylog export json -o backup.json  # Save to file
  bodylog export yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		// Go through the canonical JSON form so the export carries the
		// exact field set the store persists, unknown keys included.
		raw, err := json.Marshal(st.Entries())
		if err != nil {
			return fmt.Errorf("failed to encode entries: %w", err)
		}
		var entries interface{}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("failed to encode entries: %w", err)
		}

		envelope := exportEnvelope{
			Version:    "1.0",
			ExportedAt: time.Now(),
			Tool:       "bodylog",
			Entries:    entries,
		}

		var data []byte
		switch format {
		case "json":
			data, err = json.MarshalIndent(envelope, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(envelope)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
