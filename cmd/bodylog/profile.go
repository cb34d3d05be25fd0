// ABOUTME: CLI commands for the user profile.
// ABOUTME: The single profile value is the height used for BMI derivation.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the user profile",
	Long: `Show or edit the profile. The profile holds one value: your height
in cm, used to derive BMI from logged weight. Setting it to 0 clears
it and disables derivation.

EXAMPLES:

  bodylog profile               # Show the profile
  bodylog profile height 170    # Set height
  bodylog profile height 0      # Clear height`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if h, ok := profile.Height(); ok {
			fmt.Printf("height: %g cm\n", h)
		} else {
			fmt.Println("height: not set (BMI derivation disabled)")
		}
		return nil
	},
}

var profileHeightCmd = &cobra.Command{
	Use:   "height <cm>",
	Short: "Set the profile height",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid height: %s", args[0])
		}

		profile.SetHeight(cm)
		if err := profile.Save(); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		color.Green("✓ 프로필 저장 완료")
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileHeightCmd)
	rootCmd.AddCommand(profileCmd)
}
