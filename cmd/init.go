package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/sweep/internal/profile"
)

var (
	initOutput string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter cleanup profile",
	Long:  "Write a starter profile covering common leftover locations, ready to edit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !initForce {
			if _, err := os.Stat(initOutput); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
			}
		}

		sample := profile.Sample()
		data, err := json.MarshalIndent(&sample, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(initOutput, append(data, '\n'), 0o644); err != nil {
			return err
		}

		fmt.Printf("Wrote starter profile to %s.\n", initOutput)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "sweep-profile.json", "Where to write the profile")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}
