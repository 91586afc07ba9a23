package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/config"
)

var signupCmd = &cobra.Command{
	Use:   "signup <name> <email>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, email := args[0], args[1]

		password, err := readLine("Password: ")
		if err != nil {
			return err
		}
		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		resp, err := apiClient.Register(cmd.Context(), name, email, password)
		if err != nil {
			return fmt.Errorf("signing up: %w", err)
		}

		cfg.Token = resp.Token
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Printf("Account created. Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
}
