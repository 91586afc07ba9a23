package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudvault/cli/internal/api"
	"github.com/cloudvault/cli/internal/config"
)

var flagToken string

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Authenticate with your CloudVault server",
	Long: `Authenticate using email and password, or an existing API token.

  cloudvault login alice@example.com
  cloudvault login --token cv_abc123...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&flagToken, "token", "", "API token for direct authentication")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if flagToken != "" {
		// Validate the token before storing it.
		client := api.NewClient(cfg.ServerURL, flagToken)
		user, err := client.Me(ctx)
		if err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) && apiErr.Status == 401 {
				return fmt.Errorf("invalid token — server returned 401")
			}
			return fmt.Errorf("validating token: %w", err)
		}
		cfg.Token = flagToken
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Email)
		return nil
	}

	email := ""
	if len(args) > 0 {
		email = args[0]
	}
	if email == "" {
		var err error
		email, err = readLine("Email: ")
		if err != nil {
			return err
		}
	}
	password, err := readLine("Password: ")
	if err != nil {
		return err
	}

	resp, err := apiClient.Login(ctx, email, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			return fmt.Errorf("invalid email or password")
		}
		return fmt.Errorf("logging in: %w", err)
	}

	cfg.Token = resp.Token
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
	return nil
}
