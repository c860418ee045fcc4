package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/identkit-io/dirsvc/internal/constants"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store directory API credentials",
		Long:  "Prompt for an API key and save it with the endpoint to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, endpoint)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "API endpoint URL (defaults to the configured --api value)")

	return cmd
}

func runLogin(cmd *cobra.Command, endpoint string) error {
	if endpoint == "" {
		endpoint = viper.GetString("api")
	}

	if endpoint == "" {
		return dirsvc.ErrAPIEndpointRequired
	}

	cmd.Print("API key: ")

	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))

	cmd.Println()

	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}

	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return dirsvc.ErrAPIKeyRequired
	}

	viper.Set("api", endpoint)
	viper.Set("api-key", apiKey)

	err = viper.WriteConfig()
	if err == nil {
		cmd.Printf("Credentials saved for %s\n", endpoint)

		return nil
	}

	// No config file yet; create the default one.
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".dirctl")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yml")

	err = viper.WriteConfigAs(configFile)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	err = os.Chmod(configFile, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("restricting config file permissions: %w", err)
	}

	cmd.Printf("Credentials saved to %s\n", configFile)

	return nil
}
