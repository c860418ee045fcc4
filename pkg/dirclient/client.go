// Package dirclient provides the main entry point for creating directory
// API clients.
package dirclient

import (
	"fmt"
	"strings"

	"github.com/identkit-io/dirsvc/internal/client"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// New creates a new directory API client.
func New(config *dirsvc.Config) (dirsvc.Client, error) {
	if config == nil {
		return nil, dirsvc.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, dirsvc.ErrAPIEndpointRequired
	}

	if config.APIKey == "" {
		return nil, dirsvc.ErrAPIKeyRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	directoryClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return directoryClient, nil
}
