//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/identkit-io/dirsvc/pkg/dirclient"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

const testAPIKey = "integration-key"

func newIntegrationClient(t *testing.T, directory *mockDirectory) dirsvc.Client {
	t.Helper()

	server := directory.start()
	t.Cleanup(server.Close)

	client, err := dirclient.New(&dirsvc.Config{
		APIEndpoint: server.URL,
		APIKey:      testAPIKey,
	})
	require.NoError(t, err)

	return client
}

// TestWorkflow_UserJourney walks the complete lookup surface against an
// in-process directory server: list, filter, find, per-id get, and refresh
// after the remote state changes.
func TestWorkflow_UserJourney(t *testing.T) {
	directory := newMockDirectory(testAPIKey)
	directory.addRecord("users", map[string]string{
		"id": "1", "email": "alice@corp.test", "username": "alice",
		"firstname": "Alice", "lastname": "Anders",
	})
	directory.addRecord("users", map[string]string{
		"id": "2", "email": "bob@corp.test", "username": "bob",
		"firstname": "Bob", "lastname": "Baker",
	})

	client := newIntegrationClient(t, directory)
	ctx := context.Background()

	// 1. List everything.
	users, err := client.Users().List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username())

	// 2. Filter by field.
	filtered, err := client.Users().Filter(ctx, "email", "bob@corp.test", nil)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].Identity())

	// 3. Find first match, and a miss.
	user, found, err := client.Users().Find(ctx, "username", "alice", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Anders", user.LastName())

	_, found, err = client.Users().Find(ctx, "username", "nobody", nil)
	require.NoError(t, err)
	assert.False(t, found)

	// 4. Direct per-id fetch.
	direct, err := client.Users().Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "bob@corp.test", direct.Email())

	// 5. The remote changes; refresh makes the new state visible.
	directory.removeRecord("users", "1")
	directory.addRecord("users", map[string]string{
		"id": "3", "email": "carol@corp.test", "username": "carol",
		"firstname": "Carol", "lastname": "Clark",
	})

	require.NoError(t, client.Users().Refresh(ctx))

	users, err = client.Users().List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username())
	assert.Equal(t, "carol", users[1].Username())
}

// TestWorkflow_AllResources exercises every resource client end to end.
func TestWorkflow_AllResources(t *testing.T) {
	directory := newMockDirectory(testAPIKey)
	directory.addRecord("users", map[string]string{"id": "1", "email": "alice@corp.test", "username": "alice"})
	directory.addRecord("roles", map[string]string{"id": "10", "name": "admin"})
	directory.addRecord("groups", map[string]string{"id": "20", "name": "engineering"})
	directory.addRecord("events", map[string]string{"id": "30", "event-type-id": "8", "created-at": "2025-01-15"})

	client := newIntegrationClient(t, directory)
	ctx := context.Background()

	users, err := client.Users().List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, users, 1)

	role, found, err := client.Roles().Find(ctx, "name", "admin", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "10", role.Identity())

	groups, err := client.Groups().Filter(ctx, "name", "engineering", nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	event, err := client.Events().Get(ctx, "30")
	require.NoError(t, err)
	assert.Equal(t, "8", event.EventTypeID())
}

// TestWorkflow_BadCredential verifies the server rejects a wrong key and the
// client surfaces it as a network error with the status attached.
func TestWorkflow_BadCredential(t *testing.T) {
	directory := newMockDirectory(testAPIKey)
	directory.addRecord("users", map[string]string{"id": "1", "email": "alice@corp.test"})

	server := directory.start()
	t.Cleanup(server.Close)

	client, err := dirclient.New(&dirsvc.Config{
		APIEndpoint: server.URL,
		APIKey:      "wrong-key",
	})
	require.NoError(t, err)

	_, err = client.Users().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, dirsvc.IsNetworkError(err))

	netErr := &dirsvc.NetworkError{}
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, 401, netErr.StatusCode)
}
