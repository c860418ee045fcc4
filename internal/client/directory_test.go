package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

func TestRolesClient_ListAndFind(t *testing.T) {
	t.Parallel()

	fake, server, client := newTestServer()
	defer server.Close()

	fake.setListing("/api/v3/roles", `<roles>
  <role><id>10</id><name>admin</name></role>
  <role><id>11</id><name>auditor</name></role>
</roles>`)
	fake.setDetail("/api/v3/roles/10", `<role><id>10</id><name>admin</name><scope>global</scope></role>`)
	fake.setDetail("/api/v3/roles/11", `<role><id>11</id><name>auditor</name><scope>billing</scope></role>`)

	roles, err := client.Roles().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "admin", roles[0].Name())

	role, found, err := client.Roles().Find(context.Background(), "name", "auditor", nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "11", role.Identity())

	scope, ok := role.Field("scope")
	assert.True(t, ok)
	assert.Equal(t, "billing", scope)
}

func TestRolesClient_MissingIdentity(t *testing.T) {
	t.Parallel()

	fake, server, client := newTestServer()
	defer server.Close()
	fake.setListing("/api/v3/roles", `<roles><role><name>admin</name></role></roles>`)

	// Identity is required for every resource type.
	_, err := client.Roles().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, dirsvc.IsMissingIdentity(err))
}

func TestGroupsClient_Filter(t *testing.T) {
	t.Parallel()

	fake, server, client := newTestServer()
	defer server.Close()

	fake.setListing("/api/v3/groups", `<groups>
  <group><id>5</id><name>engineering</name></group>
  <group><id>6</id><name>eng</name></group>
</groups>`)
	fake.setDetail("/api/v3/groups/6", `<group><id>6</id><name>eng</name></group>`)

	groups, err := client.Groups().Filter(context.Background(), "name", "eng", nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "6", groups[0].Identity())
}

func TestEventsClient_List(t *testing.T) {
	t.Parallel()

	fake, server, client := newTestServer()
	defer server.Close()

	fake.setListing("/api/v3/events", `<events>
  <event><id>100</id><event-type-id>8</event-type-id><created-at>2024-01-01</created-at></event>
</events>`)
	fake.setDetail("/api/v3/events/100",
		`<event><id>100</id><event-type-id>8</event-type-id><created-at>2024-01-01</created-at></event>`)

	events, err := client.Events().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "8", events[0].EventTypeID())
	assert.Equal(t, "2024-01-01", events[0].CreatedAt())
}

func TestResourceCaches_AreIndependent(t *testing.T) {
	t.Parallel()

	fake, server, client := newTestServer()
	defer server.Close()
	seedUsers(fake)
	fake.setListing("/api/v3/roles", `<roles><role><id>10</id><name>admin</name></role></roles>`)
	fake.setDetail("/api/v3/roles/10", `<role><id>10</id><name>admin</name></role>`)

	_, err := client.Users().List(context.Background(), nil)
	require.NoError(t, err)

	_, err = client.Roles().List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.listingCount(usersPath))
	assert.Equal(t, 1, fake.listingCount("/api/v3/roles"))
}

func TestDocumentCache_State(t *testing.T) {
	t.Parallel()

	cache := &documentCache{}
	assert.False(t, cache.populated())

	loads := 0
	load := func(ctx context.Context) (*dirsvc.Document, error) {
		loads++

		return dirsvc.ParseDocument([]byte(`<users><user><id>1</id></user></users>`))
	}

	doc, err := cache.ensure(context.Background(), load, false)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.True(t, cache.populated())
	assert.Equal(t, 1, loads)

	// Populated and not refreshing: no further loads.
	again, err := cache.ensure(context.Background(), load, false)
	require.NoError(t, err)
	assert.Same(t, doc, again)
	assert.Equal(t, 1, loads)

	// Reloading twice in a row with unchanged remote state yields
	// equivalent contents.
	reloaded, err := cache.ensure(context.Background(), load, true)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
	assert.Len(t, reloaded.Records("user"), len(doc.Records("user")))
}
