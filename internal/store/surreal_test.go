//go:build integration

// Integration tests for the SurrealDB context store. They spin up a real
// SurrealDB container, so they need Docker:
//
//	go test -tags integration ./internal/store/
package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/edudesk/faqbot/internal/models"
)

var testStore *SurrealStore
var testContainer testcontainers.Container

// TestMain sets up and tears down the SurrealDB container for all tests.
func TestMain(m *testing.M) {
	// Disable ryuk (cleanup container) as it can cause issues in some environments
	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")

	ctx := context.Background()

	var err error
	testContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "surrealdb/surrealdb:v3.0.0-beta.1",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"start", "--log", "info", "--user", "root", "--pass", "root"},
			WaitingFor:   wait.ForLog("Started web server").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start SurrealDB container: %v", err)
	}

	host, err := testContainer.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	// Workaround: testcontainers may return "null" as host in some environments
	if host == "" || host == "null" {
		host = "localhost"
	}
	mappedPort, err := testContainer.MappedPort(ctx, "8000")
	if err != nil {
		log.Fatalf("Failed to get mapped port: %v", err)
	}

	testStore, err = NewSurrealStore(ctx, SurrealConfig{
		URL:       fmt.Sprintf("ws://%s:%s/rpc", host, mappedPort.Port()),
		Namespace: "test",
		Database:  "test",
		Username:  "root",
		Password:  "root",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	code := m.Run()

	_ = testStore.Close(ctx)
	_ = testContainer.Terminate(ctx)

	os.Exit(code)
}

func TestSurrealStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok, err := testStore.Load(ctx, "roundtrip-1")
	require.NoError(t, err)
	assert.False(t, ok)

	faqID := 2
	saved := models.ConversationContext{
		LastIntent:   "admissions",
		LastEntities: models.EntitySet{Year: "2", CourseCodes: []string{"CS101"}},
		LastQuery:    "fees for 2nd year CS101",
		LastFaqID:    &faqID,
		TurnCount:    1,
	}
	require.NoError(t, testStore.Save(ctx, "roundtrip-1", saved))
	defer func() { _ = testStore.Reset(ctx, "roundtrip-1") }()

	got, ok, err := testStore.Load(ctx, "roundtrip-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved.LastIntent, got.LastIntent)
	assert.Equal(t, saved.LastEntities, got.LastEntities)
	assert.Equal(t, saved.LastQuery, got.LastQuery)
	require.NotNil(t, got.LastFaqID)
	assert.Equal(t, faqID, *got.LastFaqID)
	assert.Equal(t, 1, got.TurnCount)
}

func TestSurrealStoreOverwrite(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, testStore.Save(ctx, "overwrite-1", models.ConversationContext{LastIntent: "hostel", TurnCount: 1}))
	require.NoError(t, testStore.Save(ctx, "overwrite-1", models.ConversationContext{LastIntent: "exams", TurnCount: 2}))
	defer func() { _ = testStore.Reset(ctx, "overwrite-1") }()

	got, ok, err := testStore.Load(ctx, "overwrite-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "exams", got.LastIntent)
	assert.Equal(t, 2, got.TurnCount)
}

func TestSurrealStoreReset(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, testStore.Save(ctx, "reset-1", models.ConversationContext{TurnCount: 1}))
	require.NoError(t, testStore.Reset(ctx, "reset-1"))

	_, ok, err := testStore.Load(ctx, "reset-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Resetting an unknown conversation is not an error.
	require.NoError(t, testStore.Reset(ctx, "never-seen"))
}
