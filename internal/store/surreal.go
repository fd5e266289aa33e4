package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/contrib/rews"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/pkg/logger"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/edudesk/faqbot/internal/models"
)

// SurrealConfig holds SurrealDB connection configuration.
type SurrealConfig struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// schemaSQL defines the conversation table. The context is stored as a
// plain nested object, so its shape tracks models.ConversationContext.
const schemaSQL = `
DEFINE TABLE IF NOT EXISTS conversation SCHEMALESS;
DEFINE FIELD IF NOT EXISTS context ON conversation TYPE object;
DEFINE FIELD IF NOT EXISTS updated ON conversation TYPE datetime;
`

// SurrealStore persists conversation contexts in SurrealDB over an
// auto-reconnecting WebSocket connection.
type SurrealStore struct {
	conn   *rews.Connection[*gorillaws.Connection]
	db     *surrealdb.DB
	logger logger.Logger
}

// conversationRecord is the stored row shape.
type conversationRecord struct {
	Context models.ConversationContext `json:"context"`
	Updated time.Time                  `json:"updated"`
}

// NewSurrealStore connects, authenticates, selects the namespace/database
// and ensures the conversation table exists.
func NewSurrealStore(ctx context.Context, cfg SurrealConfig, log *slog.Logger) (*SurrealStore, error) {
	if log == nil {
		log = slog.Default()
	}
	sdkLogger := logger.New(log.Handler())

	// surrealcbor handles SurrealDB's custom CBOR tags.
	codec := surrealcbor.New()

	// gorillaws expects the base URL without the /rpc suffix.
	baseURL := strings.TrimSuffix(cfg.URL, "/rpc")

	conn := rews.New(
		func(ctx context.Context) (*gorillaws.Connection, error) {
			ws := gorillaws.New(&connection.Config{
				BaseURL:     baseURL,
				Marshaler:   codec,
				Unmarshaler: codec,
				Logger:      sdkLogger,
			})
			return ws, nil
		},
		5*time.Second,
		codec,
		sdkLogger,
	)

	if err := conn.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	db, err := surrealdb.FromConnection(ctx, conn)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("from connection: %w", err)
	}

	if _, err := db.SignIn(ctx, surrealdb.Auth{
		Username: cfg.Username,
		Password: cfg.Password,
	}); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("signin: %w", err)
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("use: %w", err)
	}

	if _, err := surrealdb.Query[any](ctx, db, schemaSQL, nil); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("init schema: %w", err)
	}

	sdkLogger.Info("SurrealDB context store ready", "url", cfg.URL)
	return &SurrealStore{conn: conn, db: db, logger: sdkLogger}, nil
}

// Load fetches the stored context. A missing record is reported as absent,
// not as an error.
func (s *SurrealStore) Load(ctx context.Context, conversationID string) (models.ConversationContext, bool, error) {
	results, err := surrealdb.Query[[]conversationRecord](ctx, s.db, `
		SELECT context, updated FROM type::record("conversation", $id)
	`, map[string]any{"id": conversationID})
	if err != nil {
		return models.ConversationContext{}, false, fmt.Errorf("load context: %w", err)
	}
	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return models.ConversationContext{}, false, nil
	}
	return (*results)[0].Result[0].Context, true, nil
}

// Save upserts the conversation's context record.
func (s *SurrealStore) Save(ctx context.Context, conversationID string, c models.ConversationContext) error {
	_, err := surrealdb.Query[any](ctx, s.db, `
		UPSERT type::record("conversation", $id) CONTENT {
			context: $context,
			updated: time::now()
		}
	`, map[string]any{"id": conversationID, "context": c})
	if err != nil {
		return fmt.Errorf("save context: %w", err)
	}
	return nil
}

// Reset deletes the conversation's context record.
func (s *SurrealStore) Reset(ctx context.Context, conversationID string) error {
	_, err := surrealdb.Query[any](ctx, s.db, `
		DELETE type::record("conversation", $id)
	`, map[string]any{"id": conversationID})
	if err != nil {
		return fmt.Errorf("reset context: %w", err)
	}
	return nil
}

// Close closes the SurrealDB connection.
func (s *SurrealStore) Close(ctx context.Context) error {
	s.logger.Info("closing SurrealDB connection")
	return s.conn.Close(ctx)
}
