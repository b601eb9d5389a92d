package store

import (
	"context"
	"fmt"

	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

type activityStore struct {
	*MYSQLStore
}

// Activity returns an object implementing dependency.Activity interface
func (ms *MYSQLStore) Activity() dependency.Activity {
	return &activityStore{
		MYSQLStore: ms,
	}
}

func (as *activityStore) RecentActivities(ctx context.Context, limit int) ([]entity.Activity, error) {
	query := `
		SELECT id, actor, action, entity_type, entity_id, description, created_at
		FROM activity_log
		ORDER BY created_at DESC, id DESC
		LIMIT :limit
	`
	rows, err := QueryListNamed[entity.Activity](ctx, as.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get recent activities: %w", err)
	}
	return rows, nil
}

func (as *activityStore) AddActivity(ctx context.Context, a *entity.Activity) (int, error) {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = as.Now()
	}
	query := `
		INSERT INTO activity_log (actor, action, entity_type, entity_id, description, created_at)
		VALUES (:actor, :action, :entityType, :entityId, :description, :createdAt)
	`
	id, err := ExecNamedLastId(ctx, as.DB(), query, map[string]any{
		"actor":       a.Actor,
		"action":      a.Action,
		"entityType":  a.EntityType,
		"entityId":    a.EntityId,
		"description": a.Description,
		"createdAt":   createdAt,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add activity: %w", err)
	}
	return id, nil
}
