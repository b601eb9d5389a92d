package store

import (
	"context"
	"fmt"

	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

type permissionStore struct {
	*MYSQLStore
}

// Permissions returns an object implementing dependency.Permissions interface
func (ms *MYSQLStore) Permissions() dependency.Permissions {
	return &permissionStore{
		MYSQLStore: ms,
	}
}

func (ps *permissionStore) PermissionsByRoles(ctx context.Context, roles []string) ([]entity.RolePermission, error) {
	if len(roles) == 0 {
		return []entity.RolePermission{}, nil
	}
	query := `
		SELECT role, subject, module, action
		FROM role_permission
		WHERE role IN (:roles)
	`
	rows, err := QueryListNamed[entity.RolePermission](ctx, ps.DB(), query, map[string]any{"roles": roles})
	if err != nil {
		return nil, fmt.Errorf("can't get permissions by roles: %w", err)
	}
	return rows, nil
}

// AddRolePermission grants a permission to a role. Granting twice is a no-op.
func (ps *permissionStore) AddRolePermission(ctx context.Context, rp entity.RolePermission) error {
	query := `
		INSERT INTO role_permission (role, subject, module, action)
		VALUES (:role, :subject, :module, :action)
	`
	err := ExecNamed(ctx, ps.DB(), query, map[string]any{
		"role":    rp.Role,
		"subject": rp.Subject,
		"module":  rp.Module,
		"action":  rp.Action,
	})
	if err != nil && !ps.IsErrUniqueViolation(err) {
		return fmt.Errorf("can't add role permission: %w", err)
	}
	return nil
}
