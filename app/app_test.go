package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastyhub/dashboard-manager/config"
	httpapi "github.com/tastyhub/dashboard-manager/internal/api/http"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/auth"
	"github.com/tastyhub/dashboard-manager/internal/dashboard"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	"github.com/tastyhub/dashboard-manager/internal/permission"
	"github.com/tastyhub/dashboard-manager/internal/seed"
	"github.com/tastyhub/dashboard-manager/internal/warmup"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Storage:   config.StorageConfig{Type: config.StorageMemory},
		HTTP:      httpapi.Config{Address: "127.0.0.1", Port: "0"},
		Auth:      auth.Config{JWTSecret: "secret", JWTTTL: "1h"},
		Dashboard: dashboard.Config{Timezone: "UTC"},
		Warmup:    warmup.Config{WorkerInterval: time.Hour, Periods: []string{"day"}},
	}
}

func TestOpenRepositoryMemory(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenRepository(ctx, memoryConfig())
	require.NoError(t, err)
	defer repo.Close()

	rows, err := repo.Permissions().PermissionsByRoles(ctx, []string{entity.RoleAdmin})
	require.NoError(t, err)
	set := permission.NewSet([]string{entity.RoleAdmin}, rows)
	assert.True(t, set.Has(entity.SubjectAdmin, entity.ModuleDashboard, entity.ActionRead))
	assert.False(t, set.Has(entity.SubjectAdmin, "settings", "write"))

	rows, err = repo.Permissions().PermissionsByRoles(ctx, []string{entity.RoleRestaurantOps})
	require.NoError(t, err)
	set = permission.NewSet([]string{entity.RoleRestaurantOps}, rows)
	assert.False(t, set.Has(entity.SubjectAdmin, entity.ModuleDashboard, entity.ActionRead))
}

func TestOpenRepositoryMemorySeed(t *testing.T) {
	ctx := context.Background()
	w := entity.TimeWindow{Start: time.Now().AddDate(-5, 0, 0), End: time.Now().Add(time.Hour)}

	repo, err := OpenRepository(ctx, memoryConfig())
	require.NoError(t, err)
	byStatus, err := repo.Metrics().GroupOrdersByStatus(ctx, w)
	require.NoError(t, err)
	assert.Empty(t, byStatus)
	repo.Close()

	c := memoryConfig()
	c.Storage.Seed = true
	repo, err = OpenRepository(ctx, c)
	require.NoError(t, err)
	defer repo.Close()

	byStatus, err = repo.Metrics().GroupOrdersByStatus(ctx, w)
	require.NoError(t, err)
	total := 0
	for _, nv := range byStatus {
		total += int(nv.Value.IntPart())
	}
	assert.Equal(t, seed.DefaultConfig().Orders, total)

	// permissions survive seeding
	rows, err := repo.Permissions().PermissionsByRoles(ctx, []string{entity.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
}

func TestStartStopMemory(t *testing.T) {
	ctx := context.Background()
	a := New(memoryConfig())
	require.NoError(t, a.Start(ctx))
	// no redis configured, so nothing to warm
	assert.Nil(t, a.cache)
	assert.Nil(t, a.wu)

	a.Stop(ctx)
	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("app did not exit")
	}
}

func TestStartFailsWithoutSecret(t *testing.T) {
	c := memoryConfig()
	c.Auth.JWTSecret = ""
	a := New(c)
	assert.Error(t, a.Start(context.Background()))
	a.Stop(context.Background())
}
