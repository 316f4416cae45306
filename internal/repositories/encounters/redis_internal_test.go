package encounters

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/metrics"
	"github.com/KirkDiggler/rpg-gm-api/internal/testutils"
)

func TestWatchCountsConflictsByOperation(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := NewRedisRepository(&RedisConfig{Client: client})
	require.NoError(t, err)
	r := repo.(*redisRepository)

	ctx := context.Background()
	key := encounterKey("contested")
	conflicts := metrics.TxConflicts.WithLabelValues("update")
	drafts := metrics.TxConflicts.WithLabelValues("replace_draft")
	before, draftsBefore := testutil.ToFloat64(conflicts), testutil.ToFloat64(drafts)

	err = r.watch(ctx, "update", func(tx *redis.Tx) error {
		// another writer touches the key between WATCH and EXEC
		if err := client.Set(ctx, key, "other", 0).Err(); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, "mine", 0)
			return nil
		})
		return err
	}, key)

	assert.True(t, errors.IsAborted(err), "got %v", err)
	assert.Equal(t, float64(maxWatchRetries), testutil.ToFloat64(conflicts)-before)
	assert.Equal(t, draftsBefore, testutil.ToFloat64(drafts))

	got, err := client.Get(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, "other", got)
}
