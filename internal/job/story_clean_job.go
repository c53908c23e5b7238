package job

import (
	"Glimpse/internal/pkg/consts"
	"Glimpse/internal/pkg/redis"
	"Glimpse/internal/service"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// StoryCleanupJob 定期清理到期的快拍及其浏览记录。
// 多实例部署时通过 Redis 分布式锁保证只有一个实例执行。
type StoryCleanupJob struct {
	storySvc service.StoryService
}

func NewStoryCleanupJob(storySvc service.StoryService) *StoryCleanupJob {
	return &StoryCleanupJob{storySvc: storySvc}
}

func (s *StoryCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start story cleanup job")

	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.StoryCleanupLock, lockValue, 10*time.Minute, 0)
	if err != nil && !errors.Is(err, redis.ErrNotInitialized) {
		log.Error("failed to acquire story cleanup lock", "err", err)
		return
	}
	if err == nil {
		if !locked {
			log.Info("story cleanup lock held by another instance, skipping")
			return
		}
		defer redis.UnLock(ctx, consts.StoryCleanupLock, lockValue)
	}

	deleted, err := s.storySvc.CleanupExpired(ctx)
	if err != nil {
		log.Error("failed to cleanup expired stories", "err", err)
		return
	}

	if deleted > 0 {
		log.Info("story cleanup job finished", "deleted_count", deleted)
	}
}
