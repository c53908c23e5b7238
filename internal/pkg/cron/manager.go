package cron

import (
	"Glimpse/internal/api/config"
	"Glimpse/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	storyCleanupJob *job.StoryCleanupJob
}

func NewCronManager(storyCleanupJob *job.StoryCleanupJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		storyCleanupJob: storyCleanupJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Cron.StoryCleanSpec
	if spec == "" {
		spec = "@hourly"
	}
	if _, err := s.engine.AddJob(spec, s.storyCleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
