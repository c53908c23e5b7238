package wire

import (
	"Glimpse/internal/api"
	"Glimpse/internal/api/handler"
	"Glimpse/internal/job"
	"Glimpse/internal/pkg/cron"
	"Glimpse/internal/repository"
	"Glimpse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewPostActionRepo(db)
	hashtagRepo := repository.NewHashtagRepository(db)
	storyRepo := repository.NewStoryRepository(db)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, actionRepo, hashtagRepo)
	actionService := service.NewPostActionService(actionRepo, postRepo, userRepo)
	storyService := service.NewStoryService(storyRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		StoryHandler:      handler.NewStoryHandler(storyService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewStoryCleanupJob(storyService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
