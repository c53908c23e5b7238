package api

import (
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authGroup := apiGroup.Group("/auth")
		{
			// 无需登录即可访问的接口
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.UserHandler.Logout)
				loggedGroup.GET("/me", group.UserHandler.GetUserInfo)
				loggedGroup.POST("/avatar", group.UserHandler.UploadAvatar)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListFeed)
				authOptGroup.GET("/search", group.PostHandler.Search)
				authOptGroup.GET("/trending", group.PostHandler.Trending)
				authOptGroup.GET("/:post_id/comments", group.PostActionHandler.ListComments)
			}

			loggedGroup := postGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("", group.PostHandler.CreatePost)
				loggedGroup.POST("/:post_id/like", group.PostActionHandler.ToggleLike)
				loggedGroup.POST("/:post_id/comments", group.PostActionHandler.AddComment)
				loggedGroup.POST("/:post_id/repost", group.PostHandler.Repost)
			}
		}

		storyGroup := apiGroup.Group("/stories")
		{
			storyGroup.DELETE("/cleanup", group.StoryHandler.Cleanup)

			loggedGroup := storyGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.GET("", group.StoryHandler.ListStories)
				loggedGroup.GET("/groups", group.StoryHandler.ListStoryGroups)
				loggedGroup.POST("", group.StoryHandler.UploadStory)
				loggedGroup.POST("/:story_id/view", group.StoryHandler.MarkViewed)
			}
		}
	}

	return r
}
