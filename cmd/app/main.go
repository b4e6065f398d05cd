package main

import (
	"os"

	"go.uber.org/zap"

	dbadapter "sonet/internal/adapters/database"
	"sonet/internal/adapters/httpapi"
	redisadapter "sonet/internal/adapters/redis"
	"sonet/internal/config"
	"sonet/internal/core/alarm"
	alarmapp "sonet/internal/core/alarm/service"
	"sonet/internal/core/comment"
	engagementapp "sonet/internal/core/engagement/service"
	"sonet/internal/core/like"
	"sonet/internal/core/post"
	"sonet/internal/core/user"
	userapp "sonet/internal/core/user/service"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&comment.Comment{},
		&like.Like{},
		&alarm.Alarm{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))

	store := dbadapter.NewContentStoreDatabase(config.DB)
	likeCounts := redisadapter.NewLikeCountCache(config.RedisClient)
	userSvc := userapp.NewUserService(store, jwtSecret)
	engagementSvc := engagementapp.NewEngagementService(store, likeCounts, config.Logger)
	alarmSvc := alarmapp.NewAlarmService(store)

	r := httpapi.SetupRoutes(userSvc, engagementSvc, alarmSvc, jwtSecret)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
