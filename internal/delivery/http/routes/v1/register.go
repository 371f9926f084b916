package v1

import (
	"jobscout/internal/catalog"
	"jobscout/internal/config"
	"jobscout/internal/database"
	"jobscout/internal/delivery/http/handler"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/infrastructure/cache"
	"jobscout/internal/pkg/jwt"
	"jobscout/internal/repository"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	jobSkillRepo := repository.NewPostgresJobSkillRepository(db)

	skillCatalog := catalog.NewRedisCatalog(skillRepo, redis, 0)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, skillCatalog)
	jobListUC := usecase.NewJobListUsecase(jobRepo, jobSkillRepo)
	rankingUC := usecase.NewJobRankingUsecase(profileRepo, jobRepo, jobSkillRepo)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	jobsHandler := handler.NewJobsHandler(jobListUC)
	recommendationHandler := handler.NewRecommendationHandler(rankingUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	usersGroup := protected.Group("/users")
	RegisterUsers(usersGroup, profileHandler)

	jobsGroup := protected.Group("/jobs")
	RegisterJobs(jobsGroup, jobsHandler, recommendationHandler)

	skillsGroup := protected.Group("/skills")
	RegisterSkills(skillsGroup, skillHandler)
}
