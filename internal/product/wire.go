package product

import (
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"palantir/internal/config"
	"palantir/internal/product/cache"
	"palantir/internal/product/controller"
	"palantir/internal/product/repository"
	"palantir/internal/product/service"
	"palantir/internal/product/usecase"
)

type Module struct {
	Controller *controller.Controller
	Service    *service.ProductService
}

type productRepository interface {
	service.Repository
	usecase.ProductWriter
	usecase.ProductFinder
}

// NewModule puts the Redis cache in front of the product table when a
// client is given.
func NewModule(db *sql.DB, redisClient *redis.Client, cfg config.RedisConfig, logger *zap.Logger) *Module {
	var repo productRepository = repository.NewMySQLRepository(db)
	if redisClient != nil {
		repo = cache.NewCachedRepository(repository.NewMySQLRepository(db), redisClient, cfg.TTL, logger)
	}
	categories := repository.NewMySQLCategoryRepository(db)

	svc := service.NewService(repo)
	ctrl := controller.NewController(
		usecase.NewSearchUseCase(svc),
		usecase.NewFindProductUseCase(repo),
		usecase.NewCreateProductUseCase(repo, categories, logger),
		usecase.NewCreateCategoryUseCase(categories, logger),
		logger,
	)

	return &Module{Controller: ctrl, Service: svc}
}
