package router

import (
	app "github.com/orugalabs/gaming-server/internal/application"
	"github.com/orugalabs/gaming-server/internal/container"
	pginfra "github.com/orugalabs/gaming-server/internal/infrastructure/postgres"
	"github.com/orugalabs/gaming-server/internal/infrastructure/search"
	handlers "github.com/orugalabs/gaming-server/internal/interface/http"
	"github.com/orugalabs/gaming-server/internal/router/modules"
)

// InitModules wires every feature module from the container singletons and
// registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	store := container.GetObjectStore()

	var indexer *search.Indexer
	if es := container.GetES(); es != nil {
		indexer = search.NewIndexer(es, logger)
	}

	users := pginfra.NewUserRepository(pool)
	games := pginfra.NewGameRepository(pool)
	carts := pginfra.NewCartRepository(pool)
	orders := pginfra.NewOrderRepository(pool)
	bank := pginfra.NewBankConfigRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	messages := pginfra.NewMessageRepository(pool)

	authSvc := app.NewAuthService(users, container.GetTokens(), container.GetRedis(), logger,
		cfg.ModeratorEmailList(), cfg.ModeratorCodeList())
	userSvc := app.NewUserService(users, container.GetRedis(), store, container.GetRabbitPub(), logger)
	gameSvc := app.NewGameService(games, indexer, cfg.ESGamesIndex, store, logger)
	cartSvc := app.NewCartService(carts)
	orderSvc := app.NewOrderService(orders, carts, users, bank, store, container.GetRabbitPub(), logger)
	postSvc := app.NewPostService(posts, indexer, cfg.ESPostsIndex, store, logger)
	msgSvc := app.NewMessageService(messages, users, store, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, userSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewGameModule(handlers.NewGameHandler(gameSvc, logger)))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, logger)))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
	r.Add(modules.NewMessageModule(handlers.NewMessageHandler(msgSvc, logger)))
	r.Add(modules.NewModerationModule(handlers.NewModerationHandler(orderSvc, userSvc, logger)))
}
