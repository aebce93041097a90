package server

import (
	"storefront/internal/backend"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/order"
	orderhandler "storefront/internal/order/handler"
	orderservice "storefront/internal/order/service"
	producthandler "storefront/internal/product/handler"
	productservice "storefront/internal/product/service"
	"storefront/internal/session"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Deps struct {
	Config    *config.Config
	Backend   backend.Backend
	Redis     *redis.Client
	Publisher events.Publisher
	Logger    *zap.Logger
}

// Wire membangun service dan handler: Backend -> Service -> Handler.
func Wire(d Deps) (Handlers, error) {
	cfg := d.Config

	policy, err := order.PolicyByName(cfg.Orders.TransitionPolicy)
	if err != nil {
		return Handlers{}, err
	}

	emitter := events.NewEmitter(d.Publisher, cfg.ServiceName)
	handoff := session.NewHandoff(d.Redis, cfg.Redis.DraftTTL, cfg.Redis.DraftTTL)
	sessions := session.NewAdminSessions(d.Redis, cfg.Redis.SessionTTL)

	productSvc := productservice.NewProductService(d.Backend, d.Redis, cfg.Redis.ProductCacheTTL, d.Logger)
	orderSvc := orderservice.NewOrderService(d.Backend, productSvc, handoff, d.Redis, emitter,
		orderservice.Options{
			SiteOrigin:    cfg.SiteOrigin,
			ProofRules:    cfg.ProofRules(),
			TrackCacheTTL: cfg.Redis.TrackCacheTTL,
		},
		d.Logger)
	adminSvc := orderservice.NewAdminService(d.Backend, sessions, d.Redis, emitter, policy, d.Logger)

	return Handlers{
		Orders:   orderhandler.NewOrderHandler(orderSvc, cfg.Orders.MaxProofBytes, d.Logger),
		Admin:    orderhandler.NewAdminHandler(adminSvc, d.Logger),
		Products: producthandler.NewProductHandler(productSvc, d.Logger),
	}, nil
}
