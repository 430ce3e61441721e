package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpin "tableorder/internal/adapters/in/http"
	"tableorder/internal/adapters/out/postgres"
	redisout "tableorder/internal/adapters/out/redis"
	"tableorder/internal/core/application/realtime"
	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/application/usecases/queries"
	"tableorder/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	redisClient *redis.Client
	uowFactory  postgres.GormUnitOfWorkFactory
	location    *time.Location
	logger      *slog.Logger

	broadcaster *realtime.Broadcaster
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) (*CompositionRoot, error) {
	location, err := time.LoadLocation(config.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", config.BusinessTimezone, err)
	}

	c := &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		redisClient: redisClient,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		location:    location,
		logger:      logger,
	}

	notifier, err := redisout.NewNotifier(redisClient, config.RealtimeChannel)
	if err != nil {
		return nil, err
	}
	c.broadcaster = realtime.NewBroadcaster(
		notifier,
		c.CreateGetTodayOpenCountQueryHandler(),
		c.CreateGetTodayRevenueQueryHandler(),
		location,
		logger,
	)

	return c, nil
}

// Broadcaster is shared by every command handler so shutdown can wait for
// in-flight notifications.
func (c *CompositionRoot) Broadcaster() *realtime.Broadcaster {
	return c.broadcaster
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.broadcaster)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.broadcaster)
}

func (c *CompositionRoot) CreateCancelBillCommandHandler() commands.CancelBillCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelBillCommandHandler(f, c.broadcaster)
}

func (c *CompositionRoot) CreateConfirmBillCommandHandler() commands.ConfirmBillCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmBillCommandHandler(f, c.broadcaster)
}

func (c *CompositionRoot) CreateReconcileArchivesCommandHandler() commands.ReconcileArchivesCommandHandler {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileArchivesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBillQueryHandler() queries.GetBillQueryHandler {
	return queries.NewGetBillQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodayOrdersQueryHandler() queries.GetTodayOrdersQueryHandler {
	return queries.NewGetTodayOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodayOpenCountQueryHandler() queries.GetTodayOpenCountQueryHandler {
	return queries.NewGetTodayOpenCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodayRevenueQueryHandler() queries.GetTodayRevenueQueryHandler {
	return queries.NewGetTodayRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReceiptsQueryHandler() queries.GetReceiptsQueryHandler {
	return queries.NewGetReceiptsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	stream, err := redisout.NewStream(c.redisClient, c.config.RealtimeChannel)
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(httpin.Handlers{
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		CancelBill:        c.CreateCancelBillCommandHandler(),
		ConfirmBill:       c.CreateConfirmBillCommandHandler(),
		GetBill:           c.CreateGetBillQueryHandler(),
		GetOrderItems:     c.CreateGetOrderItemsQueryHandler(),
		GetTodayOrders:    c.CreateGetTodayOrdersQueryHandler(),
		GetTodayOpenCount: c.CreateGetTodayOpenCountQueryHandler(),
		GetTodayRevenue:   c.CreateGetTodayRevenueQueryHandler(),
		GetReceipts:       c.CreateGetReceiptsQueryHandler(),
	}, stream, c.location, c.logger, c.config.Debug), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileArchivesCommandHandler(),
		c.config.ArchiveReconcileSchedule,
		c.logger,
	)
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
