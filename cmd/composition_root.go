package cmd

import (
	"log/slog"

	"pointofsale/internal/adapters/out/postgres"
	"pointofsale/internal/core/application/usecases/commands"
	"pointofsale/internal/core/application/usecases/queries"
	"pointofsale/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) cobblerUoWFactory() commands.CobblerUoWFactory {
	return FuncCobblerUoWFactory(func() commands.CobblerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartCobblerCommandHandler() *commands.StartCobblerCommandHandler {
	h := commands.NewStartCobblerCommandHandler(c.cobblerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChooseFruitFillingCommandHandler() *commands.ChooseFruitFillingCommandHandler {
	h := commands.NewChooseFruitFillingCommandHandler(c.cobblerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateServeWithIceCreamCommandHandler() *commands.ServeWithIceCreamCommandHandler {
	h := commands.NewServeWithIceCreamCommandHandler(c.cobblerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDiscardStaleCobblersCommandHandler() *commands.DiscardStaleCobblersCommandHandler {
	h := commands.NewDiscardStaleCobblersCommandHandler(c.cobblerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetCobblerQueryHandler() queries.GetCobblerQueryHandler {
	return queries.NewGetCobblerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCobblersQueryHandler() queries.GetAllCobblersQueryHandler {
	return queries.NewGetAllCobblersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cmd, err := commands.NewDiscardStaleCobblersCommand(c.config.StaleAfter)
	if err != nil {
		return nil, err
	}

	cleanup := jobs.NewStaleCobblerCleanupJob(
		c.CreateDiscardStaleCobblersCommandHandler(),
		cmd,
		c.config.CleanupSchedule,
		c.logger,
	)
	return jobs.NewJobManager(cleanup), nil
}

type FuncCobblerUoWFactory func() commands.CobblerUoW

func (f FuncCobblerUoWFactory) Create() commands.CobblerUoW {
	return f()
}
