package cmd

import (
	"log/slog"

	"orders/internal/adapters/out/notify"
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	notifier      ports.Notifier
	kafkaNotifier *notify.KafkaNotifier
}

// NewCompositionRoot wires the adapters together. Every state change is
// reported through the log notifier; when a Kafka host is configured the
// change is also published there, best effort.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	notifiers := []ports.Notifier{notify.NewLogNotifier(logger)}

	if config.KafkaHost != "" {
		kafkaNotifier, err := notify.NewKafkaNotifier(
			[]string{config.KafkaHost},
			config.KafkaOrderEventTopic,
			logger,
		)
		if err != nil {
			return CompositionRoot{}, err
		}

		root.kafkaNotifier = kafkaNotifier
		notifiers = append(notifiers, notify.NewBestEffortNotifier(kafkaNotifier, logger))
	}

	root.notifier = notify.NewMultiNotifier(notifiers...)
	return root, nil
}

// Close releases resources held by long lived adapters.
func (c *CompositionRoot) Close() error {
	if c.kafkaNotifier != nil {
		return c.kafkaNotifier.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReturnItemCommandHandler() commands.ReturnItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnItemCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateIssueOrderCommandHandler() commands.IssueOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
