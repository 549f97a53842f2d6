package bootstrap

import (
	"featuregate-be/internal/config"
	"featuregate-be/internal/controller"
	"featuregate-be/internal/hook"
	"featuregate-be/internal/pkg/logger"
	"featuregate-be/internal/repository/implementation"
	"featuregate-be/internal/repository/unitofwork"
	"featuregate-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FeatureController controller.IFeatureController
	FlagController    controller.IFlagController

	// Background services (main.go runs these)
	AuditConsumerService service.IAuditConsumerService

	Logger logger.ILogger
}

// NewContainer wires the dependency graph. Passing a nil hook registry
// installs the default audit after-hooks; callers embedding the service can
// supply their own registry instead.
func NewContainer(db *gorm.DB, cfg *config.Config, hooks *hook.Registry) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	directory := implementation.NewPrincipalDirectory(db)

	// Event bus for audit events
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	if hooks == nil {
		publisher := service.NewAuditPublisher(pubSub, cfg.Flags.AuditTopic, sysLogger)
		hooks = service.DefaultRegistry(publisher)
	}

	resolver := service.NewFeatureResolver()
	featureService := service.NewFeatureService(uowFactory, directory, hooks, sysLogger)
	flagService := service.NewFlagService(uowFactory, directory, resolver, hooks, cfg.Flags.Scope, sysLogger)

	auditConsumer := service.NewAuditConsumerService(pubSub, cfg.Flags.AuditTopic, uowFactory, sysLogger)

	return &Container{
		FeatureController:    controller.NewFeatureController(featureService),
		FlagController:       controller.NewFlagController(flagService),
		AuditConsumerService: auditConsumer,
		Logger:               sysLogger,
	}
}
