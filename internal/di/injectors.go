//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"gritd/internal"
	"gritd/internal/controllers"
	"gritd/internal/persistence"
	"gritd/internal/providers"
	"gritd/internal/services"
	"gritd/internal/structures"
)

var storeSet = wire.NewSet(
	providers.NewConfigProvider,
	provideLogger,
	providers.NewClockProvider,
	providers.NewMetricsProvider,

	persistence.NewZstdCompressor,
	provideSlot,
	persistence.NewSnapshotManager,
	persistence.NewArchive,
	services.NewGritService,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		storeSet,
		providers.NewInstrumentedCacheProvider,

		provideRefresher,
		persistence.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}

// InitService builds the store alone for one-shot maintenance commands.
func InitService(cfg *structures.CliFlags) (services.GritServiceInterface, func(), error) {

	wire.Build(storeSet)

	return nil, nil, nil
}
