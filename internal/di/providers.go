package di

import (
	"gritd/internal/persistence"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/providers"
	"gritd/internal/services"
	"gritd/internal/structures"
)

func provideLogger(conf *structures.Config) (providers.Logger, func(), error) {
	logger, err := providers.NewLogProvider(conf)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Close, nil
}

func provideSlot(conf *structures.Config) (interfaces.SlotInterface, func(), error) {
	slot, err := persistence.NewSlot(conf)
	if err != nil {
		return nil, nil, err
	}
	return slot, func() { _ = slot.Close() }, nil
}

func provideRefresher(service services.GritServiceInterface) interfaces.RefresherInterface {
	return service
}
