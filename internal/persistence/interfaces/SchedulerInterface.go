package interfaces

type SchedulerInterface interface {
	Init()
	Stop()
	Persist() error
}

// RefresherInterface is the part of the store the scheduler drives.
type RefresherInterface interface {
	RefreshCurrentPeriod() bool
	Persist() error
}
