package ui

import (
	"pricegrip/internal/controller"
	"pricegrip/internal/domain"
	"pricegrip/internal/eventbus"
)

// BusDisplay implements controller.Display by publishing domain events.
// The program forwards them to the model as EventMsg.
type BusDisplay struct {
	bus eventbus.EventBus
}

var _ controller.Display = (*BusDisplay)(nil)

// NewBusDisplay creates a display publishing on bus
func NewBusDisplay(bus eventbus.EventBus) *BusDisplay {
	return &BusDisplay{bus: bus}
}

func (d *BusDisplay) ShowSearching(status domain.SearchStatus) {
	d.bus.Publish(eventbus.SearchStartedEvent{Status: status})
}

func (d *BusDisplay) ShowResults(page domain.Page) {
	d.bus.Publish(eventbus.ResultsReadyEvent{Page: page})
}

func (d *BusDisplay) ShowView(page domain.Page) {
	d.bus.Publish(eventbus.ViewUpdatedEvent{Page: page})
}

func (d *BusDisplay) ShowError(message string) {
	d.bus.Publish(eventbus.SearchFailedEvent{Message: message})
}

func (d *BusDisplay) ShowTrending(terms []domain.TrendingTerm) {
	d.bus.Publish(eventbus.TrendingLoadedEvent{Terms: terms})
}

func (d *BusDisplay) HideTrending() {
	d.bus.Publish(eventbus.TrendingUnavailableEvent{})
}

func (d *BusDisplay) Notify(message string, severity domain.Severity) {
	d.bus.Publish(eventbus.NotificationEvent{Message: message, Severity: severity})
}

// UIEvents lists the events the model consumes
var UIEvents = []eventbus.EventType{
	eventbus.EventSearchStarted,
	eventbus.EventResultsReady,
	eventbus.EventViewUpdated,
	eventbus.EventSearchFailed,
	eventbus.EventTrendingLoaded,
	eventbus.EventTrendingUnavailable,
	eventbus.EventNotification,
}
