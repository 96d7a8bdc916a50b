package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted       EventType = "SearchStarted"
	EventResultsReady        EventType = "ResultsReady"
	EventViewUpdated         EventType = "ViewUpdated"
	EventSearchFailed        EventType = "SearchFailed"
	EventTrendingLoaded      EventType = "TrendingLoaded"
	EventTrendingUnavailable EventType = "TrendingUnavailable"
	EventNotification        EventType = "Notification"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a search request is issued
type SearchStartedEvent struct {
	Status SearchStatus
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// ResultsReadyEvent is emitted when a search completed and its view was derived
type ResultsReadyEvent struct {
	Page Page
}

func (e ResultsReadyEvent) Type() EventType { return EventResultsReady }

// ViewUpdatedEvent is emitted when filters changed and the view was recomputed
type ViewUpdatedEvent struct {
	Page Page
}

func (e ViewUpdatedEvent) Type() EventType { return EventViewUpdated }

// SearchFailedEvent is emitted when the latest search could not be completed
type SearchFailedEvent struct {
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// TrendingLoadedEvent carries the trending terms to show
type TrendingLoadedEvent struct {
	Terms []TrendingTerm
}

func (e TrendingLoadedEvent) Type() EventType { return EventTrendingLoaded }

// TrendingUnavailableEvent is emitted when trending terms could not be loaded
type TrendingUnavailableEvent struct{}

func (e TrendingUnavailableEvent) Type() EventType { return EventTrendingUnavailable }

// NotificationEvent asks the display to show a transient toast
type NotificationEvent struct {
	Message  string
	Severity Severity
}

func (e NotificationEvent) Type() EventType { return EventNotification }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
