package events

import "reflect"

// Event is the interface that all table events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

// EventHandler receives events as the session engine emits them.
type EventHandler func(event Event)

// GetTableID extracts the TableID field from an event, if present.
func GetTableID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("TableID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
