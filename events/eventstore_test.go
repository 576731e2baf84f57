package events

import (
	"testing"
)

func TestInMemoryEventStore(t *testing.T) {
	store := NewInMemoryEventStore()

	tableID := "table-123"

	t.Run("Append and load events", func(t *testing.T) {
		dealt := RoundDealt{
			TableID: tableID,
			Spots:   2,
		}

		cardDealt := CardDealt{
			TableID: tableID,
			Spot:    0,
			Card:    "A♠",
			Value:   15,
		}

		revealed := DealerRevealed{
			TableID: tableID,
			Cards:   []string{"10♠", "7♦"},
			Value:   17,
		}

		if err := store.Append(dealt); err != nil {
			t.Errorf("Failed to append RoundDealt event: %v", err)
		}
		if err := store.Append(cardDealt); err != nil {
			t.Errorf("Failed to append CardDealt event: %v", err)
		}
		if err := store.Append(revealed); err != nil {
			t.Errorf("Failed to append DealerRevealed event: %v", err)
		}

		events, err := store.LoadEvents(tableID)
		if err != nil {
			t.Errorf("Failed to load events: %v", err)
		}

		if len(events) != 3 {
			t.Errorf("Expected 3 events, got %d", len(events))
		}

		if events[0].Name() != "ROUND_DEALT" {
			t.Errorf("Expected first event to be ROUND_DEALT, got %s", events[0].Name())
		}
		if events[1].Name() != "CARD_DEALT" {
			t.Errorf("Expected second event to be CARD_DEALT, got %s", events[1].Name())
		}
		if events[2].Name() != "DEALER_REVEALED" {
			t.Errorf("Expected third event to be DEALER_REVEALED, got %s", events[2].Name())
		}
	})

	t.Run("Load events for non-existent table", func(t *testing.T) {
		events, err := store.LoadEvents("non-existent-table")
		if err != nil {
			t.Errorf("Expected no error for non-existent table, got %v", err)
		}
		if len(events) != 0 {
			t.Errorf("Expected 0 events for non-existent table, got %d", len(events))
		}
	})

	t.Run("Append event without table ID", func(t *testing.T) {
		if err := store.Append(RoundDealt{}); err == nil {
			t.Error("Expected an error for an event without a table ID")
		}
	})
}

func TestGetTableID(t *testing.T) {
	if got := GetTableID(RoundDealt{TableID: "t1"}); got != "t1" {
		t.Errorf("Expected t1, got %s", got)
	}
	if got := GetTableID(&HandsCleared{TableID: "t2"}); got != "t2" {
		t.Errorf("Expected t2, got %s", got)
	}
}
