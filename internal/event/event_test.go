package event

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(PlotHarvest, func(ctx context.Context, event Event) error {
		if event.Type != PlotHarvest {
			t.Errorf("Expected event type %s, got %s", PlotHarvest, event.Type)
		}
		payload, err := DecodePayload[PlotHarvestPayloadV1](event.Payload)
		if err != nil {
			t.Fatalf("DecodePayload returned error: %v", err)
		}
		if payload.SeedClass != "fire" {
			t.Errorf("Expected seed class 'fire', got %q", payload.SeedClass)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewPlotHarvestEvent("p1", "plot1", "s1", "fire", "green", 200))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewStealTrappedEvent("thief", "victim", "plot1", 50))
	if err != nil {
		t.Errorf("Publish with no subscribers returned error: %v", err)
	}
}
