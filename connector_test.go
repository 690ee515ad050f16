package rest

import (
	"context"
	"testing"

	"github.com/palmersample/rest/device"
)

type fakeConnector struct{ Connector }

func (fakeConnector) Connect(ctx context.Context) error { return nil }

func TestRegistry(t *testing.T) {
	Register("fake-platform", func(dev *device.Config, connection string) (Connector, error) {
		return fakeConnector{}, nil
	})

	found := false
	for _, name := range Platforms() {
		if name == "fake-platform" {
			found = true
		}
	}
	if !found {
		t.Error("registered platform missing from Platforms()")
	}

	dev := &device.Config{Name: "d1", Platform: "fake-platform"}
	conn, err := Open(dev, "rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := conn.(fakeConnector); !ok {
		t.Errorf("Open returned %T", conn)
	}
}

func TestOpen_UnregisteredPlatform(t *testing.T) {
	dev := &device.Config{Name: "d1", Platform: "no-such-platform"}
	_, err := Open(dev, "rest")
	if !IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-platform", func(dev *device.Config, connection string) (Connector, error) {
		return fakeConnector{}, nil
	})
	Register("dup-platform", func(dev *device.Config, connection string) (Connector, error) {
		return fakeConnector{}, nil
	})
}
