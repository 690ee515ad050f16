package nso

import (
	"testing"

	"github.com/palmersample/rest"
	"github.com/palmersample/rest/device"
)

func testDevice() *device.Config {
	return &device.Config{
		Name:     "ncs",
		Platform: "nso",
		Connections: map[string]device.Connection{
			"rest": {
				IP:       "127.0.0.1",
				Port:     8080,
				Protocol: "http",
				Credentials: map[string]device.Credentials{
					"rest": {Username: "admin", Password: "admin"},
				},
			},
		},
	}
}

func TestFromDevice(t *testing.T) {
	c, err := FromDevice(testDevice(), "rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.cfg.Device != "ncs" || c.cfg.Alias != "rest" {
		t.Errorf("device/alias = %q/%q", c.cfg.Device, c.cfg.Alias)
	}
	if c.cfg.Username != "admin" || c.cfg.Password != "admin" {
		t.Error("credentials not resolved from connection")
	}
	if c.Connected() {
		t.Error("factory must return a disconnected client")
	}
}

func TestFromDevice_CarriesTLS(t *testing.T) {
	dev := testDevice()
	conn := dev.Connections["rest"]
	conn.Protocol = "https"
	conn.TLS = &device.TLSConfig{SkipVerify: true, CAFile: "ca.pem"}
	dev.Connections["rest"] = conn

	c, err := FromDevice(dev, "rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.cfg.Protocol != "https" {
		t.Errorf("protocol = %q, want https", c.cfg.Protocol)
	}
	if c.cfg.TLS == nil {
		t.Fatal("connection TLS settings must reach the client config")
	}
	if !c.cfg.TLS.SkipVerify || c.cfg.TLS.CAFile != "ca.pem" {
		t.Errorf("TLS = %+v", c.cfg.TLS)
	}
}

func TestFromDevice_UnknownConnection(t *testing.T) {
	_, err := FromDevice(testDevice(), "netconf")
	if !rest.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestOpen_DispatchesByPlatform(t *testing.T) {
	conn, err := rest.Open(testDevice(), "rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := conn.(*Client); !ok {
		t.Errorf("expected *nso.Client, got %T", conn)
	}
}

func TestOpen_UnknownPlatform(t *testing.T) {
	dev := testDevice()
	dev.Platform = "junos"
	_, err := rest.Open(dev, "rest")
	if !rest.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}
