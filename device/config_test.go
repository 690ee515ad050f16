package device

import (
	"strings"
	"testing"
)

func TestResolveHost(t *testing.T) {
	tests := []struct {
		name    string
		conn    Connection
		want    string
		wantErr string
	}{
		{name: "host wins", conn: Connection{Host: "ncs.example.com", IP: "10.0.0.1"}, want: "ncs.example.com"},
		{name: "ipv4", conn: Connection{IP: "127.0.0.1"}, want: "127.0.0.1"},
		{name: "ipv6 bracketed", conn: Connection{IP: "::1"}, want: "[::1]"},
		{name: "ipv6 full", conn: Connection{IP: "2001:db8::10"}, want: "[2001:db8::10]"},
		{name: "invalid ip", conn: Connection{IP: "not-an-ip"}, wantErr: "invalid ip"},
		{name: "missing both", conn: Connection{}, wantErr: "neither host nor ip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.conn.ResolveHost()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("host = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveCredentials(t *testing.T) {
	conn := Connection{
		Credentials: map[string]Credentials{
			"rest":    {Username: "ruser", Password: "rpass"},
			"default": {Username: "duser", Password: "dpass"},
		},
	}

	creds, err := conn.ResolveCredentials("rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Username != "ruser" {
		t.Errorf("username = %q, want ruser", creds.Username)
	}

	creds, err = conn.ResolveCredentials("netconf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Username != "duser" {
		t.Errorf("fallback username = %q, want duser", creds.Username)
	}

	empty := Connection{}
	if _, err := empty.ResolveCredentials("rest"); err == nil {
		t.Error("expected error when no credentials and no default")
	}
}

func TestConfig_Connection(t *testing.T) {
	cfg := Config{
		Name:        "ncs",
		Connections: map[string]Connection{"rest": {Host: "ncs.example.com"}},
	}
	if _, err := cfg.Connection("rest"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cfg.Connection("cli"); err == nil {
		t.Error("expected error for unknown connection")
	}
}
