// Package device holds the connection configuration shared by all
// platform adapters: device/connection descriptions, credential
// resolution, and the optional tunnel collaborator.
package device

import (
	"fmt"
	"net/netip"
)

// DefaultCredentialKey is the fallback entry consulted when a
// connection has no credentials under the requested key.
const DefaultCredentialKey = "default"

// Credentials is a username/password pair.
type Credentials struct {
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
}

// Connection describes one way to reach a device.
type Connection struct {
	// Host is the device hostname or FQDN. Takes precedence over IP.
	Host string `yaml:"host" mapstructure:"host"`
	// IP is an IPv4 or IPv6 literal, used when Host is empty.
	IP string `yaml:"ip" mapstructure:"ip"`
	// Port is the management port.
	Port int `yaml:"port" mapstructure:"port"`
	// Protocol is "http" or "https".
	Protocol string `yaml:"protocol" mapstructure:"protocol"`
	// Credentials maps credential keys to username/password pairs.
	// Resolution falls back to the "default" entry.
	Credentials map[string]Credentials `yaml:"credentials" mapstructure:"credentials"`
	// TLS configures the HTTPS transport for this connection.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ResolveCredentials returns the credentials stored under key, falling
// back to the "default" entry when the key is absent.
func (c *Connection) ResolveCredentials(key string) (Credentials, error) {
	if creds, ok := c.Credentials[key]; ok {
		return creds, nil
	}
	if creds, ok := c.Credentials[DefaultCredentialKey]; ok {
		return creds, nil
	}
	return Credentials{}, fmt.Errorf("device: no credentials found for key '%s' and no default entry", key)
}

// ResolveHost returns the host portion to place in a URL. Host wins
// over IP; an IPv6 literal is wrapped in brackets per RFC 3986.
func (c *Connection) ResolveHost() (string, error) {
	if c.Host != "" {
		return c.Host, nil
	}
	if c.IP == "" {
		return "", fmt.Errorf("device: connection has neither host nor ip")
	}
	addr, err := netip.ParseAddr(c.IP)
	if err != nil {
		return "", fmt.Errorf("device: invalid ip '%s': %w", c.IP, err)
	}
	return URLHost(addr), nil
}

// URLHost formats an address for use inside a URL, bracket-wrapping
// IPv6 literals.
func URLHost(addr netip.Addr) string {
	if addr.Is6() && !addr.Is4In6() {
		return "[" + addr.String() + "]"
	}
	return addr.Unmap().String()
}

// Config describes a device and its connections.
type Config struct {
	// Name identifies the device in logs and errors.
	Name string `yaml:"name" mapstructure:"name"`
	// Platform selects the adapter implementation (e.g. "nso").
	Platform string `yaml:"platform" mapstructure:"platform"`
	// Connections maps connection aliases to their settings.
	Connections map[string]Connection `yaml:"connections" mapstructure:"connections"`
}

// Connection returns the named connection.
func (c *Config) Connection(name string) (*Connection, error) {
	conn, ok := c.Connections[name]
	if !ok {
		return nil, fmt.Errorf("device: '%s' has no connection '%s'", c.Name, name)
	}
	return &conn, nil
}

// Tunnel resolves a local endpoint standing in for a device connection,
// typically an SSH tunnel established out of band. Implementations are
// supplied by the caller; tunnel management itself is out of scope.
type Tunnel interface {
	// Endpoint returns the local ip and port to dial instead of the
	// configured host/ip and port.
	Endpoint(device, connection string) (ip string, port int, err error)
}
