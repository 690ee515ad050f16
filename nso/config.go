package nso

import (
	"fmt"
	"time"

	"github.com/palmersample/rest/device"
	"github.com/palmersample/rest/logger"
)

// Content types understood by the YANG header negotiation. Any other
// value is passed through verbatim as the literal header value.
const (
	ContentTypeJSON = "json"
	ContentTypeXML  = "xml"
)

const (
	defaultPort     = 8080
	defaultProtocol = "http"
	defaultTimeout  = 30 * time.Second
)

// Config configures an NSO REST client.
type Config struct {
	// Device identifies the device in logs and errors.
	Device string `yaml:"device" mapstructure:"device"`

	// Alias is the connection alias. Optional.
	Alias string `yaml:"alias" mapstructure:"alias"`

	// Host is the device hostname. Takes precedence over IP.
	Host string `yaml:"host" mapstructure:"host"`

	// IP is an IPv4 or IPv6 literal, used when Host is empty. IPv6
	// literals are bracket-wrapped in the base URL.
	IP string `yaml:"ip" mapstructure:"ip"`

	// Port is the management port. Defaults to 8080.
	Port int `yaml:"port" mapstructure:"port"`

	// Protocol is "http" or "https". Defaults to "http".
	Protocol string `yaml:"protocol" mapstructure:"protocol"`

	// Username and Password authenticate the session via HTTP basic
	// auth.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// ContentType is the default content type, "json" or "xml".
	// Defaults to "json".
	ContentType string `yaml:"content_type" mapstructure:"content_type"`

	// Timeout is the default per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are base headers applied to every request. Negotiated
	// headers are built over them; per-request headers merge last.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures the HTTPS transport. Nil uses the defaults.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Tunnel optionally resolves a local endpoint overriding Host/IP
	// and Port, typically an SSH tunnel established out of band.
	Tunnel device.Tunnel `yaml:"-" mapstructure:"-"`

	// Logger overrides the package default logger.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Protocol == "" {
		c.Protocol = defaultProtocol
	}
	if c.ContentType == "" {
		c.ContentType = ContentTypeJSON
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Protocol != "http" && c.Protocol != "https" {
		return fmt.Errorf("nso: protocol must be http or https (got: %s)", c.Protocol)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("nso: timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
