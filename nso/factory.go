package nso

import (
	"github.com/palmersample/rest"
	"github.com/palmersample/rest/device"
)

// Platform is the registry name this adapter registers under.
const Platform = "nso"

func init() {
	rest.Register(Platform, func(dev *device.Config, connection string) (rest.Connector, error) {
		return FromDevice(dev, connection)
	})
}

// FromDevice builds a Client from a device description and one of its
// connection aliases. Credentials resolve under the alias with
// fallback to the "default" entry.
func FromDevice(dev *device.Config, connection string) (*Client, error) {
	conn, err := dev.Connection(connection)
	if err != nil {
		return nil, rest.NewConfigurationError(dev.Name, err.Error())
	}
	creds, err := conn.ResolveCredentials(connection)
	if err != nil {
		return nil, rest.NewConfigurationError(dev.Name, err.Error())
	}

	return NewClient(Config{
		Device:   dev.Name,
		Alias:    connection,
		Host:     conn.Host,
		IP:       conn.IP,
		Port:     conn.Port,
		Protocol: conn.Protocol,
		Username: creds.Username,
		Password: creds.Password,
		TLS:      conn.TLS,
	})
}
