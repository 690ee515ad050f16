package device

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// file is the on-disk shape of a device configuration file.
type file struct {
	Devices map[string]Config `mapstructure:"devices"`
}

// LoadFile reads a YAML device configuration file and returns the
// devices it declares, keyed by name. Underscore-separated environment
// variables override file values, so DEVICES_NCS_CONNECTIONS_REST_PORT
// replaces devices.ncs.connections.rest.port.
//
//	devices:
//	  ncs:
//	    platform: nso
//	    connections:
//	      rest:
//	        ip: 127.0.0.1
//	        port: 8080
//	        protocol: http
//	        credentials:
//	          rest:
//	            username: admin
//	            password: admin
func LoadFile(path string) (map[string]*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("device: read config %s: %w", path, err)
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("device: unmarshal config %s: %w", path, err)
	}

	devices := make(map[string]*Config, len(f.Devices))
	for name, cfg := range f.Devices {
		if cfg.Name == "" {
			cfg.Name = name
		}
		devices[name] = &cfg
	}
	return devices, nil
}
