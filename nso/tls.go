package nso

import "github.com/palmersample/rest/device"

// TLSConfig is an alias for the shared device TLS configuration.
// See device.TLSConfig for full documentation.
type TLSConfig = device.TLSConfig
