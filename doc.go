// Package rest provides connection adapters for network-device
// management REST APIs.
//
// Each supported platform ships its own adapter package (nso for
// Cisco NSO) implementing the Connector interface. Adapters wrap a
// standard HTTP session with device-specific content negotiation,
// payload serialization, and status-code validation; body decoding is
// left to the caller.
//
// # Basic Usage
//
//	client, err := nso.NewClient(nso.Config{
//	    Device:   "ncs",
//	    Host:     "10.0.0.1",
//	    Username: "admin",
//	    Password: "admin",
//	})
//	if err != nil {
//	    return err
//	}
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	defer client.Disconnect()
//
//	resp, err := client.Get(ctx, "/api/running/devices")
//
// Adapters can also be constructed by platform name through the
// registry:
//
//	conn, err := rest.Open(dev, "rest")
package rest
