// Package nso implements a REST connection adapter for Cisco Network
// Services Orchestrator (NSO) northbound APIs.
//
// The client wraps one HTTP session per device alias with YANG
// media-type negotiation, JSON / map-to-XML payload serialization, and
// status-code validation. Response bodies are returned raw; decoding
// is the caller's job.
//
// Device file example:
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
//
// Code example:
//
//	devices, _ := device.LoadFile("devices.yaml")
//	client, err := nso.FromDevice(devices["ncs"], "rest")
//	if err != nil {
//	    return err
//	}
//	if err := client.Connect(ctx); err != nil {
//	    return err
//	}
//	defer client.Disconnect()
//
//	resp, err := client.Post(ctx,
//	    "/api/running/devices/_operations/connect", "")
package nso
