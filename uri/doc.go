// Package uri implements the addressing model of the uProtocol URI scheme,
// in particular the authority component and its micro form validation.
//
// # Overview
//
// A uProtocol URI identifies a communication endpoint (a topic, an RPC
// method, ...etc.) in a publish/subscribe messaging system. Its authority
// component names the node that owns the addressed resource. An authority
// either refers to the local node (no remote designator set) or carries
// exactly one remote designator:
//
//   - a human-readable name, used in long form URIs only;
//   - a raw IP address (4 bytes for IPv4, 16 bytes for IPv6);
//   - an opaque id of 1 to 255 bytes.
//
// [Authority] stores the remote designator as a single slot, so at most one
// of the three forms is ever set. Setters replace the previous designator:
//
//	auth := uri.NewAuthority().SetIP([]byte{192, 0, 2, 1})
//	auth.SetName("vcu.veh.example.com") // the IP is discarded
//
// Accessors report absence of the requested form through a comma-ok result,
// never through an error:
//
//	if ip, ok := auth.IP(); ok {
//	    // authority is addressed by IP
//	}
//
// # Micro form
//
// The protocol defines two wire encodings of a URI: the long form, a
// human-readable string without size constraints, and the micro form, a
// compact bounded-size binary encoding for bandwidth-constrained links such
// as in-vehicle networks. The model places no constraints at set time, since
// a long form authority may carry any designator of any length. Whether a
// value is legal input to the micro form encoder is decided at the point of
// use with [Authority.ValidateMicroForm]:
//
//	if err := auth.ValidateMicroForm(); err != nil {
//	    // err aggregates every reason the authority is not micro form legal
//	}
//
// Validation is pure and never mutates the authority, so any number of
// goroutines may validate the same instance concurrently. Mutating an
// instance while another goroutine reads it requires external
// synchronization; the type provides no internal locking.
package uri
