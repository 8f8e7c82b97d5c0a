package uri

import (
	"braces.dev/errtrace"
)

// Remote designator sizes representable by the micro form encoding.
// The encoding carries the id length in a single byte, so an id shorter
// than [RemoteIDMinBytes] is semantically empty and an id longer than
// [RemoteIDMaxBytes] cannot be represented.
const (
	RemoteIPv4Bytes = 4
	RemoteIPv6Bytes = 16

	RemoteIDMinBytes = 1
	RemoteIDMaxBytes = 255
)

var (
	errNoRemote = NewValidationError("has authority, but no remote")
	errIPLength = NewValidationError("IP address is not IPv4 (4 bytes) or IPv6 (16 bytes)")
	errIDLength = NewValidationError("ID doesn't fit in bytes allocated")
	errNameForm = NewValidationError("must use IP address or ID as authority for micro form")
)

// ValidateMicroForm reports whether the authority satisfies the
// requirements of a micro form URI. It returns nil in case the authority is
// legal input to the micro form encoder, otherwise a [ValidationError]
// aggregating every reason it is not:
//
//   - no remote designator is set;
//   - the IP designator is not exactly [RemoteIPv4Bytes] or [RemoteIPv6Bytes] long;
//   - the id designator is not within [RemoteIDMinBytes] to [RemoteIDMaxBytes] bytes;
//   - the name designator is set, the micro form has no slot for names.
//
// Encoders must treat a non-nil result as a hard precondition violation and
// refuse to encode. Validation never mutates the authority.
func (auth *Authority) ValidateMicroForm() error {
	var reasons []*ValidationError

	switch r := auth.rem().(type) {
	case nil:
		reasons = append(reasons, errNoRemote)
	case remoteIP:
		if len(r) != RemoteIPv4Bytes && len(r) != RemoteIPv6Bytes {
			reasons = append(reasons, errIPLength)
		}
	case remoteID:
		if len(r) < RemoteIDMinBytes || len(r) > RemoteIDMaxBytes {
			reasons = append(reasons, errIDLength)
		}
	case remoteName:
		reasons = append(reasons, errNameForm)
	}

	if len(reasons) == 0 {
		return nil
	}
	return errtrace.Wrap(MergeValidationErrors(reasons...))
}
