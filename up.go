package up

import "github.com/PLeVasseur/up-go/uri"

// Version is the current up-go package version.
var Version = "0.0.0"

// Authority is the addressing component of a uProtocol URI.
// See [uri.Authority].
type Authority = uri.Authority

// ValidationError is an aggregated validation failure report.
// See [uri.ValidationError].
type ValidationError = uri.ValidationError

// NewAuthority returns an empty Authority referring to the local node.
// See [uri.NewAuthority].
func NewAuthority() *Authority { return uri.NewAuthority() }

// Remote designator sizes representable by the micro form encoding.
// See the [uri] package constants.
const (
	RemoteIPv4Bytes = uri.RemoteIPv4Bytes
	RemoteIPv6Bytes = uri.RemoteIPv6Bytes

	RemoteIDMinBytes = uri.RemoteIDMinBytes
	RemoteIDMaxBytes = uri.RemoteIDMaxBytes
)
