package uri

//go:generate go tool errtrace -w .

import (
	"bytes"
	"encoding/hex"
	"net"
	"slices"
)

// Authority is the addressing component of a uProtocol URI identifying the
// node that owns a resource. It holds at most one remote designator: a name,
// an IP address or an id. An Authority with no designator refers to the
// local node.
//
// The zero value is a valid local authority. Setters require exclusive
// access; all other methods are safe for concurrent use.
type Authority struct {
	remote remote
}

// remote is the single-slot sum of the three designator forms.
type remote interface {
	isRemote()
}

type remoteName string

type remoteIP []byte

type remoteID []byte

func (remoteName) isRemote() {}
func (remoteIP) isRemote()   {}
func (remoteID) isRemote()   {}

// NewAuthority returns an empty Authority referring to the local node.
func NewAuthority() *Authority { return &Authority{} }

func (auth *Authority) rem() remote {
	if auth == nil {
		return nil
	}
	return auth.remote
}

// HasRemote reports whether any remote designator is set.
func (auth *Authority) HasRemote() bool { return auth.rem() != nil }

// HasName reports whether the authority is addressed by a name.
func (auth *Authority) HasName() bool {
	_, ok := auth.rem().(remoteName)
	return ok
}

// HasIP reports whether the authority is addressed by an IP address.
func (auth *Authority) HasIP() bool {
	_, ok := auth.rem().(remoteIP)
	return ok
}

// HasID reports whether the authority is addressed by an id.
func (auth *Authority) HasID() bool {
	_, ok := auth.rem().(remoteID)
	return ok
}

// Name returns the authority name and true in case the name designator is
// set, otherwise an empty string and false.
func (auth *Authority) Name() (string, bool) {
	if r, ok := auth.rem().(remoteName); ok {
		return string(r), true
	}
	return "", false
}

// IP returns the authority IP address bytes and true in case the IP
// designator is set, otherwise nil and false.
// The returned slice is a view into the authority and must not be modified.
func (auth *Authority) IP() ([]byte, bool) {
	if r, ok := auth.rem().(remoteIP); ok {
		return r, true
	}
	return nil, false
}

// ID returns the authority id bytes and true in case the id designator is
// set, otherwise nil and false.
// The returned slice is a view into the authority and must not be modified.
func (auth *Authority) ID() ([]byte, bool) {
	if r, ok := auth.rem().(remoteID); ok {
		return r, true
	}
	return nil, false
}

// SetName sets the name designator, replacing any previously set designator.
// It returns the receiver for fluent chaining. No validation is performed,
// see [Authority.ValidateMicroForm].
func (auth *Authority) SetName(name string) *Authority {
	auth.remote = remoteName(name)
	return auth
}

// SetIP sets the IP designator, replacing any previously set designator.
// It returns the receiver for fluent chaining. No validation is performed,
// any length is representable, see [Authority.ValidateMicroForm].
func (auth *Authority) SetIP(ip []byte) *Authority {
	auth.remote = remoteIP(ip)
	return auth
}

// SetID sets the id designator, replacing any previously set designator.
// It returns the receiver for fluent chaining. No validation is performed,
// any length is representable, see [Authority.ValidateMicroForm].
func (auth *Authority) SetID(id []byte) *Authority {
	auth.remote = remoteID(id)
	return auth
}

func (auth *Authority) String() string {
	switch r := auth.rem().(type) {
	case remoteName:
		return string(r)
	case remoteIP:
		if len(r) == net.IPv4len || len(r) == net.IPv6len {
			return net.IP(r).String()
		}
		return "0x" + hex.EncodeToString(r)
	case remoteID:
		return "0x" + hex.EncodeToString(r)
	default:
		return ""
	}
}

// Clone returns a deep copy of the authority.
func (auth *Authority) Clone() *Authority {
	if auth == nil {
		return nil
	}
	auth2 := *auth
	switch r := auth.remote.(type) {
	case remoteIP:
		auth2.remote = remoteIP(slices.Clone(r))
	case remoteID:
		auth2.remote = remoteID(slices.Clone(r))
	}
	return &auth2
}

func (auth *Authority) Equal(val any) bool {
	var other *Authority
	switch v := val.(type) {
	case Authority:
		other = &v
	case *Authority:
		other = v
	default:
		return false
	}
	if other == nil {
		return auth == nil
	}

	switch r := auth.rem().(type) {
	case remoteName:
		n, ok := other.Name()
		return ok && string(r) == n
	case remoteIP:
		ip, ok := other.IP()
		return ok && bytes.Equal(r, ip)
	case remoteID:
		id, ok := other.ID()
		return ok && bytes.Equal(r, id)
	default:
		return !other.HasRemote()
	}
}

// IsZero reports whether the authority refers to the local node, i.e. no
// remote designator is set.
func (auth *Authority) IsZero() bool { return !auth.HasRemote() }
