// Package enetaddr provides Ethernet hardware address helpers for callers
// assembling forward message chains: parsing, classification and generation
// of locally-administered unicast addresses. The codec itself never depends
// on this package; addresses flow into it as plain byte slices.
package enetaddr

import (
	"crypto/rand"
	"fmt"
	"net"
)

// AddrLen is the length of an EUI-48 Ethernet hardware address.
const AddrLen = 6

// Broadcast is the all-ones Ethernet broadcast address.
var Broadcast = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// Parse parses a textual EUI-48 address in any form net.ParseMAC accepts.
// Longer EUI-64 and InfiniBand forms are rejected; forward messages carry
// exactly six bytes.
func Parse(s string) (net.HardwareAddr, error) {
	addr, err := net.ParseMAC(s)
	if err != nil {
		return nil, err
	}
	if len(addr) != AddrLen {
		return nil, fmt.Errorf("not a %d-byte ethernet address: %q", AddrLen, s)
	}
	return addr, nil
}

// MustParse is Parse for well-known addresses in tests and tables; it panics
// on error.
func MustParse(s string) net.HardwareAddr {
	addr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// IsBroadcast reports whether addr is the all-ones broadcast address.
func IsBroadcast(addr net.HardwareAddr) bool {
	if len(addr) < AddrLen {
		return false
	}
	return addr[0] == 0xff && addr[1] == 0xff &&
		addr[2] == 0xff && addr[3] == 0xff &&
		addr[4] == 0xff && addr[5] == 0xff
}

// IsMulticast reports whether addr has the group bit set. Broadcast counts
// as multicast.
func IsMulticast(addr net.HardwareAddr) bool {
	return len(addr) > 0 && addr[0]&0x01 == 0x01
}

// IsUnicast reports whether addr is a plain unicast address, i.e. a valid
// forward message target.
func IsUnicast(addr net.HardwareAddr) bool {
	return len(addr) > 0 && addr[0]&0x01 == 0
}

// Random returns a random locally-administered unicast address: the
// locally-administered bit is set and the group bit cleared, so the result
// never collides with a vendor-assigned address and is always forwardable.
func Random() (net.HardwareAddr, error) {
	addr := make(net.HardwareAddr, AddrLen)
	if _, err := rand.Read(addr); err != nil {
		return nil, fmt.Errorf("generating random address: %w", err)
	}
	addr[0] |= 0x02
	addr[0] &^= 0x01
	return addr, nil
}
