// Package ectp implements the frame codec for the Ethernet Configuration
// Testing Protocol loopback frames: a 2-byte skipcount header followed by a
// chain of fixed-size forward messages and a terminal variable-length reply
// message.
//
// The codec only transforms memory the caller owns. It never allocates frame
// buffers, never touches sockets, and never copies a received frame; reading
// is done through byte-slice views into the original buffer.
//
// Two API levels are provided, mirroring the split between trusted and
// untrusted frames:
//
//   - The package-level functions in this file are raw accessors with no
//     bounds checks. They are meant for the construction path, where the
//     caller controls the buffer layout, and for callers that have already
//     validated a received frame with SkipcountOK. Passing an offset that
//     was not validated is a caller bug, not a recoverable condition.
//   - The Frame and Message types (frame.go) are the checked entry point for
//     frames received from the network; their accessors return errors for
//     out-of-bounds or misaligned access.
package ectp

import (
	"encoding/binary"
	"net"
)

// Wire layout sizes. All multi-byte fields are big-endian on the wire except
// the reply receipt number, see SetReplyReceipt.
const (
	// FrameHeaderSize is the size of the frame header, i.e. the skipcount
	// field.
	FrameHeaderSize = 2

	// AddrLen is the length of a hardware address carried in a forward
	// message.
	AddrLen = 6

	// ForwardMsgSize is the fixed size of a forward message: function code
	// plus hardware address.
	ForwardMsgSize = 2 + AddrLen

	// ReplyMsgMinSize is the minimum size of a reply message: function code
	// plus receipt number, with no data.
	ReplyMsgMinSize = 2 + 2

	// MinFrameSize is the smallest complete frame: a header followed by an
	// empty reply message.
	MinFrameSize = FrameHeaderSize + ReplyMsgMinSize
)

// Field offsets relative to the start of a message.
const (
	msgFuncCode = 0 // function code, any message
	fwdMsgAddr  = 2 // forward address, forward message
	rplyMsgRcpt = 2 // receipt number, reply message
	rplyMsgData = 4 // start of data, reply message
)

// FuncCode identifies the kind of a message inside the frame payload.
type FuncCode uint16

const (
	// FuncReply marks the terminal reply message.
	FuncReply FuncCode = 1
	// FuncForward marks a forward message.
	FuncForward FuncCode = 2
)

// String returns a human-readable name for the function code.
func (fc FuncCode) String() string {
	switch fc {
	case FuncReply:
		return "reply"
	case FuncForward:
		return "forward"
	default:
		return "unknown"
	}
}

// ToWire converts a 16-bit value from host order to the protocol's wire
// order (big-endian). On a big-endian host this is the identity.
func ToWire(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

// FromWire converts a 16-bit value from wire order back to host order.
// FromWire(ToWire(v)) == v on any host.
func FromWire(v uint16) uint16 {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return binary.BigEndian.Uint16(b[:])
}

// Skipcount reads the skipcount field from the frame header in host order.
// The frame must be at least FrameHeaderSize bytes.
func Skipcount(frame []byte) uint16 {
	return binary.BigEndian.Uint16(frame)
}

// SetSkipcount writes the skipcount field into the frame header. The frame
// must be at least FrameHeaderSize bytes.
func SetSkipcount(frame []byte, skipcount uint16) {
	binary.BigEndian.PutUint16(frame, skipcount)
}

// AdvanceSkipcount moves the skipcount past one forward message, so that it
// points at the next message in the chain. It does not validate the new
// value; a relay must re-check with SkipcountOK before dereferencing.
func AdvanceSkipcount(frame []byte) {
	SetSkipcount(frame, Skipcount(frame)+ForwardMsgSize)
}

// SkipcountOK reports whether skipcount lands on a message boundary inside a
// frame of frameLen bytes. It assumes frameLen >= MinFrameSize, which the
// caller must have established. This is the sole gate between a received
// skipcount and the unchecked accessors below.
func SkipcountOK(skipcount, frameLen int) bool {
	if skipcount%ForwardMsgSize != 0 {
		return false
	}
	return skipcount >= 0 && skipcount < frameLen
}

// MessageAt returns a view of the message at byte offset skipcount into the
// frame payload. No bounds check; the caller must have validated skipcount
// with SkipcountOK.
func MessageAt(frame []byte, skipcount int) []byte {
	return frame[FrameHeaderSize+skipcount:]
}

// CurrentMessage returns a view of the message the frame's own skipcount
// points at. No bounds check.
func CurrentMessage(frame []byte) []byte {
	return MessageAt(frame, int(Skipcount(frame)))
}

// MessageType reads the function code of a message in host order.
func MessageType(msg []byte) FuncCode {
	return FuncCode(binary.BigEndian.Uint16(msg[msgFuncCode:]))
}

// SetMessageType writes the function code of a message.
func SetMessageType(msg []byte, fc FuncCode) {
	binary.BigEndian.PutUint16(msg[msgFuncCode:], uint16(fc))
}

// ForwardAddr returns a view of the 6-byte forwarding address of a forward
// message. The returned slice aliases the frame buffer.
func ForwardAddr(msg []byte) net.HardwareAddr {
	return net.HardwareAddr(msg[fwdMsgAddr : fwdMsgAddr+AddrLen])
}

// SetForwardAddr copies a 6-byte forwarding address into a forward message.
func SetForwardAddr(msg []byte, addr net.HardwareAddr) {
	copy(msg[fwdMsgAddr:fwdMsgAddr+AddrLen], addr)
}

// SetForwardMessage writes a complete forward message: function code plus
// forwarding address.
func SetForwardMessage(msg []byte, addr net.HardwareAddr) {
	SetMessageType(msg, FuncForward)
	SetForwardAddr(msg, addr)
}

// ReplyReceipt reads the receipt number of a reply message.
func ReplyReceipt(msg []byte) uint16 {
	return binary.NativeEndian.Uint16(msg[rplyMsgRcpt:])
}

// SetReplyReceipt writes the receipt number of a reply message.
//
// Unlike every other 16-bit field, the receipt number is stored in the
// host's native byte order, not swapped to wire order. This asymmetry comes
// from the protocol's original definition and is preserved bit-for-bit for
// wire compatibility; it is not a bug.
func SetReplyReceipt(msg []byte, receipt uint16) {
	binary.NativeEndian.PutUint16(msg[rplyMsgRcpt:], receipt)
}

// SetReplyHeader writes a reply message header: function code plus receipt
// number. The data region is left untouched.
func SetReplyHeader(msg []byte, receipt uint16) {
	SetMessageType(msg, FuncReply)
	SetReplyReceipt(msg, receipt)
}

// SetReplyData copies data into the reply message data region. The copy is
// bounded by the message view, not by the logical frame; sizing the view is
// the caller's responsibility.
func SetReplyData(msg []byte, data []byte) {
	copy(msg[rplyMsgData:], data)
}

// AddressForwardable reports whether addr may be used as a forward message
// target. An address with the low bit of the first byte set is a multicast
// or broadcast address and must never be forwarded to. The codec does not
// enforce this on SetForwardAddr; callers apply it before construction.
func AddressForwardable(addr net.HardwareAddr) bool {
	return len(addr) > 0 && addr[0]&0x01 == 0
}
