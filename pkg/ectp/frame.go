package ectp

import (
	"errors"
	"net"
)

// Common errors returned by the checked accessors in this file.
var (
	ErrFrameTooShort = errors.New("ectp frame too short")
	ErrBadSkipcount  = errors.New("ectp skipcount off message boundary or outside frame")
	ErrWrongMsgType  = errors.New("ectp message type mismatch")
)

// Frame is a checked view over a received frame buffer. It performs the
// bounds and alignment validation the raw package-level accessors omit, and
// is the intended entry point for frames of untrusted origin. The view
// aliases the buffer; no bytes are copied.
type Frame []byte

// Valid reports whether the frame is large enough to hold a reply message
// and its skipcount lands on a message boundary inside the buffer.
func (f Frame) Valid() bool {
	return len(f) >= MinFrameSize && SkipcountOK(int(Skipcount(f)), len(f))
}

// Skipcount returns the frame's skipcount in host order.
func (f Frame) Skipcount() (int, error) {
	if len(f) < FrameHeaderSize {
		return 0, ErrFrameTooShort
	}
	return int(Skipcount(f)), nil
}

// Payload returns the message region of the frame, following the header.
func (f Frame) Payload() ([]byte, error) {
	if len(f) < FrameHeaderSize {
		return nil, ErrFrameTooShort
	}
	return f[FrameHeaderSize:], nil
}

// MessageAt returns the message at byte offset skipcount into the payload,
// after validating the offset against the frame bounds.
func (f Frame) MessageAt(skipcount int) (Message, error) {
	if len(f) < MinFrameSize {
		return nil, ErrFrameTooShort
	}
	if !SkipcountOK(skipcount, len(f)) {
		return nil, ErrBadSkipcount
	}
	if FrameHeaderSize+skipcount+msgHeaderSize > len(f) {
		return nil, ErrFrameTooShort
	}
	return Message(MessageAt(f, skipcount)), nil
}

// CurrentMessage returns the message the frame's own skipcount points at.
func (f Frame) CurrentMessage() (Message, error) {
	skipcount, err := f.Skipcount()
	if err != nil {
		return nil, err
	}
	return f.MessageAt(skipcount)
}

// Walk iterates the message chain from the start of the payload: every
// forward message in order, then the terminal reply message. The visit
// function may return false to stop early. Walk returns an error if the
// chain runs past the frame bounds or hits a message of unknown type before
// reaching the reply.
func (f Frame) Walk(visit func(skipcount int, msg Message) bool) error {
	for skipcount := 0; ; skipcount += ForwardMsgSize {
		msg, err := f.MessageAt(skipcount)
		if err != nil {
			return err
		}
		if !visit(skipcount, msg) {
			return nil
		}
		switch msg.Type() {
		case FuncForward:
		case FuncReply:
			return nil
		default:
			return ErrWrongMsgType
		}
	}
}

// msgHeaderSize is the part of a message every kind shares: the function
// code. A Message view is guaranteed to hold at least this much.
const msgHeaderSize = 2

// Message is a checked view over one message inside a frame payload.
// Obtained from Frame accessors, which guarantee the function code is in
// bounds; the per-kind field accessors check the rest.
type Message []byte

// Type returns the message's function code.
func (m Message) Type() FuncCode {
	return MessageType(m)
}

// ForwardAddr returns the forwarding address of a forward message. The
// returned slice aliases the frame buffer.
func (m Message) ForwardAddr() (net.HardwareAddr, error) {
	if m.Type() != FuncForward {
		return nil, ErrWrongMsgType
	}
	if len(m) < ForwardMsgSize {
		return nil, ErrFrameTooShort
	}
	return ForwardAddr(m), nil
}

// ReplyReceipt returns the receipt number of a reply message.
func (m Message) ReplyReceipt() (uint16, error) {
	if m.Type() != FuncReply {
		return 0, ErrWrongMsgType
	}
	if len(m) < ReplyMsgMinSize {
		return 0, ErrFrameTooShort
	}
	return ReplyReceipt(m), nil
}

// ReplyData returns the data region of a reply message, extending to the end
// of the frame. The returned slice aliases the frame buffer.
func (m Message) ReplyData() ([]byte, error) {
	if m.Type() != FuncReply {
		return nil, ErrWrongMsgType
	}
	if len(m) < ReplyMsgMinSize {
		return nil, ErrFrameTooShort
	}
	return m[rplyMsgData:], nil
}
