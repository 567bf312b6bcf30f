package ectp

import "net"

// CalcFrameSize returns the exact byte length of a complete frame carrying
// numForward forward messages and dataSize bytes of reply data.
func CalcFrameSize(numForward, dataSize int) int {
	return FrameHeaderSize + numForward*ForwardMsgSize + ReplyMsgMinSize + dataSize
}

// BuildFrame assembles a complete frame into buf: header, one forward
// message per address in fwdAddrs, then a reply message carrying receipt and
// data. buf is filled with filler first, so bytes the logical frame does not
// reach stay at a deterministic value.
//
// BuildFrame never fails. If buf is smaller than CalcFrameSize(len(fwdAddrs),
// len(data)), the frame is truncated at whatever field boundary space runs
// out: a field that does not fully fit is encoded into a scratch buffer and
// only its leading bytes are copied, so every written byte belongs to a
// structurally correct prefix of the frame. Callers that do not want
// truncation size buf with CalcFrameSize.
func BuildFrame(buf []byte, skipcount uint16, fwdAddrs []net.HardwareAddr, receipt uint16, data []byte, filler byte) {
	if len(buf) == 0 {
		return
	}

	for i := range buf {
		buf[i] = filler
	}

	// Scratch for fields that do not fully fit; ForwardMsgSize is the
	// largest fixed-size field.
	var scratch [ForwardMsgSize]byte
	idx := 0
	left := len(buf)

	// Frame header, i.e. the skipcount field.
	if left > FrameHeaderSize {
		SetSkipcount(buf[idx:], skipcount)
		idx += FrameHeaderSize
		left -= FrameHeaderSize
	} else {
		SetSkipcount(scratch[:], skipcount)
		copy(buf, scratch[:FrameHeaderSize])
		return
	}

	// Forward messages.
	for _, addr := range fwdAddrs {
		if left == 0 {
			break
		}
		if left >= ForwardMsgSize {
			SetForwardMessage(buf[idx:], addr)
			idx += ForwardMsgSize
			left -= ForwardMsgSize
		} else {
			SetForwardMessage(scratch[:], addr)
			copy(buf[idx:], scratch[:left])
			left = 0
		}
	}

	if left == 0 {
		return
	}

	// Reply message header.
	if left > ReplyMsgMinSize {
		SetReplyHeader(buf[idx:], receipt)
		left -= ReplyMsgMinSize
	} else {
		SetReplyHeader(scratch[:], receipt)
		copy(buf[idx:], scratch[:left])
		return
	}

	// Reply data. A partial copy is valid truncation on its own, so no
	// scratch round-trip is needed for the last field.
	if left >= len(data) {
		SetReplyData(buf[idx:], data)
	} else {
		SetReplyData(buf[idx:], data[:left])
	}
}
