package ectp

import (
	"fmt"
	"strings"

	"ectp-go/pkg/hexdump"
	"ectp-go/pkg/log"
)

// Describe renders the frame's skipcount and message chain on one line, for
// log output and test failure messages. Malformed or truncated frames are
// described as far as they parse instead of returning an error.
func Describe(frame []byte) string {
	f := Frame(frame)
	var b strings.Builder

	skipcount, err := f.Skipcount()
	if err != nil {
		fmt.Fprintf(&b, "frame %dB: %v", len(frame), err)
		return b.String()
	}
	fmt.Fprintf(&b, "frame %dB skipcount=%d", len(frame), skipcount)
	if !f.Valid() {
		b.WriteString(" (invalid)")
	}

	err = f.Walk(func(skipcount int, msg Message) bool {
		switch msg.Type() {
		case FuncForward:
			if addr, err := msg.ForwardAddr(); err == nil {
				fmt.Fprintf(&b, "; fwd@%d %s", skipcount, addr)
			} else {
				fmt.Fprintf(&b, "; fwd@%d truncated", skipcount)
			}
		case FuncReply:
			receipt, err := msg.ReplyReceipt()
			if err != nil {
				fmt.Fprintf(&b, "; reply@%d truncated", skipcount)
				break
			}
			data, _ := msg.ReplyData()
			fmt.Fprintf(&b, "; reply@%d receipt=%d data=%dB", skipcount, receipt, len(data))
		}
		return true
	})
	if err != nil {
		fmt.Fprintf(&b, "; walk stopped: %v", err)
	}
	return b.String()
}

// DumpFrame emits a debug-level log event describing the frame, with a full
// hex dump attached. A no-op unless the package logger is enabled.
func DumpFrame(frame []byte) {
	log.Debug().
		Int("frame_len", len(frame)).
		Bool("valid", Frame(frame).Valid()).
		Str("frame", Describe(frame)).
		Str("hexdump", hexdump.Dump(frame)).
		Msg("ectp frame")
}
