package ectp

import (
	"bytes"
	"net"
	"testing"
)

// testFrame returns a well-formed frame: two forward messages and a reply
// carrying three data bytes, skipcount pointing at the second forward
// message.
func testFrame() []byte {
	addrs := []net.HardwareAddr{
		{0x02, 0x11, 0x22, 0x33, 0x44, 0x55},
		{0x02, 0x66, 0x77, 0x88, 0x99, 0x0b},
	}
	data := []byte{0xca, 0xfe, 0x42}
	buf := make([]byte, CalcFrameSize(len(addrs), len(data)))
	BuildFrame(buf, ForwardMsgSize, addrs, 1234, data, 0x00)
	return buf
}

func TestFrameValid(t *testing.T) {
	f := Frame(testFrame())
	if !f.Valid() {
		t.Fatal("well-formed frame reported invalid")
	}

	SetSkipcount(f, 3) // off message boundary
	if f.Valid() {
		t.Error("misaligned skipcount reported valid")
	}

	SetSkipcount(f, 4*ForwardMsgSize) // on a boundary but outside the frame
	if f.Valid() {
		t.Error("out-of-range skipcount reported valid")
	}

	if Frame(f[:MinFrameSize-1]).Valid() {
		t.Error("undersized frame reported valid")
	}
}

func TestFrameSkipcount(t *testing.T) {
	f := Frame(testFrame())
	skipcount, err := f.Skipcount()
	if err != nil {
		t.Fatalf("Skipcount failed: %v", err)
	}
	if skipcount != ForwardMsgSize {
		t.Errorf("skipcount = %d, want %d", skipcount, ForwardMsgSize)
	}

	if _, err := Frame(f[:1]).Skipcount(); err != ErrFrameTooShort {
		t.Errorf("short frame Skipcount error = %v, want ErrFrameTooShort", err)
	}
}

func TestFramePayload(t *testing.T) {
	f := Frame(testFrame())
	payload, err := f.Payload()
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}
	if len(payload) != len(f)-FrameHeaderSize {
		t.Errorf("payload length = %d, want %d", len(payload), len(f)-FrameHeaderSize)
	}

	if _, err := Frame(nil).Payload(); err != ErrFrameTooShort {
		t.Errorf("nil frame Payload error = %v, want ErrFrameTooShort", err)
	}
}

func TestFrameMessageAt(t *testing.T) {
	f := Frame(testFrame())

	msg, err := f.MessageAt(0)
	if err != nil {
		t.Fatalf("MessageAt(0) failed: %v", err)
	}
	if msg.Type() != FuncForward {
		t.Errorf("message at 0 type = %v, want %v", msg.Type(), FuncForward)
	}

	if _, err := f.MessageAt(3); err != ErrBadSkipcount {
		t.Errorf("MessageAt(3) error = %v, want ErrBadSkipcount", err)
	}
	if _, err := f.MessageAt(len(f) + ForwardMsgSize); err != ErrBadSkipcount {
		t.Errorf("MessageAt past frame error = %v, want ErrBadSkipcount", err)
	}
	if _, err := f.MessageAt(-ForwardMsgSize); err != ErrBadSkipcount {
		t.Errorf("MessageAt negative error = %v, want ErrBadSkipcount", err)
	}
	if _, err := Frame(f[:MinFrameSize-1]).MessageAt(0); err != ErrFrameTooShort {
		t.Errorf("short frame MessageAt error = %v, want ErrFrameTooShort", err)
	}
}

func TestFrameCurrentMessage(t *testing.T) {
	f := Frame(testFrame())
	msg, err := f.CurrentMessage()
	if err != nil {
		t.Fatalf("CurrentMessage failed: %v", err)
	}
	addr, err := msg.ForwardAddr()
	if err != nil {
		t.Fatalf("ForwardAddr failed: %v", err)
	}
	// Skipcount points at the second forward message.
	want := net.HardwareAddr{0x02, 0x66, 0x77, 0x88, 0x99, 0x0b}
	if !bytes.Equal(addr, want) {
		t.Errorf("current message address = %v, want %v", addr, want)
	}
}

func TestFrameWalk(t *testing.T) {
	f := Frame(testFrame())

	var offsets []int
	var types []FuncCode
	err := f.Walk(func(skipcount int, msg Message) bool {
		offsets = append(offsets, skipcount)
		types = append(types, msg.Type())
		return true
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	wantOffsets := []int{0, ForwardMsgSize, 2 * ForwardMsgSize}
	wantTypes := []FuncCode{FuncForward, FuncForward, FuncReply}
	if len(offsets) != len(wantOffsets) {
		t.Fatalf("visited %d messages, want %d", len(offsets), len(wantOffsets))
	}
	for i := range offsets {
		if offsets[i] != wantOffsets[i] || types[i] != wantTypes[i] {
			t.Errorf("visit %d = (%d, %v), want (%d, %v)",
				i, offsets[i], types[i], wantOffsets[i], wantTypes[i])
		}
	}
}

func TestFrameWalkEarlyStop(t *testing.T) {
	f := Frame(testFrame())
	visits := 0
	err := f.Walk(func(int, Message) bool {
		visits++
		return false
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if visits != 1 {
		t.Errorf("visited %d messages after stop, want 1", visits)
	}
}

func TestFrameWalkRunsPastEnd(t *testing.T) {
	// A chain with a forward message but no reply inside the buffer: the
	// next message slot cannot even hold a function code.
	buf := make([]byte, FrameHeaderSize+ForwardMsgSize+1)
	SetSkipcount(buf, 0)
	SetForwardMessage(MessageAt(buf, 0), net.HardwareAddr{0x02, 0, 0, 0, 0, 1})

	err := Frame(buf).Walk(func(int, Message) bool { return true })
	if err != ErrFrameTooShort {
		t.Errorf("Walk error = %v, want ErrFrameTooShort", err)
	}
}

func TestFrameWalkUnknownType(t *testing.T) {
	f := Frame(testFrame())
	SetMessageType(MessageAt(f, 0), FuncCode(9))

	err := f.Walk(func(int, Message) bool { return true })
	if err != ErrWrongMsgType {
		t.Errorf("Walk error = %v, want ErrWrongMsgType", err)
	}
}

func TestMessageWrongTypeAccess(t *testing.T) {
	f := Frame(testFrame())

	fwd, err := f.MessageAt(0)
	if err != nil {
		t.Fatalf("MessageAt(0) failed: %v", err)
	}
	if _, err := fwd.ReplyReceipt(); err != ErrWrongMsgType {
		t.Errorf("ReplyReceipt on forward message error = %v, want ErrWrongMsgType", err)
	}
	if _, err := fwd.ReplyData(); err != ErrWrongMsgType {
		t.Errorf("ReplyData on forward message error = %v, want ErrWrongMsgType", err)
	}

	reply, err := f.MessageAt(2 * ForwardMsgSize)
	if err != nil {
		t.Fatalf("MessageAt(reply) failed: %v", err)
	}
	if _, err := reply.ForwardAddr(); err != ErrWrongMsgType {
		t.Errorf("ForwardAddr on reply message error = %v, want ErrWrongMsgType", err)
	}
}

func TestMessageReplyAccessors(t *testing.T) {
	f := Frame(testFrame())
	reply, err := f.MessageAt(2 * ForwardMsgSize)
	if err != nil {
		t.Fatalf("MessageAt(reply) failed: %v", err)
	}

	receipt, err := reply.ReplyReceipt()
	if err != nil {
		t.Fatalf("ReplyReceipt failed: %v", err)
	}
	if receipt != 1234 {
		t.Errorf("receipt = %d, want 1234", receipt)
	}

	data, err := reply.ReplyData()
	if err != nil {
		t.Fatalf("ReplyData failed: %v", err)
	}
	if !bytes.Equal(data, []byte{0xca, 0xfe, 0x42}) {
		t.Errorf("data = %x, want cafe42", data)
	}

	// The data slice is a view into the frame, not a copy.
	data[0] = 0x00
	if f[len(f)-3] != 0x00 {
		t.Error("ReplyData does not alias the frame buffer")
	}
}

func TestMessageTruncatedFields(t *testing.T) {
	// Forward message cut off after its function code.
	buf := make([]byte, FrameHeaderSize+ForwardMsgSize+4)
	SetSkipcount(buf, ForwardMsgSize)
	SetForwardMessage(MessageAt(buf, 0), net.HardwareAddr{0x02, 0, 0, 0, 0, 1})
	SetMessageType(MessageAt(buf, ForwardMsgSize), FuncForward)

	msg, err := Frame(buf).MessageAt(ForwardMsgSize)
	if err != nil {
		t.Fatalf("MessageAt failed: %v", err)
	}
	if _, err := msg.ForwardAddr(); err != ErrFrameTooShort {
		t.Errorf("truncated ForwardAddr error = %v, want ErrFrameTooShort", err)
	}

	// Reply message cut off inside the receipt number.
	buf = make([]byte, FrameHeaderSize+ForwardMsgSize+3)
	SetSkipcount(buf, 0)
	SetForwardMessage(MessageAt(buf, 0), net.HardwareAddr{0x02, 0, 0, 0, 0, 1})
	SetMessageType(MessageAt(buf, ForwardMsgSize), FuncReply)

	msg, err = Frame(buf).MessageAt(ForwardMsgSize)
	if err != nil {
		t.Fatalf("MessageAt failed: %v", err)
	}
	if _, err := msg.ReplyReceipt(); err != ErrFrameTooShort {
		t.Errorf("truncated ReplyReceipt error = %v, want ErrFrameTooShort", err)
	}
	if _, err := msg.ReplyData(); err != ErrFrameTooShort {
		t.Errorf("truncated ReplyData error = %v, want ErrFrameTooShort", err)
	}
}
