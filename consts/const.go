package consts

import (
	"time"
)

const (
	DefaultTcpAddr       = ":9999"
	DefaultWebsocketAddr = ":9998"

	HandshakeTimeout = 3 * time.Second
	TickInterval     = 200 * time.Millisecond
	// BotThinkTime paces bot seats at the terminal table.
	BotThinkTime = 600 * time.Millisecond

	// ClientOutboxSize bounds the snapshots queued for one connection.
	ClientOutboxSize = 16
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsTimeout        = NewErr(1, true, "Timeout. ")
	ErrorsInputInvalid   = NewErr(1, false, "Input invalid. ")
	ErrorsHandshakeFail  = NewErr(1, true, "Handshake fail. ")
	ErrorsSeatInvalid    = NewErr(1, true, "Seat invalid. ")
	ErrorsRequestInvalid = NewErr(1, false, "Request type invalid. ")
	ErrorsConfigMissing  = NewErr(1, false, "Config missing. ")
)
