package igv

import (
	"igv/api/models/constants"
	"igv/api/models/constants/message"
)

// Message is a command sent to the view.
type Message struct {
	Type   constants.MessageType `json:"type"`
	Symbol string                `json:"symbol,omitempty"`
}

func SearchMessage(symbol string) Message {
	return Message{Type: message.SEARCH, Symbol: symbol}
}

func DumpJsonMessage() Message {
	return Message{Type: message.DUMP_JSON}
}

// Event is received from the view.
type Event struct {
	Event constants.EventType `json:"event"`
	Json  interface{}         `json:"json"`
}
