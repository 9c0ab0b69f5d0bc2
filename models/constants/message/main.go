package message

import "igv/api/models/constants"

// Command messages sent to the view
const (
	SEARCH    constants.MessageType = "search"
	DUMP_JSON constants.MessageType = "dump_json"
)

// Events received from the view
const (
	RETURN_JSON constants.EventType = "return_json"
)
