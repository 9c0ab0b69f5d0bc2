package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the igv api and it's
	associated services.
*/
type TrackKind string

type MessageType string
type EventType string
