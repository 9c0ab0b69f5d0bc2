package dtos

import (
	"time"

	"igv/api/models/igv"
)

type CreateBrowserRequestDto struct {
	// public genome id (hg38, hg19, mm10, ..)
	GenomeId string `json:"genomeId"`
	// or a genome parameter bag, used when GenomeId is empty
	Genome map[string]interface{} `json:"genome"`

	Tracks  []map[string]interface{} `json:"tracks"`
	Roi     []map[string]interface{} `json:"roi"`
	Search  map[string]interface{}   `json:"search"`
	Options map[string]interface{}   `json:"options"` // browser flags
}

type BrowserResponseDto struct {
	Id       string                 `json:"id"`
	ModelId  string                 `json:"modelId"`
	GenomeId string                 `json:"genomeId"`
	State    map[string]interface{} `json:"state"`
	Warnings []string               `json:"warnings"`
}

type TrackResponseDto struct {
	ModelId  string                 `json:"modelId"`
	Token    string                 `json:"token"`
	Kind     string                 `json:"kind"`
	State    map[string]interface{} `json:"state"`
	Warnings []string               `json:"warnings"`
}

type MessagesResponseDto struct {
	Count    int           `json:"count"`
	Messages []igv.Message `json:"messages"`
}

type ModelResponseDto struct {
	ModelId string                 `json:"modelId"`
	Token   string                 `json:"token"`
	State   map[string]interface{} `json:"state"`
}

// -- errors
type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}
type GeneralError struct {
	Message string `json:"message"`
}
