package indexes

import (
	"time"
)

// BrowserSession is the persisted snapshot of a browser session.
type BrowserSession struct {
	Id        string                 `json:"id"`
	GenomeId  string                 `json:"genomeId"`
	State     map[string]interface{} `json:"state"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// BrowserDump is a json document returned by the view.
type BrowserDump struct {
	BrowserId  string      `json:"browserId"`
	Json       interface{} `json:"json"`
	ReceivedAt time.Time   `json:"receivedAt"`
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_KEYWORD = map[string]interface{}{"type": "keyword"}
var MAPPING_DATE = map[string]interface{}{"type": "date"}

// widget states are free-form, store them without indexing
var MAPPING_DISABLED_OBJECT = map[string]interface{}{"type": "object", "enabled": false}

var BROWSER_SESSION_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"id":        MAPPING_KEYWORD,
		"genomeId":  MAPPING_TEXT,
		"state":     MAPPING_DISABLED_OBJECT,
		"createdAt": MAPPING_DATE,
		"updatedAt": MAPPING_DATE,
	},
}

var BROWSER_DUMP_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"browserId":  MAPPING_KEYWORD,
		"json":       MAPPING_DISABLED_OBJECT,
		"receivedAt": MAPPING_DATE,
	},
}
