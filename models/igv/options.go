package igv

// Plain records nested inside track models. They are not widgets
// and are serialized inline.

type FieldColors struct {
	Field   string            `json:"field"`
	Palette map[string]string `json:"palette"`
}

type SortOption struct {
	Chr       string `json:"chr"`      // chromosome name
	Position  int    `json:"position"` // genomic position
	Option    string `json:"option"`   // 'BASE', 'STRAND', 'INSERT_SIZE', 'MATE_CHR', 'MQ', 'TAG'
	Tag       string `json:"tag"`
	Direction string `json:"direction"` // 'ASC' or 'DESC'
}

type SortOrder struct {
	Chr       string `json:"chr"`
	Direction string `json:"direction"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type Guideline struct {
	Color  string `json:"color"`
	Dotted bool   `json:"dotted"`
	Y      int    `json:"y"`
}
