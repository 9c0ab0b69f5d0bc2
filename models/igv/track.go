package igv

import (
	"igv/api/models/constants"
	tk "igv/api/models/constants/track-kind"
)

// Track is one renderable data layer. The concrete type is one of the
// *Track structs below; which one is decided by resolver.Resolve.
type Track interface {
	Entity
	Kind() constants.TrackKind
	Common() *TrackBase
	RegionsOfInterest() []Track
	SetRegionsOfInterest(roi []Track)
}

// TrackBase holds the fields common to every track type.
// https://github.com/igvteam/igv.js/wiki/Tracks-2.0
type TrackBase struct {
	Widget

	SourceType string            `json:"sourceType"`
	Format     string            `json:"format"`
	Name       string            `json:"name"`
	Url        string            `json:"url"`
	IndexURL   string            `json:"indexURL"`
	Indexed    bool              `json:"indexed"`
	Order      int               `json:"order"`
	Color      string            `json:"color"`
	Height     int               `json:"height"`
	AutoHeight bool              `json:"autoHeight"`
	MinHeight  int               `json:"minHeight"`
	MaxHeight  int               `json:"maxHeight"`
	Removable  bool              `json:"removable"`
	Headers    map[string]string `json:"headers"`
	OauthToken *string           `json:"oauthToken"`
}

func newTrackBase() TrackBase {
	return TrackBase{
		Widget:     newWidget("TrackModel", "TrackView", MODULE_NAME),
		SourceType: "file",
		Height:     50,
		MinHeight:  50,
		MaxHeight:  500,
		Removable:  true,
		Headers:    map[string]string{},
	}
}

func (t *TrackBase) Common() *TrackBase {
	return t
}

// GenericTrack is instantiated when no track type could be inferred.
type GenericTrack struct {
	TrackBase
}

func NewGenericTrack() *GenericTrack {
	return &GenericTrack{TrackBase: newTrackBase()}
}

func (t *GenericTrack) Kind() constants.TrackKind { return tk.Generic }
func (t *GenericTrack) RegionsOfInterest() []Track { return nil }
func (t *GenericTrack) SetRegionsOfInterest(roi []Track) {}

// NewTrack returns a track of the given kind with all of its defaults set.
// Unknown kinds yield a GenericTrack.
func NewTrack(kind constants.TrackKind) Track {
	switch kind {
	case tk.Annotation:
		return NewAnnotationTrack()
	case tk.Alignment:
		return NewAlignmentTrack()
	case tk.Variant:
		return NewVariantTrack()
	case tk.Wig:
		return NewWigTrack()
	case tk.Seg:
		return NewSegTrack()
	case tk.SpliceJunctions:
		return NewSpliceJunctionsTrack()
	case tk.Gwas:
		return NewGwasTrack()
	case tk.Interaction:
		return NewInteractionTrack()
	default:
		return NewGenericTrack()
	}
}
