package igv

import (
	. "github.com/ahmetb/go-linq"
)

// Browser is the root of a configuration tree ("IgvBrowser").
// https://github.com/igvteam/igv.js/wiki/Browser-Creation
type Browser struct {
	Widget

	Genome                   *ReferenceGenome `json:"genome"`
	Tracks                   []Track          `json:"tracks"`
	DoubleClickDelay         int              `json:"doubleClickDelay"`
	Flanking                 int              `json:"flanking"`
	GenomeList               string           `json:"genomeList"` // optional url
	Locus                    []string         `json:"locus"`
	MinimumBases             int              `json:"minimumBases"`
	QueryParametersSupported bool             `json:"queryParametersSupported"`
	Search                   *SearchService   `json:"search"`
	ShowAllChromosomes       bool             `json:"showAllChromosomes"`
	ShowAllChromosomeWidget  bool             `json:"showAllChromosomeWidget"`
	ShowNavigation           bool             `json:"showNavigation"`
	ShowSVGButton            bool             `json:"showSVGButton"`
	ShowRuler                bool             `json:"showRuler"`
	ShowCenterGuide          bool             `json:"showCenterGuide"`
	Roi                      []Track          `json:"roi"` // regions of interest
	OauthToken               string           `json:"oauthToken"`
	ApiKey                   string           `json:"apiKey"`
	ClientId                 string           `json:"clientId"`
}

func NewBrowser(genome *ReferenceGenome) *Browser {
	return &Browser{
		Widget:                  newWidget("IgvModel", "IgvBrowser", BROWSER_MODULE_NAME),
		Genome:                  genome,
		Tracks:                  []Track{},
		DoubleClickDelay:        500,
		Flanking:                1000,
		MinimumBases:            40,
		ShowAllChromosomes:      true,
		ShowAllChromosomeWidget: true,
		ShowNavigation:          true,
		ShowRuler:               true,
		Roi:                     []Track{},
	}
}

// Lists are never mutated in place: every change installs a new slice,
// so a previously observed value stays valid.

func (b *Browser) AddTrack(track Track) {
	if track == nil {
		return
	}
	b.Tracks = appendTrack(b.Tracks, track)
}

// RemoveTrack drops every entry that is the same model as track.
func (b *Browser) RemoveTrack(track Track) {
	if track == nil {
		return
	}
	b.Tracks = withoutModel(b.Tracks, track.GetModelId())
}

func (b *Browser) AddRoi(roi Track) {
	if roi == nil {
		return
	}
	b.Roi = appendTrack(b.Roi, roi)
}

func (b *Browser) RemoveAllRoi() {
	b.Roi = []Track{}
}

func (b *Browser) FindTrack(modelId string) (Track, bool) {
	for _, t := range b.Tracks {
		if t.GetModelId() == modelId {
			return t, true
		}
	}
	return nil, false
}

// Entities lists every model reachable from the browser, the browser
// included, each once.
func (b *Browser) Entities() []Entity {
	seen := map[string]bool{}
	entities := []Entity{}

	var visit func(e Entity)
	visitTracks := func(tracks []Track) {
		for _, t := range tracks {
			if t != nil {
				visit(t)
			}
		}
	}
	visit = func(e Entity) {
		if seen[e.GetModelId()] {
			return
		}
		seen[e.GetModelId()] = true
		entities = append(entities, e)

		switch v := e.(type) {
		case *Browser:
			if v.Genome != nil {
				visit(v.Genome)
			}
			visitTracks(v.Tracks)
			visitTracks(v.Roi)
			if v.Search != nil {
				visit(v.Search)
			}
		case *ReferenceGenome:
			visitTracks(v.Tracks)
		case Track:
			visitTracks(v.RegionsOfInterest())
		}
	}
	visit(b)

	return entities
}

// -- helpers
func appendTrack(tracks []Track, track Track) []Track {
	if len(tracks) == 0 {
		return []Track{track}
	}
	next := make([]Track, 0, len(tracks)+1)
	next = append(next, tracks...)
	return append(next, track)
}

func withoutModel(tracks []Track, modelId string) []Track {
	remaining := []Track{}
	From(tracks).WhereT(func(t Track) bool {
		return t.GetModelId() != modelId
	}).ToSlice(&remaining)
	return remaining
}
