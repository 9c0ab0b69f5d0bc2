package igv

import (
	"igv/api/models/constants"
	tk "igv/api/models/constants/track-kind"
)

// AnnotationTrack
// https://github.com/igvteam/igv.js/wiki/Annotation-Track
type AnnotationTrack struct {
	TrackBase

	Type              constants.TrackKind `json:"type"`
	DisplayMode       string              `json:"displayMode"`
	ExpandedRowHeight int                 `json:"expandedRowHeight"`
	SquishedRowHeight int                 `json:"squishedRowHeight"`
	NameField         string              `json:"nameField"`
	MaxRows           int                 `json:"maxRows"`
	Searchable        bool                `json:"searchable"`
	FilterTypes       []string            `json:"filterTypes"`
	AltColor          string              `json:"altColor"`
	ColorBy           *FieldColors        `json:"colorBy"`
	Roi               []Track             `json:"roi"`
}

func NewAnnotationTrack() *AnnotationTrack {
	t := &AnnotationTrack{
		TrackBase:         newTrackBase(),
		Type:              tk.Annotation,
		DisplayMode:       "COLLAPSED",
		ExpandedRowHeight: 30,
		SquishedRowHeight: 15,
		NameField:         "Name",
		MaxRows:           500,
		FilterTypes:       []string{"chromosone", "gene"},
		AltColor:          "rgb(0,0,150)",
	}
	t.Color = "rgb(0,0,150)"
	return t
}

func (t *AnnotationTrack) Kind() constants.TrackKind { return tk.Annotation }
func (t *AnnotationTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *AnnotationTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }

// AlignmentTrack
// https://github.com/igvteam/igv.js/wiki/Alignment-Track
type AlignmentTrack struct {
	TrackBase

	Type               constants.TrackKind `json:"type"`
	ViewAsPairs        bool                `json:"viewAsPairs"`
	PairsSupported     bool                `json:"pairsSupported"`
	CoverageColor      string              `json:"coverageColor"`
	DeletionColor      string              `json:"deletionColor"`
	SkippedColor       string              `json:"skippedColor"`
	InsertionColor     string              `json:"insertionColor"`
	NegStrandColor     string              `json:"negStrandColor"`
	PosStrandColor     string              `json:"posStrandColor"`
	ColorBy            string              `json:"colorBy"` // "none", "strand", "firstOfPairStrand", or "tag"
	ColorByTag         string              `json:"colorByTag"`
	BamColorTag        string              `json:"bamColorTag"`
	SamplingWindowSize int                 `json:"samplingWindowSize"`
	SamplingDepth      int                 `json:"samplingDepth"`
	AlignmentRowHeight int                 `json:"alignmentRowHeight"`
	Readgroup          string              `json:"readgroup"`
	SortOption         *SortOption         `json:"sortOption"`
	ShowSoftClips      bool                `json:"showSoftClips"`
	ShowMismatches     bool                `json:"showMismatches"`

	// paired-end and mate-pair coloring options
	PairOrientation   *string `json:"pairOrientation"` // ff, fr, or rf
	MinFragmentLength *int    `json:"minFragmentLength"`
	MaxFragmentLength *int    `json:"maxFragmentLength"`

	Roi []Track `json:"roi"`
}

func NewAlignmentTrack() *AlignmentTrack {
	t := &AlignmentTrack{
		TrackBase:          newTrackBase(),
		Type:               tk.Alignment,
		PairsSupported:     true,
		CoverageColor:      "rgb(150, 150, 150)",
		DeletionColor:      "black",
		SkippedColor:       "rgb(150, 170, 170)",
		InsertionColor:     "rgb(138, 94, 161)",
		NegStrandColor:     "rgba(150, 150, 230, 0.75)",
		PosStrandColor:     "rgba(230, 150, 150, 0.75)",
		ColorBy:            "none",
		BamColorTag:        "YC",
		SamplingWindowSize: 100,
		SamplingDepth:      100,
		AlignmentRowHeight: 14,
		Readgroup:          "RG",
		ShowMismatches:     true,
	}
	t.Color = "rgb(170, 170, 170)"
	return t
}

func (t *AlignmentTrack) Kind() constants.TrackKind { return tk.Alignment }
func (t *AlignmentTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *AlignmentTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }

// VariantTrack
// https://github.com/igvteam/igv.js/wiki/Variant-Track
type VariantTrack struct {
	TrackBase

	Type               constants.TrackKind `json:"type"`
	DisplayMode        string              `json:"displayMode"`
	NoCallColor        string              `json:"noCallColor"`
	HomvarColor        string              `json:"homvarColor"`
	HetvarColor        string              `json:"hetvarColor"`
	HomrefColor        string              `json:"homrefColor"`
	SquishedCallHeight int                 `json:"squishedCallHeight"`
	ExpandedCallHeight int                 `json:"expandedCallHeight"`
	Roi                []Track             `json:"roi"`
}

func NewVariantTrack() *VariantTrack {
	return &VariantTrack{
		TrackBase:          newTrackBase(),
		Type:               tk.Variant,
		DisplayMode:        "EXPANDED",
		NoCallColor:        "rgb(250, 250, 250)",
		HomvarColor:        "rgb(17,248,254)",
		HetvarColor:        "rgb(34,12,253)",
		HomrefColor:        "rgb(200, 200, 200)",
		SquishedCallHeight: 1,
		ExpandedCallHeight: 10,
	}
}

func (t *VariantTrack) Kind() constants.TrackKind { return tk.Variant }
func (t *VariantTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *VariantTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }

// WigTrack
// https://github.com/igvteam/igv.js/wiki/Wig-Track
type WigTrack struct {
	TrackBase

	Type           constants.TrackKind `json:"type"`
	Autoscale      bool                `json:"autoscale"`
	AutoscaleGroup *string             `json:"autoscaleGroup"`
	Min            int                 `json:"min"`
	Max            *int                `json:"max"`
	AltColor       *string             `json:"altColor"`
	GuideLines     []Guideline         `json:"guideLines"`
	Roi            []Track             `json:"roi"`
}

func NewWigTrack() *WigTrack {
	t := &WigTrack{
		TrackBase: newTrackBase(),
		Type:      tk.Wig,
		Autoscale: true,
	}
	t.Color = "rgb(150, 150, 150)"
	return t
}

func (t *WigTrack) Kind() constants.TrackKind { return tk.Wig }
func (t *WigTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *WigTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }

// SegTrack
// https://github.com/igvteam/igv.js/wiki/Seg-Track
type SegTrack struct {
	TrackBase

	Type        constants.TrackKind `json:"type"`
	IsLog       *bool               `json:"isLog"`
	DisplayMode string              `json:"displayMode"` // "EXPANDED", "SQUISHED", or "FILL"
	Sort        *SortOrder          `json:"sort"`
	Roi         []Track             `json:"roi"`
}

func NewSegTrack() *SegTrack {
	return &SegTrack{
		TrackBase:   newTrackBase(),
		Type:        tk.Seg,
		DisplayMode: "EXPANDED",
		Sort:        &SortOrder{Direction: "ASC"},
	}
}

func (t *SegTrack) Kind() constants.TrackKind { return tk.Seg }
func (t *SegTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *SegTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }

// SpliceJunctionsTrack
// https://github.com/igvteam/igv.js/wiki/SpliceJunctions
type SpliceJunctionsTrack struct {
	TrackBase

	Type constants.TrackKind `json:"type"`

	// display options
	ColorBy                   string  `json:"colorBy"` // "numUniqueReads", "numReads", "isAnnotatedJunction", "strand", "motif"
	ColorByNumReadsThreshold  int     `json:"colorByNumReadsThreshold"`
	ThicknessBasedOn          string  `json:"thicknessBasedOn"`   // "numUniqueReads", "numReads", "isAnnotatedJunction"
	BounceHeightBasedOn       string  `json:"bounceHeightBasedOn"` // "random", "distance", "thickness"
	LabelUniqueReadCount      bool    `json:"labelUniqueReadCount"`
	LabelMultiMappedReadCount bool    `json:"labelMultiMappedReadCount"`
	LabelTotalReadCount       bool    `json:"labelTotalReadCount"`
	LabelMotif                bool    `json:"labelMotif"`
	LabelAnnotatedJunction    *string `json:"labelAnnotatedJunction"`

	// filtering options
	MinUniquelyMappedReads      int      `json:"minUniquelyMappedReads"`
	MinTotalReads               int      `json:"minTotalReads"`
	MaxFractionMultiMappedReads int      `json:"maxFractionMultiMappedReads"`
	MinSplicedAlignmentOverhang int      `json:"minSplicedAlignmentOverhang"`
	HideStrand                  *string  `json:"hideStrand"` // nil, "+" or "-"
	HideAnnotatedJunctions      bool     `json:"hideAnnotatedJunctions"`
	HideUnannotatedJunctions    bool     `json:"hideUnannotatedJunctions"`
	HideMotifs                  []string `json:"hideMotifs"`

	Roi []Track `json:"roi"`
}

func NewSpliceJunctionsTrack() *SpliceJunctionsTrack {
	return &SpliceJunctionsTrack{
		TrackBase:                   newTrackBase(),
		Type:                        tk.SpliceJunctions,
		ColorBy:                     "numUniqueReads",
		ColorByNumReadsThreshold:    5,
		ThicknessBasedOn:            "numUniqueReads",
		BounceHeightBasedOn:         "random",
		LabelUniqueReadCount:        true,
		LabelMultiMappedReadCount:   true,
		MaxFractionMultiMappedReads: 1,
		HideMotifs:                  []string{},
	}
}

func (t *SpliceJunctionsTrack) Kind() constants.TrackKind { return tk.SpliceJunctions }
func (t *SpliceJunctionsTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *SpliceJunctionsTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }

// GwasTrack
// https://github.com/igvteam/igv.js/wiki/GWAS
type GwasTrack struct {
	TrackBase

	Type                 constants.TrackKind `json:"type"`
	Min                  int                 `json:"min"`
	Max                  int                 `json:"max"`
	PosteriorProbability bool                `json:"posteriorProbability"`
	DotSize              int                 `json:"dotSize"`
	Columns              map[string]int      `json:"columns"`
	Roi                  []Track             `json:"roi"`
}

func NewGwasTrack() *GwasTrack {
	return &GwasTrack{
		TrackBase: newTrackBase(),
		Type:      tk.Gwas,
		Max:       25,
		DotSize:   3,
	}
}

func (t *GwasTrack) Kind() constants.TrackKind { return tk.Gwas }
func (t *GwasTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *GwasTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }

// InteractionTrack
// https://github.com/igvteam/igv.js/wiki/Interaction
type InteractionTrack struct {
	TrackBase

	Type           constants.TrackKind `json:"type"`
	ArcOrientation bool                `json:"arcOrientation"`
	Thickness      int                 `json:"thickness"`
	Roi            []Track             `json:"roi"`
}

func NewInteractionTrack() *InteractionTrack {
	return &InteractionTrack{
		TrackBase:      newTrackBase(),
		Type:           tk.Interaction,
		ArcOrientation: true,
		Thickness:      2,
	}
}

func (t *InteractionTrack) Kind() constants.TrackKind { return tk.Interaction }
func (t *InteractionTrack) RegionsOfInterest() []Track { return t.Roi }
func (t *InteractionTrack) SetRegionsOfInterest(roi []Track) { t.Roi = roi }
