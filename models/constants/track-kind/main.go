package trackKind

import (
	"igv/api/models/constants"
)

const (
	// Generic is the kind of a track whose type could not be resolved.
	// It carries no `type` on the wire.
	Generic constants.TrackKind = ""

	Annotation      constants.TrackKind = "annotation"
	Alignment       constants.TrackKind = "alignment"
	Variant         constants.TrackKind = "variant"
	Wig             constants.TrackKind = "wig"
	Seg             constants.TrackKind = "seg"
	SpliceJunctions constants.TrackKind = "spliceJunctions"
	Gwas            constants.TrackKind = "gwas"
	Interaction     constants.TrackKind = "interaction"
)

// FileTypes associates a track kind with the file extensions it is inferred from.
type FileTypes struct {
	Kind       constants.TrackKind
	Extensions []string
}

// TRACK_FILE_TYPES is the extension table used to infer a track kind from its url.
// Entries are matched in order and the first hit wins, so `.bed` resolves to
// annotation and `.bedpe` to annotation as well.
//
// This table is part of the wire format: descriptors without an explicit
// `type` are re-resolved against it on load. Do not reorder.
//
// NB '.txt' is considered annotation as it is used in the public genomes.
var TRACK_FILE_TYPES = []FileTypes{
	{Annotation, []string{".txt",
		".bed", ".gff", ".gff3", ".gtf", ".genePred", ".genePredExt",
		".peaks", ".narrowPeak", ".broadPeak", ".bigBed", ".bedpe"}},
	{Wig, []string{".wig", ".bigWig", ".bedGraph"}},
	{Alignment, []string{".bam"}},
	{Variant, []string{".vcf"}},
	{Seg, []string{".seg"}},
	{SpliceJunctions, []string{".bed"}},
	{Gwas, []string{".gwas", ".bed"}},
	{Interaction, []string{".bedpe"}},
}

// CastToTrackKind is case sensitive, matching the igv.js `type` values.
func CastToTrackKind(text string) constants.TrackKind {
	switch text {
	case "annotation":
		return Annotation
	case "alignment":
		return Alignment
	case "variant":
		return Variant
	case "wig":
		return Wig
	case "seg":
		return Seg
	case "spliceJunctions":
		return SpliceJunctions
	case "gwas":
		return Gwas
	case "interaction":
		return Interaction
	default:
		return Generic
	}
}

func IsKnownTrackKind(text string) bool {
	return CastToTrackKind(text) != Generic
}

// KindForExtension walks TRACK_FILE_TYPES in order.
func KindForExtension(extension string) (constants.TrackKind, bool) {
	for _, ft := range TRACK_FILE_TYPES {
		for _, ext := range ft.Extensions {
			if ext == extension {
				return ft.Kind, true
			}
		}
	}
	return Generic, false
}
