package trackKind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastToTrackKind(t *testing.T) {
	t.Run("should cast every known kind", func(t *testing.T) {
		for _, kind := range []string{"annotation", "alignment", "variant", "wig", "seg", "spliceJunctions", "gwas", "interaction"} {
			assert.Equal(t, kind, string(CastToTrackKind(kind)))
			assert.True(t, IsKnownTrackKind(kind))
		}
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		assert.Equal(t, Generic, CastToTrackKind("Annotation"))
		assert.Equal(t, Generic, CastToTrackKind("splicejunctions"))
		assert.False(t, IsKnownTrackKind("BAM"))
	})

	t.Run("should not know the generic kind", func(t *testing.T) {
		assert.False(t, IsKnownTrackKind(""))
	})
}

func TestKindForExtension(t *testing.T) {
	t.Run("should resolve the first matching entry", func(t *testing.T) {
		kind, ok := KindForExtension(".bed")
		assert.True(t, ok)
		assert.Equal(t, Annotation, kind)

		kind, ok = KindForExtension(".bedpe")
		assert.True(t, ok)
		assert.Equal(t, Annotation, kind)
	})

	t.Run("should resolve one extension of each kind", func(t *testing.T) {
		cases := map[string]string{
			".txt":      "annotation",
			".bigWig":   "wig",
			".bam":      "alignment",
			".vcf":      "variant",
			".seg":      "seg",
			".gwas":     "gwas",
			".bedGraph": "wig",
		}
		for ext, expected := range cases {
			kind, ok := KindForExtension(ext)
			assert.True(t, ok, ext)
			assert.Equal(t, expected, string(kind), ext)
		}
	})

	t.Run("should not resolve unknown extensions", func(t *testing.T) {
		for _, ext := range []string{"", ".xyz", ".BAM", "bam"} {
			kind, ok := KindForExtension(ext)
			assert.False(t, ok, ext)
			assert.Equal(t, Generic, kind)
		}
	})
}
