package genomes

import (
	"testing"

	tk "igv/api/models/constants/track-kind"
	"igv/api/models/igv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicGenomes(t *testing.T) {
	t.Run("should load the bundled genomes once", func(t *testing.T) {
		first, err := PublicGenomes()
		require.NoError(t, err)
		second, err := PublicGenomes()
		require.NoError(t, err)

		assert.Contains(t, first, "hg38")
		assert.Equal(t, len(first), len(second))
	})

	t.Run("should list sorted ids", func(t *testing.T) {
		ids, err := PublicGenomeIds()
		require.NoError(t, err)

		assert.Equal(t, []string{"hg19", "hg38", "mm10"}, ids)
	})
}

func TestNewPublicGenome(t *testing.T) {
	t.Run("should instantiate hg38 with annotation tracks", func(t *testing.T) {
		genome, warnings, err := NewPublicGenome("hg38")
		require.NoError(t, err)

		assert.Empty(t, warnings)
		assert.Equal(t, "hg38", genome.Id)
		assert.Equal(t, "Human (GRCh38/hg38)", genome.Name)
		assert.Contains(t, genome.FastaURL, "hg38.fa")
		assert.True(t, genome.WholeGenomeView)

		require.Len(t, genome.Tracks, 1)
		track := genome.Tracks[0]
		assert.Equal(t, tk.Annotation, track.Kind())
		assert.Equal(t, "Refseq Genes", track.Common().Name)
		assert.Equal(t, "refgene", track.Common().Format)
		assert.False(t, track.Common().Removable)
		assert.Equal(t, 1000000, track.Common().Order)
	})

	t.Run("should return fresh entities on every call", func(t *testing.T) {
		a, _, err := NewPublicGenome("mm10")
		require.NoError(t, err)
		b, _, err := NewPublicGenome("mm10")
		require.NoError(t, err)

		assert.NotEqual(t, a.GetModelId(), b.GetModelId())
		assert.NotEqual(t, a.Tracks[0].GetModelId(), b.Tracks[0].GetModelId())
	})

	t.Run("should fail on unknown ids", func(t *testing.T) {
		_, _, err := NewPublicGenome("hg00")
		assert.ErrorIs(t, err, ErrUnknownGenome)
	})
}

func TestNewGenome(t *testing.T) {
	t.Run("should build a genome from parameters", func(t *testing.T) {
		genome, warnings, err := NewGenome(map[string]interface{}{
			"id":       "custom",
			"fastaURL": "https://example.org/custom.fa",
			"headers":  map[string]interface{}{"X-Key": "v"},
			"tracks": []interface{}{
				map[string]interface{}{"url": "https://example.org/reads.bam"},
				"not a track",
			},
			"unknown": 1,
		})
		require.NoError(t, err)

		assert.Equal(t, "custom", genome.Id)
		assert.Equal(t, map[string]string{"X-Key": "v"}, genome.Headers)
		require.Len(t, genome.Tracks, 1)
		assert.IsType(t, &igv.AlignmentTrack{}, genome.Tracks[0])
		assert.Len(t, warnings, 2)
	})
}

func TestNewGenomeWithMalformedParameters(t *testing.T) {
	t.Run("should warn when tracks is not a list", func(t *testing.T) {
		genome, warnings, err := NewGenome(map[string]interface{}{
			"id":     "custom",
			"tracks": map[string]interface{}{"url": "https://example.org/reads.bam"},
		})
		require.NoError(t, err)

		assert.Empty(t, genome.Tracks)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "'tracks' must be a list")
	})

	t.Run("should not warn about a null tracks entry", func(t *testing.T) {
		_, warnings, err := NewGenome(map[string]interface{}{"id": "custom", "tracks": nil})
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("should reject badly typed parameters", func(t *testing.T) {
		_, _, err := NewGenome(map[string]interface{}{"id": "custom", "wholeGenomeView": "abc"})
		assert.ErrorIs(t, err, ErrInvalidGenome)
	})
}
