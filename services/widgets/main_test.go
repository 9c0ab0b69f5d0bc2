package widgets

import (
	"testing"

	"igv/api/models/igv"
	"igv/api/services/serialization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	newRegistry := func() *Registry {
		return NewRegistry(serialization.NewSerializer())
	}

	t.Run("should resolve registered models by id and by token", func(t *testing.T) {
		r := newRegistry()
		track := igv.NewWigTrack()
		r.Register(track)

		byId, err := r.Get(track.GetModelId())
		require.NoError(t, err)
		assert.Same(t, track, byId)

		byToken, err := r.Resolve(serialization.Token(track))
		require.NoError(t, err)
		assert.Same(t, track, byToken)

		byBareId, err := r.Resolve(track.GetModelId())
		require.NoError(t, err)
		assert.Same(t, track, byBareId)
	})

	t.Run("should fail on unknown models", func(t *testing.T) {
		r := newRegistry()

		_, err := r.Get("nope")
		assert.ErrorIs(t, err, ErrModelNotFound)

		_, err = r.Resolve("IPY_MODEL_nope")
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("should forget unregistered models", func(t *testing.T) {
		r := newRegistry()
		a, b := igv.NewSegTrack(), igv.NewGwasTrack()
		r.Register(a, b, nil)
		assert.Equal(t, 2, r.Len())

		r.Unregister(a.GetModelId())
		assert.Equal(t, 1, r.Len())

		_, err := r.Get(a.GetModelId())
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("should describe the model state with its front-end classes", func(t *testing.T) {
		r := newRegistry()
		genome := igv.NewReferenceGenome()

		ms := r.ModelState(genome)

		assert.Equal(t, "ReferenceGenomeModel", ms.ModelName)
		assert.Equal(t, "ipyigv", ms.ModelModule)
		assert.Equal(t, igv.EXTENSION_VERSION, ms.ModelModuleVersion)
		assert.Equal(t, true, ms.State["wholeGenomeView"])
	})

	t.Run("should embed every model of a browser tree once", func(t *testing.T) {
		r := newRegistry()
		genome := igv.NewReferenceGenome()
		genomeTrack := igv.NewAnnotationTrack()
		genome.Tracks = []igv.Track{genomeTrack}

		browser := igv.NewBrowser(genome)
		roi := igv.NewAnnotationTrack()
		track := igv.NewVariantTrack()
		track.Roi = []igv.Track{roi}
		browser.AddTrack(track)
		browser.AddTrack(track)
		browser.AddRoi(roi)

		doc := r.EmbedState(browser)

		assert.Equal(t, STATE_VERSION_MAJOR, doc.VersionMajor)
		assert.Equal(t, STATE_VERSION_MINOR, doc.VersionMinor)
		assert.Len(t, doc.State, 5)
		for _, e := range []igv.Entity{browser, genome, genomeTrack, track, roi} {
			assert.Contains(t, doc.State, e.GetModelId())
		}
		assert.Equal(t, "IgvModel", doc.State[browser.GetModelId()].ModelName)
	})
}
