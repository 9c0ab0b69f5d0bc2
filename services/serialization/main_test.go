package serialization

import (
	"testing"

	"igv/api/models/igv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type model struct {
	id string
}

func (m *model) GetModelId() string { return m.id }

type node struct {
	Name string `json:"name"`
	Next *node  `json:"next"`
}

func TestToJSON(t *testing.T) {
	strict := NewSerializer()
	lenient := NewSerializerWithPolicy(DropNull)

	t.Run("should omit null and empty string entries from mappings", func(t *testing.T) {
		out := strict.ToJSON(map[string]interface{}{
			"a": 1,
			"b": nil,
			"c": "",
			"d": map[string]interface{}{"e": nil, "f": "x"},
		})

		assert.Equal(t, map[string]interface{}{
			"a": 1,
			"d": map[string]interface{}{"f": "x"},
		}, out)
	})

	t.Run("should keep empty strings under the null only policy", func(t *testing.T) {
		out := lenient.ToJSON(map[string]interface{}{"b": nil, "c": ""})

		assert.Equal(t, map[string]interface{}{"c": ""}, out)
	})

	t.Run("should omit null and empty string elements from sequences in order", func(t *testing.T) {
		out := strict.ToJSON([]interface{}{"a", nil, "", "b", 0, false})

		assert.Equal(t, []interface{}{"a", "b", 0, false}, out)
	})

	t.Run("should keep falsy scalars other than the empty string", func(t *testing.T) {
		out := strict.ToJSON(map[string]interface{}{"zero": 0, "no": false, "empty": []interface{}{}})

		assert.Equal(t, map[string]interface{}{"zero": 0, "no": false, "empty": []interface{}{}}, out)
	})

	t.Run("should pass scalars through", func(t *testing.T) {
		assert.Equal(t, 5, strict.ToJSON(5))
		assert.Equal(t, 1.5, strict.ToJSON(1.5))
		assert.Equal(t, true, strict.ToJSON(true))
		assert.Equal(t, "x", strict.ToJSON("x"))
		assert.Nil(t, strict.ToJSON(nil))
	})

	t.Run("should replace references by tokens", func(t *testing.T) {
		m := &model{id: "abc"}

		assert.Equal(t, "IPY_MODEL_abc", strict.ToJSON(m))
		assert.Equal(t, []interface{}{"IPY_MODEL_abc"}, strict.ToJSON([]interface{}{m}))
		assert.Equal(t, map[string]interface{}{"m": "IPY_MODEL_abc"}, strict.ToJSON(map[string]interface{}{"m": m}))
	})

	t.Run("should drop nil references", func(t *testing.T) {
		var m *model

		assert.Nil(t, strict.ToJSON(m))
		assert.Equal(t, map[string]interface{}{}, strict.ToJSON(map[string]interface{}{"m": m}))
	})

	t.Run("should inline plain records by json name", func(t *testing.T) {
		out := strict.ToJSON(igv.Guideline{Color: "red", Dotted: true})

		assert.Equal(t, map[string]interface{}{"color": "red", "dotted": true, "y": 0}, out)
	})

	t.Run("should cut cycles through plain records", func(t *testing.T) {
		a := &node{Name: "a"}
		b := &node{Name: "b", Next: a}
		a.Next = b

		out := strict.ToJSON(a)

		assert.Equal(t, map[string]interface{}{
			"name": "a",
			"next": map[string]interface{}{"name": "b"},
		}, out)
	})

	t.Run("should cut cycles through generic containers", func(t *testing.T) {
		m := map[string]interface{}{"a": 1}
		m["self"] = m
		l := []interface{}{"x", nil}
		l[1] = l

		assert.Equal(t, map[string]interface{}{"a": 1}, strict.ToJSON(m))
		assert.Equal(t, []interface{}{"x"}, strict.ToJSON(l))
	})

	t.Run("should still expand records shared by siblings", func(t *testing.T) {
		shared := &node{Name: "s"}

		out := strict.ToJSON([]interface{}{shared, shared})

		assert.Equal(t, []interface{}{
			map[string]interface{}{"name": "s"},
			map[string]interface{}{"name": "s"},
		}, out)
	})
}

func TestState(t *testing.T) {
	s := NewSerializer()

	t.Run("should expose the wire-visible fields of a track", func(t *testing.T) {
		track := igv.NewAlignmentTrack()
		track.Url = "https://example.org/reads.bam"

		state := s.State(track)

		assert.Equal(t, "alignment", state["type"])
		assert.Equal(t, "https://example.org/reads.bam", state["url"])
		assert.Equal(t, "TrackModel", state["_model_name"])
		assert.Equal(t, "ipyigv", state["_model_module"])
		assert.Equal(t, 50, state["height"])
		assert.Equal(t, true, state["removable"])
		assert.Equal(t, map[string]interface{}{}, state["headers"])
		assert.Equal(t, []interface{}{}, state["roi"])

		// nulls, empty strings and non-wire fields are absent
		assert.NotContains(t, state, "oauthToken")
		assert.NotContains(t, state, "indexURL")
		assert.NotContains(t, state, "ModelId")
	})

	t.Run("should reference nested models by token", func(t *testing.T) {
		genome := igv.NewReferenceGenome()
		genome.Id = "hg38"
		browser := igv.NewBrowser(genome)
		track := igv.NewVariantTrack()
		browser.AddTrack(track)

		state := s.State(browser)

		assert.Equal(t, Token(genome), state["genome"])
		assert.Equal(t, []interface{}{Token(track)}, state["tracks"])
		assert.Equal(t, []interface{}{}, state["roi"])
		assert.NotContains(t, state, "search")
		assert.Equal(t, "IgvBrowser", state["_view_name"])
		assert.Equal(t, "jupyter-igv", state["_view_module"])
	})

	t.Run("should not loop on mutually referencing models", func(t *testing.T) {
		a := igv.NewAnnotationTrack()
		b := igv.NewAnnotationTrack()
		a.Roi = []igv.Track{b}
		b.Roi = []igv.Track{a}

		assert.Equal(t, []interface{}{Token(b)}, s.State(a)["roi"])
		assert.Equal(t, []interface{}{Token(a)}, s.State(b)["roi"])
	})

	t.Run("should return an empty state for nil", func(t *testing.T) {
		var track *igv.WigTrack

		assert.Equal(t, map[string]interface{}{}, s.State(track))
	})
}

func TestTokens(t *testing.T) {
	t.Run("should round trip a model id", func(t *testing.T) {
		m := &model{id: "0b7c"}

		id, ok := ParseToken(Token(m))
		assert.True(t, ok)
		assert.Equal(t, "0b7c", id)
	})

	t.Run("should reject non tokens", func(t *testing.T) {
		for _, s := range []string{"", "0b7c", "IPY_MODEL_", "ipy_model_0b7c"} {
			_, ok := ParseToken(s)
			assert.False(t, ok, s)
		}
	})
}

func TestParsePolicy(t *testing.T) {
	t.Run("should parse known policies", func(t *testing.T) {
		p, ok := ParsePolicy("strict")
		require.True(t, ok)
		assert.Equal(t, DropNullAndEmpty, p)

		p, ok = ParsePolicy(" NULL ")
		require.True(t, ok)
		assert.Equal(t, DropNull, p)

		p, ok = ParsePolicy("")
		require.True(t, ok)
		assert.Equal(t, DropNullAndEmpty, p)
	})

	t.Run("should default unknown policies to strict", func(t *testing.T) {
		p, ok := ParsePolicy("lenient")
		assert.False(t, ok)
		assert.Equal(t, DropNullAndEmpty, p)
	})
}
