package genomes

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"igv/api/models/igv"
	"igv/api/services/resolver"
)

var (
	ErrUnknownGenome = errors.New("unknown genome")
	ErrInvalidGenome = errors.New("invalid genome parameters")
)

//go:embed public_genomes.json
var publicGenomesJson []byte

var (
	publicGenomes     map[string]map[string]interface{}
	publicGenomesErr  error
	publicGenomesOnce sync.Once
)

// PublicGenomes returns the bundled genome descriptors keyed by id.
// They are loaded once per process and must be treated as read-only.
func PublicGenomes() (map[string]map[string]interface{}, error) {
	publicGenomesOnce.Do(func() {
		var descriptors []map[string]interface{}
		if err := json.Unmarshal(publicGenomesJson, &descriptors); err != nil {
			publicGenomesErr = fmt.Errorf("loading public genomes: %w", err)
			return
		}

		publicGenomes = make(map[string]map[string]interface{}, len(descriptors))
		for _, d := range descriptors {
			if id, ok := d["id"].(string); ok && id != "" {
				publicGenomes[id] = d
			}
		}
	})
	return publicGenomes, publicGenomesErr
}

func PublicGenomeIds() ([]string, error) {
	all, err := PublicGenomes()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// NewPublicGenome instantiates a fresh genome entity (with fresh track
// entities) from the bundled descriptor with the given id.
func NewPublicGenome(id string) (*igv.ReferenceGenome, []string, error) {
	all, err := PublicGenomes()
	if err != nil {
		return nil, nil, err
	}

	descriptor, ok := all[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownGenome, id)
	}
	return NewGenome(descriptor)
}

// NewGenome builds a genome from a parameter bag. Its tracks are run
// through the track resolver, as descriptors usually carry no `type`.
func NewGenome(params map[string]interface{}) (*igv.ReferenceGenome, []string, error) {
	genome := igv.NewReferenceGenome()
	warnings := []string{}

	unused, err := resolver.DecodeParams(params, genome, "tracks")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGenome, err)
	}
	if len(unused) > 0 {
		warnings = append(warnings, fmt.Sprintf("genome parameters ignored: %s", strings.Join(unused, ", ")))
	}

	rawTracks, isList := params["tracks"].([]interface{})
	if raw, present := params["tracks"]; present && raw != nil && !isList {
		warnings = append(warnings, fmt.Sprintf("'tracks' must be a list, got %T", raw))
	}
	if isList {
		tracks := []igv.Track{}
		for i, raw := range rawTracks {
			trackParams, ok := raw.(map[string]interface{})
			if !ok {
				warnings = append(warnings, fmt.Sprintf("tracks[%d]: expected an object, got %T", i, raw))
				continue
			}
			track, trackWarnings := resolver.Resolve(trackParams)
			for _, w := range trackWarnings {
				warnings = append(warnings, fmt.Sprintf("tracks[%d]: %s", i, w))
			}
			tracks = append(tracks, track)
		}
		genome.Tracks = tracks
	}

	return genome, warnings, nil
}
