package resolver

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"igv/api/models/constants"
	tk "igv/api/models/constants/track-kind"
	"igv/api/models/igv"
	"igv/api/utils"

	"github.com/labstack/gommon/log"
	"github.com/mitchellh/mapstructure"
)

// Parameter keys handled by the resolver itself rather than decoded
// onto the track.
const (
	TypeParam = "type"
	KindParam = "kind" // alias of "type"
	UrlParam  = "url"
	RoiParam  = "roi"
)

// Resolve builds the concrete track described by params.
//
// An explicit, recognized `type` (or `kind`) always wins. Without one, the
// type is inferred from the extension of the url path, see InferTrackKind.
// When neither works a GenericTrack is returned together with a warning;
// that is never an error.
//
// Every other parameter is applied over the defaults of the resolved type.
// Nested `roi` parameter bags are resolved the same way.
func Resolve(params map[string]interface{}) (igv.Track, []string) {
	track, warnings := resolve(params)
	for _, w := range warnings {
		log.Warnf("track resolution: %s", w)
	}
	return track, warnings
}

func resolve(params map[string]interface{}) (igv.Track, []string) {
	warnings := []string{}

	kind, explicit := explicitTrackKind(params)
	if explicit != "" && kind == tk.Generic {
		warnings = append(warnings, fmt.Sprintf("unknown track type '%s', instantiating a generic track", explicit))
	} else if explicit == "" {
		var inferred bool
		kind, inferred = InferTrackKind(stringParam(params, UrlParam))
		if !inferred {
			warnings = append(warnings, fmt.Sprintf("unable to infer the track type from url '%s', instantiating a generic track", stringParam(params, UrlParam)))
		}
	}

	track := igv.NewTrack(kind)
	warnings = append(warnings, applyParams(track, params)...)
	warnings = append(warnings, applyRegionsOfInterest(track, params)...)

	return track, warnings
}

// InferTrackKind maps the extension of the url path to a track kind using
// TRACK_FILE_TYPES. One level of `.gz` is unwrapped: `x.bed.gz` is looked
// up as `.bed`, `x.gz.gz` as `.gz`.
// Missing or unparseable urls do not resolve.
func InferTrackKind(rawUrl string) (constants.TrackKind, bool) {
	if rawUrl == "" {
		return tk.Generic, false
	}

	u, err := url.Parse(rawUrl)
	if err != nil {
		return tk.Generic, false
	}

	filename, filetype := splitExt(u.Path)
	if filetype == ".gz" { // some files might be compressed
		_, filetype = splitExt(filename)
	}

	return tk.KindForExtension(filetype)
}

// -- helpers
func explicitTrackKind(params map[string]interface{}) (constants.TrackKind, string) {
	explicit := stringParam(params, TypeParam)
	if explicit == "" {
		explicit = stringParam(params, KindParam)
	}
	return tk.CastToTrackKind(explicit), explicit
}

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// splitExt behaves like python's os.path.splitext: the extension starts at
// the last dot of the last path element, leading dots excluded.
func splitExt(p string) (string, string) {
	sep := strings.LastIndex(p, "/")
	dot := strings.LastIndex(p, ".")
	if dot > sep {
		for i := sep + 1; i < dot; i++ {
			if p[i] != '.' {
				return p[:dot], p[dot:]
			}
		}
	}
	return p, ""
}

func applyParams(track igv.Track, params map[string]interface{}) []string {
	warnings := []string{}

	unused, err := DecodeParams(params, track, TypeParam, KindParam, RoiParam)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("some parameters could not be applied: %s", err.Error()))
	}
	if len(unused) > 0 {
		warnings = append(warnings, fmt.Sprintf("parameters not supported by %s track ignored: %s",
			describeKind(track.Kind()), strings.Join(unused, ", ")))
	}

	return warnings
}

// DecodeParams applies params over the fields of result (a struct pointer)
// matching their json names, embedded structs included. Keys listed in
// skip and keys starting with "_" are left out. The keys that matched no
// field are returned sorted.
func DecodeParams(params map[string]interface{}, result interface{}, skip ...string) ([]string, error) {
	fields := map[string]interface{}{}
	for k, v := range params {
		if strings.HasPrefix(k, "_") || utils.StringInSlice(k, skip) {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Metadata:         &md,
		Result:           result,
	})
	if err != nil {
		return nil, err
	}

	decodeErr := decoder.Decode(fields)
	sort.Strings(md.Unused)
	return md.Unused, decodeErr
}

func applyRegionsOfInterest(track igv.Track, params map[string]interface{}) []string {
	warnings := []string{}

	raw, ok := params[RoiParam]
	if !ok || raw == nil {
		return warnings
	}
	if track.Kind() == tk.Generic {
		return append(warnings, "generic tracks do not support regions of interest, 'roi' ignored")
	}

	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case []map[string]interface{}:
		for _, m := range v {
			items = append(items, m)
		}
	case []igv.Track:
		for _, t := range v {
			items = append(items, t)
		}
	default:
		return append(warnings, fmt.Sprintf("'roi' must be a list, got %T", raw))
	}

	roi := []igv.Track{}
	for i, item := range items {
		switch v := item.(type) {
		case igv.Track:
			roi = append(roi, v)
		case map[string]interface{}:
			nested, nestedWarnings := resolve(v)
			for _, w := range nestedWarnings {
				warnings = append(warnings, fmt.Sprintf("roi[%d]: %s", i, w))
			}
			roi = append(roi, nested)
		case nil:
			// skip
		default:
			warnings = append(warnings, fmt.Sprintf("roi[%d]: unsupported value of type %T ignored", i, item))
		}
	}
	track.SetRegionsOfInterest(roi)

	return warnings
}

func describeKind(kind constants.TrackKind) string {
	if kind == tk.Generic {
		return "generic"
	}
	return string(kind)
}
