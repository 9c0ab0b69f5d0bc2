package authorization

import (
	"encoding/json"
	"fmt"

	c "igv/api/models/constants/authorization"
)

type Resource interface{}
type ResourceEverything struct {
	Everything bool `json:"everything"`
}

// ResourceBrowser narrows a request to a single browser session.
type ResourceBrowser struct {
	BrowserId string `json:"browser_id"`
}

type Permission struct {
	Verb c.PermissionVerb
	Noun c.PermissionNoun
}

func (p Permission) String() string {
	return fmt.Sprintf("%s:%s", p.Verb, p.Noun)
}

type PermissionsList struct {
	List []Permission
}

// MarshalJSON serializes the list the way the policy service expects it,
// i.e. ["view:browser", ..]
func (pl PermissionsList) MarshalJSON() ([]byte, error) {
	strs := make([]string, 0, len(pl.List))
	for _, p := range pl.List {
		strs = append(strs, p.String())
	}
	return json.Marshal(strs)
}
