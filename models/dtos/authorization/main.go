package authorization

import (
	"encoding/json"

	mauthz "igv/api/models/authorization"
)

type PermissionRequestDto struct {
	RequestedResource   mauthz.Resource
	RequiredPermissions mauthz.PermissionsList
}

// MarshalJSON renders the request body in the policy service's snake case
func (p *PermissionRequestDto) MarshalJSON() ([]byte, error) {
	resource := p.RequestedResource
	if resource == nil {
		resource = mauthz.ResourceEverything{Everything: true}
	}
	return json.Marshal(map[string]interface{}{
		"requested_resource":   resource,
		"required_permissions": p.RequiredPermissions,
	})
}
