package authorization

type PermissionVerb string
type PermissionNoun string

const (
	VIEW   PermissionVerb = "view"
	CREATE PermissionVerb = "create"
	EDIT   PermissionVerb = "edit"
	DELETE PermissionVerb = "delete"
)

const (
	BROWSER PermissionNoun = "browser"
	GENOME  PermissionNoun = "genome"
)
