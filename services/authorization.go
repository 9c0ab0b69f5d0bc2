package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"igv/api/models"
	authz "igv/api/models/authorization"
	dtos "igv/api/models/dtos/authorization"

	"github.com/Jeffail/gabs"
)

var (
	ErrAccessDenied         = errors.New("access denied")
	publicAuthzErrorMessage = "Something went wrong interfacing with the authorization service! Please contact the system administrators.."
)

type (
	AuthzService struct {
		isEnabled        bool
		authorizationUrl string
		client           *http.Client
	}
)

func NewAuthzService(cfg *models.Config) *AuthzService {
	return &AuthzService{
		isEnabled:        cfg.AuthX.IsAuthorizationEnabled,
		authorizationUrl: strings.TrimSuffix(cfg.AuthX.AuthorizationUrl, "/"),
		client:           &http.Client{},
	}
}

func (a *AuthzService) IsEnabled() bool {
	return a.isEnabled
}

func (a *AuthzService) GetAuthorizationUrl() string {
	return a.authorizationUrl
}

// EnsureAccessPermitted asks the policy service whether the bearer of
// authnToken holds every permission on resource.
func (a *AuthzService) EnsureAccessPermitted(authnToken string, resource authz.Resource, permissions []authz.Permission) error {
	permJsonData, marshallErr := json.Marshal(&dtos.PermissionRequestDto{
		RequestedResource:   resource,
		RequiredPermissions: authz.PermissionsList{List: permissions},
	})
	if marshallErr != nil {
		fmt.Printf("%s\n", marshallErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}

	evaluateUrl := fmt.Sprintf("%s/%s/%s", a.GetAuthorizationUrl(), "policy", "evaluate")
	permReq, permReqErr := http.NewRequest(http.MethodPost, evaluateUrl, bytes.NewBuffer(permJsonData))
	if permReqErr != nil {
		fmt.Printf("%s\n", permReqErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}
	permReq.Header.Add("Authorization", "Bearer "+authnToken)
	permReq.Header.Add("Content-Type", "application/json")

	permRes, permResErr := a.client.Do(permReq)
	if permResErr != nil {
		fmt.Printf("%s\n", permResErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}
	defer permRes.Body.Close()

	if permRes.StatusCode != http.StatusOK {
		return ErrAccessDenied
	}

	permJson, parseErr := gabs.ParseJSONBuffer(permRes.Body)
	if parseErr != nil || !permJson.Exists("result") {
		fmt.Printf("%s\n", "Missing 'result' key from authorization service response!")
		return errors.New(publicAuthzErrorMessage)
	}

	// {"result": true} or {"result": [[true, ..]]}, one entry per permission
	permitted := allTrue(permJson.Path("result").Data())
	if !permitted {
		return ErrAccessDenied
	}

	return nil
}

func (a *AuthzService) FetchAuthorizationHeader(headers http.Header) (string, error) {
	authnToken := headers.Get("Authorization")
	if authnToken == "" {
		return "", errors.New("missing 'Authorization' HTTP header")
	}

	// remove "Bearer " if need be, assuming the header is properly formatted
	if strings.HasPrefix(authnToken, "Bearer ") {
		authnToken = strings.TrimPrefix(authnToken, "Bearer ")
	}

	return authnToken, nil
}

func allTrue(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case []interface{}:
		if len(x) == 0 {
			return false
		}
		for _, item := range x {
			if !allTrue(item) {
				return false
			}
		}
		return true
	}
	return false
}
