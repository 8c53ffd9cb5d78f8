// Package servicedef defines the JSON messages exchanged between the HTTP datastore client and a
// datastore service.
package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

const (
	// CapabilityKeys means the service can list its keys.
	CapabilityKeys = "keys"

	ItemsPath = "/items/"
)

// StatusResponse is returned by a GET request to the service's base URL.
type StatusResponse struct {
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
}

// HasCapability returns true if the service declared the capability.
func (s StatusResponse) HasCapability(desired string) bool {
	for _, capability := range s.Capabilities {
		if capability == desired {
			return true
		}
	}
	return false
}

// ItemParams is the body of a PUT request to ItemsPath + key.
type ItemParams struct {
	Value ldvalue.Value `json:"value"`
}

// ItemResponse is the body of a successful GET request to ItemsPath + key.
type ItemResponse struct {
	Value ldvalue.Value `json:"value"`
}

// KeysResponse is the body of a GET request to ItemsPath.
type KeysResponse struct {
	Keys []string `json:"keys"`
}

// ErrorResponse is the body of any unsuccessful response.
type ErrorResponse struct {
	Error string `json:"error"`
}
