package datastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/launchdarkly/spec-contract-tests/framework"
	"github.com/launchdarkly/spec-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// HTTPStore is a Store backed by a datastore service. It also implements Lister, but Keys only
// works if the service has the keys capability.
type HTTPStore struct {
	baseURL string
	client  *http.Client
	logger  framework.Logger
}

// NewHTTPStore creates a client for the datastore service at baseURL.
func NewHTTPStore(baseURL string, logger framework.Logger) *HTTPStore {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &HTTPStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  http.DefaultClient,
		logger:  logger,
	}
}

func (s *HTTPStore) Get(key string) (ldvalue.Value, bool, error) {
	if key == "" {
		return ldvalue.Null(), false, ErrEmptyKey
	}
	var resp servicedef.ItemResponse
	status, err := s.do(http.MethodGet, s.itemURL(key), nil, &resp)
	if status == http.StatusNotFound {
		return ldvalue.Null(), false, nil
	}
	if err != nil {
		return ldvalue.Null(), false, err
	}
	return resp.Value, true, nil
}

func (s *HTTPStore) Set(key string, value ldvalue.Value) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.do(http.MethodPut, s.itemURL(key), servicedef.ItemParams{Value: value}, nil)
	return err
}

func (s *HTTPStore) Delete(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.do(http.MethodDelete, s.itemURL(key), nil, nil)
	return err
}

func (s *HTTPStore) Keys() ([]string, error) {
	var resp servicedef.KeysResponse
	if _, err := s.do(http.MethodGet, s.baseURL+servicedef.ItemsPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

func (s *HTTPStore) itemURL(key string) string {
	return s.baseURL + servicedef.ItemsPath + url.PathEscape(key)
}

func (s *HTTPStore) do(method, resourceURL string, params interface{}, result interface{}) (int, error) {
	var body io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return 0, err
		}
		s.logger.Printf("%s %s: %s", method, resourceURL, string(data))
		body = bytes.NewBuffer(data)
	} else {
		s.logger.Printf("%s %s", method, resourceURL)
	}

	req, err := http.NewRequest(method, resourceURL, body)
	if err != nil {
		return 0, err
	}
	if params != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode >= 300 {
		var errResp servicedef.ErrorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			return resp.StatusCode, fmt.Errorf("service returned HTTP %d: %s", resp.StatusCode, errResp.Error)
		}
		return resp.StatusCode, fmt.Errorf("service returned HTTP %d", resp.StatusCode)
	}
	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return resp.StatusCode, fmt.Errorf("malformed response from service: %s", string(data))
		}
	}
	return resp.StatusCode, nil
}
