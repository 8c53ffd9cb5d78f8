package main

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/launchdarkly/spec-contract-tests/framework"
	"github.com/launchdarkly/spec-contract-tests/samples/datastore"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestReadParams(t *testing.T) {
	var p commandParams
	ok := p.Read([]string{"spec-contract-tests", "-url", "http://service:8000", "-run", "Store", "-skip", "List", "-debug"})
	assert.True(t, ok)
	assert.Equal(t, "http://service:8000", p.serviceURL)
	assert.Equal(t, defaultPort, p.port)
	assert.True(t, p.debug)
	assert.True(t, p.filters.AsFilter("Store"))
	assert.False(t, p.filters.AsFilter("Lister"))
}

func TestRerunCommandQuotesArguments(t *testing.T) {
	p := commandParams{serviceURL: "http://service:8000/a b"}
	cmd := rerunCommand([]string{"./spec-contract-tests"}, p, []string{"Store", "Lister"})
	assert.Equal(t, `./spec-contract-tests -url 'http://service:8000/a b' -run '^Store$' -run '^Lister$'`, cmd)
}

func TestFailedContracts(t *testing.T) {
	var c framework.Collector
	c.RecordFailure("Store (*datastore.HTTPStore)/delete: broken")
	c.RecordFailure("missing implementation of Lister")
	c.RecordFailure("basic checks: module missing NewHandler function")

	assert.Equal(t, []string{"Store", "Lister"}, failedContracts(&c, datastore.Validators()))
}

// readOnlyStore rejects every write.
type readOnlyStore struct{}

func (readOnlyStore) Get(key string) (ldvalue.Value, bool, error) {
	if key == "" {
		return ldvalue.Null(), false, datastore.ErrEmptyKey
	}
	return ldvalue.Null(), false, nil
}

func (readOnlyStore) Set(key string, value ldvalue.Value) error {
	if key == "" {
		return datastore.ErrEmptyKey
	}
	return errors.New("read only")
}

func (readOnlyStore) Delete(key string) error {
	if key == "" {
		return datastore.ErrEmptyKey
	}
	return errors.New("read only")
}

func TestRunReturnsExitCode(t *testing.T) {
	t.Run("passing service", func(t *testing.T) {
		handler := datastore.NewHandler(datastore.NewMemoryStore(), "test service", nil)
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			reportPath := filepath.Join(t.TempDir(), "report.yaml")
			params := commandParams{serviceURL: server.URL, reportPath: reportPath, noColor: true}
			assert.Equal(t, 0, run(params))

			_, err := os.Stat(reportPath)
			require.NoError(t, err)
		})
	})

	t.Run("failing service", func(t *testing.T) {
		handler := datastore.NewHandler(readOnlyStore{}, "test service", nil)
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			params := commandParams{serviceURL: server.URL, noColor: true}
			assert.Equal(t, 1, run(params))
		})
	})
}
