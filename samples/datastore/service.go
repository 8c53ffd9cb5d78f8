package datastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/launchdarkly/spec-contract-tests/framework"
	"github.com/launchdarkly/spec-contract-tests/servicedef"
)

const httpListenerTimeout = time.Second * 10

// QueryServiceInfo polls the datastore service's status resource until it responds or the
// timeout elapses, writing progress dots to output.
func QueryServiceInfo(url string, timeout time.Duration, output io.Writer) (servicedef.StatusResponse, error) {
	fmt.Fprintf(output, "Connecting to datastore service at %s", url)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := http.DefaultClient.Get(url)
		if err == nil {
			fmt.Fprintln(output)
			defer resp.Body.Close()
			if resp.StatusCode != 200 {
				return servicedef.StatusResponse{}, fmt.Errorf("datastore service returned status code %d", resp.StatusCode)
			}
			respData, err := io.ReadAll(resp.Body)
			if err != nil {
				return servicedef.StatusResponse{}, err
			}
			fmt.Fprintf(output, "Status query returned metadata: %s\n", string(respData))
			var info servicedef.StatusResponse
			if err := json.Unmarshal(respData, &info); err != nil {
				return servicedef.StatusResponse{}, fmt.Errorf("malformed status response from datastore service: %s", string(respData))
			}
			return info, nil
		}
		if !time.Now().Before(deadline) {
			return servicedef.StatusResponse{}, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}

// StartServer serves the handler on the specified port, and waits until the listener is
// definitely accepting requests before returning.
func StartServer(port int, handler http.Handler, logger framework.Logger) (*http.Server, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == "HEAD" {
				w.WriteHeader(200) // we use this to test whether our own listener is active yet
				return
			}
			handler.ServeHTTP(w, r)
		}),
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("Datastore listener stopped: %s", err)
		}
	}()

	deadline := time.NewTimer(httpListenerTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(time.Millisecond * 10)
	defer ticker.Stop()
	for {
		select {
		case <-deadline.C:
			_ = server.Close()
			return nil, fmt.Errorf("could not detect own listener at %s", server.Addr)
		case <-ticker.C:
			resp, err := http.DefaultClient.Head(fmt.Sprintf("http://localhost:%d", port))
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == 200 {
					return server, nil
				}
			}
		}
	}
}
