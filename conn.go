package superstaq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Set up logger
	log.SetOutput(os.Stdout)
}

// Conn is a representation of a connection to the SuperstaQ API
type Conn struct {
	dopts dialOptions
	c     *http.Client
}

// Dial takes a list of DialOptions and returns a connection to the SuperstaQ API
func Dial(options ...DialOption) (*Conn, error) {
	c := &Conn{}
	for _, option := range options {
		option(&c.dopts)
	}

	// Resolve credentials from the environment; otherwise, error
	if c.dopts.apiKey == "" {
		c.dopts.apiKey = os.Getenv(EnvAPIKey)
	}
	if c.dopts.apiKey == "" {
		return nil, NewCredentialsErr(
			"missing API key to talk to SuperstaQ",
			fmt.Sprintf("provide WithAPIKey or set the %s environment variable", EnvAPIKey),
		)
	}

	if c.dopts.remoteHost == "" {
		c.dopts.remoteHost = os.Getenv(EnvRemoteHost)
	}
	if c.dopts.remoteHost == "" {
		c.dopts.remoteHost = APIURL
	}
	u, err := url.Parse(c.dopts.remoteHost)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ApiErr{
			usrMsg: fmt.Sprintf("invalid remote host %q", c.dopts.remoteHost),
			devMsg: "remote host must be a http or https URL",
		}
	}

	// Set defaults
	if c.dopts.clientAppl == "" {
		c.dopts.clientAppl = DefaultClientAppl
	}
	if c.dopts.retries == 0 {
		c.dopts.retries = DefaultRetries
	}
	if c.dopts.timeout == 0 {
		c.dopts.timeout = DefaultTimeout
	}
	if c.dopts.pollInterval == 0 {
		c.dopts.pollInterval = DefaultPollInterval
	}
	if c.dopts.httpClient == nil {
		c.dopts.httpClient = &http.Client{}
	}
	c.c = c.dopts.httpClient
	c.c.Timeout = c.dopts.timeout

	return c, nil
}

// RemoteHost returns the resolved API endpoint URL.
func (c *Conn) RemoteHost() string { return c.dopts.remoteHost }

// APIKey returns the resolved API key.
func (c *Conn) APIKey() string { return c.dopts.apiKey }

// newRequest is simply just a helper for generating requests
func (c *Conn) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/%s/%s", c.dopts.remoteHost, APIVersion, path), body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s request for %s", method, path)
	}
	req.Header.Set("Authorization", c.dopts.apiKey)
	req.Header.Set("X-Client-Name", c.dopts.clientAppl)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decode is simply a helper for decoding json
func (c *Conn) decode(r io.Reader, i interface{}) error {
	if err := json.NewDecoder(r).Decode(i); err != nil {
		return errors.Wrap(err, "decoding response body")
	}
	return nil
}

// do runs a http request and maps non-2xx responses to typed errors.
// Each request gets the configured number of attempts; by default that is a
// single attempt so transport failures propagate directly.
func (c *Conn) do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	for attempt := 0; attempt < c.dopts.retries; attempt++ {
		if attempt > 0 && req.GetBody != nil {
			if req.Body, err = req.GetBody(); err != nil {
				return nil, err
			}
		}
		resp, err = c.c.Do(req)
		if err != nil {
			log.WithError(err).Debugf("request to %v failed", req.URL)
			continue
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, NewCredentialsErr(
				"the SuperstaQ API key was rejected",
				fmt.Sprintf("server responded 401 to %v", req.URL),
			)
		case http.StatusNotFound:
			return nil, HTTPErr{StatusCode: resp.StatusCode, Body: string(body)}
		default:
			err = HTTPErr{StatusCode: resp.StatusCode, Body: string(body)}
			log.Debugf("got a %d response to %v", resp.StatusCode, req.URL)
		}
	}
	if err == nil {
		err = ApiErr{usrMsg: "failed to get a proper response from the SuperstaQ backend"}
	}
	return nil, err
}

// post is a convenience wrapper around a POST request with a JSON body
func (c *Conn) post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(body); err != nil {
		return nil, errors.Wrapf(err, "encoding request body for %s", path)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, &b)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// get is a convenience wrapper around a GET request
func (c *Conn) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}
