package superstaq

import (
	"net/http"
	"time"
)

type dialOptions struct {
	// Credentials
	apiKey     string
	remoteHost string

	// Request info
	clientAppl    string
	retries       int
	timeout       time.Duration
	httpClient    *http.Client
	defaultTarget string
	pollInterval  time.Duration
}

const (
	// APIURL is the default SuperstaQ API endpoint URL
	APIURL = "https://api.super.tech"
	// APIVersion is the API version prefixed to every endpoint path
	APIVersion = "v0.1"
	// DefaultClientAppl is the default client application name sent with every request
	DefaultClientAppl = "client-superstaq"
	// DefaultRetries is the default number of attempts every request gets.
	// Failures propagate directly unless WithRetries raises this.
	DefaultRetries = 1
	// DefaultTimeout is the default timeout for each request
	DefaultTimeout = 30 * time.Second
	// DefaultPollInterval is the default delay between job status polls in Run
	DefaultPollInterval = time.Second
)

const (
	// EnvAPIKey is the environment variable consulted when no API key is given explicitly
	EnvAPIKey = "SUPERSTAQ_API_KEY"
	// EnvRemoteHost is the environment variable consulted when no remote host is given explicitly
	EnvRemoteHost = "SUPERSTAQ_REMOTE_HOST"
)

// DialOption configures how the connection works
type DialOption func(*dialOptions)

// WithAPIKey provides a DialOption that sets the users API key
func WithAPIKey(key string) DialOption {
	return func(options *dialOptions) {
		options.apiKey = key
	}
}

// WithRemoteHost configures the connection to use the provided url for the API endpoints
func WithRemoteHost(url string) DialOption {
	return func(options *dialOptions) {
		options.remoteHost = url
	}
}

// WithClientApplication specifies which client application is using the API
func WithClientApplication(appl string) DialOption {
	return func(options *dialOptions) {
		options.clientAppl = DefaultClientAppl + ":" + appl
	}
}

// WithRetries configures the number of attempts performed for any request
func WithRetries(retries int) DialOption {
	return func(options *dialOptions) {
		options.retries = retries
	}
}

// WithTimeout configures the timeout for each request
func WithTimeout(timeout time.Duration) DialOption {
	return func(options *dialOptions) {
		options.timeout = timeout
	}
}

// WithHTTPClient configures the underlying http.Client used for all requests
func WithHTTPClient(client *http.Client) DialOption {
	return func(options *dialOptions) {
		options.httpClient = client
	}
}

// WithDefaultTarget sets the target used when a Service method is called with
// an empty target
func WithDefaultTarget(target string) DialOption {
	return func(options *dialOptions) {
		options.defaultTarget = target
	}
}

// WithPollInterval configures the delay between job status polls in Service.Run
func WithPollInterval(d time.Duration) DialOption {
	return func(options *dialOptions) {
		options.pollInterval = d
	}
}
