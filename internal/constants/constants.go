package constants

import "time"

// Version of the SDK, sent in the default User-Agent.
const Version = "0.4.0"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultIdleConnTimeout closes idle keep-alive connections.
	DefaultIdleConnTimeout = 90 * time.Second
)

// Retry limits. Retries are disabled unless a RetryMax is configured.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API layout.
const (
	// AccountsSegment prefixes the account id in every endpoint.
	AccountsSegment = "accounts"

	// DefaultUserAgent is sent when none is configured.
	DefaultUserAgent = "alldressed-go/" + Version

	// TracerName names the tracer of the transport.
	TracerName = "github.com/all-dressed/alldressed-go"
)

// Display.
const (
	// DefaultIndent is the indentation of JSON and YAML output.
	DefaultIndent = 2

	// DateLayout is the layout of menu dates on the wire.
	DateLayout = "2006-01-02"
)
