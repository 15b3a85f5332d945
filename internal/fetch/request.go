// internal/fetch/request.go
package fetch

import (
	"errors"
	"fmt"
)

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "esp-idf/1.0 esp32"

// Target is the fixed fetch destination.
type Target struct {
	Host      string
	Port      string
	Path      string
	UserAgent string
}

func (t Target) validate() error {
	if t.Host == "" {
		return errors.New("fetch: host required")
	}
	if t.Port == "" {
		return errors.New("fetch: port required")
	}
	if t.Path == "" || t.Path[0] != '/' {
		return errors.New("fetch: path must start with /")
	}
	return nil
}

// BuildRequest renders the request emitted verbatim every cycle:
// one GET request line, Host and User-Agent headers, then an empty line.
func BuildRequest(t Target) []byte {
	ua := t.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return []byte(fmt.Sprintf(
		"GET %s HTTP/1.0\r\nHost: %s:%s\r\nUser-Agent: %s\r\n\r\n",
		t.Path, t.Host, t.Port, ua,
	))
}
