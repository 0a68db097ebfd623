package config

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// A configuration document read from a local file or fetched over http(s).
type source struct {
	io.ReadCloser
	url *url.URL
}

// Returns the location of this source.
func (s *source) Location() string {
	return s.url.String()
}

// Returns true if the source is streamed over http/https.
func (s *source) IsRemote() bool {
	return s.url.Scheme != ""
}

// Open a configuration source. Locations without a scheme are treated as
// local paths. The caller must close the returned source.
func openSource(location string) (*source, error) {
	// Replace backslashes with forward slashes and try parsing as a URL
	u, err := url.Parse(strings.Replace(location, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("could not fetch '%s': %s", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("unsupported scheme '%s'", u.Scheme)
	}

	return &source{
		ReadCloser: reader,
		url:        u,
	}, nil
}
