// Package scraper is the acquisition component: it fetches new submissions
// from the target subreddits through the public listing API and stores them
// as canonical posts. Classification never happens here.
package scraper

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const defaultUserAgent = "jobsift/1.0"

type HttpClient struct {
	header http.Header

	client *http.Client
}

func NewDefaultHttpClient() *HttpClient {
	header := http.Header{}
	header.Set("User-Agent", defaultUserAgent)
	return &HttpClient{header: header, client: &http.Client{Timeout: 30 * time.Second}}
}

func (c *HttpClient) Get(uri string) (*http.Response, error) {
	req, err := http.NewRequest("GET", uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header = c.header

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, errors.Errorf("GET %s: unexpected status %d", uri, res.StatusCode)
	}
	return res, nil
}
