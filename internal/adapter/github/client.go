package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stargazer-dev/stargazer/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches starred repositories and updates repository contents
// through the github rest api.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	timeout   time.Duration
	l         logrus.FieldLogger

	pageSize                int
	starredResponseMaxSize  int
	contentsResponseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional for fetching, github just applies the lower
// unauthenticated rate limit without it.
func NewClient(doer HTTPDoer, address string, authToken string, timeout time.Duration, l logrus.FieldLogger) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		timeout:   timeout,
		l:         l,

		pageSize:                100,
		starredResponseMaxSize:  1024 * 1024 * 10,
		contentsResponseMaxSize: 1024 * 1024,
	}

	return &c
}

// StarredByUser returns every repository starred by given user, walking
// the paginated listing page by page until the api stops advertising a
// rel="next" relation in the Link response header.
func (c *Client) StarredByUser(ctx context.Context, username string) ([]app.StarredRepo, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	var repos []app.StarredRepo
	for page := 1; ; page++ {
		u, err := url.Parse(c.address + fmt.Sprintf("/users/%s/starred", username))
		if err != nil {
			return nil, errors.Wrap(err, "invalid url")
		}

		v := make(url.Values)
		v.Set("per_page", strconv.Itoa(c.pageSize))
		v.Set("page", strconv.Itoa(page))
		u.RawQuery = v.Encode()

		httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, errors.Wrap(err, "creating http request")
		}

		c.l.Debugf("fetching starred page %d", page)
		body, _, header, err := c.makeRequest(ctx, httpReq, c.starredResponseMaxSize)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching starred page %d", page)
		}

		var resp starredResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "unmarshalling response")
		}
		repos = append(repos, resp.ToStarredRepos()...)

		if !hasNextPage(header.Get("Link")) {
			break
		}
	}

	return repos, nil
}

// UpdateReadme creates or updates README.md in given repository with a
// single commit carrying the given message.
func (c *Client) UpdateReadme(ctx context.Context, owner string, repo string, message string, content []byte) error {
	if owner == "" {
		return app.InvalidRequestError("owner cannot be empty")
	}
	if repo == "" {
		return app.InvalidRequestError("repo cannot be empty")
	}
	if c.authToken == "" {
		return app.InvalidRequestError("auth token is required for updating repository contents")
	}

	contentsURL := c.address + fmt.Sprintf("/repos/%s/%s/contents/README.md", owner, repo)

	// The contents api requires the current blob sha for updates.
	sha, err := c.readmeSHA(ctx, contentsURL)
	if err != nil {
		return err
	}

	payload := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha,omitempty"`
	}{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshalling contents payload")
	}

	httpReq, err := http.NewRequest(http.MethodPut, contentsURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "creating http request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if _, _, _, err := c.makeRequest(ctx, httpReq, c.contentsResponseMaxSize); err != nil {
		return errors.Wrap(err, "updating repository contents")
	}

	return nil
}

// readmeSHA returns the blob sha of the repository's current README.md,
// or an empty string when the file doesn't exist yet.
func (c *Client) readmeSHA(ctx context.Context, contentsURL string) (string, error) {
	httpReq, err := http.NewRequest(http.MethodGet, contentsURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "creating http request")
	}

	body, code, _, err := c.makeRequest(ctx, httpReq, c.contentsResponseMaxSize)
	if code == http.StatusNotFound {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "reading repository contents")
	}

	var resp contentsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "unmarshalling contents response")
	}

	return resp.SHA, nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, int, http.Header, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, nil, errors.Wrap(err, "doing http request")
	}
	// Always drain body before close to allow connection reuse
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, resp.Header, nil
	}
	if resp.StatusCode/100 > 3 {
		return nil, resp.StatusCode, resp.Header, errors.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, resp.StatusCode, resp.Header, errors.Wrap(err, "reading http response body")
	}

	return b, resp.StatusCode, resp.Header, nil
}
