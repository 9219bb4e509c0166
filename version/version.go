// Package version tells the version of the command and looks up the latest
// published release.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Version is the version of the build, set with
// -ldflags "-X github.com/etnz/tradereport/version.Version=v1.2.3".
var Version = "dev"

// ReleasesURL is the API endpoint describing the latest release.
const ReleasesURL = "https://api.github.com/repos/etnz/tradereport/releases/latest"

// TagPath locates the version in the release description.
const TagPath = "$.tag_name"

// Checker looks up the latest release.
type Checker struct {
	URL    string
	Path   string
	Client *http.Client
}

// NewChecker returns a Checker of the published releases, caching answers
// for the day in the temporary directory.
func NewChecker() *Checker {
	return &Checker{URL: ReleasesURL, Path: TagPath, Client: daily(os.TempDir())}
}

// Latest returns the latest published version.
func (c *Checker) Latest(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return "", fmt.Errorf("invalid release description: %w", err)
	}
	jval, err := jsonpath.Get(c.Path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", c.Path, err)
	}
	// jsonpath may return a list of one answer
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, ok := jval.(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("error parsing %q: not a version: %v", c.Path, jval)
	}
	return strings.TrimSpace(v), nil
}

// UpdateAvailable returns the latest version when it differs from current.
// Lookup failures are ignored: no update is reported.
func (c *Checker) UpdateAvailable(ctx context.Context, current string) (latest string, ok bool) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return "", false
	}
	return latest, normalize(latest) != normalize(current)
}

func normalize(v string) string { return strings.TrimPrefix(strings.TrimSpace(v), "v") }
