// Package update checks for newer tabfit releases.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// ReleasesURL is the GitHub API endpoint for the latest release
	ReleasesURL = "https://api.github.com/repos/young1lin/tabfit/releases/latest"
	// checkInterval is how often to check for updates
	checkInterval = 24 * time.Hour
)

// Release is the part of a GitHub release the checker reads.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// Version returns the tag without its "v" prefix.
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// State tracks the last update check.
type State struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
}

// Checker checks for updates.
type Checker struct {
	currentVersion string
	stateFile      string
	url            string
	httpClient     *http.Client
	now            func() time.Time
}

// NewChecker creates a checker for the given running version.
func NewChecker(version string) *Checker {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return &Checker{
		currentVersion: version,
		stateFile:      filepath.Join(cacheDir, "tabfit", "update-state.json"),
		url:            ReleasesURL,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		now:            time.Now,
	}
}

// Check returns the latest release when it is newer than the running
// version. Unless force is set, it does nothing if a check ran within the
// last day.
func (c *Checker) Check(ctx context.Context, force bool) (*Release, error) {
	state, err := c.loadState()
	if err != nil {
		state = &State{}
	}
	if !force && c.now().Sub(state.LastCheck) < checkInterval {
		return nil, nil
	}

	release, err := c.fetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	state.LastCheck = c.now()
	state.LatestVersion = release.Version()
	_ = c.saveState(state)

	if c.needsUpdate(release.Version()) {
		return release, nil
	}
	return nil, nil
}

// fetchLatest fetches the latest release from GitHub.
func (c *Checker) fetchLatest(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "tabfit")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

// needsUpdate reports whether latest is newer than the running version.
func (c *Checker) needsUpdate(latest string) bool {
	// Development builds are never told to update
	if c.currentVersion == "dev" {
		return false
	}
	currentV, err := semver.NewVersion(c.currentVersion)
	if err != nil {
		return false
	}
	latestV, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	return latestV.GreaterThan(currentV)
}

// loadState loads the update state from disk.
func (c *Checker) loadState() (*State, error) {
	data, err := os.ReadFile(c.stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return &State{}, nil
	}
	return &state, nil
}

// saveState saves the update state to disk.
func (c *Checker) saveState(state *State) error {
	if err := os.MkdirAll(filepath.Dir(c.stateFile), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.stateFile, data, 0644)
}
