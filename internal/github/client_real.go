package github

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"branchup.dev/branchup/internal/git"
)

// RealClient talks to the GitHub API via go-github
type RealClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewRealClient creates a client for the repository behind the default
// remote. Returns an error when no token or no parseable GitHub remote is
// available; callers treat that as "no host integration" and degrade.
func NewRealClient(ctx context.Context) (*RealClient, error) {
	token, err := getGitHubToken(ctx)
	if err != nil {
		return nil, err
	}

	remoteURL, err := git.GetRemoteURL(git.GetRemote())
	if err != nil {
		return nil, err
	}

	info, err := ParseGitHubRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	client, err := createGitHubClient(ctx, info.Hostname, token)
	if err != nil {
		return nil, err
	}

	return &RealClient{
		client: client,
		owner:  info.Owner,
		repo:   info.Repo,
	}, nil
}

// GetOwnerRepo returns the repository owner and name
func (c *RealClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// OpenPullRequestForBranch returns the open pull request whose head is the
// given branch, with its labels and a computed review decision.
func (c *RealClient) OpenPullRequestForBranch(ctx context.Context, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branchName, err)
	}

	if len(prs) == 0 {
		return nil, nil
	}
	pr := prs[0]

	info := &PullRequestInfo{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
		State:   strings.ToUpper(pr.GetState()),
		Draft:   pr.GetDraft(),
	}
	for _, label := range pr.Labels {
		info.Labels = append(info.Labels, label.GetName())
	}

	decision, err := c.reviewDecision(ctx, pr.GetNumber())
	if err != nil {
		// Review state is advisory; an unreadable review list means no decision
		decision = ReviewRequired
	}
	info.ReviewDecision = decision

	return info, nil
}

// reviewDecision derives an overall review decision from the PR's reviews:
// the latest non-comment review per reviewer wins, any CHANGES_REQUESTED
// outweighs approvals.
func (c *RealClient) reviewDecision(ctx context.Context, prNumber int) (string, error) {
	reviews, _, err := c.client.PullRequests.ListReviews(ctx, c.owner, c.repo, prNumber, &github.ListOptions{
		PerPage: 100,
	})
	if err != nil {
		return "", err
	}

	// Reviews come back in submission order; keep the last meaningful state
	// per reviewer.
	latest := make(map[string]string)
	for _, review := range reviews {
		state := review.GetState()
		if state != ReviewApproved && state != ReviewChangesRequested {
			continue
		}
		latest[review.GetUser().GetLogin()] = state
	}

	approved := false
	for _, state := range latest {
		if state == ReviewChangesRequested {
			return ReviewChangesRequested, nil
		}
		if state == ReviewApproved {
			approved = true
		}
	}
	if approved {
		return ReviewApproved, nil
	}
	return ReviewRequired, nil
}

// createGitHubClient creates a GitHub client configured for the given hostname.
// Supports both github.com and GitHub Enterprise instances.
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != "github.com" {
		// GitHub Enterprise API endpoints
		// REST API: https://hostname/api/v3/
		// Upload API: https://hostname/api/uploads/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}

// getGitHubToken gets a GitHub token from the environment or the gh CLI
func getGitHubToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	output, err := git.RunGHCommandWithContext(ctx, "auth", "token")
	if err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %w", err)
	}

	token := strings.TrimSpace(output)
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}

	return token, nil
}

// RepoInfo contains parsed information from a git remote URL
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// ParseGitHubRemoteURL parses a git remote URL and extracts hostname, owner, and repo.
// Supports both github.com and GitHub Enterprise URLs:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - https://github.company.com/owner/repo.git
func ParseGitHubRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSuffix(strings.TrimSpace(remoteURL), ".git")

	var hostname, owner, repo string

	if strings.Contains(remoteURL, "@") && !strings.HasPrefix(remoteURL, "https://") && !strings.HasPrefix(remoteURL, "http://") {
		// SSH format: git@hostname:owner/repo
		parts := strings.SplitN(remoteURL, "@", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid SSH remote URL format")
		}
		hostAndPath := parts[1]

		var path string
		if strings.Contains(hostAndPath, ":") {
			hostPathParts := strings.SplitN(hostAndPath, ":", 2)
			hostname = hostPathParts[0]
			path = hostPathParts[1]
		} else {
			pathParts := strings.SplitN(hostAndPath, "/", 2)
			if len(pathParts) < 2 {
				return nil, fmt.Errorf("invalid SSH remote URL: missing path")
			}
			hostname = pathParts[0]
			path = pathParts[1]
		}

		pathParts := strings.Split(path, "/")
		if len(pathParts) < 2 {
			return nil, fmt.Errorf("invalid SSH remote URL: path must be owner/repo")
		}
		owner = pathParts[0]
		repo = pathParts[len(pathParts)-1]
	} else {
		// HTTPS format: https://hostname/owner/repo
		trimmed := strings.TrimPrefix(remoteURL, "https://")
		trimmed = strings.TrimPrefix(trimmed, "http://")

		parts := strings.Split(trimmed, "/")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid HTTPS remote URL: must be protocol://hostname/owner/repo")
		}

		hostname = parts[0]
		owner = parts[len(parts)-2]
		repo = parts[len(parts)-1]
	}

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    owner,
		Repo:     repo,
	}, nil
}
