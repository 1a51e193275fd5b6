package social

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/temoto/robotstxt"
	"golang.org/x/time/rate"
)

// Fetcher retrieves public social/web pages politely: robots.txt is
// honored, hosts are rate limited independently and response bodies
// are size-capped. It exists only as glue for the OpenGraph analyzer;
// the verification core never goes on the network.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64

	robotsMu sync.RWMutex
	robots   map[string]*robotstxt.RobotsData

	limitMu  sync.Mutex
	limiters map[string]*rate.Limiter
	perHost  rate.Limit
	burst    int
}

// NewFetcher creates a fetcher from the social configuration
func NewFetcher(cfg model.SocialConfig) *Fetcher {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: newProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    make(map[string]*robotstxt.RobotsData),
		limiters:  make(map[string]*rate.Limiter),
		perHost:   rate.Limit(cfg.RequestsPerSecond),
		burst:     burst,
	}
}

// Fetch retrieves a page body after robots and rate-limit clearance
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}

	allowed, err := f.allowedByRobots(ctx, parsed)
	if err == nil && !allowed {
		return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}

	if err := f.limiterFor(parsed.Host).Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// allowedByRobots checks the host's robots.txt, caching per host.
// Unreachable robots.txt allows the fetch.
func (f *Fetcher) allowedByRobots(ctx context.Context, parsed *url.URL) (bool, error) {
	f.robotsMu.RLock()
	data, ok := f.robots[parsed.Host]
	f.robotsMu.RUnlock()

	if !ok {
		robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
		if err != nil {
			return true, err
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return true, nil
		}
		defer func() { _ = resp.Body.Close() }()

		data, err = robotstxt.FromResponse(resp)
		if err != nil {
			return true, nil
		}

		f.robotsMu.Lock()
		f.robots[parsed.Host] = data
		f.robotsMu.Unlock()
	}

	return data.TestAgent(parsed.Path, f.userAgent), nil
}

func (f *Fetcher) limiterFor(host string) *rate.Limiter {
	f.limitMu.Lock()
	defer f.limitMu.Unlock()

	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(f.perHost, f.burst)
		f.limiters[host] = limiter
	}
	return limiter
}

// newProxyFunc builds the transport proxy function; with no explicit
// proxies configured it falls back to the environment.
func newProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := make(map[string]bool)
	for _, host := range strings.Split(noProxy, ",") {
		if host = strings.TrimSpace(host); host != "" {
			bypass[host] = true
		}
	}

	return func(req *http.Request) (*url.URL, error) {
		if bypass[req.URL.Hostname()] {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
