package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"
	"golang.org/x/net/html"

	"github.com/keyword-engine/backend/internal/config"
)

// Loader turns caller-supplied document sources (local files, remote URLs)
// into plain text for the matching engine. The engine itself never performs
// I/O.
type Loader struct {
	config config.LoaderConfig
	logger *logrus.Entry
	client *http.Client

	robotsCache map[string]*robotstxt.RobotsData
	mu          sync.RWMutex
}

// NewLoader creates a document loader
func NewLoader(cfg config.LoaderConfig, logger *logrus.Entry) *Loader {
	if logger == nil {
		logger = logrus.WithField("component", "loader")
	}
	return &Loader{
		config: cfg,
		logger: logger,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		robotsCache: make(map[string]*robotstxt.RobotsData),
	}
}

// LoadFile reads a local document. HTML files are reduced to their visible
// text; everything else is returned verbatim.
func (l *Loader) LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractText(strings.NewReader(string(data)))
	default:
		return string(data), nil
	}
}

// FetchURL downloads a remote document, checking the host's robots.txt
// first, and reduces HTML responses to plain text.
func (l *Loader) FetchURL(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("only HTTP/HTTPS URLs are supported")
	}
	if parsedURL.Host == "" {
		return "", fmt.Errorf("URL must have a host")
	}

	if l.config.RobotsCheck {
		allowed, err := l.isURLAllowed(parsedURL)
		if err != nil {
			l.logger.WithError(err).WithField("domain", parsedURL.Host).Warn("Failed to get robots.txt, allowing request")
		} else if !allowed {
			return "", fmt.Errorf("URL blocked by robots.txt: %s", rawURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", l.config.UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return ExtractText(resp.Body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(data), nil
}

// ExtractText walks an HTML document with the standard tokenizer and
// collects the visible text, skipping script and style blocks.
func ExtractText(body io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(body)
	var textBuilder strings.Builder
	inScript := false
	inStyle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return strings.Join(strings.Fields(textBuilder.String()), " "), nil
			}
			return "", tokenizer.Err()

		case html.StartTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					textBuilder.WriteString(text + " ")
				}
			}
		}
	}
}

// isURLAllowed checks the target against the host's robots.txt rules.
func (l *Loader) isURLAllowed(parsedURL *url.URL) (bool, error) {
	robotsData, err := l.getRobotsData(parsedURL.Host)
	if err != nil {
		return false, err
	}
	if robotsData == nil {
		return true, nil // No robots.txt found
	}

	group := robotsData.FindGroup(l.config.UserAgent)
	if group == nil {
		return true, nil
	}
	return group.Test(parsedURL.Path), nil
}

// getRobotsData fetches and caches robots.txt data per host for the process
// lifetime.
func (l *Loader) getRobotsData(host string) (*robotstxt.RobotsData, error) {
	l.mu.RLock()
	robotsData, exists := l.robotsCache[host]
	l.mu.RUnlock()
	if exists {
		return robotsData, nil
	}

	robotsURL := fmt.Sprintf("https://%s/robots.txt", host)
	req, err := http.NewRequest("GET", robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create robots.txt request: %w", err)
	}
	req.Header.Set("User-Agent", l.config.UserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		// Try HTTP if HTTPS fails
		robotsURL = fmt.Sprintf("http://%s/robots.txt", host)
		req.URL, _ = url.Parse(robotsURL)
		resp, err = l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch robots.txt: %w", err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		robotsData, err = robotstxt.FromResponse(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse robots.txt: %w", err)
		}
	}

	// Cache the result (nil for 404s)
	l.mu.Lock()
	l.robotsCache[host] = robotsData
	l.mu.Unlock()

	return robotsData, nil
}
