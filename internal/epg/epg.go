// Package epg fetches and filters XMLTV programme guides.
package epg

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Guide is a parsed XMLTV document.
type Guide struct {
	XMLName    xml.Name    `xml:"tv"`
	Programmes []Programme `xml:"programme"`
}

// Programme is a single scheduled broadcast from the guide.
type Programme struct {
	Start      string   `xml:"start,attr"`
	Stop       string   `xml:"stop,attr"`
	Channel    string   `xml:"channel,attr"`
	Title      string   `xml:"title"`
	Categories []string `xml:"category"`
}

// IsFilm reports whether any category of the programme mentions "film",
// case-insensitively ("film", "Film fabularny", "film dokumentalny", ...).
func (p Programme) IsFilm() bool {
	for _, c := range p.Categories {
		if strings.Contains(strings.ToLower(c), "film") {
			return true
		}
	}
	return false
}

// Category returns the first category of the programme, or "".
func (p Programme) Category() string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[0]
}

// StartTime parses the programme's start attribute.
func (p Programme) StartTime() (time.Time, error) {
	return ParseStart(p.Start)
}

// ParseStart parses an XMLTV timestamp ("20060102150405 +0200"). Only the
// first 14 characters are used; the timezone suffix is ignored and the
// timestamp is interpreted in local time, matching how the guide source
// publishes its schedule.
func ParseStart(s string) (time.Time, error) {
	if len(s) < 14 {
		return time.Time{}, fmt.Errorf("timestamp %q too short", s)
	}
	t, err := time.ParseInLocation("20060102150405", s[:14], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// Client fetches an XMLTV guide over HTTP.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a guide client for the given XMLTV URL.
func NewClient(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Fetch downloads and parses the guide. Gzip-compressed feeds are
// decompressed transparently (many EPG mirrors serve .xml.gz). Any network
// or parse error is returned as-is; there is no retry.
func (c *Client) Fetch(ctx context.Context) (*Guide, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("epg: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("epg: fetching guide: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("epg: HTTP %d from %s", resp.StatusCode, c.url)
	}

	br := bufio.NewReader(resp.Body)
	var body io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("epg: decompressing guide: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	var guide Guide
	if err := xml.NewDecoder(body).Decode(&guide); err != nil {
		return nil, fmt.Errorf("epg: parsing guide: %w", err)
	}
	return &guide, nil
}

// Filter selects movie broadcasts starting today at or after startHour,
// relative to now. Programmes without a title are discarded. Programmes with
// unparseable start timestamps are skipped rather than failing the scan.
func Filter(g *Guide, now time.Time, startHour int) []Programme {
	threshold := time.Date(now.Year(), now.Month(), now.Day(), startHour, 0, 0, 0, now.Location())

	var out []Programme
	for _, p := range g.Programmes {
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		if !p.IsFilm() {
			continue
		}
		start, err := p.StartTime()
		if err != nil {
			continue
		}
		y1, m1, d1 := start.Date()
		y2, m2, d2 := now.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			continue
		}
		if start.Before(threshold) {
			continue
		}
		out = append(out, p)
	}
	return out
}
