// Package catalog looks up book metadata on the OpenLibrary API by ISBN and
// flattens its sometimes-absent author/cover/work graph into a single
// result the UI can prefill a book form with.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

const userAgent = "LibraManager/1.0 (https://github.com/AleXutzZu/LibraManager)"

// BookMetadata is the flattened lookup result.
type BookMetadata struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors,omitempty"`
	CoverURL    string   `json:"coverUrl,omitempty"`
	PublishDate string   `json:"publishDate,omitempty"`
	PageCount   int      `json:"pageCount,omitempty"`
	ISBN13      []string `json:"isbn13,omitempty"`
}

// Client fetches book metadata from the OpenLibrary API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		time.Sleep(r.interval - since)
	}
	r.lastCall = time.Now()
}

// NewClient creates an OpenLibrary client with a request timeout and polite
// rate limiting. baseURL defaults to the public API when empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://openlibrary.org"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		rateLimiter: newRateLimiter(time.Second),
	}
}

// LookupISBN fetches the edition for an ISBN. Any non-200 status is treated
// as "not found" and reported as (nil, nil); transport failures and
// timeouts are errors.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*BookMetadata, error) {
	isbn = normalizeISBN(isbn)
	if isbn == "" {
		return nil, fmt.Errorf("invalid ISBN")
	}

	var edition openLibraryEdition
	ok, err := c.getJSON(ctx, fmt.Sprintf("%s/isbn/%s.json", c.baseURL, isbn), &edition)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	metadata := &BookMetadata{
		Title:       edition.Title,
		PublishDate: edition.PublishDate,
		PageCount:   edition.NumberOfPages,
		ISBN13:      edition.ISBN13,
	}

	if len(edition.Covers) > 0 {
		metadata.CoverURL = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-L.jpg", edition.Covers[0])
	}

	authorKeys := make([]string, 0, len(edition.Authors))
	for _, ref := range edition.Authors {
		authorKeys = append(authorKeys, ref.Key)
	}

	// Editions without an authors field sometimes hang their authors off
	// referenced works instead; aggregate those keys, de-duplicated across
	// works. Works without an author list contribute nothing.
	if len(authorKeys) == 0 {
		authorKeys, err = c.collectWorkAuthors(ctx, edition.Works)
		if err != nil {
			return nil, err
		}
	}

	for _, key := range authorKeys {
		name, err := c.fetchAuthorName(ctx, key)
		if err != nil {
			return nil, err
		}
		if name != "" {
			metadata.Authors = append(metadata.Authors, name)
		}
	}

	return metadata, nil
}

// collectWorkAuthors dereferences each work and gathers its author keys,
// keeping first-seen order and dropping duplicates across works.
func (c *Client) collectWorkAuthors(ctx context.Context, works []keyRef) ([]string, error) {
	seen := make(map[string]bool)
	var keys []string

	for _, ref := range works {
		if ref.Key == "" {
			continue
		}

		var work openLibraryWork
		ok, err := c.getJSON(ctx, fmt.Sprintf("%s%s.json", c.baseURL, ref.Key), &work)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		for _, author := range work.Authors {
			key := author.Author.Key
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func (c *Client) fetchAuthorName(ctx context.Context, authorKey string) (string, error) {
	if authorKey == "" {
		return "", nil
	}

	var author struct {
		Name string `json:"name"`
	}
	ok, err := c.getJSON(ctx, fmt.Sprintf("%s%s.json", c.baseURL, authorKey), &author)
	if err != nil || !ok {
		return "", err
	}
	return author.Name, nil
}

// getJSON performs a GET and decodes the body into out. Returns false with
// a nil error for any non-200 status.
func (c *Client) getJSON(ctx context.Context, url string, out any) (bool, error) {
	c.rateLimiter.wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return true, nil
}

// normalizeISBN removes hyphens and spaces from an ISBN.
func normalizeISBN(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	isbn = strings.TrimSpace(isbn)

	if len(isbn) != 10 && len(isbn) != 13 {
		return ""
	}
	return isbn
}

// OpenLibrary API response types (internal)

type keyRef struct {
	Key string `json:"key"`
}

type openLibraryEdition struct {
	Key           string   `json:"key"`
	Title         string   `json:"title"`
	Authors       []keyRef `json:"authors"`
	Works         []keyRef `json:"works"`
	PublishDate   string   `json:"publish_date"`
	NumberOfPages int      `json:"number_of_pages"`
	ISBN13        []string `json:"isbn_13"`
	Covers        []int    `json:"covers"`
}

type openLibraryWork struct {
	Key     string `json:"key"`
	Authors []struct {
		Author keyRef `json:"author"`
	} `json:"authors"`
}
