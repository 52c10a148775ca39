// Package canvas is the REST client for the course provider. It handles
// session-cookie auth, retries with exponential backoff, and RFC 5988
// Link-header pagination; it carries no sync logic of its own.
package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"canvas_sync/internal/domain"
)

type Config struct {
	BaseURL        string
	SessionCookie  string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	sessionCookie  string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		sessionCookie:  cfg.SessionCookie,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "canvas"),
	}
}

// BaseURL returns the provider's base address, used for link resolution
// and building direct URLs.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Courses(ctx context.Context) ([]domain.Course, error) {
	params := url.Values{}
	params.Set("enrollment_state", "active")
	params.Add("include[]", "term")

	var dtos []courseDTO
	if err := c.getAll(ctx, "/courses", params, &dtos); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	// Some enrollments only show up without the active filter.
	if len(dtos) == 0 {
		if err := c.getAll(ctx, "/courses", nil, &dtos); err != nil {
			return nil, fmt.Errorf("list all enrollments: %w", err)
		}
	}

	courses := make([]domain.Course, 0, len(dtos))
	for _, d := range dtos {
		if d.Name == "" {
			continue
		}
		courses = append(courses, domain.Course{ID: d.ID, Name: d.Name, Code: d.CourseCode})
	}
	return courses, nil
}

func (c *Client) Modules(ctx context.Context, courseID int64) ([]Module, error) {
	params := url.Values{}
	params.Add("include[]", "items")
	params.Add("include[]", "content_details")

	var modules []Module
	if err := c.getAll(ctx, fmt.Sprintf("/courses/%d/modules", courseID), params, &modules); err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

func (c *Client) ModuleItems(ctx context.Context, courseID, moduleID int64) ([]ModuleItem, error) {
	params := url.Values{}
	params.Add("include[]", "content_details")

	var items []ModuleItem
	if err := c.getAll(ctx, fmt.Sprintf("/courses/%d/modules/%d/items", courseID, moduleID), params, &items); err != nil {
		return nil, fmt.Errorf("list module items: %w", err)
	}
	return items, nil
}

func (c *Client) Pages(ctx context.Context, courseID int64) ([]Page, error) {
	var pages []Page
	if err := c.getAll(ctx, fmt.Sprintf("/courses/%d/pages", courseID), nil, &pages); err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

func (c *Client) Page(ctx context.Context, courseID int64, pageURL string) (*Page, error) {
	var page Page
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/pages/%s", courseID, url.PathEscape(pageURL)), nil, &page); err != nil {
		return nil, fmt.Errorf("get page %s: %w", pageURL, err)
	}
	return &page, nil
}

func (c *Client) Assignments(ctx context.Context, courseID int64) ([]Assignment, error) {
	var assignments []Assignment
	if err := c.getAll(ctx, fmt.Sprintf("/courses/%d/assignments", courseID), nil, &assignments); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

func (c *Client) Assignment(ctx context.Context, courseID, assignmentID int64) (*Assignment, error) {
	var a Assignment
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/assignments/%d", courseID, assignmentID), nil, &a); err != nil {
		return nil, fmt.Errorf("get assignment %d: %w", assignmentID, err)
	}
	return &a, nil
}

func (c *Client) Quizzes(ctx context.Context, courseID int64) ([]Quiz, error) {
	var quizzes []Quiz
	if err := c.getAll(ctx, fmt.Sprintf("/courses/%d/quizzes", courseID), nil, &quizzes); err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	return quizzes, nil
}

func (c *Client) Quiz(ctx context.Context, courseID, quizID int64) (*Quiz, error) {
	var q Quiz
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/quizzes/%d", courseID, quizID), nil, &q); err != nil {
		return nil, fmt.Errorf("get quiz %d: %w", quizID, err)
	}
	return &q, nil
}

func (c *Client) QuizQuestions(ctx context.Context, courseID, quizID int64) ([]QuizQuestion, error) {
	var questions []QuizQuestion
	if err := c.getAll(ctx, fmt.Sprintf("/courses/%d/quizzes/%d/questions", courseID, quizID), nil, &questions); err != nil {
		return nil, fmt.Errorf("list quiz questions: %w", err)
	}
	return questions, nil
}

func (c *Client) Discussion(ctx context.Context, courseID, discussionID int64) (*Discussion, error) {
	var d Discussion
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/discussion_topics/%d", courseID, discussionID), nil, &d); err != nil {
		return nil, fmt.Errorf("get discussion %d: %w", discussionID, err)
	}
	return &d, nil
}

func (c *Client) Announcements(ctx context.Context, courseID int64) ([]Discussion, error) {
	params := url.Values{}
	params.Add("context_codes[]", fmt.Sprintf("course_%d", courseID))

	var anns []Discussion
	if err := c.getAll(ctx, "/announcements", params, &anns); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return anns, nil
}

func (c *Client) Syllabus(ctx context.Context, courseID int64) (*Syllabus, error) {
	params := url.Values{}
	params.Add("include[]", "syllabus_body")

	var course courseDTO
	if err := c.get(ctx, fmt.Sprintf("/courses/%d", courseID), params, &course); err != nil {
		return nil, fmt.Errorf("get syllabus: %w", err)
	}
	return &Syllabus{Body: course.SyllabusBody, UpdatedAt: course.UpdatedAt}, nil
}

func (c *Client) FileInfo(ctx context.Context, courseID, fileID int64) (*File, error) {
	var f File
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/files/%d", courseID, fileID), nil, &f); err != nil {
		return nil, fmt.Errorf("get file %d: %w", fileID, err)
	}
	return &f, nil
}

func (c *Client) RootFiles(ctx context.Context, courseID int64) ([]File, error) {
	var root folderDTO
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/folders/root", courseID), nil, &root); err != nil {
		return nil, fmt.Errorf("get root folder: %w", err)
	}

	var files []File
	if err := c.getAll(ctx, fmt.Sprintf("/folders/%d/files", root.ID), nil, &files); err != nil {
		return nil, fmt.Errorf("list root files: %w", err)
	}
	return files, nil
}

var contentDispositionName = regexp.MustCompile(`(?i)filename\*?=["']?(?:UTF-8'')?([^";'\r\n]+)`)

// Download fetches raw bytes from a provider URL. The returned filename
// comes from Content-Disposition when present, empty otherwise.
func (c *Client) Download(ctx context.Context, rawURL string) ([]byte, string, error) {
	if strings.HasPrefix(rawURL, "/") {
		rawURL = c.baseURL + rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}

	var filename string
	if m := contentDispositionName.FindStringSubmatch(resp.Header.Get("Content-Disposition")); m != nil {
		if unescaped, err := url.QueryUnescape(m[1]); err == nil {
			filename = unescaped
		} else {
			filename = m[1]
		}
	}
	return data, filename, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	_, err := c.doWithRetry(ctx, c.apiURL(endpoint, params), out)
	return err
}

// getAll follows rel="next" Link headers until the listing is exhausted.
// Each page goes through the same retry loop as single fetches.
func (c *Client) getAll(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("per_page", fmt.Sprintf("%d", c.pageSize))

	var pages []json.RawMessage
	next := c.apiURL(endpoint, params)

	for next != "" {
		var page json.RawMessage
		nextURL, err := c.doWithRetry(ctx, next, &page)
		if err != nil {
			return err
		}
		pages = append(pages, page)
		next = nextURL
	}

	return mergePages(pages, out)
}

// doWithRetry wraps doRequest in exponential backoff.
func (c *Client) doWithRetry(ctx context.Context, fullURL string, out any) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		next, err := c.doRequest(ctx, fullURL, out)
		if err == nil {
			return next, nil
		}
		lastErr = err

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"url", fullURL,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}
	return "", fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

// mergePages concatenates the JSON arrays of each fetched page and
// decodes them into the caller's slice.
func mergePages(pages []json.RawMessage, out any) error {
	var merged []json.RawMessage
	for _, page := range pages {
		var items []json.RawMessage
		if err := json.Unmarshal(page, &items); err != nil {
			// Single-object response.
			merged = append(merged, page)
			continue
		}
		merged = append(merged, items...)
	}

	combined, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("merge pages: %w", err)
	}
	return json.Unmarshal(combined, out)
}

func (c *Client) doRequest(ctx context.Context, fullURL string, out any) (next string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", fmt.Errorf("session expired (status 401)")
	default:
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return nextPageURL(resp.Header.Get("Link")), nil
}

func nextPageURL(linkHeader string) string {
	for _, part := range strings.Split(linkHeader, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		raw := strings.SplitN(part, ";", 2)[0]
		return strings.Trim(strings.TrimSpace(raw), "<>")
	}
	return ""
}

func (c *Client) apiURL(endpoint string, params url.Values) string {
	u := c.baseURL + "/api/v1" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CanvasSync/1.0")
	if c.sessionCookie != "" {
		req.Header.Set("Cookie", c.sessionCookie)
	}
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
