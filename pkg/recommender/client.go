package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrUpstreamUnavailable covers transport errors, timeouts and non-200 replies.
	ErrUpstreamUnavailable = errors.New("recommendation service unavailable")
	// ErrMalformedResponse means the service answered 200 with an unreadable body.
	ErrMalformedResponse = errors.New("recommendation service returned a malformed response")
)

const DefaultAiMessage = "AI 추천 결과입니다."

const (
	// DefaultTimeout applies when the configured timeout is not positive.
	DefaultTimeout = 10 * time.Second

	// maxFieldRunes matches the varchar(255) title and artist columns.
	maxFieldRunes = 255
)

type Request struct {
	SessionId string   `json:"sessionId"`
	Topic     string   `json:"topic"`
	InputText string   `json:"inputText"`
	ImageUrls []string `json:"imageUrls"`
}

type Song struct {
	SongId     *int64 `json:"songId"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	AlbumCover string `json:"albumCover"`
	PreviewUrl string `json:"previewUrl"`
}

type Response struct {
	Keywords        []string `json:"keywords"`
	Recommendations []Song   `json:"recommendations"`
	AiMessage       *string  `json:"aiMessage"`
}

// Client calls the external recommendation engine once per request.
type Client interface {
	Recommend(ctx context.Context, req *Request) (*Result, error)
}

// Result is a normalized Response: slices are never nil and the message is never blank.
type Result struct {
	Keywords        []string
	Recommendations []Song
	AiMessage       string
}

type httpClient struct {
	endpoint string
	client   *http.Client
}

func NewClient(endpoint string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &httpClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Recommend(ctx context.Context, req *Request) (*Result, error) {
	if req.ImageUrls == nil {
		req.ImageUrls = []string{}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrUpstreamUnavailable, res.StatusCode, string(body))
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return normalize(&parsed), nil
}

// normalize drops songs without a title or artist and clips both to the
// stored column width.
func normalize(res *Response) *Result {
	result := &Result{
		Keywords:        res.Keywords,
		Recommendations: make([]Song, 0, len(res.Recommendations)),
		AiMessage:       DefaultAiMessage,
	}
	if result.Keywords == nil {
		result.Keywords = []string{}
	}
	for _, song := range res.Recommendations {
		song.Title = clip(strings.TrimSpace(song.Title), maxFieldRunes)
		song.Artist = clip(strings.TrimSpace(song.Artist), maxFieldRunes)
		if song.Title == "" || song.Artist == "" {
			continue
		}
		result.Recommendations = append(result.Recommendations, song)
	}
	if res.AiMessage != nil && *res.AiMessage != "" {
		result.AiMessage = *res.AiMessage
	}
	return result
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
