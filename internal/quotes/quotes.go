// Package quotes produces the short motivational quote attached to the
// morning greeting, generated via the OpenAI API with a deterministic
// local fallback.
package quotes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymsupervisor/internal/telemetry/tracing"
)

const (
	DefaultAPIURL = "https://api.openai.com/v1/responses"

	model           = "gpt-4o-mini"
	maxOutputTokens = 60
	requestTimeout  = 20 * time.Second

	oneDay           = 24 * 60 * 60
	quoteCacheExpire = oneDay
)

// fallbackQuotes get served when the API is unreachable or returns
// nothing usable; picked by day so the same day repeats the same quote.
var fallbackQuotes = []string{
	"Small steps, repeated daily, build unstoppable momentum.",
	"Discipline today is strength tomorrow.",
	"Show up for the work, and confidence will follow.",
	"Consistency beats intensity when intensity is inconsistent.",
	"Every set is a vote for the person you are becoming.",
	"Progress is quiet: one rep, one set, one day at a time.",
	"You do not need perfect conditions, only a clear next set.",
}

type Generator struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	cache      *freecache.Cache
}

func NewGenerator(apiURL, apiKey string, httpClient *http.Client) *Generator {
	megabyte := 1024 * 1024
	return &Generator{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      freecache.NewCache(1 * megabyte),
	}
}

// MorningQuote returns the quote for the given day. Generation failures
// never surface to the caller; the day-indexed fallback steps in.
func (g *Generator) MorningQuote(ctx context.Context, today time.Time) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "quotes.morningQuote")
	defer span.End()

	day := today.Format("2006-01-02")
	cacheKey := []byte("quote::" + day)
	if cached, err := g.cache.Get(cacheKey); err == nil {
		log.Tracef("morning quote for %s found in cache", day)
		return string(cached)
	}

	quote, err := g.generate(ctx, day)
	if err != nil || quote == "" {
		if err != nil {
			log.Warnf("generate morning quote: %s; using fallback", err)
		}
		return FallbackQuote(today)
	}

	if err := g.cache.Set(cacheKey, []byte(quote), quoteCacheExpire); err != nil {
		log.Errorf("failed to cache morning quote for %s: %s", day, err)
	}
	return quote
}

func (g *Generator) generate(ctx context.Context, day string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "quotes.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(g.apiKey) == "" {
		return "", fmt.Errorf("api key not set")
	}

	prompt := fmt.Sprintf(
		"Today is %s. Write one short motivating fitness quote for a morning "+
			"check-in. 1 sentence, under 20 words, no hashtags, no emojis, no quotation marks.",
		day,
	)
	payload, err := json.Marshal(map[string]any{
		"model":             model,
		"input":             prompt,
		"max_output_tokens": maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(g.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body responsePayload
	if err := json.Unmarshal(respBytes, &body); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return extractQuoteText(body), nil
}

type responsePayload struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

func extractQuoteText(payload responsePayload) string {
	if text := strings.TrimSpace(payload.OutputText); text != "" {
		return text
	}

	var parts []string
	for _, item := range payload.Output {
		for _, content := range item.Content {
			if content.Type != "output_text" && content.Type != "text" {
				continue
			}
			if piece := strings.TrimSpace(content.Text); piece != "" {
				parts = append(parts, piece)
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// days between 0001-01-01 and the unix epoch; makes the day index stable
// across reimplementations of the quote rotation
const epochOrdinalOffset = 719162

// FallbackQuote picks the day's quote from the static rotation.
func FallbackQuote(today time.Time) string {
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	ordinal := midnight.Unix()/(24*60*60) + epochOrdinalOffset + 1
	return fallbackQuotes[ordinal%int64(len(fallbackQuotes))]
}
