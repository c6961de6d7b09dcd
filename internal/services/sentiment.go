package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/moodmate/moodmate-backend/internal/config"
	"github.com/moodmate/moodmate-backend/internal/models"
)

// SentimentResult is a classified mood text: a lowercase label and a
// confidence score in [0, 1], rounded to two decimals.
type SentimentResult struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// SentimentAnalyzer classifies free-form mood text.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (SentimentResult, error)
}

// NewSentimentAnalyzer picks the analyzer implementation from config:
// the HTTP inference service when SENTIMENT_API_URL is set, the keyword
// fallback otherwise.
func NewSentimentAnalyzer(cfg *config.Config) SentimentAnalyzer {
	if cfg.SentimentAPIURL == "" {
		slog.Warn("SENTIMENT_API_URL not set, using keyword sentiment fallback")
		return KeywordAnalyzer{}
	}
	return NewHTTPAnalyzer(cfg.SentimentAPIURL, cfg.SentimentTimeout)
}

// HTTPAnalyzer calls the external inference service's POST /analyze
// endpoint. The service returns {"sentiment": "...", "score": 0.97}.
type HTTPAnalyzer struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPAnalyzer(baseURL string, timeout time.Duration) *HTTPAnalyzer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPAnalyzer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *HTTPAnalyzer) Analyze(ctx context.Context, text string) (SentimentResult, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return SentimentResult{}, fmt.Errorf("failed to encode sentiment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return SentimentResult{}, fmt.Errorf("failed to build sentiment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return SentimentResult{}, fmt.Errorf("sentiment service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return SentimentResult{}, fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}

	var result SentimentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return SentimentResult{}, fmt.Errorf("failed to decode sentiment response: %w", err)
	}

	result.Sentiment = strings.ToLower(result.Sentiment)
	if !models.ValidSentiment(result.Sentiment) {
		result.Sentiment = models.SentimentNeutral
	}
	result.Score = round2(result.Score)
	return result, nil
}

// Word lists for the offline classifier. Matching is substring based on
// the lowercased text, so "unhappy" also counts "happy".
var (
	positiveWords = []string{
		"good", "great", "happy", "joy", "love", "amazing", "wonderful",
		"excellent", "fantastic", "awesome", "beautiful", "perfect",
		"delighted", "pleased", "content", "satisfied", "grateful",
		"blessed", "lucky", "fortunate",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "horrible", "sad", "angry",
		"frustrated", "disappointed", "upset", "worried", "anxious",
		"stressed", "depressed", "miserable", "unhappy", "annoyed",
		"irritated", "furious", "devastated", "heartbroken",
	}
)

// KeywordAnalyzer is the offline fallback: counts positive and negative
// keyword hits and scores 0.5 plus 0.1 per hit, capped at 0.9. A tie is
// neutral at 0.5.
type KeywordAnalyzer struct{}

func (KeywordAnalyzer) Analyze(_ context.Context, text string) (SentimentResult, error) {
	lower := strings.ToLower(text)

	positives := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positives++
		}
	}
	negatives := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negatives++
		}
	}

	switch {
	case positives > negatives:
		return SentimentResult{
			Sentiment: models.SentimentPositive,
			Score:     round2(math.Min(0.9, 0.5+float64(positives)*0.1)),
		}, nil
	case negatives > positives:
		return SentimentResult{
			Sentiment: models.SentimentNegative,
			Score:     round2(math.Min(0.9, 0.5+float64(negatives)*0.1)),
		}, nil
	default:
		return SentimentResult{Sentiment: models.SentimentNeutral, Score: 0.5}, nil
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
