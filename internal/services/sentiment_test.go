package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordAnalyzerPositive(t *testing.T) {
	result, err := KeywordAnalyzer{}.Analyze(context.Background(), "Today was a great day, I feel happy and grateful")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.8, result.Score, 0.001, "three keyword hits score 0.5 + 0.3")
}

func TestKeywordAnalyzerNegative(t *testing.T) {
	result, err := KeywordAnalyzer{}.Analyze(context.Background(), "I'm so stressed and anxious about everything")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentNegative, result.Sentiment)
	assert.InDelta(t, 0.7, result.Score, 0.001)
}

func TestKeywordAnalyzerTieIsNeutral(t *testing.T) {
	result, err := KeywordAnalyzer{}.Analyze(context.Background(), "a good day but also a bad one")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentNeutral, result.Sentiment)
	assert.Equal(t, 0.5, result.Score)
}

func TestKeywordAnalyzerScoreCap(t *testing.T) {
	result, err := KeywordAnalyzer{}.Analyze(context.Background(),
		"good great happy joy love amazing wonderful excellent")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.Equal(t, 0.9, result.Score, "score never exceeds 0.9")
}

func TestHTTPAnalyzerParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "feeling fine", body["text"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"sentiment": "POSITIVE",
			"score":     0.973,
		})
	}))
	defer srv.Close()

	a := NewHTTPAnalyzer(srv.URL, time.Second)
	result, err := a.Analyze(context.Background(), "feeling fine")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentPositive, result.Sentiment, "labels are lowercased")
	assert.Equal(t, 0.97, result.Score, "scores round to two decimals")
}

func TestHTTPAnalyzerUnknownLabelIsNeutral(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"sentiment": "LABEL_1", "score": 0.6})
	}))
	defer srv.Close()

	a := NewHTTPAnalyzer(srv.URL, time.Second)
	result, err := a.Analyze(context.Background(), "whatever")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentNeutral, result.Sentiment)
}

func TestHTTPAnalyzerServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewHTTPAnalyzer(srv.URL, time.Second)
	_, err := a.Analyze(context.Background(), "anything")
	assert.Error(t, err)
}
