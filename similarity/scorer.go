// Package similarity computes lexical similarity between two texts using
// pair-local TF-IDF weighting and cosine similarity. Document frequencies
// are computed over the compared pair only, not a pre-trained corpus.
package similarity

import (
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"originbot/types"
)

// DefaultThreshold is the score above which content is flagged as copied
const DefaultThreshold = 25.0

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Score computes a 0-100 lexical similarity score between two texts.
// It is symmetric in its arguments and total: empty input, disjoint
// vocabulary, or any degenerate numerical state yields 0.0 rather than
// an error.
func Score(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	// Document frequency over the pair
	df := make(map[string]int)
	for _, tokens := range [][]string{tokensA, tokensB} {
		seen := make(map[string]struct{})
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	vecA := vectorize(tokensA, df)
	vecB := vectorize(tokensB, df)

	dot := 0.0
	normA := 0.0
	normB := 0.0
	for term, weightA := range vecA {
		normA += weightA * weightA
		if weightB, ok := vecB[term]; ok {
			dot += weightA * weightB
		}
	}
	for _, weightB := range vecB {
		normB += weightB * weightB
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB)) * 100
	if math.IsNaN(score) || math.IsInf(score, 0) {
		log.Printf("Warning: similarity computation degenerated, falling back to 0")
		return 0.0
	}
	// Clamp floating-point drift
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Compare scores two texts and classifies the result against the threshold.
// A score exactly at the threshold stays unique; only scores above it are
// flagged.
func Compare(a, b string, threshold float64) types.SimilarityReport {
	score := Score(a, b)
	return types.SimilarityReport{
		Score:     score,
		Verdict:   VerdictFor(score, threshold),
		CheckedAt: time.Now(),
	}
}

// VerdictFor classifies a score against a threshold
func VerdictFor(score, threshold float64) types.Verdict {
	if score > threshold {
		return types.VerdictSuspect
	}
	return types.VerdictUnique
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// vectorize builds a TF-IDF weight map for one side of the pair using
// smoothed IDF over the two-document corpus.
func vectorize(tokens []string, df map[string]int) map[string]float64 {
	tf := make(map[string]int)
	for _, tok := range tokens {
		tf[tok]++
	}

	vec := make(map[string]float64, len(tf))
	total := float64(len(tokens))
	for term, count := range tf {
		idf := math.Log(3.0/(1.0+float64(df[term]))) + 1.0
		vec[term] = float64(count) / total * idf
	}
	return vec
}
