package common

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was successful.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// SimilarityFromDistance converts a cosine distance into a similarity score
// clamped to [0, 1]. pgvector's <=> operator can report distances slightly
// above 1 for near-opposite vectors, so the clamp is part of the contract.
func SimilarityFromDistance(distance float64) float64 {
	similarity := 1 - distance
	if similarity < 0 {
		return 0
	}
	if similarity > 1 {
		return 1
	}
	return similarity
}
