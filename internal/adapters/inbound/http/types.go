package http

// ErrorCode classifies an API error for clients.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the wire shape of a single API error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the envelope returned on any non-2xx response.
type ErrorResp struct {
	Error Error `json:"error"`
}

// CocktailItem is the wire shape of one cocktail. Similarity is present only
// on semantically ranked results.
type CocktailItem struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Alcoholic   string   `json:"alcoholic,omitempty"`
	Glass       string   `json:"glass,omitempty"`
	Ingredients string   `json:"ingredients,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Recipe      string   `json:"recipe,omitempty"`
	Similarity  *float64 `json:"similarity,omitempty"`
}

// CocktailsResp wraps a list of cocktails.
type CocktailsResp struct {
	Items []CocktailItem `json:"items"`
}

// StatsResp reports corpus-level statistics.
type StatsResp struct {
	TotalCocktails int64 `json:"totalCocktails"`
}

// MixedRecommendationReq is the request body for the mixed recommendation
// endpoint. Every field is optional but at least one preference signal must
// be populated.
type MixedRecommendationReq struct {
	Ingredients []string `json:"ingredients,omitempty"`
	Styles      []string `json:"styles,omitempty"`
	Occasion    *string  `json:"occasion,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Alcoholic   *string  `json:"alcoholic,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}
