package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shakerlab/shaker/internal/usecases"
)

// splitCSVParam splits a comma-separated query parameter into trimmed,
// non-empty values.
func splitCSVParam(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		values = append(values, part)
	}
	return values
}

// parseLimit reads the limit query parameter. Absent means zero: the use
// cases substitute their default.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return limit, nil
}

func (api ShakerAPIServer) RecommendByIngredients(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, ErrorResp{Error: Error{Code: BADREQUEST, Message: err.Error()}})
		return
	}
	ingredients := splitCSVParam(r.URL.Query().Get("ingredients"))

	ranked, err := api.RecommendByIngredientsUseCase.Query(r.Context(), ingredients, limit)
	if err != nil {
		api.Logger.Printf("Error recommending by ingredients: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRankedResp(ranked))
}

func (api ShakerAPIServer) RecommendByStyle(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, ErrorResp{Error: Error{Code: BADREQUEST, Message: err.Error()}})
		return
	}
	styles := splitCSVParam(r.URL.Query().Get("styles"))

	ranked, err := api.RecommendByStyleUseCase.Query(r.Context(), styles, limit)
	if err != nil {
		api.Logger.Printf("Error recommending by style: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRankedResp(ranked))
}

func (api ShakerAPIServer) RecommendByOccasion(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, ErrorResp{Error: Error{Code: BADREQUEST, Message: err.Error()}})
		return
	}
	occasion := r.URL.Query().Get("occasion")

	ranked, err := api.RecommendByOccasionUseCase.Query(r.Context(), occasion, limit)
	if err != nil {
		api.Logger.Printf("Error recommending by occasion: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRankedResp(ranked))
}

func (api ShakerAPIServer) RecommendMixed(w http.ResponseWriter, r *http.Request) {
	var req MixedRecommendationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := ErrorResp{}
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = fmt.Sprintf("invalid request body: %v", err)

		respondError(w, errResp)
		return
	}

	prefs := usecases.MixedPreferences{
		Ingredients: req.Ingredients,
		Styles:      req.Styles,
		Occasion:    req.Occasion,
		Category:    req.Category,
		Alcoholic:   req.Alcoholic,
	}

	ranked, err := api.RecommendMixedUseCase.Query(r.Context(), prefs, req.Limit)
	if err != nil {
		api.Logger.Printf("Error recommending mixed: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRankedResp(ranked))
}
