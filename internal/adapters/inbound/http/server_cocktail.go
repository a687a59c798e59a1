package http

import (
	"net/http"
)

func (api ShakerAPIServer) GetCocktailByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	cocktails, err := api.GetCocktailByNameUseCase.Query(r.Context(), name)
	if err != nil {
		api.Logger.Printf("Error looking up cocktail by name: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toCocktailsResp(cocktails))
}

func (api ShakerAPIServer) GetCocktailsByCategory(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, ErrorResp{Error: Error{Code: BADREQUEST, Message: err.Error()}})
		return
	}
	category := r.URL.Query().Get("category")

	cocktails, err := api.GetCocktailsByCategoryUseCase.Query(r.Context(), category, limit)
	if err != nil {
		api.Logger.Printf("Error listing cocktails by category: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toCocktailsResp(cocktails))
}

func (api ShakerAPIServer) GetCorpusStats(w http.ResponseWriter, r *http.Request) {
	stats, err := api.GetCorpusStatsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error fetching corpus stats: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, StatsResp{TotalCocktails: stats.TotalCocktails})
}

func (api ShakerAPIServer) GetRandomCocktails(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, ErrorResp{Error: Error{Code: BADREQUEST, Message: err.Error()}})
		return
	}

	cocktails, err := api.GetRandomCocktailsUseCase.Query(r.Context(), limit)
	if err != nil {
		api.Logger.Printf("Error sampling random cocktails: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toCocktailsResp(cocktails))
}
