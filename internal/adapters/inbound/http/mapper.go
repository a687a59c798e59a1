package http

import (
	"regexp"
	"strings"

	"github.com/shakerlab/shaker/internal/domain"
)

// maxTags caps the number of ingredient tags fanned out per cocktail.
const maxTags = 8

var markupPattern = regexp.MustCompile(`</?\w+[^>]*>`)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.EmptyQueryErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

// stripMarkup removes markup-like tags that some source rows carry in their
// text fields.
func stripMarkup(s string) string {
	return strings.TrimSpace(markupPattern.ReplaceAllString(s, ""))
}

// ingredientTags fans the comma-joined ingredients string out into
// individual tags, capped at maxTags.
func ingredientTags(ingredients string) []string {
	if strings.TrimSpace(ingredients) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(ingredients, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

func toCocktailItem(c domain.Cocktail) CocktailItem {
	ingredients := stripMarkup(c.Ingredients)
	return CocktailItem{
		Name:        stripMarkup(c.Name),
		Category:    c.Category,
		Alcoholic:   c.Alcoholic,
		Glass:       c.Glass,
		Ingredients: ingredients,
		Tags:        ingredientTags(ingredients),
		Recipe:      stripMarkup(c.Recipe),
	}
}

func toRankedItem(rc domain.RankedCocktail) CocktailItem {
	item := toCocktailItem(rc.Cocktail)
	item.Similarity = rc.Similarity
	return item
}

func toCocktailsResp(cocktails []domain.Cocktail) CocktailsResp {
	resp := CocktailsResp{Items: []CocktailItem{}}
	for _, c := range cocktails {
		resp.Items = append(resp.Items, toCocktailItem(c))
	}
	return resp
}

func toRankedResp(ranked []domain.RankedCocktail) CocktailsResp {
	resp := CocktailsResp{Items: []CocktailItem{}}
	for _, rc := range ranked {
		resp.Items = append(resp.Items, toRankedItem(rc))
	}
	return resp
}
