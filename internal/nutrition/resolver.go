// Package nutrition resolves free-text food names to macro facts through a
// prioritized chain of external sources. A failure at one source is only a
// miss for that source; the chain surfaces failure solely when exhausted.
package nutrition

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"unicode/utf8"
)

// kilojoule sources are normalized to kilocalories via this factor.
const kilojoulesPerKilocalorie = 4.184

const MinQueryLength = 2

var (
	ErrNotFound      = errors.New("no nutrition data found")
	ErrQueryTooShort = errors.New("food query must be at least 2 characters")
)

type Macros struct {
	Food     string  `json:"food"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Source   string  `json:"source"`
}

type Source interface {
	Name() string
	// Lookup reports found=false for a clean miss; an error means the
	// source itself failed and the next one should be tried.
	Lookup(ctx context.Context, food string) (Macros, bool, error)
}

type Resolver struct {
	sources []Source
}

func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

func (resolver *Resolver) Resolve(ctx context.Context, food string) (Macros, error) {
	trimmed := strings.TrimSpace(food)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return Macros{}, ErrQueryTooShort
	}

	for _, source := range resolver.sources {
		macros, found, err := source.Lookup(ctx, trimmed)
		if err != nil {
			log.Printf("nutrition lookup via %s failed: %v", source.Name(), err)
			continue
		}
		if !found {
			continue
		}
		macros.Source = source.Name()
		return normalizeMacros(macros), nil
	}

	return Macros{}, ErrNotFound
}

func normalizeMacros(macros Macros) Macros {
	macros.ProteinG = roundGrams(macros.ProteinG)
	macros.CarbsG = roundGrams(macros.CarbsG)
	macros.FatG = roundGrams(macros.FatG)
	return macros
}

func roundGrams(value float64) float64 {
	return math.Round(value*10) / 10
}

func roundCalories(value float64) int {
	return int(math.Round(value))
}

func kilojoulesToKilocalories(kilojoules float64) float64 {
	return kilojoules / kilojoulesPerKilocalorie
}
