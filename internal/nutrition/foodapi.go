package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultFoodAPIBaseURL = "https://world.openfoodfacts.org"

// FoodAPISource queries a free Open Food Facts compatible database. It
// takes the first returned product carrying an energy field and normalizes
// kJ readings to kcal.
type FoodAPISource struct {
	baseURL    string
	locale     string
	httpClient *http.Client
}

func NewFoodAPISource(baseURL string, locale string, httpClient *http.Client) *FoodAPISource {
	if baseURL == "" {
		baseURL = DefaultFoodAPIBaseURL
	}
	if locale == "" {
		locale = "en"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &FoodAPISource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		locale:     locale,
		httpClient: httpClient,
	}
}

func (source *FoodAPISource) Name() string {
	return "food_database"
}

type foodSearchResponse struct {
	Products []foodProduct `json:"products"`
}

type foodProduct struct {
	ProductName string         `json:"product_name"`
	Nutriments  foodNutriments `json:"nutriments"`
}

type foodNutriments struct {
	EnergyKcal100g    *float64 `json:"energy-kcal_100g"`
	EnergyKJ100g      *float64 `json:"energy_100g"`
	Proteins100g      *float64 `json:"proteins_100g"`
	Carbohydrates100g *float64 `json:"carbohydrates_100g"`
	Fat100g           *float64 `json:"fat_100g"`
}

func (source *FoodAPISource) Lookup(ctx context.Context, food string) (Macros, bool, error) {
	query := url.Values{}
	query.Set("search_terms", food)
	query.Set("search_simple", "1")
	query.Set("action", "process")
	query.Set("json", "1")
	query.Set("page_size", "5")
	query.Set("lc", source.locale)

	endpoint := fmt.Sprintf("%s/cgi/search.pl?%s", source.baseURL, query.Encode())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Macros{}, false, fmt.Errorf("build food search request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := source.httpClient.Do(request)
	if err != nil {
		return Macros{}, false, fmt.Errorf("food search request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return Macros{}, false, fmt.Errorf("food search returned status %d", response.StatusCode)
	}

	var parsed foodSearchResponse
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return Macros{}, false, fmt.Errorf("decode food search response: %w", err)
	}

	for _, product := range parsed.Products {
		calories, hasEnergy := productCalories(product.Nutriments)
		if !hasEnergy {
			continue
		}

		name := strings.TrimSpace(product.ProductName)
		if name == "" {
			name = food
		}

		return Macros{
			Food:     name,
			Calories: roundCalories(calories),
			ProteinG: floatOrZero(product.Nutriments.Proteins100g),
			CarbsG:   floatOrZero(product.Nutriments.Carbohydrates100g),
			FatG:     floatOrZero(product.Nutriments.Fat100g),
		}, true, nil
	}

	return Macros{}, false, nil
}

// productCalories prefers the explicit kcal field; the plain energy field
// is reported in kJ and converted.
func productCalories(nutriments foodNutriments) (float64, bool) {
	if nutriments.EnergyKcal100g != nil {
		return *nutriments.EnergyKcal100g, true
	}
	if nutriments.EnergyKJ100g != nil {
		return kilojoulesToKilocalories(*nutriments.EnergyKJ100g), true
	}
	return 0, false
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
