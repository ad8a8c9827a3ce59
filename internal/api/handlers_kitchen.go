package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeos-dev/lifeos/internal/models"
	"gorm.io/datatypes"
)

func (handler *Handler) GetPantry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	items, err := handler.repositories.Kitchen.ListPantryByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(items)
}

func (handler *Handler) CreatePantryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	item, message := handler.parsePantryPayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	item.UserID = user.ID
	item.CreatedAt = time.Now().In(handler.location)

	handler.ensureDependencies()
	if err := handler.repositories.Kitchen.CreatePantryItem(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdatePantryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid item id")
	}

	handler.ensureDependencies()
	existing, err := handler.repositories.Kitchen.FindPantryItemForUser(itemID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "pantry item not found")
	}

	item, message := handler.parsePantryPayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	existing.Name = item.Name
	existing.Quantity = item.Quantity
	existing.Unit = item.Unit
	existing.Category = item.Category
	existing.ExpiresAt = item.ExpiresAt

	if err := handler.repositories.Kitchen.SavePantryItem(&existing); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(existing)
}

func (handler *Handler) DeletePantryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid item id")
	}

	handler.ensureDependencies()
	item, err := handler.repositories.Kitchen.FindPantryItemForUser(itemID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "pantry item not found")
	}
	if err := handler.repositories.Kitchen.DeletePantryItem(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) parsePantryPayload(c *fiber.Ctx) (models.PantryItem, string) {
	payload := pantryItemPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.PantryItem{}, "invalid input"
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return models.PantryItem{}, "name is required"
	}
	if payload.Quantity < 0 {
		return models.PantryItem{}, "quantity must not be negative"
	}

	item := models.PantryItem{
		Name:     name,
		Quantity: payload.Quantity,
		Unit:     strings.TrimSpace(payload.Unit),
		Category: strings.TrimSpace(payload.Category),
	}
	if payload.ExpiresAt != "" {
		expires, err := parseDayParam(payload.ExpiresAt, handler.location)
		if err != nil {
			return models.PantryItem{}, "invalid expires_at"
		}
		item.ExpiresAt = &expires
	}
	return item, ""
}

func (handler *Handler) GetRecipes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	recipes, err := handler.repositories.Kitchen.ListRecipesByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(recipes)
}

func (handler *Handler) CreateRecipe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipe, message := handler.parseRecipePayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	recipe.UserID = user.ID
	recipe.CreatedAt = time.Now().In(handler.location)

	handler.ensureDependencies()
	if err := handler.repositories.Kitchen.CreateRecipe(&recipe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

func (handler *Handler) UpdateRecipe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	handler.ensureDependencies()
	existing, err := handler.repositories.Kitchen.FindRecipeForUser(recipeID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	recipe, message := handler.parseRecipePayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	existing.Name = recipe.Name
	existing.Servings = recipe.Servings
	existing.Ingredients = recipe.Ingredients
	existing.Instructions = recipe.Instructions
	existing.Calories = recipe.Calories
	existing.ProteinG = recipe.ProteinG
	existing.CarbsG = recipe.CarbsG
	existing.FatG = recipe.FatG

	if err := handler.repositories.Kitchen.SaveRecipe(&existing); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(existing)
}

func (handler *Handler) DeleteRecipe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	handler.ensureDependencies()
	recipe, err := handler.repositories.Kitchen.FindRecipeForUser(recipeID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}
	if err := handler.repositories.Kitchen.DeleteRecipe(&recipe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) parseRecipePayload(c *fiber.Ctx) (models.Recipe, string) {
	payload := recipePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.Recipe{}, "invalid input"
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return models.Recipe{}, "name is required"
	}
	servings := payload.Servings
	if servings <= 0 {
		servings = 1
	}

	ingredients := make([]models.RecipeIngredient, 0, len(payload.Ingredients))
	for _, ingredient := range payload.Ingredients {
		ingredientName := strings.TrimSpace(ingredient.Name)
		if ingredientName == "" {
			return models.Recipe{}, "ingredient name is required"
		}
		ingredients = append(ingredients, models.RecipeIngredient{
			Name:     ingredientName,
			Quantity: ingredient.Quantity,
			Unit:     strings.TrimSpace(ingredient.Unit),
		})
	}

	return models.Recipe{
		Name:         name,
		Servings:     servings,
		Ingredients:  datatypes.NewJSONType(ingredients),
		Instructions: strings.TrimSpace(payload.Instructions),
		Calories:     payload.Calories,
		ProteinG:     payload.ProteinG,
		CarbsG:       payload.CarbsG,
		FatG:         payload.FatG,
	}, ""
}
