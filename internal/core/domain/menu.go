package domain

// Menu categories and allergens offered by the item form.
var (
	MenuCategories = []string{"Appetizer", "Main Course", "Side Dish", "Bread", "Dessert", "Beverage"}
	Allergens      = []string{"dairy", "nuts", "gluten", "eggs", "shellfish", "soy", "wheat"}
)

// NutritionalInfo is the per-serving nutrition of a menu item.
type NutritionalInfo struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MenuItem represents an item on the menu.
type MenuItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	Category        string          `json:"category"`
	Image           string          `json:"image,omitempty"`
	IsOutOfStock    bool            `json:"isOutOfStock"`
	PreparationTime int             `json:"preparationTime"`
	IsVegetarian    bool            `json:"isVegetarian"`
	IsSpicy         bool            `json:"isSpicy"`
	Allergens       []string        `json:"allergens"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
}

// Available is the inverse of IsOutOfStock.
func (m MenuItem) Available() bool {
	return !m.IsOutOfStock
}

// MenuItemInput is the body of menu create and update requests.
type MenuItemInput struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	Category        string          `json:"category"`
	Image           string          `json:"image,omitempty"`
	IsOutOfStock    bool            `json:"isOutOfStock"`
	PreparationTime int             `json:"preparationTime"`
	IsVegetarian    bool            `json:"isVegetarian"`
	IsSpicy         bool            `json:"isSpicy"`
	Allergens       []string        `json:"allergens"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
}

// Apply copies the input onto an item with the given id.
func (in MenuItemInput) Apply(id string) MenuItem {
	allergens := in.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	return MenuItem{
		ID:              id,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		Image:           in.Image,
		IsOutOfStock:    in.IsOutOfStock,
		PreparationTime: in.PreparationTime,
		IsVegetarian:    in.IsVegetarian,
		IsSpicy:         in.IsSpicy,
		Allergens:       allergens,
		NutritionalInfo: in.NutritionalInfo,
	}
}

// DeletedRef is the data payload of delete responses.
type DeletedRef struct {
	ID string `json:"id"`
}
