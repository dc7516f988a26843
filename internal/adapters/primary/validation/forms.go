package validation

import (
	"strings"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

// RegistrationForm is the restaurant sign-up form.
type RegistrationForm struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email_loose"`
	Phone           string `json:"phone" validate:"required,phone10"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	InviteCode      string `json:"inviteCode"`
}

// Validate trims the text fields and checks the form.
func (f *RegistrationForm) Validate() *apperrors.ValidationErrors {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	return Struct(f)
}

// Registration converts a validated form to the register request body.
func (f RegistrationForm) Registration() domain.Registration {
	return domain.Registration{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Password:   f.Password,
		Role:       domain.RoleRestaurantOwner,
		InviteCode: f.InviteCode,
	}
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (f *LoginForm) Validate() *apperrors.ValidationErrors {
	f.Email = strings.TrimSpace(f.Email)
	return Struct(f)
}

func (f LoginForm) Credentials() domain.Credentials {
	return domain.Credentials{Email: f.Email, Password: f.Password}
}

// NutritionForm holds the nutrition inputs of the menu item form.
type NutritionForm struct {
	Calories int     `json:"calories" validate:"gt=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
}

// MenuItemForm is the add and edit item form.
type MenuItemForm struct {
	Name            string        `json:"name" validate:"required"`
	Description     string        `json:"description" validate:"required"`
	Price           float64       `json:"price" validate:"gt=0"`
	Category        string        `json:"category" validate:"required,menu_category"`
	Image           string        `json:"image"`
	IsOutOfStock    bool          `json:"isOutOfStock"`
	PreparationTime int           `json:"preparationTime" validate:"gt=0"`
	IsVegetarian    bool          `json:"isVegetarian"`
	IsSpicy         bool          `json:"isSpicy"`
	Allergens       []string      `json:"allergens" validate:"dive,allergen"`
	NutritionalInfo NutritionForm `json:"nutritionalInfo"`
}

func (f *MenuItemForm) Validate() *apperrors.ValidationErrors {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	return Struct(f)
}

// Input converts a validated form to the menu request body.
func (f MenuItemForm) Input() domain.MenuItemInput {
	allergens := f.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	return domain.MenuItemInput{
		Name:            f.Name,
		Description:     f.Description,
		Price:           f.Price,
		Category:        f.Category,
		Image:           f.Image,
		IsOutOfStock:    f.IsOutOfStock,
		PreparationTime: f.PreparationTime,
		IsVegetarian:    f.IsVegetarian,
		IsSpicy:         f.IsSpicy,
		Allergens:       allergens,
		NutritionalInfo: domain.NutritionalInfo{
			Calories: f.NutritionalInfo.Calories,
			Protein:  f.NutritionalInfo.Protein,
			Carbs:    f.NutritionalInfo.Carbs,
			Fat:      f.NutritionalInfo.Fat,
		},
	}
}

// MenuItemFormFrom prefills the form from an existing item.
func MenuItemFormFrom(item domain.MenuItem) MenuItemForm {
	return MenuItemForm{
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		Category:        item.Category,
		Image:           item.Image,
		IsOutOfStock:    item.IsOutOfStock,
		PreparationTime: item.PreparationTime,
		IsVegetarian:    item.IsVegetarian,
		IsSpicy:         item.IsSpicy,
		Allergens:       item.Allergens,
		NutritionalInfo: NutritionForm{
			Calories: item.NutritionalInfo.Calories,
			Protein:  item.NutritionalInfo.Protein,
			Carbs:    item.NutritionalInfo.Carbs,
			Fat:      item.NutritionalInfo.Fat,
		},
	}
}

// OrderStatusForm is the body of an order status change.
type OrderStatusForm struct {
	Status string `json:"status" validate:"required,order_status"`
}

func (f *OrderStatusForm) Validate() *apperrors.ValidationErrors { return Struct(f) }

// TicketStatusForm is the body of a support ticket status change.
type TicketStatusForm struct {
	Status string `json:"status" validate:"required,ticket_status"`
}

func (f *TicketStatusForm) Validate() *apperrors.ValidationErrors { return Struct(f) }

// NotificationForm is the send-notification form.
type NotificationForm struct {
	Title    string `json:"title" validate:"required,max=120"`
	Message  string `json:"message" validate:"required,max=2000"`
	Audience string `json:"audience" validate:"omitempty,oneof=customers staff all"`
}

func (f *NotificationForm) Validate() *apperrors.ValidationErrors {
	f.Title = strings.TrimSpace(f.Title)
	f.Message = strings.TrimSpace(f.Message)
	return Struct(f)
}

func (f NotificationForm) Input() domain.NotificationInput {
	return domain.NotificationInput{Title: f.Title, Message: f.Message, Audience: f.Audience}
}

// RegisterRequest is the register body as received by the dev backend.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email_loose"`
	Phone      string `json:"phone" validate:"required,phone10"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	Role       string `json:"role" validate:"omitempty,oneof=restaurant_owner restaurant_staff"`
	InviteCode string `json:"inviteCode"`
}

func (f *RegisterRequest) Validate() *apperrors.ValidationErrors {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return Struct(f)
}

func (f RegisterRequest) Registration() domain.Registration {
	return domain.Registration{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Password:   f.Password,
		Role:       f.Role,
		InviteCode: f.InviteCode,
	}
}

// ProfileForm is the restaurant profile form.
type ProfileForm struct {
	Name         string   `json:"name" validate:"required,min=2,max=120"`
	Description  string   `json:"description" validate:"max=1000"`
	Cuisine      []string `json:"cuisine" validate:"dive,required,max=40"`
	Address      string   `json:"address" validate:"max=300"`
	Phone        string   `json:"phone" validate:"max=20"`
	Email        string   `json:"email" validate:"omitempty,email_loose"`
	OpeningHours string   `json:"openingHours" validate:"max=120"`
	IsOpen       bool     `json:"isOpen"`
}

func (f *ProfileForm) Validate() *apperrors.ValidationErrors {
	f.Name = strings.TrimSpace(f.Name)
	return Struct(f)
}

func (f ProfileForm) Restaurant() domain.Restaurant {
	return domain.Restaurant{
		Name:         f.Name,
		Description:  f.Description,
		Cuisine:      f.Cuisine,
		Address:      f.Address,
		Phone:        f.Phone,
		Email:        f.Email,
		OpeningHours: f.OpeningHours,
		IsOpen:       f.IsOpen,
	}
}

// SettingsForm is the restaurant settings form.
type SettingsForm struct {
	AcceptingOrders          bool     `json:"acceptingOrders"`
	AutoConfirmOrders        bool     `json:"autoConfirmOrders"`
	PreparationBufferMinutes int      `json:"preparationBufferMinutes" validate:"gte=0,lte=240"`
	NotificationChannels     []string `json:"notificationChannels" validate:"dive,oneof=email sms push"`
	Currency                 string   `json:"currency" validate:"omitempty,len=3,uppercase"`
	TaxRate                  float64  `json:"taxRate" validate:"gte=0,lte=100"`
}

func (f *SettingsForm) Validate() *apperrors.ValidationErrors { return Struct(f) }

func (f SettingsForm) Settings() domain.Settings {
	return domain.Settings{
		AcceptingOrders:          f.AcceptingOrders,
		AutoConfirmOrders:        f.AutoConfirmOrders,
		PreparationBufferMinutes: f.PreparationBufferMinutes,
		NotificationChannels:     f.NotificationChannels,
		Currency:                 f.Currency,
		TaxRate:                  f.TaxRate,
	}
}
