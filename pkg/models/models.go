package models

// User is an account record. Password holds the bcrypt hash and is never
// serialized into API responses; handlers return PublicUser instead.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
	Role     string `json:"role"`
}

// PublicUser is the sanitized projection of a User returned by the API.
type PublicUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image"`
}

// Public strips credential fields from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Image: u.Image,
	}
}

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"categoryId"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Brand       string  `json:"brand"`
	CreatedAt   string  `json:"createdAt"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Banner struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Link        string  `json:"link"`
	Position    string  `json:"position"`
	Priority    int     `json:"priority"`
	IsActive    bool    `json:"isActive"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	CreatedAt   string  `json:"createdAt"`
}

// CartItem rows are unique per (UserID, ProductID); adding the same product
// again increments Quantity on the existing row.
type CartItem struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	AddedAt   string `json:"addedAt"`
}

// OrderItem snapshots the product price at order time. It is never
// recomputed from the live product.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID              int         `json:"id"`
	UserID          int         `json:"userId"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	CreatedAt       string      `json:"createdAt"`
}
