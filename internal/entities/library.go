package entities

import "time"

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleLibrarian UserRole = "librarian"
)

// User is a staff account. The password is an opaque credential stored and
// compared verbatim; it never leaves the backend in JSON.
type User struct {
	Username  string   `gorm:"primaryKey;size:64" json:"username"`
	Password  string   `gorm:"size:128" json:"-"`
	FirstName string   `gorm:"size:100" json:"firstName"`
	LastName  string   `gorm:"size:100" json:"lastName"`
	Role      UserRole `gorm:"size:32" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// Book is a catalog entry. Items is the number of physical copies owned and
// is the sole quantity governing availability; it is never negative.
type Book struct {
	ISBN   string `gorm:"primaryKey;size:20;column:isbn" json:"isbn"`
	Title  string `gorm:"size:512" json:"title"`
	Author string `gorm:"size:256" json:"author"`
	Items  int    `json:"items"`
}

func (Book) TableName() string {
	return "books"
}

// Client is a library member. The ID is generated externally (it is the
// payload of the badge barcode), not by the database.
type Client struct {
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Email     string `gorm:"size:255" json:"email"`
	Phone     string `gorm:"size:32" json:"phone"`
}

func (Client) TableName() string {
	return "clients"
}

// Borrow links one client to one book copy-slot. Rows are kept after return
// so lending history stays visible; only an explicit administrative delete
// removes them.
type Borrow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  string    `gorm:"index;size:32" json:"clientId"`
	BookISBN  string    `gorm:"index;size:20;column:book_isbn" json:"bookIsbn"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Returned  bool      `json:"returned"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Book   Book   `gorm:"foreignKey:BookISBN;references:ISBN" json:"book,omitempty"`
}

func (Borrow) TableName() string {
	return "borrows"
}
