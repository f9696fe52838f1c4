package entities

type Customer struct {
	Email string `gorm:"primary_key" json:"email"`
	Name  string `json:"name"`
	Age   int    `json:"age"`

	Orders []*Order `gorm:"foreignKey:CustomerEmail;references:Email"`
	Timestamp
}
