package model

// User is an operator account. The password is stored only as a bcrypt hash.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
}

// Employee is a single staff record. Email is unique across all employees,
// enforced at the constraint level.
type Employee struct {
	Id         int     `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name       string  `json:"name" form:"name" gorm:"not null"`
	Position   string  `json:"position" form:"position" gorm:"not null"`
	Department string  `json:"department" form:"department"`
	Email      string  `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	Salary     float64 `json:"salary" form:"salary" gorm:"default:0"`
}
