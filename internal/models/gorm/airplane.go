package gorm

type Airplane struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TailNumber string `gorm:"column:tail_number;uniqueIndex;not null"`
	Name       string `gorm:"column:name"`
	Color      string `gorm:"column:color"`
}

// TableName specifies the table name for GORM
func (Airplane) TableName() string {
	return "airplanes"
}

type User struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
