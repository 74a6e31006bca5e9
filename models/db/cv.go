package dbmodels

type Cv struct {
	BaseModel
	UserID       string     `gorm:"type:varchar(64);uniqueIndex"`
	Name         string     `gorm:"type:varchar(255)"`
	Title        string     `gorm:"type:varchar(255)"`
	Experience   StringList `gorm:"type:jsonb"`
	Skills       StringList `gorm:"type:jsonb"`
	AvatarUrl    string
	CvFileName   string
	CvFileKey    string
	ContactEmail string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(64)"`
}
