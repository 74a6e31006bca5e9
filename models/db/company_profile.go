package dbmodels

type CompanyProfile struct {
	BaseModel
	UserID      string `gorm:"type:varchar(64);uniqueIndex"`
	CompanyName string `gorm:"type:varchar(255)"`
	Description string
	Culture     string
	LogoUrl     string
	LogoKey     string
}
