package entity

// User is the local mirror of an identity managed by Cognito.
// SubUUID is the "sub" claim of the tokens issued for this user.
type User struct {
	ID            int64  `gorm:"primaryKey"`
	SubUUID       string `gorm:"not null;uniqueIndex"`
	Username      string `gorm:"not null"`
	Email         string `gorm:"not null;index"`
	EmailVerified bool   `gorm:"not null"`
	Active        bool   `gorm:"not null;default:true"`
	Suspended     bool   `gorm:"not null;default:false"`
	CreatedAt     int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     int64  `gorm:"not null;autoUpdateTime:false"`
}
