package model

// Role values stored on User.Role.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is a registered seller. Gateway tokens are per environment and per purpose.
type User struct {
	Base
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	BusinessName string `gorm:"type:varchar(200);not null" json:"businessName"`
	Province     string `gorm:"type:varchar(100);not null" json:"province"`
	Address      string `gorm:"type:varchar(500);not null" json:"address"`
	NTNCNIC      string `gorm:"column:ntncnic;type:varchar(50);not null" json:"ntncnic"`
	Role         string `gorm:"type:varchar(10);not null" json:"role"`

	PostInvoiceTokenTest     *string `gorm:"type:text" json:"-"`
	PostInvoiceToken         *string `gorm:"type:text" json:"-"`
	ValidateInvoiceTokenTest *string `gorm:"type:text" json:"-"`
	ValidateInvoiceToken     *string `gorm:"type:text" json:"-"`
}

// PostToken returns the submission token for the requested environment, or "" when unset.
func (u *User) PostToken(isTest bool) string {
	if isTest {
		return deref(u.PostInvoiceTokenTest)
	}
	return deref(u.PostInvoiceToken)
}

// ValidateToken returns the validation token for the requested environment, or "" when unset.
func (u *User) ValidateToken(isTest bool) string {
	if isTest {
		return deref(u.ValidateInvoiceTokenTest)
	}
	return deref(u.ValidateInvoiceToken)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
