package models

import "time"

// Organization category short codes used across routing and auth.
const (
	CategoryOSLD = "osld"
	CategoryAO   = "ao"
	CategoryLSG  = "lsg"
	CategoryGSC  = "gsc"
	CategoryUSED = "used"
	CategoryCOA  = "coa"
	CategoryUSG  = "usg"
	CategoryLCO  = "lco"
	CategoryTGP  = "tgp"
)

// Account statuses. Status is tracked but does not gate login unless
// LOGIN_BLOCK_ON_HOLD is enabled (see controllers.Login).
const (
	AccountStatusActive    = "active"
	AccountStatusOnHold    = "on_hold"
	AccountStatusNotActive = "not_active"
)

type OrgAccount struct {
	AccountID int        `gorm:"primaryKey;column:account_id" json:"account_id"`
	OrgName   string     `gorm:"column:org_name" json:"org_name"`
	Email     string     `gorm:"column:email;unique" json:"email"`
	Password  string     `gorm:"column:password" json:"-"`
	Category  string     `gorm:"column:category" json:"category"`
	Status    string     `gorm:"column:status" json:"status"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (OrgAccount) TableName() string {
	return "org_accounts"
}

// IsReviewer reports whether the category sits on the reviewing side of the
// hierarchy rather than the submitting side.
func IsReviewer(category string) bool {
	switch category {
	case CategoryOSLD, CategoryCOA, CategoryLCO, CategoryUSG:
		return true
	}
	return false
}
