package models

import "gorm.io/gorm"

// 以key-value形式儲存的本機設定
type Setting struct {
	gorm.Model
	Key   string `gorm:"size:191;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}
