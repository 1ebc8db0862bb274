package db

import "time"

// Bucket 存储一个命名存储桶的完整内容，Value 为该桶记录的 JSON。
type Bucket struct {
	ID        uint   `gorm:"primarykey"`
	Key       string `gorm:"size:100;uniqueIndex;not null"`
	Value     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 自定义表名以保持命名一致。
func (Bucket) TableName() string {
	return "storage_buckets"
}
