package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a string slice as a JSON column in MySQL.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
}

// DressEntity represents the dress table entity
type DressEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Price        float64    `db:"price" json:"price"`
	Category     string     `db:"category" json:"category"`
	Description  string     `db:"description" json:"description,omitempty"`
	Features     StringList `db:"features" json:"features"`
	Sizes        StringList `db:"sizes" json:"sizes"`
	Colors       StringList `db:"colors" json:"colors"`
	Images       StringList `db:"images" json:"images"`
	LikeCount    int64      `db:"like_count" json:"like_count"`
	RequestCount int64      `db:"request_count" json:"request_count"`
	Status       string     `db:"status" json:"status"`
	CreatedBy    uint64     `db:"created_by" json:"created_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CreateDressRequest for adding a dress to the catalog (admin only)
type CreateDressRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
}

// UpdateDressRequest carries partial updates; nil fields are left untouched.
type UpdateDressRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// UpdateDressStatusRequest switches a dress between active/inactive/draft.
type UpdateDressStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive draft"`
}

// DressStatistics feeds the admin dashboard cards and top list.
type DressStatistics struct {
	TotalDresses  int64         `json:"total_dresses"`
	ActiveDresses int64         `json:"active_dresses"`
	TotalRequests int64         `json:"total_requests"`
	TotalLikes    int64         `json:"total_likes"`
	TopDresses    []DressEntity `json:"top_dresses"`
}
