package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/healthlog/backend/internal/types"
)

type WeightRecord struct {
	ID        int64      `gorm:"primarykey;autoIncrement" json:"id"`
	UserID    uuid.UUID  `gorm:"type:varchar(36);not null;index:idx_weight_user_date,priority:1" json:"user_id"`
	Date      types.Date `gorm:"type:date;not null;index:idx_weight_user_date,priority:2" json:"date"`
	WeightKG  float64    `gorm:"column:weight_kg;not null" json:"weight_kg"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (r *WeightRecord) ToDTO() types.WeightRecord {
	return types.WeightRecord{ID: r.ID, Date: r.Date, WeightKG: r.WeightKG}
}

type BloodPressureRecord struct {
	ID        int64      `gorm:"primarykey;autoIncrement" json:"id"`
	UserID    uuid.UUID  `gorm:"type:varchar(36);not null;index:idx_bp_user_date,priority:1" json:"user_id"`
	Date      types.Date `gorm:"type:date;not null;index:idx_bp_user_date,priority:2" json:"date"`
	Systolic  int        `gorm:"not null" json:"systolic"`
	Diastolic int        `gorm:"not null" json:"diastolic"`
	Pulse     int        `gorm:"not null" json:"pulse"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (r *BloodPressureRecord) ToDTO() types.BloodPressureRecord {
	return types.BloodPressureRecord{
		ID:        r.ID,
		Date:      r.Date,
		Systolic:  r.Systolic,
		Diastolic: r.Diastolic,
		Pulse:     r.Pulse,
	}
}

type SymptomRecord struct {
	ID          int64      `gorm:"primarykey;autoIncrement" json:"id"`
	UserID      uuid.UUID  `gorm:"type:varchar(36);not null;index:idx_symptom_user_date,priority:1" json:"user_id"`
	Date        types.Date `gorm:"type:date;not null;index:idx_symptom_user_date,priority:2" json:"date"`
	BodyPart    string     `gorm:"size:100;not null" json:"body_part"`
	PainType    string     `gorm:"size:100;not null" json:"pain_type"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (r *SymptomRecord) ToDTO() types.SymptomRecord {
	return types.SymptomRecord{
		ID:          r.ID,
		Date:        r.Date,
		BodyPart:    r.BodyPart,
		PainType:    r.PainType,
		Description: r.Description,
	}
}

// All lists every model, in dependency order, for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserProfile{},
		&WeightRecord{},
		&BloodPressureRecord{},
		&SymptomRecord{},
	}
}
