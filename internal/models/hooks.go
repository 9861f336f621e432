package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are assigned application-side so the models behave the same on
// Postgres and on the sqlite database used in tests.

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (g *MedicalGuide) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
