package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airportlist GORM model for database mapping
type Airportlist struct {
	ID          uint            `gorm:"primaryKey"`
	AirportCode string          `gorm:"column:airportcode;unique"`
	AirportName string          `gorm:"column:airport_name"`
	CityName    string          `gorm:"column:cityname"`
	CountryCode string          `gorm:"column:countrycode"`
	Latitude    sql.NullFloat64 `gorm:"column:latitude"`
	Longitude   sql.NullFloat64 `gorm:"column:longitude"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airportlist) TableName() string {
	return "m_airport_list"
}

// ListAirports loads every active airport row
func (r *GormAirportRepository) ListAirports(ctx context.Context) ([]*entity.Airport, error) {
	var rows []Airportlist
	if err := r.db.WithContext(ctx).Order("airportcode").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}

	airports := make([]*entity.Airport, 0, len(rows))
	for i := range rows {
		airports = append(airports, rows[i].toEntity())
	}
	return airports, nil
}

// Convert GORM model to domain entity
func (a *Airportlist) toEntity() *entity.Airport {
	airport := &entity.Airport{
		Code:    strings.ToUpper(strings.TrimSpace(a.AirportCode)),
		Name:    a.AirportName,
		City:    a.CityName,
		Country: a.CountryCode,
	}
	if a.Latitude.Valid && a.Longitude.Valid {
		lat, lon := a.Latitude.Float64, a.Longitude.Float64
		airport.Latitude = &lat
		airport.Longitude = &lon
	}
	return airport
}

var _ repository.AirportRepository = (*GormAirportRepository)(nil)
