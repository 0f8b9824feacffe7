package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// BookingRepo implements the booking repository backed by PostgreSQL
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}
