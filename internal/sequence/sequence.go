package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Generator produce los códigos legibles de reserva y los tokens de
// acceso del portal. Se inyecta en los casos de uso para que la
// numeración no sea estado global implícito.
type Generator interface {
	NextReference(ctx context.Context, now time.Time) (string, error)
	NewAccessToken() string
}

// DBGenerator respalda la numeración en un contador anual en Postgres.
type DBGenerator struct {
	db     *gorm.DB
	prefix string
}

func NewDBGenerator(db *gorm.DB) *DBGenerator {
	return &DBGenerator{db: db, prefix: "RES"}
}

func (g *DBGenerator) NextReference(ctx context.Context, now time.Time) (string, error) {
	year := now.Year()

	var counter int64
	err := g.db.WithContext(ctx).Raw(`
        INSERT INTO booking_sequences (year, counter)
        VALUES (?, 1)
        ON CONFLICT (year)
        DO UPDATE SET counter = booking_sequences.counter + 1
        RETURNING counter
    `, year).Scan(&counter).Error
	if err != nil {
		return "", err
	}

	return FormatReference(g.prefix, year, counter), nil
}

func (g *DBGenerator) NewAccessToken() string {
	return uuid.NewString()
}

func FormatReference(prefix string, year int, counter int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, counter)
}
