package services

import (
	"path/filepath"
	"testing"

	"attractionapi/db"
	"attractionapi/dto"
	"attractionapi/models"
	"attractionapi/repository"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	attractions *AttractionService
	locations   *LocationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, models.Migrate(database))
	return &fixture{
		db:          database,
		attractions: NewAttractionService(repository.NewAttractionRepository(database), zerolog.Nop()),
		locations:   NewLocationService(repository.NewLocationRepository(database), zerolog.Nop()),
	}
}

func (f *fixture) location(t *testing.T, name string, population int64) *models.Location {
	t.Helper()
	l, err := f.locations.Create(dto.LocationDTO{Name: aws.String(name), Population: aws.Int64(population), HasMetro: aws.Bool(true)})
	require.NoError(t, err)
	return l
}

func (f *fixture) attraction(t *testing.T, d dto.AttractionDTO) *models.Attraction {
	t.Helper()
	a, err := f.attractions.Create(d)
	require.NoError(t, err)
	return a
}

func typePtr(t models.AttractionType) *models.AttractionType {
	return &t
}
