package directory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travel-ledger-service/internal/domain/entity"
	"travel-ledger-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAirportRepo struct {
	airports []*entity.Airport
	err      error
}

func (s *stubAirportRepo) ListAirports(ctx context.Context) ([]*entity.Airport, error) {
	return s.airports, s.err
}

func float(v float64) *float64 { return &v }

func TestSnapshotLookup(t *testing.T) {
	s := New([]*entity.Airport{
		{Code: " dfw ", City: "Dallas", Country: "US", Latitude: float(32.8998), Longitude: float(-97.0403)},
		{Code: "LHR", City: "London", Country: "GB"},
		nil,
		{Code: ""},
	})

	assert.Equal(t, 2, s.Len())

	dfw, ok := s.Lookup("DFW")
	require.True(t, ok)
	assert.Equal(t, "DFW", dfw.Code)
	assert.True(t, dfw.HasCoordinates())

	lhr, ok := s.Lookup("lhr")
	require.True(t, ok)
	assert.False(t, lhr.HasCoordinates())

	_, ok = s.Lookup("XXX")
	assert.False(t, ok)

	var empty *Snapshot
	_, ok = empty.Lookup("DFW")
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
}

func TestLoad(t *testing.T) {
	log := logger.NewNopLogger()

	s, err := Load(context.Background(), &stubAirportRepo{airports: []*entity.Airport{{Code: "ORD"}}}, log)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	_, err = Load(context.Background(), &stubAirportRepo{err: errors.New("connection refused")}, log)
	assert.ErrorContains(t, err, "connection refused")
}

func TestLoadJSON(t *testing.T) {
	body := `[
		{"code":"JFK","city":"New York","country":"US","lat":40.6413,"lon":-73.7781},
		{"code":"CDG","city":"Paris","country":"FR"}
	]`

	s, err := LoadJSON(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	jfk, ok := s.Lookup("JFK")
	require.True(t, ok)
	assert.InDelta(t, 40.6413, *jfk.Latitude, 1e-9)

	_, err = LoadJSON(strings.NewReader(`{"code":"JFK"}`))
	assert.Error(t, err)
}
