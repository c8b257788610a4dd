package service

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"pokedex/browser/internal/client"
	"pokedex/browser/internal/config"
	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
)

type ServiceTestSuite struct {
	suite.Suite

	catalog *fakeCatalog
	client  client.CatalogClient
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.catalog = newFakeCatalog(s.T(), 20)
	s.client = client.NewCatalogClient(config.CatalogConfig{
		BaseURL:   s.catalog.URL(),
		Timeout:   2 * time.Second,
		Cooldown:  time.Minute,
		UserAgent: "pokedex-test",
	}, nil)
	s.service = NewService(s.client, "de", 4)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
}

func (s *ServiceTestSuite) TestLoadPageKeepsListingOrder() {
	entries, err := s.service.LoadPage(context.Background(), 0, 20)
	s.Require().NoError(err)
	s.Require().Len(entries, 20)

	for i, entry := range entries {
		id := i + 1
		s.Assert().Equal(id, entry.ID)
		s.Assert().Equal(fmt.Sprintf("Mon%d-de", id), entry.Name)
		s.Assert().Equal(fmt.Sprintf("mon%d", id), entry.CanonicalName)
		s.Assert().Equal(fmt.Sprintf("https://img.example/%d.png", id), entry.SpriteURL)
	}

	s.Assert().Equal([]domain.CategoryTag{domain.TagFire}, entries[0].Tags)
	s.Assert().Equal([]domain.CategoryTag{domain.TagWater}, entries[1].Tags)
}

func (s *ServiceTestSuite) TestLoadPageOffset() {
	entries, err := s.service.LoadPage(context.Background(), 15, 100)
	s.Require().NoError(err)

	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	if diff := cmp.Diff([]int{16, 17, 18, 19, 20}, ids); diff != "" {
		s.T().Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func (s *ServiceTestSuite) TestLoadPagePastTheEnd() {
	entries, err := s.service.LoadPage(context.Background(), 40, 10)
	s.Require().NoError(err)
	s.Assert().Empty(entries)
}

func (s *ServiceTestSuite) TestLoadPageFallsBackToCanonicalName() {
	s.catalog.withoutGerman("/pokemon-species/3")

	entries, err := s.service.LoadPage(context.Background(), 0, 5)
	s.Require().NoError(err)
	s.Assert().Equal("mon3", entries[2].Name)
	s.Assert().Equal("Mon4-de", entries[3].Name)
}

func (s *ServiceTestSuite) TestLoadPageFailsAsAWhole() {
	testCases := []struct {
		name string
		path string
	}{
		{name: "detail failure", path: "/pokemon/5"},
		{name: "species failure", path: "/pokemon-species/7"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.catalog.fail(tc.path, http.StatusInternalServerError)

			entries, err := s.service.LoadPage(context.Background(), 0, 10)
			s.Require().Error(err)
			s.Assert().Nil(entries)
			s.Assert().True(apperrors.IsNetwork(err), "got %v", err)
		})
	}
}

func (s *ServiceTestSuite) TestLoadPageListFailure() {
	s.catalog.fail("/pokemon", http.StatusServiceUnavailable)

	entries, err := s.service.LoadPage(context.Background(), 0, 10)
	s.Assert().True(apperrors.IsNetwork(err))
	s.Assert().Nil(entries)
	s.Assert().Equal(0, s.catalog.hitCount("pokemon-species"))
}

func (s *ServiceTestSuite) TestLoadPageRejectsBadRange() {
	testCases := []struct {
		name   string
		offset int
		limit  int
	}{
		{name: "negative offset", offset: -1, limit: 10},
		{name: "zero limit", offset: 0, limit: 0},
		{name: "negative limit", offset: 0, limit: -5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.LoadPage(context.Background(), tc.offset, tc.limit)
			s.Assert().True(apperrors.IsInvalidArgument(err), "got %v", err)
		})
	}

	s.Assert().Equal(0, s.catalog.hitCount("pokemon"))
}

func (s *ServiceTestSuite) TestListNames() {
	names, err := s.service.ListNames(context.Background(), 0, 3)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"mon1", "mon2", "mon3"}, names)
	s.Assert().Equal(0, s.catalog.hitCount("pokemon-species"))
}

func (s *ServiceTestSuite) TestLoadDetail() {
	detail, err := s.service.LoadDetail(context.Background(), 7)
	s.Require().NoError(err)

	s.Assert().Equal(7, detail.ID)
	s.Assert().Equal("Mon7-de", detail.Name)
	s.Assert().Equal("mon7", detail.CanonicalName)
	s.Assert().Equal([]domain.LocalizedName{
		{Canonical: "overgrow", Localized: "Overgrow-de"},
		{Canonical: "chlorophyll", Localized: "Chlorophyll-de"},
	}, detail.Abilities)

	s.Require().Len(detail.Moves, domain.MaxDetailMoves)
	for i, move := range detail.Moves {
		s.Assert().Equal(fmt.Sprintf("move%d", i+1), move.Canonical)
	}
	s.Assert().Equal(domain.MaxDetailMoves, s.catalog.hitCount("move"))
}

func (s *ServiceTestSuite) TestLoadDetailMoveFallback() {
	s.catalog.withoutGerman("/move/move2")

	detail, err := s.service.LoadDetail(context.Background(), 1)
	s.Require().NoError(err)
	s.Assert().Equal(domain.LocalizedName{Canonical: "move2", Localized: "move2"}, detail.Moves[1])
	s.Assert().Equal("Move1-de", detail.Moves[0].Localized)
}

func (s *ServiceTestSuite) TestLoadDetailNotFound() {
	detail, err := s.service.LoadDetail(context.Background(), 999)
	s.Assert().Nil(detail)
	s.Assert().True(apperrors.IsNotFound(err), "got %v", err)
}

func (s *ServiceTestSuite) TestLoadDetailRejectsBadID() {
	_, err := s.service.LoadDetail(context.Background(), 0)
	s.Assert().True(apperrors.IsInvalidArgument(err))
	s.Assert().Equal(0, s.catalog.hitCount("pokemon"))
}

func (s *ServiceTestSuite) TestLoadDetailHasNoPartialResult() {
	s.catalog.fail("/ability/chlorophyll", http.StatusInternalServerError)

	detail, err := s.service.LoadDetail(context.Background(), 2)
	s.Assert().Nil(detail)
	s.Assert().True(apperrors.IsNetwork(err))
}

func TestLocalize(t *testing.T) {
	names := []client.Name{
		{Name: "Bulbasaur", Language: client.NamedResource{Name: "en"}},
		{Name: "Bisasam", Language: client.NamedResource{Name: "de"}},
		{Name: "Bulbizarre", Language: client.NamedResource{Name: "fr"}},
	}

	testCases := []struct {
		name     string
		names    []client.Name
		language string
		want     string
	}{
		{name: "german", names: names, language: "de", want: "Bisasam"},
		{name: "french", names: names, language: "fr", want: "Bulbizarre"},
		{name: "missing language", names: names, language: "ja", want: "bulbasaur"},
		{name: "no names", names: nil, language: "de", want: "bulbasaur"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Localize(tc.names, tc.language, "bulbasaur"))
		})
	}
}

// verifyNoLeaks ignores idle keep-alive connections left by the
// httptest-backed suite.
func verifyNoLeaks(t *testing.T) {
	t.Helper()
	goleak.VerifyNone(t,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

// stubClient answers the listing with size entries. Detail requests block
// until their context is done, except failID which fails right away.
type stubClient struct {
	client.CatalogClient

	size   int
	failID int
	delay  time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (c *stubClient) ListPokemon(_ context.Context, offset, limit int) (*client.PokemonPage, error) {
	page := &client.PokemonPage{Count: c.size}
	for id := 1; id <= c.size; id++ {
		page.Results = append(page.Results, client.NamedResource{
			Name: fmt.Sprintf("mon%d", id),
			URL:  fmt.Sprintf("stub://pokemon/%d", id),
		})
	}
	return page, nil
}

func (c *stubClient) GetPokemon(ctx context.Context, url string) (*client.Pokemon, error) {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		seen := c.maxInFlight.Load()
		if n <= seen || c.maxInFlight.CompareAndSwap(seen, n) {
			break
		}
	}

	var id int
	_, _ = fmt.Sscanf(url, "stub://pokemon/%d", &id)
	if id == c.failID {
		return nil, apperrors.Networkf("HTTP error: 500")
	}

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
			return &client.Pokemon{ID: id, Name: fmt.Sprintf("mon%d", id), Species: client.NamedResource{URL: "stub://species"}}, nil
		case <-ctx.Done():
			return nil, apperrors.FromContext(ctx, ctx.Err(), "stub aborted")
		}
	}

	<-ctx.Done()
	return nil, apperrors.FromContext(ctx, ctx.Err(), "stub aborted")
}

func (c *stubClient) GetSpecies(ctx context.Context, url string) (*client.NamedRecord, error) {
	return &client.NamedRecord{}, nil
}

func TestLoadPageFirstFailureCancelsSiblings(t *testing.T) {
	defer verifyNoLeaks(t)

	// The failing id must start while its blocked siblings hold worker slots.
	stub := &stubClient{size: 30, failID: 3}
	svc := NewService(stub, "de", 8)

	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = svc.LoadPage(context.Background(), 0, 30)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("fan-out did not finish after the first failure")
	}

	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err), "got %v", err)
	assert.Equal(t, int32(0), stub.inFlight.Load())
}

func TestLoadPageCallerCancellation(t *testing.T) {
	defer verifyNoLeaks(t)

	stub := &stubClient{size: 10}
	svc := NewService(stub, "de", 4)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	entries, err := svc.LoadPage(ctx, 0, 10)
	assert.Nil(t, entries)
	assert.True(t, apperrors.IsCanceled(err), "got %v", err)
}

func TestLoadPageBoundsConcurrency(t *testing.T) {
	defer verifyNoLeaks(t)

	stub := &stubClient{size: 24, delay: 5 * time.Millisecond}
	svc := NewService(stub, "de", 3)

	entries, err := svc.LoadPage(context.Background(), 0, 24)
	require.NoError(t, err)
	assert.Len(t, entries, 24)
	assert.LessOrEqual(t, stub.maxInFlight.Load(), int32(3))
	assert.Equal(t, 12, entries[11].ID)
}
