package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-deck/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	client catalog.Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.client = catalog.NewEmbedded()
	s.ctx = context.Background()
}

func (s *ClientTestSuite) names(cards []card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}

func (s *ClientTestSuite) TestSearchRequiresInput() {
	out, err := s.client.Search(s.ctx, nil)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(out)

	out, err = s.client.Search(s.ctx, &catalog.SearchInput{Limit: -1})
	s.Error(err)
	s.Nil(out)
}

func (s *ClientTestSuite) TestSearchWithoutFiltersReturnsEverything() {
	out, err := s.client.Search(s.ctx, &catalog.SearchInput{})
	s.Require().NoError(err)
	s.Len(out.Cards, 24)
	for _, c := range out.Cards {
		s.NotEmpty(c.ID)
		s.False(c.IsEmpty())
	}
}

func (s *ClientTestSuite) TestSearchFilters() {
	testCases := []struct {
		name     string
		filters  catalog.Filters
		expected []string
	}{
		{
			name:     "category by display name",
			filters:  catalog.Filters{Category: "class", Classes: []string{"ranger", "warrior"}},
			expected: []string{"Ranger", "Warrior"},
		},
		{
			name:     "variants match their effective type",
			filters:  catalog.Filters{Category: "community"},
			expected: []string{"Highborne", "Wanderborne", "Traveling Merchant"},
		},
		{
			name:     "query is case insensitive",
			filters:  catalog.Filters{Query: "  TRACK "},
			expected: []string{"Gifted Tracker"},
		},
		{
			name:     "class and level",
			filters:  catalog.Filters{Category: "domain", Classes: []string{"Ranger"}, Levels: []int{1}},
			expected: []string{"Gifted Tracker", "Untouchable"},
		},
		{
			name:     "all category",
			filters:  catalog.Filters{Category: catalog.CategoryAll, Levels: []int{3, 4}},
			expected: []string{"Forager", "Ferocity"},
		},
		{
			name:     "no match",
			filters:  catalog.Filters{Query: "dragon"},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.client.Search(s.ctx, &catalog.SearchInput{Filters: tc.filters})
			s.Require().NoError(err)
			s.Equal(tc.expected, s.names(out.Cards))
		})
	}
}

func (s *ClientTestSuite) TestSearchLimit() {
	out, err := s.client.Search(s.ctx, &catalog.SearchInput{
		Filters: catalog.Filters{Category: "domain"},
		Limit:   2,
	})
	s.Require().NoError(err)
	s.Equal([]string{"Book of Ava", "Bare Bones"}, s.names(out.Cards))
}

func (s *ClientTestSuite) TestGet() {
	found, err := s.client.Get(s.ctx, "variant-traveling-merchant")
	s.Require().NoError(err)
	s.Equal("Traveling Merchant", found.Name)
	s.Equal(card.TypeVariant, found.Type)
	s.Equal(card.TypeCommunity, found.VariantOf)
	s.Equal("Haggler", found.Summary[0])
}

func (s *ClientTestSuite) TestGetErrors() {
	_, err := s.client.Get(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.Get(s.ctx, "class-necromancer")
	s.True(errors.IsNotFound(err))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
