package sheet_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-deck/internal/entities"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-deck/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-deck/internal/testutils"
)

var fixedNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

// RepositoryContractSuite runs the same behavior checks against every
// Repository implementation
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() sheet.Repository
	repo    sheet.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *RepositoryContractSuite) exampleSheet() *entities.Sheet {
	deck := testutils.CreateExampleDeck()
	deck[6] = testutils.MerchantVariant()
	return &entities.Sheet{ID: testutils.TestScope, Cards: deck}
}

func (s *RepositoryContractSuite) TestCreateThenGet() {
	created, err := s.repo.Create(s.ctx, sheet.CreateInput{Sheet: s.exampleSheet()})
	s.Require().NoError(err)
	s.Equal(fixedNow, created.Sheet.CreatedAt)
	s.Equal(fixedNow, created.Sheet.UpdatedAt)

	out, err := s.repo.Get(s.ctx, sheet.GetInput{ID: testutils.TestScope})
	s.Require().NoError(err)
	s.Equal(testutils.TestScope, out.Sheet.ID)
	s.Equal(s.exampleSheet().Cards, out.Sheet.Cards)
	s.True(fixedNow.Equal(out.Sheet.CreatedAt))
}

func (s *RepositoryContractSuite) TestCreateTwice() {
	_, err := s.repo.Create(s.ctx, sheet.CreateInput{Sheet: s.exampleSheet()})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, sheet.CreateInput{Sheet: s.exampleSheet()})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryContractSuite) TestCreateDoesNotAliasInput() {
	input := s.exampleSheet()
	_, err := s.repo.Create(s.ctx, sheet.CreateInput{Sheet: input})
	s.Require().NoError(err)

	input.Cards[2] = testutils.WarriorCard()

	out, err := s.repo.Get(s.ctx, sheet.GetInput{ID: testutils.TestScope})
	s.Require().NoError(err)
	s.Equal("Ranger", out.Sheet.Cards[2].Name)
}

func (s *RepositoryContractSuite) TestUpdate() {
	created, err := s.repo.Create(s.ctx, sheet.CreateInput{Sheet: s.exampleSheet()})
	s.Require().NoError(err)

	changed := created.Sheet
	changed.Cards[6] = testutils.WarriorCard()
	_, err = s.repo.Update(s.ctx, sheet.UpdateInput{Sheet: changed})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, sheet.GetInput{ID: testutils.TestScope})
	s.Require().NoError(err)
	s.Equal(testutils.WarriorCard(), out.Sheet.Cards[6])
}

func (s *RepositoryContractSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, sheet.UpdateInput{Sheet: s.exampleSheet()})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, sheet.GetInput{ID: "sheet_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestInvalidInput() {
	_, err := s.repo.Get(s.ctx, sheet.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, sheet.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, sheet.UpdateInput{Sheet: &entities.Sheet{}})
	s.True(errors.IsInvalidArgument(err))
}

func TestFileRepository(t *testing.T) {
	dir := t.TempDir()
	n := 0

	s := &RepositoryContractSuite{}
	s.newRepo = func() sheet.Repository {
		n++
		repo, err := sheet.NewFile(&sheet.FileConfig{
			Dir:   filepath.Join(dir, fmt.Sprintf("sheets_%d", n)),
			Clock: &clock.Fixed{At: fixedNow},
		})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func TestRedisRepository(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)

	s := &RepositoryContractSuite{}
	s.newRepo = func() sheet.Repository {
		s.Require().NoError(client.FlushAll(context.Background()).Err())
		repo, err := sheet.NewRedis(&sheet.RedisConfig{
			Client: client,
			Clock:  &clock.Fixed{At: fixedNow},
		})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func TestFileRepositoryRejectsPathIDs(t *testing.T) {
	repo, err := sheet.NewFile(&sheet.FileConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	for _, id := range []string{"../escape", "a/b", `a\b`, ".."} {
		_, err := repo.Get(context.Background(), sheet.GetInput{ID: id})
		assert.True(t, errors.IsInvalidArgument(err), "id %q", id)
	}
}

func TestFileRepositoryReadsHandEditedSheet(t *testing.T) {
	dir := t.TempDir()
	data := `{
  "id": "sheet_hand",
  "cards": [
    {"id": "class-ranger", "name": "Ranger", "type": "Profession",
     "cardSelectDisplay": {"item1": "Bone", "item2": "Sage", "item3": "Evasion 12"}},
    null,
    "not a card",
    {"name": ""}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheet_hand.json"), []byte(data), 0o600))

	repo, err := sheet.NewFile(&sheet.FileConfig{Dir: dir})
	require.NoError(t, err)

	out, err := repo.Get(context.Background(), sheet.GetInput{ID: "sheet_hand"})
	require.NoError(t, err)
	require.Len(t, out.Sheet.Cards, 4)

	first := out.Sheet.Cards[0]
	assert.Equal(t, "Ranger", first.Name)
	assert.Equal(t, card.TypeProfession, first.Type)
	assert.Equal(t, "Evasion 12", first.Summary[2])
	for i := 1; i < 4; i++ {
		assert.True(t, out.Sheet.Cards[i].IsEmpty(), "slot %d", i)
	}
}

func TestNewFileValidation(t *testing.T) {
	_, err := sheet.NewFile(nil)
	assert.Error(t, err)

	_, err = sheet.NewFile(&sheet.FileConfig{Dir: " "})
	assert.True(t, errors.IsInvalidArgument(err))
}
