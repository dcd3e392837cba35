package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/entity"
	"github.com/rocketscienceinc/unbeatable-tictactoe/testing/suite"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour)

	// Given: a game with a human mark on the board
	game := entity.NewGame("123")
	game.Board.Place(1, 1, entity.Human)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored with a ttl
	require.NoError(t, err)
	assert.True(t, st.Redis.Exists("game:123"))
	assert.Equal(t, time.Hour, st.Redis.TTL("game:123"))
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored game where the computer has replied
		game := entity.NewGame("123")
		game.Board.Place(0, 0, entity.Human)
		game.Board.Place(1, 1, entity.Computer)
		game.ComputerMove = &entity.Position{Row: 1, Col: 1}

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("GetByID_Expired", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Minute)

		// Given: a stored game
		game := entity.NewGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: its ttl passes
		st.Redis.FastForward(2 * time.Minute)

		// Then: the game is gone
		_, err := gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("GetByID_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a value that is not a game
		require.NoError(t, st.Redis.Set("game:123", "not json"))

		// When: GetByID is called
		_, err := gameRepo.GetByID(ctx, "123")

		// Then: a decoding error is returned
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_Update(t *testing.T) {
	errRejected := errors.New("rejected")

	t.Run("Update_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored game
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		// When: a human mark is added through Update
		game, err := gameRepo.Update(ctx, "123", func(game *entity.Game) error {
			game.Board.Place(1, 1, entity.Human)
			return nil
		})

		// Then: the change is returned and stored with a fresh ttl
		require.NoError(t, err)
		assert.Equal(t, entity.Human, game.Board[1][1])

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, game, stored)
		assert.Equal(t, time.Hour, st.Redis.TTL("game:123"))
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// When: Update is called with non-existent ID
		called := false
		game, err := gameRepo.Update(ctx, "9999999", func(*entity.Game) error {
			called = true
			return nil
		})

		// Then: ErrGameNotFound is returned and nothing is created
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
		assert.False(t, called)
		assert.False(t, st.Redis.Exists("game:9999999"))
	})

	t.Run("Update_Rejected", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored game
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		// When: the update changes the game and then fails
		game, err := gameRepo.Update(ctx, "123", func(game *entity.Game) error {
			game.Board.Place(0, 0, entity.Human)
			return errRejected
		})

		// Then: the error is returned with the game and nothing is written
		require.ErrorIs(t, err, errRejected)
		require.NotNil(t, game)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame("123"), stored)
	})

	t.Run("Update_RetriesOnConflict", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored game
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		// When: another writer adds a mark while the first attempt is running
		attempts := 0
		game, err := gameRepo.Update(ctx, "123", func(game *entity.Game) error {
			attempts++
			if attempts == 1 {
				concurrent := entity.NewGame("123")
				concurrent.Board.Place(0, 0, entity.Human)
				require.NoError(t, gameRepo.CreateOrUpdate(ctx, concurrent))
			}

			game.Board.Place(2, 2, entity.Human)
			return nil
		})

		// Then: the update is retried on top of the other write
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, game, stored)
		assert.Equal(t, entity.Human, stored.Board[0][0])
		assert.Equal(t, entity.Human, stored.Board[2][2])
	})

	t.Run("Update_GivesUp", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored game
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		// When: another writer changes the game during every attempt
		attempts := 0
		_, err := gameRepo.Update(ctx, "123", func(*entity.Game) error {
			attempts++
			return gameRepo.CreateOrUpdate(ctx, entity.NewGame("123"))
		})

		// Then: ErrConcurrentUpdate is returned after the retry limit
		require.ErrorIs(t, err, apperror.ErrConcurrentUpdate)
		assert.Equal(t, maxUpdateRetries, attempts)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a stored game
		game := entity.NewGame("123")
		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
