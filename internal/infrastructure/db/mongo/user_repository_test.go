package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/authgate/accounts-service/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create returns stored id", func(mt *mtest.T) {
		repo := &UserRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &domain.User{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "a@x.com",
			PasswordHash: "$2a$10$hash",
			CreatedAt:    time.Now(),
		}
		created, err := repo.Create(context.Background(), user)
		require.NoError(mt, err)
		require.NotEmpty(mt, created.ID)
		require.True(mt, primitive.IsValidObjectID(created.ID))
		require.Equal(mt, "a@x.com", created.Email)
		require.Empty(mt, user.ID, "input record must not be mutated")
	})

	mt.Run("create maps duplicate key", func(mt *mtest.T) {
		repo := &UserRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: accounts.users index: email_1",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Email: "a@x.com"})
		require.ErrorIs(mt, err, domain.ErrUserExists)
	})

	mt.Run("create wraps other failures", func(mt *mtest.T) {
		repo := &UserRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Email: "a@x.com"})
		require.Error(mt, err)
		require.NotErrorIs(mt, err, domain.ErrUserExists)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := &UserRepository{coll: mt.Coll}
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "accounts.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "firstName", Value: "Ada"},
			{Key: "lastName", Value: "Lovelace"},
			{Key: "email", Value: "a@x.com"},
			{Key: "password", Value: "$2a$10$hash"},
			{Key: "isAdmin", Value: true},
		}))

		user, err := repo.FindByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		require.Equal(mt, oid.Hex(), user.ID)
		require.Equal(mt, "Ada", user.FirstName)
		require.Equal(mt, "$2a$10$hash", user.PasswordHash)
		require.True(mt, user.IsAdmin)
	})

	mt.Run("find by email not found", func(mt *mtest.T) {
		repo := &UserRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "accounts.users", mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "ghost@x.com")
		require.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := &UserRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureIndexes(context.Background(), true))
	})
}

func TestDatabaseName(t *testing.T) {
	name, err := DatabaseName(Config{URL: "mongodb://localhost:27017/auth-demo"})
	require.NoError(t, err)
	require.Equal(t, "auth-demo", name)

	name, err = DatabaseName(Config{URL: "mongodb://localhost:27017"})
	require.NoError(t, err)
	require.Equal(t, defaultDatabase, name)

	name, err = DatabaseName(Config{URL: "mongodb://localhost:27017/ignored", Database: "explicit"})
	require.NoError(t, err)
	require.Equal(t, "explicit", name)

	_, err = DatabaseName(Config{URL: "http://not-mongo"})
	require.Error(t, err)
}
