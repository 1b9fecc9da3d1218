package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers a new user with a hashed password", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		storage.On("FindByEmail", mock.Anything, "alice@test.com").Return(nil, ErrUserNotFound)
		storage.On("Insert", mock.Anything, mock.MatchedBy(func(u *User) bool {
			return u.Username == "alice" &&
				u.Email == "alice@test.com" &&
				u.PasswordHash != "" &&
				u.PasswordHash != "secret1" &&
				u.Gender == "" &&
				u.DOB == "" &&
				u.ID != uuid.Nil
		})).Return(nil)

		id, err := svc.Register(context.Background(), "alice", "alice@test.com", "secret1")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		storage.AssertExpectations(t)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		cases := [][3]string{
			{"", "a@test.com", "pw"},
			{"alice", "", "pw"},
			{"alice", "a@test.com", ""},
			{"", "", ""},
		}
		for _, c := range cases {
			_, err := svc.Register(context.Background(), c[0], c[1], c[2])
			assert.ErrorIs(t, err, ErrAllFieldsRequired)
		}
		storage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate email found by lookup", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		existing := &User{ID: uuid.New(), Email: "a@test.com"}
		storage.On("FindByEmail", mock.Anything, "a@test.com").Return(existing, nil)

		_, err := svc.Register(context.Background(), "alice", "a@test.com", "pw")
		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
		storage.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate-key conflict at insert wins the race", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		storage.On("FindByEmail", mock.Anything, "a@test.com").Return(nil, ErrUserNotFound)
		storage.On("Insert", mock.Anything, mock.Anything).Return(ErrEmailAlreadyRegistered)

		_, err := svc.Register(context.Background(), "alice", "a@test.com", "pw")
		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})

	t.Run("propagates storage failure on lookup", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		storage.On("FindByEmail", mock.Anything, "a@test.com").Return(nil, assert.AnError)

		_, err := svc.Register(context.Background(), "alice", "a@test.com", "pw")
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrEmailAlreadyRegistered)
	})
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	hashOf := func(t *testing.T, pw string) string {
		t.Helper()
		hash, err := testHasher().Hash(pw)
		require.NoError(t, err)
		return hash
	}

	t.Run("returns the user on valid credentials", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		stored := &User{ID: uuid.New(), Email: "alice@test.com", PasswordHash: hashOf(t, "secret1")}
		storage.On("FindByEmail", mock.Anything, "alice@test.com").Return(stored, nil)

		u, err := svc.Login(context.Background(), "alice@test.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, u.ID)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&MockStorage{}, testHasher())

		_, err := svc.Login(context.Background(), "", "pw")
		assert.ErrorIs(t, err, ErrCredentialsRequired)
		_, err = svc.Login(context.Background(), "a@test.com", "")
		assert.ErrorIs(t, err, ErrCredentialsRequired)
	})

	t.Run("unknown email and wrong password produce identical errors", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		storage.On("FindByEmail", mock.Anything, "ghost@test.com").Return(nil, ErrUserNotFound)
		stored := &User{ID: uuid.New(), Email: "alice@test.com", PasswordHash: hashOf(t, "secret1")}
		storage.On("FindByEmail", mock.Anything, "alice@test.com").Return(stored, nil)

		_, errUnknown := svc.Login(context.Background(), "ghost@test.com", "whatever")
		_, errWrongPw := svc.Login(context.Background(), "alice@test.com", "wrong")

		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)
		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}

func TestServiceGetUser(t *testing.T) {
	t.Parallel()

	t.Run("returns the user", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		stored := &User{ID: id, Username: "alice", Email: "alice@test.com", CreatedAt: time.Now()}
		storage.On("FindByID", mock.Anything, id).Return(stored, nil)

		u, err := svc.GetUser(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Empty(t, u.PasswordHash)
	})

	t.Run("not found passes through", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		storage.On("FindByID", mock.Anything, id).Return(nil, ErrUserNotFound)

		_, err := svc.GetUser(context.Background(), id)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestServiceUpdateProfile(t *testing.T) {
	t.Parallel()

	strptr := func(s string) *string { return &s }

	t.Run("applies partial update", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		update := ProfileUpdate{Gender: strptr("f")}
		updated := &User{ID: id, Username: "alice", Gender: "f", DOB: "1990-01-01"}
		storage.On("UpdateByID", mock.Anything, id, update).Return(updated, nil)

		u, err := svc.UpdateProfile(context.Background(), id, update)
		require.NoError(t, err)
		assert.Equal(t, "f", u.Gender)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("empty update reads the current document", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		stored := &User{ID: id, Username: "alice"}
		storage.On("FindByID", mock.Anything, id).Return(stored, nil)

		u, err := svc.UpdateProfile(context.Background(), id, ProfileUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		storage.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found passes through", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		storage.On("UpdateByID", mock.Anything, id, mock.Anything).Return(nil, ErrUserNotFound)

		_, err := svc.UpdateProfile(context.Background(), id, ProfileUpdate{Username: strptr("bob")})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestServiceChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("replaces the hash after verifying the current password", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		hasher := testHasher()
		svc := NewService(storage, hasher)

		id := uuid.New()
		currentHash, err := hasher.Hash("old-secret")
		require.NoError(t, err)

		storage.On("GetPasswordHash", mock.Anything, id).Return(currentHash, nil)
		storage.On("UpdatePasswordByID", mock.Anything, id, mock.MatchedBy(func(hash string) bool {
			// The new password is stored hashed, never as plaintext.
			return hash != "new-secret" && hasher.Verify("new-secret", hash)
		})).Return(nil)

		require.NoError(t, svc.ChangePassword(context.Background(), id, "old-secret", "new-secret"))
		storage.AssertExpectations(t)
	})

	t.Run("wrong current password leaves the hash unchanged", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		hasher := testHasher()
		svc := NewService(storage, hasher)

		id := uuid.New()
		currentHash, err := hasher.Hash("old-secret")
		require.NoError(t, err)
		storage.On("GetPasswordHash", mock.Anything, id).Return(currentHash, nil)

		err = svc.ChangePassword(context.Background(), id, "wrong", "new-secret")
		assert.ErrorIs(t, err, ErrCurrentPasswordIncorrect)
		storage.AssertNotCalled(t, "UpdatePasswordByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		storage.On("GetPasswordHash", mock.Anything, id).Return("", ErrUserNotFound)

		err := svc.ChangePassword(context.Background(), id, "old", "new")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestServiceDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing user", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		storage.On("DeleteByID", mock.Anything, id).Return(nil)

		assert.NoError(t, svc.DeleteUser(context.Background(), id))
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		storage := &MockStorage{}
		svc := NewService(storage, testHasher())

		id := uuid.New()
		storage.On("DeleteByID", mock.Anything, id).Return(ErrUserNotFound)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), id), ErrUserNotFound)
	})
}
