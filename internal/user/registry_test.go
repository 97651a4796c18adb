package user

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nateu/dotty/internal/security"
)

// fakeStore records what the registry persists.
type fakeStore struct {
	seeded     []*User
	stored     [][]*User
	storeCalls int
}

func (f *fakeStore) RetrieveProfiles() ([]*User, error) { return f.seeded, nil }

func (f *fakeStore) StoreProfiles(users []*User) error {
	f.storeCalls++
	snapshot := make([]*User, len(users))
	copy(snapshot, users)
	f.stored = append(f.stored, snapshot)
	return nil
}

func newTestRegistry(t *testing.T, store *fakeStore) *Registry {
	t.Helper()
	r, err := NewRegistry(store, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func TestRegistryLoadsProfilesAtConstruction(t *testing.T) {
	store := &fakeStore{seeded: []*User{New("pascal_123@talk.kik.com", security.Owner)}}
	r := newTestRegistry(t, store)

	assert.True(t, r.IsRegisteredUser("pascal_123@talk.kik.com"))
	assert.False(t, r.IsRegisteredUser("someone_else@talk.kik.com"))
}

func TestRegisterUserAppendsAndPersists(t *testing.T) {
	store := &fakeStore{}
	r := newTestRegistry(t, store)

	require.NoError(t, r.RegisterUser("newbie_789@talk.kik.com", security.User))

	assert.True(t, r.IsRegisteredUser("newbie_789@talk.kik.com"))
	require.Equal(t, 1, store.storeCalls, "full set persisted on every mutation")
	assert.Len(t, store.stored[0], 1)
}

func TestRegisterUserUpdatesRoleInPlace(t *testing.T) {
	store := &fakeStore{seeded: []*User{New("pascal_123@talk.kik.com", security.User)}}
	r := newTestRegistry(t, store)

	require.NoError(t, r.RegisterUser("pascal_123@talk.kik.com", security.Admin))

	u, err := r.GetUser("pascal_123@talk.kik.com")
	require.NoError(t, err)
	assert.Equal(t, security.Admin, u.ClearanceLevel())
	require.Equal(t, 1, store.storeCalls)
	assert.Len(t, store.stored[0], 1, "no duplicate entry")
}

func TestGetUnknownUserIsAnError(t *testing.T) {
	r := newTestRegistry(t, &fakeStore{})

	_, err := r.GetUser("ghost_1234@talk.kik.com")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestGetUserListing(t *testing.T) {
	store := &fakeStore{seeded: []*User{
		New("pascal_123@talk.kik.com", security.Owner),
		New("friend_456@talk.kik.com", security.User),
	}}
	r := newTestRegistry(t, store)

	assert.Equal(t, "pascal: OWNER\nfriend: USER", r.GetUserListing())
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "pascal", New("pascal_123@talk.kik.com", security.User).ShortName())
	assert.Equal(t, "Pascal", New("Pascal", security.Owner).ShortName())
	assert.Equal(t, "abc", New("abc@x", security.User).ShortName())
}
