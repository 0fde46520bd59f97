package actions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"messenger/errors"
	"messenger/schemas"
	"messenger/store"
)

func newActions(t *testing.T) (*Actions, *store.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	st := store.New(rdb, 24*time.Hour, 100)
	return New(st, zerolog.Nop(), bcrypt.MinCost), st
}

func signup(t *testing.T, a *Actions, username, password string) {
	t.Helper()
	result, err := a.CreateAccount(context.Background(), schemas.SignupSchema{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	require.Equal(t, schemas.StatusSucceeded, result.Status)
}

func signin(t *testing.T, a *Actions, username, password string) string {
	t.Helper()
	result, err := a.Authenticate(context.Background(), schemas.SigninSchema{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	require.Equal(t, schemas.StatusSucceeded, result.Status)
	sid, ok := result.Data.(string)
	require.True(t, ok)
	require.NotEmpty(t, sid)
	return sid
}

func TestCreateAccountDuplicate(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()

	signup(t, a, "mo", "1234")

	result, err := a.CreateAccount(ctx, schemas.SignupSchema{Username: "mo", Password: "other"})
	require.NoError(t, err)
	assert.Equal(t, schemas.StatusFailed, result.Status)
	assert.Contains(t, result.Message, "already exists")
}

func TestCreateAccountValidation(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()

	_, err := a.CreateAccount(ctx, schemas.SignupSchema{Username: "mo"})
	var verr *errors.Validation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password", verr.Field)

	_, err = a.CreateAccount(ctx, schemas.SignupSchema{Username: "not a name!", Password: "x"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Username", verr.Field)
}

func TestAuthenticateIssuesResolvableSession(t *testing.T) {
	a, st := newActions(t)
	signup(t, a, "mo", "1234")

	sid := signin(t, a, "mo", "1234")

	username, err := st.ResolveSession(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, "mo", username)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	a, _ := newActions(t)

	result, err := a.Authenticate(context.Background(), schemas.SigninSchema{
		Username: "ghost", Password: "whatever",
	})
	require.NoError(t, err)
	assert.Equal(t, schemas.StatusFailed, result.Status)
	assert.Contains(t, result.Message, "does not exist")
	assert.Nil(t, result.Data)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	a, st := newActions(t)
	ctx := context.Background()
	signup(t, a, "mo", "1234")

	result, err := a.Authenticate(ctx, schemas.SigninSchema{Username: "mo", Password: "wrong"})
	require.NoError(t, err)
	assert.Equal(t, schemas.StatusFailed, result.Status)
	assert.Nil(t, result.Data)

	attempts, err := st.ActivityRange(ctx, "mo", 0, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, schemas.AttemptFailed, attempts[0].Result)
}

func TestDeauthenticate(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()
	signup(t, a, "mo", "1234")
	sid := signin(t, a, "mo", "1234")

	result, err := a.Deauthenticate(ctx, schemas.SignoutSchema{SessionID: sid})
	require.NoError(t, err)
	assert.Equal(t, schemas.StatusSucceeded, result.Status)

	// session is gone: authenticated calls and a second signout both fail
	_, err = a.GetChats(ctx, schemas.GetChatsSchema{SessionID: sid, NoChats: 10})
	assert.ErrorIs(t, err, errors.ErrUnauthenticated)

	_, err = a.Deauthenticate(ctx, schemas.SignoutSchema{SessionID: sid})
	assert.ErrorIs(t, err, errors.ErrUnauthenticated)
}

func TestBlockIsDirectional(t *testing.T) {
	a, st := newActions(t)
	ctx := context.Background()
	signup(t, a, "a", "pw")
	sid := signin(t, a, "a", "pw")

	result, err := a.Block(ctx, schemas.BlockSchema{SessionID: sid, ToBlockUsername: "b"})
	require.NoError(t, err)
	require.Equal(t, schemas.StatusSucceeded, result.Status)

	mine, err := st.GetRelationship(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, mine.Blocked)

	theirs, err := st.GetRelationship(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, theirs.Blocked)
}

func TestSendToBlockedCounterpart(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()
	signup(t, a, "a", "pw")
	sid := signin(t, a, "a", "pw")

	_, err := a.Block(ctx, schemas.BlockSchema{SessionID: sid, ToBlockUsername: "b"})
	require.NoError(t, err)

	result, err := a.SendMessage(ctx, schemas.SendMessageSchema{
		SessionID: sid, ReceiverUsername: "b", Content: "hello?",
	})
	require.NoError(t, err)
	assert.Equal(t, schemas.StatusFailed, result.Status)
	assert.Contains(t, result.Message, "blocked")
}

func TestSendReceiveRoundTrip(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()
	signup(t, a, "a", "pw")
	signup(t, a, "b", "pw")
	sidA := signin(t, a, "a", "pw")
	sidB := signin(t, a, "b", "pw")

	result, err := a.SendMessage(ctx, schemas.SendMessageSchema{
		SessionID: sidA, ReceiverUsername: "b", Content: "hi",
	})
	require.NoError(t, err)
	require.Equal(t, schemas.StatusSucceeded, result.Status)

	got, err := a.GetMessages(ctx, schemas.GetMessagesSchema{
		SessionID: sidB, WithUsername: "a", NoMsgs: 10,
	})
	require.NoError(t, err)
	require.Equal(t, schemas.StatusSucceeded, got.Status)

	msgs, ok := got.Data.([]schemas.Message)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, "a", msgs[0].From)
	assert.Equal(t, "b", msgs[0].To)
}

func TestGetMessagesNoChatYet(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()
	signup(t, a, "a", "pw")
	sid := signin(t, a, "a", "pw")

	result, err := a.GetMessages(ctx, schemas.GetMessagesSchema{
		SessionID: sid, WithUsername: "stranger", NoMsgs: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, schemas.StatusSucceeded, result.Status)
	assert.Contains(t, result.Message, "no chat")
	assert.Empty(t, result.Data)
}

func TestActivityScenario(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()
	signup(t, a, "mo", "1234")

	signin(t, a, "mo", "1234")
	for i := 0; i < 2; i++ {
		result, err := a.Authenticate(ctx, schemas.SigninSchema{Username: "mo", Password: "wrong"})
		require.NoError(t, err)
		require.Equal(t, schemas.StatusFailed, result.Status)
	}
	sid := signin(t, a, "mo", "1234")

	result, err := a.GetActivity(ctx, schemas.ActivitySchema{SessionID: sid, NoActivity: 10})
	require.NoError(t, err)
	require.Equal(t, schemas.StatusSucceeded, result.Status)

	attempts, ok := result.Data.([]schemas.Attempt)
	require.True(t, ok)
	require.Len(t, attempts, 4)

	failed := 0
	for _, attempt := range attempts {
		if attempt.Result == schemas.AttemptFailed {
			failed++
		}
	}
	assert.Equal(t, 2, failed)
	// newest-first: the last successful signin leads
	assert.Equal(t, schemas.AttemptSucceeded, attempts[0].Result)
}

func TestChatListScenario(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()
	signup(t, a, "jmo", "1234")
	sid := signin(t, a, "jmo", "1234")

	send := func(to, content string) {
		result, err := a.SendMessage(ctx, schemas.SendMessageSchema{
			SessionID: sid, ReceiverUsername: to, Content: content,
		})
		require.NoError(t, err)
		require.Equal(t, schemas.StatusSucceeded, result.Status)
	}
	send("joe", "Hello my old friend")
	send("joe", "How are you?")
	send("ali", "Greetings Ali")
	send("ali", "Did you finish the homework?")

	chatsResult, err := a.GetChats(ctx, schemas.GetChatsSchema{SessionID: sid, NoChats: 10})
	require.NoError(t, err)
	chats, ok := chatsResult.Data.([]schemas.Relationship)
	require.True(t, ok)
	require.Len(t, chats, 2)
	// ali contacted last, so ali leads
	assert.Equal(t, "ali", chats[0].Username)
	assert.Equal(t, "joe", chats[1].Username)

	msgsResult, err := a.GetMessages(ctx, schemas.GetMessagesSchema{
		SessionID: sid, WithUsername: "ali", NoMsgs: 10,
	})
	require.NoError(t, err)
	msgs, ok := msgsResult.Data.([]schemas.Message)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Did you finish the homework?", msgs[0].Content)
	assert.Equal(t, "Greetings Ali", msgs[1].Content)

	// block joe: chat list shrinks, messages with joe are refused
	_, err = a.Block(ctx, schemas.BlockSchema{SessionID: sid, ToBlockUsername: "joe"})
	require.NoError(t, err)

	chatsResult, err = a.GetChats(ctx, schemas.GetChatsSchema{SessionID: sid, NoChats: 10})
	require.NoError(t, err)
	chats, ok = chatsResult.Data.([]schemas.Relationship)
	require.True(t, ok)
	require.Len(t, chats, 1)
	assert.Equal(t, "ali", chats[0].Username)

	blocked, err := a.GetMessages(ctx, schemas.GetMessagesSchema{
		SessionID: sid, WithUsername: "joe", NoMsgs: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, schemas.StatusFailed, blocked.Status)
	assert.Nil(t, blocked.Data)
}

func TestGetProfileRedactsPasshash(t *testing.T) {
	a, _ := newActions(t)
	ctx := context.Background()

	result, err := a.CreateAccount(ctx, schemas.SignupSchema{
		Username: "mo", Password: "1234", Extra: "cat person",
	})
	require.NoError(t, err)
	require.Equal(t, schemas.StatusSucceeded, result.Status)
	sid := signin(t, a, "mo", "1234")

	got, err := a.GetProfile(ctx, sid)
	require.NoError(t, err)
	profile, ok := got.Data.(schemas.Profile)
	require.True(t, ok)
	assert.Equal(t, "mo", profile.Username)
	assert.Equal(t, "cat person", profile.Extra)
	assert.Empty(t, profile.Passhash)
}
