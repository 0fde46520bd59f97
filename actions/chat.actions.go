package actions

import (
	"context"

	"messenger/errors"
	"messenger/schemas"
)

// SendMessage appends a message to the sender/receiver pair log. The check
// is against the sender's own relationship record: you cannot message
// someone you have blocked. The receiver's reciprocal record is not
// consulted; enforcement is directional throughout.
func (a *Actions) SendMessage(ctx context.Context, req schemas.SendMessageSchema) (schemas.Result, error) {
	a.log.Info().Str("receiver", req.ReceiverUsername).Msg("attempt to send message")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}

	sender, err := a.resolve(ctx, req.SessionID)
	if err != nil {
		return schemas.Result{}, err
	}

	if err := a.store.EnsureRelationship(ctx, sender, req.ReceiverUsername); err != nil {
		return schemas.Result{}, errors.NewFault("ensure_relationship", err)
	}

	rel, err := a.store.GetRelationship(ctx, sender, req.ReceiverUsername)
	if err != nil {
		return schemas.Result{}, errors.NewFault("get_relationship", err)
	}
	if rel.Blocked {
		return schemas.Failed("cannot send message to blocked user with username (" + req.ReceiverUsername + ")"), nil
	}

	if _, err := a.store.AppendMessage(ctx, sender, req.ReceiverUsername, req.Content); err != nil {
		return schemas.Result{}, errors.NewFault("append_message", err)
	}

	return schemas.Succeeded("successfully sent message from user with username (" + sender + ") to user with username (" + req.ReceiverUsername + ")"), nil
}

// GetMessages returns up to NoMsgs messages of the pair log, newest-first,
// unless the viewer has blocked the counterpart. A counterpart never
// contacted is a normal empty state.
func (a *Actions) GetMessages(ctx context.Context, req schemas.GetMessagesSchema) (schemas.Result, error) {
	a.log.Info().Str("with", req.WithUsername).Msg("attempt to get messages")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}

	username, err := a.resolve(ctx, req.SessionID)
	if err != nil {
		return schemas.Result{}, err
	}

	rel, err := a.store.GetRelationship(ctx, username, req.WithUsername)
	if err != nil {
		return schemas.Result{}, errors.NewFault("get_relationship", err)
	}
	if rel.Blocked {
		return schemas.Failed("cannot get messages from chat with blocked user with username (" + req.WithUsername + ")"), nil
	}

	msgs, err := a.store.MessagesRange(ctx, username, req.WithUsername, 0, req.NoMsgs)
	if err != nil {
		return schemas.Result{}, errors.NewFault("messages_range", err)
	}

	if len(msgs) == 0 {
		return schemas.SucceededData("no chat with user with username ("+req.WithUsername+") yet", msgs), nil
	}
	return schemas.SucceededData("successfully got messages from chat of user with username ("+username+") with user with username ("+req.WithUsername+")", msgs), nil
}

// GetChats returns up to NoChats relationship records from the user's contact
// history, most-recent-contact-first, with blocked counterparts filtered out
// at read time on every call.
func (a *Actions) GetChats(ctx context.Context, req schemas.GetChatsSchema) (schemas.Result, error) {
	a.log.Info().Msg("attempt to get chats with users")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}

	username, err := a.resolve(ctx, req.SessionID)
	if err != nil {
		return schemas.Result{}, err
	}

	counterparts, err := a.store.ChatsWithRange(ctx, username, 0, req.NoChats)
	if err != nil {
		return schemas.Result{}, errors.NewFault("chats_with_range", err)
	}

	chats := make([]schemas.Relationship, 0, len(counterparts))
	for _, counterpart := range counterparts {
		rel, err := a.store.GetRelationship(ctx, username, counterpart)
		if err != nil {
			return schemas.Result{}, errors.NewFault("get_relationship", err)
		}
		if rel.Blocked {
			continue
		}
		chats = append(chats, rel)
	}

	return schemas.SucceededData("successfully got chat list of user with username ("+username+")", chats), nil
}

// Block marks the counterpart as blocked on the session user's own record,
// creating the relationship first if the two never chatted.
func (a *Actions) Block(ctx context.Context, req schemas.BlockSchema) (schemas.Result, error) {
	// TODO[mo]: should one be able to block themselves?
	a.log.Info().Str("counterpart", req.ToBlockUsername).Msg("attempt to block user")

	if err := a.check(req); err != nil {
		return schemas.Result{}, err
	}

	username, err := a.resolve(ctx, req.SessionID)
	if err != nil {
		return schemas.Result{}, err
	}

	if err := a.store.Block(ctx, username, req.ToBlockUsername); err != nil {
		return schemas.Result{}, errors.NewFault("block_user", err)
	}

	return schemas.Succeeded("successfully blocked user with username (" + req.ToBlockUsername + ")"), nil
}
