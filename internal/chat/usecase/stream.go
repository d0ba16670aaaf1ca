package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/internal/chat/repository"
	"ai-chatbot-backend/internal/model"
	"ai-chatbot-backend/pkg/openai"
)

// Stream executes one conversation turn. The whole pipeline — append user
// message, stream completion, commit assistant reply, trim window — runs
// under the session's turn lock, so concurrent turns on one session cannot
// interleave. Fragments are forwarded through sink as they arrive; a sink or
// upstream failure aborts the turn with the user message retained and no
// assistant message committed.
func (uc *implUseCase) Stream(ctx context.Context, input chat.StreamInput, sink chat.FragmentSink) (chat.StreamOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chat.StreamOutput{State: chat.TurnAborted}, chat.ErrEmptyMessage
	}

	out := chat.StreamOutput{State: chat.TurnPending}

	err := uc.repo.Turn(ctx, input.SessionID, func(sess repository.Session) error {
		sess.Append(model.Message{Role: model.RoleUser, Content: msg})

		stream, err := uc.llm.StreamChatCompletion(ctx, &openai.Request{
			Messages:    toWireMessages(sess.Messages()),
			Temperature: uc.temperature,
		})
		if err != nil {
			out.State = chat.TurnAborted
			return fmt.Errorf("open completion stream: %w", err)
		}
		defer stream.Close()

		out.State = chat.TurnStreaming
		var reply strings.Builder
		for {
			chunk, rerr := stream.Recv()
			if errors.Is(rerr, io.EOF) {
				break
			}
			if rerr != nil {
				out.State = chat.TurnAborted
				return fmt.Errorf("receive fragment: %w", rerr)
			}

			delta := chunk.DeltaText()
			if delta == "" {
				continue
			}
			reply.WriteString(delta)

			// Forward before reading the next chunk: first-fragment latency is
			// one round trip, not full-generation latency.
			if serr := sink(delta); serr != nil {
				out.State = chat.TurnAborted
				return fmt.Errorf("forward fragment: %w", serr)
			}
		}

		sess.Append(model.Message{Role: model.RoleAssistant, Content: reply.String()})
		sess.Replace(chat.TrimWindow(sess.Messages(), uc.repo.Capacity(input.SessionID)))

		out.Reply = reply.String()
		out.State = chat.TurnCommitted
		return nil
	})
	if err != nil && out.State == chat.TurnAborted {
		uc.l.Warnf(ctx, "turn aborted for session %q: %v", input.SessionID, err)
	}

	return out, err
}

func toWireMessages(msgs []model.Message) []openai.Message {
	wire := make([]openai.Message, len(msgs))
	for i, m := range msgs {
		wire[i] = openai.Message{Role: string(m.Role), Content: m.Content}
	}
	return wire
}
