package handler

import (
	"testing"

	"malalingo/internal/domain"
	"malalingo/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceText(t *testing.T) {
	type message struct {
		text          string
		expectedStep  textStep
		expectedState domain.UserState
	}

	tests := []struct {
		name     string
		start    *domain.StateData
		messages []message
	}{
		{
			name:  "login flow",
			start: &domain.StateData{State: domain.StateWaitingEmail, Action: domain.ActionLogin},
			messages: []message{
				{text: "anu@example.com", expectedStep: stepAskPassword, expectedState: domain.StateWaitingPassword},
				{text: "secret", expectedStep: stepLogin, expectedState: domain.StateIdle},
			},
		},
		{
			name:  "signup flow",
			start: &domain.StateData{State: domain.StateWaitingEmail, Action: domain.ActionSignup},
			messages: []message{
				{text: "anu@example.com", expectedStep: stepAskPassword, expectedState: domain.StateWaitingPassword},
				{text: "secret", expectedStep: stepSignup, expectedState: domain.StateIdle},
			},
		},
		{
			name:  "bad email is asked again",
			start: &domain.StateData{State: domain.StateWaitingEmail, Action: domain.ActionLogin},
			messages: []message{
				{text: "not-an-email", expectedStep: stepBadEmail, expectedState: domain.StateWaitingEmail},
				{text: "anu@example.com", expectedStep: stepAskPassword, expectedState: domain.StateWaitingPassword},
			},
		},
		{
			name:  "magic word",
			start: &domain.StateData{State: domain.StateWaitingMagicword},
			messages: []message{
				{text: "mango", expectedStep: stepMagicword, expectedState: domain.StateIdle},
			},
		},
		{
			name:  "idle text shows menu",
			start: &domain.StateData{State: domain.StateIdle},
			messages: []message{
				{text: "hello", expectedStep: stepMenu, expectedState: domain.StateIdle},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, nil, nil, testutil.NewTestLogger())
			h.SetState(1, tt.start)

			for _, msg := range tt.messages {
				next, step := advanceText(h.GetState(1), msg.text)
				h.SetState(1, next)

				assert.Equal(t, msg.expectedStep, step, msg.text)
				assert.Equal(t, msg.expectedState, h.GetState(1).State, msg.text)
			}
		})
	}
}

func TestAdvanceText_KeepsEmailAndAction(t *testing.T) {
	h := NewHandler(nil, nil, nil, testutil.NewTestLogger())
	h.SetState(1, &domain.StateData{State: domain.StateWaitingEmail, Action: domain.ActionSignup})

	next, _ := advanceText(h.GetState(1), "anu@example.com")
	h.SetState(1, next)

	state := h.GetState(1)
	assert.Equal(t, domain.ActionSignup, state.Action)
	assert.Equal(t, "anu@example.com", state.Email)

	h.ResetState(1)
	assert.Equal(t, domain.StateIdle, h.GetState(1).State)
}
