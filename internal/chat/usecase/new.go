package usecase

import (
	"ai-chatbot-backend/internal/chat"
	"ai-chatbot-backend/internal/chat/repository"
	pkgLog "ai-chatbot-backend/pkg/log"
	"ai-chatbot-backend/pkg/openai"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         openai.IOpenAI
	repo        repository.SessionRepository
	temperature float64
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm openai.IOpenAI,
	repo repository.SessionRepository,
	temperature float64,
) *implUseCase {
	if temperature <= 0 {
		temperature = openai.DefaultTemperature
	}
	return &implUseCase{
		l:           l,
		llm:         llm,
		repo:        repo,
		temperature: temperature,
	}
}
